package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cometjet/crewdesk/internal/common"
	"cometjet/crewdesk/internal/db/repositories"
	"cometjet/crewdesk/internal/models/dtos"
	"cometjet/crewdesk/internal/models/entities"
)

const (
	publishedPostsCacheKey = "posts:published"
	publishedPostsCacheTTL = 60 * time.Second
)

// PostService serves the blog, caching the public published list.
type PostService struct {
	repo  *repositories.PostRepository
	cache common.CacheInterface
}

func NewPostService(repo *repositories.PostRepository, cache common.CacheInterface) *PostService {
	return &PostService{
		repo:  repo,
		cache: cache,
	}
}

// ListPublished returns published posts, newest first.
func (svc *PostService) ListPublished(ctx context.Context) (any, error) {
	return svc.cache.GetOrSet(publishedPostsCacheKey, publishedPostsCacheTTL, func() (any, error) {
		return svc.repo.ListPublishedPosts(ctx)
	})
}

func (svc *PostService) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	post, err := svc.repo.FindPostById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return post, nil
}

// SavePost creates a post, or updates it when the request carries an id.
func (svc *PostService) SavePost(ctx context.Context, req *dtos.SavePostReq) (*entities.Post, error) {
	author := req.Author
	if author == "" {
		author = "Admin"
	}

	var imageURL *string
	if req.ImageURL != "" {
		imageURL = &req.ImageURL
	}

	post := &entities.Post{
		ID:          req.ID,
		Title:       req.Title,
		Content:     req.Content,
		Author:      author,
		ImageURL:    imageURL,
		IsPublished: req.IsPublished,
	}

	var err error
	if req.ID == "" {
		err = svc.repo.InsertPost(ctx, post)
	} else {
		err = svc.repo.UpdatePost(ctx, post)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save post: %w", err)
	}

	svc.cache.Delete(publishedPostsCacheKey)
	return post, nil
}

func (svc *PostService) DeletePost(ctx context.Context, id string) error {
	if err := svc.repo.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	svc.cache.Delete(publishedPostsCacheKey)
	return nil
}
