package repositories

import (
	"context"

	"cometjet/crewdesk/internal/constants"
	"cometjet/crewdesk/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type PostRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db}
}

func (r *PostRepository) ListPublishedPosts(ctx context.Context) ([]entities.Post, error) {

	posts := make([]entities.Post, 0)

	if err := r.db.SelectContext(ctx, &posts, constants.ListPublishedPosts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *PostRepository) FindPostById(ctx context.Context, id string) (*entities.Post, error) {

	var post entities.Post

	err := r.db.QueryRowxContext(ctx, constants.GetPostById, id).StructScan(&post)
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *PostRepository) InsertPost(ctx context.Context, post *entities.Post) error {
	return r.db.QueryRowxContext(ctx, constants.InsertPost,
		post.Title,
		post.Content,
		post.Author,
		post.ImageURL,
		post.IsPublished,
	).StructScan(post)
}

func (r *PostRepository) UpdatePost(ctx context.Context, post *entities.Post) error {
	return r.db.QueryRowxContext(ctx, constants.UpdatePost,
		post.ID,
		post.Title,
		post.Content,
		post.Author,
		post.ImageURL,
		post.IsPublished,
	).StructScan(post)
}

func (r *PostRepository) DeletePost(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, constants.DeletePostById, id)
	return err
}
