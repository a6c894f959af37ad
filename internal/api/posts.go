package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cometjet/crewdesk/internal/common"
	"cometjet/crewdesk/internal/constants"
	"cometjet/crewdesk/internal/models/dtos"
	"cometjet/crewdesk/internal/services"

	"github.com/go-chi/chi/v5"
)

// ListPostsHandler handles GET /api/v1/posts (public, cached)
func ListPostsHandler(svc *services.PostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		posts, err := svc.ListPublished(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch posts", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Posts fetched", posts)
	}
}

// GetPostHandler handles GET /api/v1/posts/{id} (public)
func GetPostHandler(svc *services.PostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		post, err := svc.GetPost(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, services.ErrPostNotFound) {
			common.RespondError(w, initTime, nil, constants.MsgPostNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch post", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Post fetched", post)
	}
}

// SavePostHandler handles POST /api/v1/posts (admin). A request with an id
// updates the existing post, otherwise a new one is created.
func SavePostHandler(svc *services.PostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SavePostReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(&req); err != nil {
			common.RespondError(w, initTime, nil, validationMessage(err), http.StatusBadRequest)
			return
		}

		post, err := svc.SavePost(r.Context(), &req)
		if errors.Is(err, services.ErrPostNotFound) {
			common.RespondError(w, initTime, nil, constants.MsgPostNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to save post", http.StatusInternalServerError)
			return
		}

		status := http.StatusOK
		if req.ID == "" {
			status = http.StatusCreated
		}
		common.RespondSuccess(w, initTime, "Post saved", post, status)
	}
}

// UpdatePostHandler handles PUT /api/v1/posts/{id} (admin). The URL id wins
// over any id in the body.
func UpdatePostHandler(svc *services.PostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SavePostReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		req.ID = chi.URLParam(r, "id")

		if err := validate.Struct(&req); err != nil {
			common.RespondError(w, initTime, nil, validationMessage(err), http.StatusBadRequest)
			return
		}

		post, err := svc.SavePost(r.Context(), &req)
		if errors.Is(err, services.ErrPostNotFound) {
			common.RespondError(w, initTime, nil, constants.MsgPostNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to save post", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Post updated", post)
	}
}

// DeletePostHandler handles DELETE /api/v1/posts/{id} (admin)
func DeletePostHandler(svc *services.PostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := svc.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
			common.RespondError(w, initTime, err, "Failed to delete post", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Post deleted", nil)
	}
}
