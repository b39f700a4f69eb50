package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/usecase"
)

// PostHandler serves the free-form /posts endpoints of the file-backed
// variant. Bodies are stored as-is; no schema is applied.
type PostHandler struct {
	posts  *usecase.PostUsecase
	logger *zap.Logger
}

func NewPostHandler(posts *usecase.PostUsecase, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		posts:  posts,
		logger: logger.Named("PostHTTPHandler"),
	}
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Error("Failed to decode request body for CreatePost", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body", Kind: "bad_request"})
		return
	}
	stored, err := h.posts.Create(r.Context(), body)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Post stored successfully",
		"post":    stored,
	})
}

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	records, err := h.posts.List(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Error("Failed to decode request body for UpdatePost", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body", Kind: "bad_request"})
		return
	}
	updated, err := h.posts.Update(r.Context(), id, body)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Post updated successfully",
		"updatedPost": updated,
	})
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.posts.Delete(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Post deleted successfully",
	})
}
