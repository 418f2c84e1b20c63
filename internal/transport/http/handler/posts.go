package handler

import (
	"encoding/json"
	"net/http"

	"github.com/safespace-api/internal/application/post"
	"github.com/safespace-api/internal/domain"
)

// PostHandler handles the post feed endpoints.
type PostHandler struct {
	svc post.Service
}

func NewPostHandler(svc post.Service) *PostHandler { return &PostHandler{svc: svc} }

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, PostEnvelope{
		Success: true,
		Message: "Post created successfully",
		PostID:  p.PostID,
		Post:    p,
	})
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	if rows == nil {
		rows = []domain.PostWithAuthor{}
	}
	writeJSON(w, http.StatusOK, PostsEnvelope{Posts: rows})
}
