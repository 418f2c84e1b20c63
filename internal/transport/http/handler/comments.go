package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/safespace-api/internal/application/comment"
	"github.com/safespace-api/internal/domain"
)

// CommentHandler handles per-post comment endpoints.
type CommentHandler struct {
	svc comment.Service
}

func NewCommentHandler(svc comment.Service) *CommentHandler { return &CommentHandler{svc: svc} }

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CommentEnvelope{
		Message: "Comment posted successfully",
		Comment: c,
	})
}

func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ListByPost(r.Context(), chi.URLParam(r, "postId"))
	if err != nil {
		httpError(w, err)
		return
	}
	if rows == nil {
		rows = []domain.Comment{}
	}
	writeJSON(w, http.StatusOK, CommentsEnvelope{Comments: rows})
}
