package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/safespace-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper the mobile client expects:
// a success flag plus a human-readable message it can surface in an alert.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginEnvelope wraps a successful login.
type LoginEnvelope struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	User    *SafeUser `json:"user,omitempty"`
}

// SafeUser is the subset of an account the client is allowed to see.
type SafeUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// PostEnvelope wraps a created post.
type PostEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	PostID  string       `json:"postId,omitempty"`
	Post    *domain.Post `json:"post,omitempty"`
}

// PostsEnvelope wraps the feed.
type PostsEnvelope struct {
	Posts []domain.PostWithAuthor `json:"posts"`
}

// CommentEnvelope wraps a created comment. No success flag: the client only
// reads message and comment here.
type CommentEnvelope struct {
	Message string          `json:"message"`
	Comment *domain.Comment `json:"comment"`
}

// CommentsEnvelope wraps a comment listing.
type CommentsEnvelope struct {
	Comments []domain.Comment `json:"comments"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Success: false, Message: msg})
}

// httpError maps domain sentinels to status codes. Conflicts answer 400, not
// 409: duplicate registration has always been a 400 for this client.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrBadRequest), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
