package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/comment"
	"github.com/heartmarshall/devlog-backend/internal/usermsg"
)

// commentService defines the minimal interface needed by CommentHandler.
type commentService interface {
	List(ctx context.Context, entryID int64) ([]domain.Comment, error)
	Create(ctx context.Context, input comment.CreateInput) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// CommentHandler serves the comment endpoints.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comments")}
}

type createCommentRequest struct {
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}

// List handles GET /api/entries/{id}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}

	comments, err := h.svc.List(r.Context(), entryID)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpLoad)
		return
	}

	out := make([]commentResponse, len(comments))
	for i := range comments {
		out[i] = toCommentResponse(&comments[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/entries/{id}/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	var req createCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}

	c, err := h.svc.Create(r.Context(), comment.CreateInput{
		EntryID: entryID,
		Author:  req.AuthorName,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpSave)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}

// Delete handles DELETE /api/comments/{id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpDelete)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err, usermsg.OpDelete)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
