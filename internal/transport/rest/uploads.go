package rest

import (
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/attachment"
	"github.com/heartmarshall/devlog-backend/internal/usermsg"
)

const multipartMemory = 32 << 20

// attachmentService defines the minimal interface needed by UploadHandler.
type attachmentService interface {
	UploadImages(ctx context.Context, files []attachment.File) ([]string, error)
	DeleteImage(ctx context.Context, publicURL string) error
}

// UploadHandler serves image uploads.
type UploadHandler struct {
	svc      attachmentService
	log      *slog.Logger
	maxTotal int64
}

// NewUploadHandler creates an UploadHandler. maxTotal caps the whole
// multipart body; zero means no cap.
func NewUploadHandler(svc attachmentService, logger *slog.Logger, maxTotal int64) *UploadHandler {
	return &UploadHandler{svc: svc, log: logger.With("handler", "uploads"), maxTotal: maxTotal}
}

type uploadResponse struct {
	URLs []string `json:"urls"`
}

type deleteUploadRequest struct {
	URL string `json:"url"`
}

// Upload handles POST /api/uploads with multipart field "files".
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.maxTotal > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxTotal)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		respondError(w, r, h.log, domain.NewValidationError("files", "invalid multipart body"), usermsg.OpUpload)
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		respondError(w, r, h.log, domain.NewValidationError("files", "required"), usermsg.OpUpload)
		return
	}

	files := make([]attachment.File, 0, len(headers))
	for _, fh := range headers {
		f, err := readPart(fh)
		if err != nil {
			respondError(w, r, h.log, err, usermsg.OpUpload)
			return
		}
		files = append(files, f)
	}

	urls, err := h.svc.UploadImages(r.Context(), files)
	if err != nil {
		respondError(w, r, h.log, err, usermsg.OpUpload)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{URLs: urls})
}

// Delete handles DELETE /api/uploads with the public URL in ?url= or the body.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" && r.ContentLength != 0 {
		var req deleteUploadRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, h.log, err, usermsg.OpDelete)
			return
		}
		target = req.URL
	}

	if err := h.svc.DeleteImage(r.Context(), target); err != nil {
		respondError(w, r, h.log, err, usermsg.OpDelete)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func readPart(fh *multipart.FileHeader) (attachment.File, error) {
	src, err := fh.Open()
	if err != nil {
		return attachment.File{}, domain.NewValidationError("files", fh.Filename+": unreadable")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return attachment.File{}, domain.NewValidationError("files", fh.Filename+": unreadable")
	}
	return attachment.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
