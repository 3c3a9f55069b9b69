package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"autorenta-backend/internal/domain"
	"autorenta-backend/internal/logger"
	"autorenta-backend/internal/storage"
)

// UploadHandler serves the upload/download endpoints that back the mock
// storage service's presigned URLs. It is only registered when the storage
// backend is "mock"; with Firebase enabled, clients talk to GCS directly.
type UploadHandler struct {
	store storage.StorageInterface
}

func NewUploadHandler(store storage.StorageInterface) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, domain.NewValidationError("missing key parameter"))
		return
	}
	defer r.Body.Close()
	if err := h.store.SaveFile(key, r.Body); err != nil {
		logger.Error("mock upload failed", "key", key, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key})
}

func (h *UploadHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, domain.NewValidationError("missing key parameter"))
		return
	}
	f, err := h.store.ReadFile(key)
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}
	defer f.Close()
	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	if _, err := io.Copy(w, f); err != nil {
		logger.Error("mock download write failed", "key", key, "error", err)
	}
}
