package handlers

import (
	"github.com/MagePro310/systemManagePic/internal/apperr"
	"github.com/MagePro310/systemManagePic/internal/uploads"
	"net/http"
)

type UploadHandler struct {
	uploads     *uploads.Service
	maxFileSize int64
}

func NewUploadHandler(uploads *uploads.Service, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		uploads:     uploads,
		maxFileSize: maxFileSize,
	}
}

func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		respondError(w, r, apperr.BadRequest("failed to parse form"))
		return
	}
	if r.MultipartForm == nil {
		respondError(w, r, apperr.BadRequest("no files provided"))
		return
	}

	result, err := h.uploads.Upload(r.MultipartForm.File["files"], r.FormValue("folder"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	encode(w, http.StatusOK, result)
}
