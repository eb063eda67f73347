package handlers

import (
	"fmt"
	"github.com/MagePro310/systemManagePic/internal/apperr"
	"github.com/MagePro310/systemManagePic/internal/pictures"
	"net/http"
	"os"
)

type PictureHandler struct {
	pictures    *pictures.Service
	maxFileSize int64
}

func NewPictureHandler(pictures *pictures.Service, maxFileSize int64) *PictureHandler {
	return &PictureHandler{
		pictures:    pictures,
		maxFileSize: maxFileSize,
	}
}

func (h *PictureHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	filePath, fileInfo, err := h.pictures.Open(r.PathValue("folder"), r.PathValue("filename"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	file, err := os.Open(filePath)
	if err != nil {
		respondError(w, r, apperr.Internal("failed to open picture", err))
		return
	}
	defer file.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileInfo.Name()))
	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeContent(w, r, filePath, fileInfo.ModTime(), file)
}

func (h *PictureHandler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.pictures.Info(r.PathValue("folder"), r.PathValue("filename"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	encode(w, http.StatusOK, info)
}

func (h *PictureHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		respondError(w, r, apperr.BadRequest("failed to parse form"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, apperr.BadRequest("file is required"))
		return
	}
	defer file.Close()

	result, err := h.pictures.Replace(r.PathValue("folder"), r.PathValue("filename"), header.Filename, file)
	if err != nil {
		respondError(w, r, err)
		return
	}
	encode(w, http.StatusOK, result)
}

func (h *PictureHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	result, err := h.pictures.Delete(r.PathValue("folder"), r.PathValue("filename"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	encode(w, http.StatusOK, result)
}
