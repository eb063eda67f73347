package handlers

import (
	"errors"
	"github.com/MagePro310/systemManagePic/internal/apperr"
	"github.com/MagePro310/systemManagePic/internal/folders"
	"io"
	"net/http"
)

type FolderHandler struct {
	folders *folders.Service
}

func NewFolderHandler(folders *folders.Service) *FolderHandler {
	return &FolderHandler{folders: folders}
}

type createFolderRequest struct {
	Name string `json:"name"`
}

type renameFolderRequest struct {
	NewName string `json:"new_name"`
}

type duplicateFolderRequest struct {
	NewName string `json:"new_name"`
}

func (h *FolderHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	encode(w, http.StatusOK, struct {
		Folders map[string]folders.Folder `json:"folders"`
	}{Folders: h.folders.ListAll()})
}

func (h *FolderHandler) HandleContents(w http.ResponseWriter, r *http.Request) {
	folder, err := h.folders.Contents(r.PathValue("folder"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	encode(w, http.StatusOK, folder)
}

func (h *FolderHandler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.folders.Info(r.PathValue("folder"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	encode(w, http.StatusOK, info)
}

func (h *FolderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// The name is optional; an empty body gets the timestamp default.
	req, err := decode[createFolderRequest](r)
	if err != nil && !errors.Is(err, io.EOF) {
		respondError(w, r, apperr.BadRequest("invalid request body"))
		return
	}
	result, err := h.folders.Create(req.Name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	encode(w, http.StatusCreated, result)
}

func (h *FolderHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	req, err := decode[renameFolderRequest](r)
	if err != nil || req.NewName == "" {
		respondError(w, r, apperr.BadRequest("new_name is required"))
		return
	}
	result, err := h.folders.Rename(r.PathValue("folder"), req.NewName)
	if err != nil {
		respondError(w, r, err)
		return
	}
	encode(w, http.StatusOK, result)
}

func (h *FolderHandler) HandleDuplicate(w http.ResponseWriter, r *http.Request) {
	// new_name is optional; the service falls back to "{source}_copy".
	req, err := decode[duplicateFolderRequest](r)
	if err != nil && !errors.Is(err, io.EOF) {
		respondError(w, r, apperr.BadRequest("invalid request body"))
		return
	}
	result, err := h.folders.Duplicate(r.PathValue("folder"), req.NewName)
	if err != nil {
		respondError(w, r, err)
		return
	}
	encode(w, http.StatusOK, result)
}

func (h *FolderHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	result, err := h.folders.Delete(r.PathValue("folder"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	encode(w, http.StatusOK, result)
}
