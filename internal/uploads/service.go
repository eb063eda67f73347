package uploads

import (
	"fmt"
	"github.com/MagePro310/systemManagePic/internal/apperr"
	"github.com/MagePro310/systemManagePic/internal/fileinfo"
	"github.com/MagePro310/systemManagePic/internal/naming"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
)

func NewService(cfg *Config) (*Service, error) {
	uploads := &Service{config: cfg}
	// Create uploads directory if it doesn't exist
	if err := os.MkdirAll(cfg.Root, 0755); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}
	return uploads, nil
}

// Upload stores a batch of files in the named folder, creating it if
// needed. Files that are not images or exceed the size limit collect a
// per-file error and are skipped; the batch only fails outright when
// nothing was written. A hard write failure rolls back the files written
// earlier in the same request, best effort.
func (s *Service) Upload(files []*multipart.FileHeader, folderName string) (*Result, error) {
	if len(files) == 0 {
		return nil, apperr.BadRequest("no files provided")
	}

	clean := naming.Sanitize(folderName)
	dirPath := filepath.Join(s.config.Root, clean)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return nil, apperr.Internal("failed to create folder", err)
	}

	var saved []string
	var fileErrors []string

	for _, fh := range files {
		if fh.Filename == "" {
			continue
		}
		if !fileinfo.IsImage(fh.Filename) {
			fileErrors = append(fileErrors, fmt.Sprintf("%s: not a valid image", fh.Filename))
			continue
		}
		if s.config.MaxFileSize > 0 && fh.Size > s.config.MaxFileSize {
			fileErrors = append(fileErrors, fmt.Sprintf("%s: file too large (max %d bytes)", fh.Filename, s.config.MaxFileSize))
			continue
		}

		filename := naming.Unique(dirPath, fh.Filename)
		if err := saveFile(fh, filepath.Join(dirPath, filename)); err != nil {
			s.rollback(dirPath, saved)
			return nil, apperr.Internal(fmt.Sprintf("error saving file %s", fh.Filename), err)
		}
		saved = append(saved, filename)
	}

	if len(saved) == 0 && len(fileErrors) > 0 {
		return nil, apperr.InvalidInput("no files were uploaded successfully")
	}

	return &Result{
		Message:    "Files uploaded successfully",
		Folder:     clean,
		Files:      saved,
		TotalFiles: len(saved),
		Errors:     fileErrors,
	}, nil
}

func saveFile(fh *multipart.FileHeader, path string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// rollback removes the files written earlier in the failed request.
func (s *Service) rollback(dirPath string, saved []string) {
	for _, filename := range saved {
		if err := os.Remove(filepath.Join(dirPath, filename)); err != nil {
			slog.Warn("Failed to remove file during upload rollback", "file", filename, "error", err)
		}
	}
}
