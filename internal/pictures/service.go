package pictures

import (
	"github.com/MagePro310/systemManagePic/internal/apperr"
	"github.com/MagePro310/systemManagePic/internal/fileinfo"
	"io"
	"os"
	"path/filepath"
)

func NewService(config *Config) *Service {
	if config == nil {
		config = &Config{
			Root: "uploads",
		}
	}
	return &Service{config: config}
}

func (s *Service) path(folder, filename string) string {
	return filepath.Clean(filepath.Join(s.config.Root, folder, filename))
}

// Open resolves a picture to its path and stat info for serving. The caller
// is responsible for opening and closing the file itself.
func (s *Service) Open(folder, filename string) (string, os.FileInfo, error) {
	filePath := s.path(folder, filename)

	st, err := os.Stat(filePath)
	if err != nil {
		return "", nil, apperr.NotFound("picture not found")
	}
	if st.IsDir() {
		return "", nil, apperr.InvalidTarget("path is a folder, not a picture")
	}

	return filePath, st, nil
}

func (s *Service) Info(folder, filename string) (Info, error) {
	filePath := s.path(folder, filename)

	meta, ok := fileinfo.Stat(filePath)
	if !ok {
		return Info{}, apperr.NotFound("picture not found")
	}

	return Info{
		Filename:   filename,
		Size:       meta.Size,
		Path:       folder + "/" + filename,
		Folder:     folder,
		CreatedAt:  meta.CreatedAt,
		ModifiedAt: meta.ModifiedAt,
		MimeType:   meta.MimeType,
	}, nil
}

// Replace overwrites the bytes of an existing picture. It never creates a
// new file: a missing target is NotFound. declaredName is the filename the
// client gave the replacement content; it must itself look like an image.
// The overwrite is in place, not write-to-temp-then-rename, so a concurrent
// reader can observe a torn file.
func (s *Service) Replace(folder, filename, declaredName string, r io.Reader) (UpdateResult, error) {
	filePath := s.path(folder, filename)

	if _, err := os.Stat(filePath); err != nil {
		return UpdateResult{}, apperr.NotFound("picture not found")
	}
	if declaredName == "" || !fileinfo.IsImage(declaredName) {
		return UpdateResult{}, apperr.InvalidInput("invalid image file")
	}

	out, err := os.Create(filePath)
	if err != nil {
		return UpdateResult{}, apperr.Internal("failed to update picture", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return UpdateResult{}, apperr.Internal("failed to update picture", err)
	}

	return UpdateResult{
		Message:  "Picture updated successfully",
		Filename: filename,
		Folder:   folder,
	}, nil
}

func (s *Service) Delete(folder, filename string) (DeleteResult, error) {
	filePath := s.path(folder, filename)

	if _, err := os.Stat(filePath); err != nil {
		return DeleteResult{}, apperr.NotFound("picture not found")
	}

	if err := os.Remove(filePath); err != nil {
		return DeleteResult{}, apperr.Internal("failed to delete picture", err)
	}

	return DeleteResult{
		Message:  "Picture deleted successfully",
		Filename: filename,
		Folder:   folder,
	}, nil
}
