package folders

import (
	"github.com/MagePro310/systemManagePic/internal/apperr"
	"github.com/MagePro310/systemManagePic/internal/fileinfo"
	"github.com/MagePro310/systemManagePic/internal/naming"
	"github.com/otiai10/copy"
	"log/slog"
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

// ListAll enumerates the immediate subdirectories of the root and their
// image files. A missing root yields an empty map, not an error.
func (s *Service) ListAll() map[string]Folder {
	entries, err := os.ReadDir(s.config.Root)
	if err != nil {
		return map[string]Folder{}
	}

	result := make(map[string]Folder, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folder, err := s.Contents(entry.Name())
		if err != nil {
			slog.Warn("Skipping unreadable folder", "folder", entry.Name(), "error", err)
			continue
		}
		result[entry.Name()] = folder
	}
	return result
}

// Contents lists the image files directly inside the named folder.
// Nested directories are not traversed.
func (s *Service) Contents(name string) (Folder, error) {
	dirPath := filepath.Join(s.config.Root, name)

	st, err := os.Stat(dirPath)
	if err != nil {
		return Folder{}, apperr.NotFound("folder not found")
	}
	if !st.IsDir() {
		return Folder{}, apperr.InvalidTarget("path is not a folder")
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return Folder{}, apperr.Internal("failed to read folder", err)
	}

	pictures := make([]Picture, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !fileinfo.IsImage(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			slog.Warn("Failed to stat picture", "folder", name, "file", entry.Name(), "error", err)
			continue
		}
		pictures = append(pictures, Picture{
			Filename: entry.Name(),
			Size:     info.Size(),
			Path:     name + "/" + entry.Name(),
			Folder:   name,
		})
	}

	return Folder{
		Name:     name,
		Pictures: pictures,
		Count:    len(pictures),
	}, nil
}

// Info composes Contents with a recursive size aggregate. The picture list
// and count stay flat while the total size includes nested files, matching
// the listing endpoints.
func (s *Service) Info(name string) (FolderInfo, error) {
	folder, err := s.Contents(name)
	if err != nil {
		return FolderInfo{}, err
	}

	agg, ok := fileinfo.StatFolder(filepath.Join(s.config.Root, name))
	if !ok {
		return FolderInfo{}, apperr.NotFound("folder not found")
	}

	return FolderInfo{
		Folder:     folder,
		CreatedAt:  agg.CreatedAt,
		ModifiedAt: agg.ModifiedAt,
		TotalSize:  agg.TotalSize,
	}, nil
}

// Create makes a folder with a sanitized name under the root. Creating a
// folder that already exists is not an error.
func (s *Service) Create(name string) (CreateResult, error) {
	clean := naming.Sanitize(name)
	if err := os.MkdirAll(filepath.Join(s.config.Root, clean), 0755); err != nil {
		return CreateResult{}, apperr.Internal("failed to create folder", err)
	}
	return CreateResult{
		Message: "Folder created successfully",
		Name:    clean,
	}, nil
}

// Rename moves a folder to a sanitized new name. The destination must not
// already exist.
func (s *Service) Rename(oldName, newName string) (RenameResult, error) {
	oldPath := filepath.Join(s.config.Root, oldName)
	if _, err := os.Stat(oldPath); err != nil {
		return RenameResult{}, apperr.NotFound("folder not found")
	}

	clean := naming.Sanitize(newName)
	newPath := filepath.Join(s.config.Root, clean)
	if _, err := os.Stat(newPath); err == nil {
		return RenameResult{}, apperr.Conflict("folder with new name already exists")
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return RenameResult{}, apperr.Internal("failed to rename folder", err)
	}

	return RenameResult{
		Message: "Folder renamed successfully",
		OldName: oldName,
		NewName: clean,
	}, nil
}

// Duplicate recursively copies a folder. The default new name is
// "{source}_copy", disambiguated with _1, _2, ... while taken. A failed
// copy may leave a partial destination behind; it is not cleaned up.
func (s *Service) Duplicate(name, newName string) (DuplicateResult, error) {
	srcPath := filepath.Join(s.config.Root, name)
	if _, err := os.Stat(srcPath); err != nil {
		return DuplicateResult{}, apperr.NotFound("folder not found")
	}

	if newName == "" {
		newName = name + "_copy"
	}
	clean := naming.UniqueDir(s.config.Root, naming.Sanitize(newName))

	if err := copy.Copy(srcPath, filepath.Join(s.config.Root, clean)); err != nil {
		return DuplicateResult{}, apperr.Internal("failed to duplicate folder", err)
	}

	return DuplicateResult{
		Message:      "Folder duplicated successfully",
		OriginalName: name,
		NewName:      clean,
	}, nil
}

// Delete removes a folder and everything inside it, including files that
// no listing operation would ever show.
func (s *Service) Delete(name string) (DeleteResult, error) {
	dirPath := filepath.Join(s.config.Root, name)
	if _, err := os.Stat(dirPath); err != nil {
		return DeleteResult{}, apperr.NotFound("folder not found")
	}

	if err := os.RemoveAll(dirPath); err != nil {
		return DeleteResult{}, apperr.Internal("failed to delete folder", err)
	}

	return DeleteResult{
		Message:    "Folder deleted successfully",
		FolderName: name,
	}, nil
}
