// Package fileinfo derives metadata for files and folders on disk: image
// classification, MIME type and size/timestamp aggregates.
package fileinfo

import (
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".svg":  true,
}

// IsImage reports whether filename has a recognized image extension.
// The check is case-insensitive.
func IsImage(filename string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(filename))]
}

// MimeType guesses the MIME type from the file extension. Returns an empty
// string when the extension is unknown.
func MimeType(path string) string {
	return mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
}

type Info struct {
	Size       int64
	CreatedAt  time.Time
	ModifiedAt time.Time
	MimeType   string
}

// Stat returns metadata for the file at path. The second return value is
// false when the path does not exist; a missing file is not an error here.
// Creation time is not portable, so ModTime stands in for both timestamps.
func Stat(path string) (Info, bool) {
	st, err := os.Stat(path)
	if err != nil {
		return Info{}, false
	}
	return Info{
		Size:       st.Size(),
		CreatedAt:  st.ModTime(),
		ModifiedAt: st.ModTime(),
		MimeType:   MimeType(path),
	}, true
}

type FolderInfo struct {
	TotalSize  int64
	ImageCount int
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// StatFolder walks the tree rooted at path, summing the sizes of all files
// and counting only image files. Returns false when path is missing or not
// a directory. Unreadable entries are skipped rather than failing the walk.
func StatFolder(path string) (FolderInfo, bool) {
	st, err := os.Stat(path)
	if err != nil || !st.IsDir() {
		return FolderInfo{}, false
	}
	info := FolderInfo{
		CreatedAt:  st.ModTime(),
		ModifiedAt: st.ModTime(),
	}
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		info.TotalSize += fi.Size()
		if IsImage(d.Name()) {
			info.ImageCount++
		}
		return nil
	})
	return info, true
}
