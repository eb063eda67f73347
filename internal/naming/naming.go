// Package naming normalizes user-supplied folder names and generates
// collision-free filenames inside a directory.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

const timestampLayout = "2006-01-02_15-04-05"

// Sanitize turns an arbitrary folder name into a filesystem-safe one. An
// empty name gets a timestamp-based default, so unnamed uploads land in a
// fresh folder per second. Never returns an empty string.
func Sanitize(raw string) string {
	if raw == "" {
		return time.Now().Format(timestampLayout)
	}
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	sanitized := strings.TrimRightFunc(b.String(), unicode.IsSpace)
	if sanitized == "" {
		return "default_folder"
	}
	return sanitized
}

// Unique returns filename if dir/filename is free, otherwise the first
// stem_N.ext that is. The check is not safe against a concurrent create
// between stat and write; the filesystem is the only synchronization point.
func Unique(dir, filename string) string {
	if !exists(filepath.Join(dir, filename)) {
		return filename
	}
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, counter, ext)
		if !exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}

// UniqueDir is Unique for directory names: no extension splitting, the
// counter goes straight on the end.
func UniqueDir(root, name string) string {
	if !exists(filepath.Join(root, name)) {
		return name
	}
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%d", name, counter)
		if !exists(filepath.Join(root, candidate)) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
