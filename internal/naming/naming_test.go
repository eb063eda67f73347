package naming

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"
)

func TestSanitizeKeepsSafeCharacters(t *testing.T) {
	got := Sanitize("My Folder!!")
	if got != "My Folder" {
		t.Errorf("Sanitize(%q) = %q, want %q", "My Folder!!", got, "My Folder")
	}
}

func TestSanitizeStripsTrailingWhitespace(t *testing.T) {
	got := Sanitize("holiday pics   ")
	if got != "holiday pics" {
		t.Errorf("Sanitize() = %q, want %q", got, "holiday pics")
	}
}

func TestSanitizeFallbackWhenNothingSurvives(t *testing.T) {
	got := Sanitize("!!!???")
	if got != "default_folder" {
		t.Errorf("Sanitize() = %q, want %q", got, "default_folder")
	}
}

func TestSanitizeEmptyUsesTimestamp(t *testing.T) {
	got := Sanitize("")
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}$`)
	if !pattern.MatchString(got) {
		t.Errorf("Sanitize(\"\") = %q, want timestamp format", got)
	}
	if _, err := time.Parse(timestampLayout, got); err != nil {
		t.Errorf("Sanitize(\"\") = %q is not a valid timestamp: %v", got, err)
	}
}

func TestSanitizeKeepsHyphensAndUnderscores(t *testing.T) {
	got := Sanitize("trip_2024-05")
	if got != "trip_2024-05" {
		t.Errorf("Sanitize() = %q, want input unchanged", got)
	}
}

func TestUniqueReturnsNameWhenFree(t *testing.T) {
	dir := t.TempDir()
	got := Unique(dir, "photo.png")
	if got != "photo.png" {
		t.Errorf("Unique() = %q, want %q", got, "photo.png")
	}
}

func TestUniqueAppendsCounterBeforeExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "photo.png"))

	got := Unique(dir, "photo.png")
	if got != "photo_1.png" {
		t.Errorf("Unique() = %q, want %q", got, "photo_1.png")
	}

	touch(t, filepath.Join(dir, "photo_1.png"))
	got = Unique(dir, "photo.png")
	if got != "photo_2.png" {
		t.Errorf("Unique() = %q, want %q", got, "photo_2.png")
	}
}

func TestUniqueHandlesNameWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "readme"))

	got := Unique(dir, "readme")
	if got != "readme_1" {
		t.Errorf("Unique() = %q, want %q", got, "readme_1")
	}
}

func TestUniqueDirAppendsCounter(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "trip_copy"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got := UniqueDir(root, "trip_copy")
	if got != "trip_copy_1" {
		t.Errorf("UniqueDir() = %q, want %q", got, "trip_copy_1")
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
