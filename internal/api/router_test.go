package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MagePro310/systemManagePic/internal/api"
	"github.com/MagePro310/systemManagePic/internal/folders"
	"github.com/MagePro310/systemManagePic/internal/pictures"
	"github.com/MagePro310/systemManagePic/internal/uploads"
	"golang.org/x/time/rate"
)

func newTestServer(t *testing.T) (http.Handler, string) {
	t.Helper()
	root := t.TempDir()

	folderService := folders.NewService(&folders.Config{Root: root})
	pictureService := pictures.NewService(&pictures.Config{Root: root})
	uploadService, err := uploads.NewService(&uploads.Config{Root: root, MaxFileSize: 10 << 20})
	if err != nil {
		t.Fatalf("newTestServer: %v", err)
	}

	router := api.NewRouter(folderService, pictureService, uploadService, &api.Config{
		StaticPath:      root,
		MaxFileSize:     10 << 20,
		UploadRateLimit: rate.Inf,
		UploadRateBurst: 1,
	})

	mux := http.NewServeMux()
	router.SetupRoutes(mux)
	return mux, root
}

func hit(srv http.Handler, method, target string, body io.Reader) *http.Response {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w.Result()
}

func hitJSON(t *testing.T, srv http.Handler, method, target string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("failed to encode request body: %v", err)
	}
	return hit(srv, method, target, &buf)
}

// hitUpload posts a multipart form to target with the given files and an
// optional folder field.
func hitUpload(t *testing.T, srv http.Handler, target, fieldName, folder string, files map[string]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := mw.CreateFormFile(fieldName, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if folder != "" {
		if err := mw.WriteField("folder", folder); err != nil {
			t.Fatalf("write folder field: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w.Result()
}

func decodeResponse[T any](t *testing.T, res *http.Response) (v T) {
	t.Helper()
	if err := json.NewDecoder(res.Body).Decode(&v); err != nil {
		t.Errorf("failed to decode response: %v", err)
	}
	return
}

func expectStatusCode(t *testing.T, res *http.Response, expected int) {
	t.Helper()
	if res.StatusCode != expected {
		t.Errorf("status code should be %d (is %d)", expected, res.StatusCode)
	}
}

type uploadResponse struct {
	Message    string   `json:"message"`
	Folder     string   `json:"folder"`
	Files      []string `json:"files"`
	TotalFiles int      `json:"total_files"`
	Errors     []string `json:"errors"`
}

type folderResponse struct {
	Name     string `json:"name"`
	Pictures []struct {
		Filename string `json:"filename"`
		Size     int64  `json:"size"`
		Path     string `json:"path"`
		Folder   string `json:"folder"`
	} `json:"pictures"`
	Count int `json:"count"`
}

func TestIndex(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	res := hit(srv, http.MethodGet, "/", nil)
	expectStatusCode(t, res, http.StatusOK)
	body := decodeResponse[struct {
		Message string `json:"message"`
	}](t, res)
	if body.Message != "Picture Management API" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestUploadThenListFolder(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	res := hitUpload(t, srv, "/pictures", "files", "holiday", map[string]string{"beach.png": "sand"})
	expectStatusCode(t, res, http.StatusOK)
	up := decodeResponse[uploadResponse](t, res)
	if up.Folder != "holiday" || up.TotalFiles != 1 {
		t.Errorf("unexpected upload response: %+v", up)
	}

	res = hit(srv, http.MethodGet, "/folders/holiday", nil)
	expectStatusCode(t, res, http.StatusOK)
	folder := decodeResponse[folderResponse](t, res)
	if folder.Count != 1 || len(folder.Pictures) != 1 {
		t.Fatalf("folder count = %d, want 1", folder.Count)
	}
	if folder.Pictures[0].Filename != "beach.png" {
		t.Errorf("filename = %q, want beach.png", folder.Pictures[0].Filename)
	}
}

func TestUploadMixedBatchReportsPerFileErrors(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	res := hitUpload(t, srv, "/pictures", "files", "test", map[string]string{
		"a.png": "good",
		"b.txt": "bad",
	})
	expectStatusCode(t, res, http.StatusOK)
	up := decodeResponse[uploadResponse](t, res)
	if len(up.Files) != 1 || up.Files[0] != "a.png" {
		t.Errorf("files = %v, want [a.png]", up.Files)
	}
	if len(up.Errors) != 1 || !strings.Contains(up.Errors[0], "b.txt") {
		t.Errorf("errors = %v, want one error naming b.txt", up.Errors)
	}
}

func TestUploadWithoutFilesIsBadRequest(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	res := hitUpload(t, srv, "/pictures", "files", "", map[string]string{})
	expectStatusCode(t, res, http.StatusBadRequest)
}

func TestGetMissingFolderReturns404(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	res := hit(srv, http.MethodGet, "/folders/missing", nil)
	expectStatusCode(t, res, http.StatusNotFound)
	body := decodeResponse[struct {
		Error string `json:"error"`
	}](t, res)
	if body.Error != "folder not found" {
		t.Errorf("error = %q, want %q", body.Error, "folder not found")
	}
}

func TestListFoldersIsIdempotent(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)
	hitUpload(t, srv, "/pictures", "files", "album", map[string]string{"a.png": "x"})

	first, _ := io.ReadAll(hit(srv, http.MethodGet, "/folders", nil).Body)
	second, _ := io.ReadAll(hit(srv, http.MethodGet, "/folders", nil).Body)
	if !bytes.Equal(first, second) {
		t.Errorf("listing changed without mutation:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestRenameConflictReturns409(t *testing.T) {
	t.Parallel()
	srv, root := newTestServer(t)
	mkDir(t, root, "photos")
	mkDir(t, root, "vacation")

	res := hitJSON(t, srv, http.MethodPut, "/folders/photos/rename", map[string]string{"new_name": "vacation"})
	expectStatusCode(t, res, http.StatusConflict)

	if _, err := os.Stat(filepath.Join(root, "photos")); err != nil {
		t.Errorf("source folder gone after failed rename: %v", err)
	}
}

func TestRenameWithoutNewNameIsBadRequest(t *testing.T) {
	t.Parallel()
	srv, root := newTestServer(t)
	mkDir(t, root, "photos")

	res := hitJSON(t, srv, http.MethodPut, "/folders/photos/rename", map[string]string{})
	expectStatusCode(t, res, http.StatusBadRequest)
}

func TestDuplicateWithEmptyBody(t *testing.T) {
	t.Parallel()
	srv, root := newTestServer(t)
	mkDir(t, root, "trip")

	res := hit(srv, http.MethodPost, "/folders/trip/duplicate", nil)
	expectStatusCode(t, res, http.StatusOK)
	body := decodeResponse[struct {
		NewName string `json:"new_name"`
	}](t, res)
	if body.NewName != "trip_copy" {
		t.Errorf("new_name = %q, want trip_copy", body.NewName)
	}
}

func TestCreateFolder(t *testing.T) {
	t.Parallel()
	srv, root := newTestServer(t)

	res := hitJSON(t, srv, http.MethodPost, "/folders", map[string]string{"name": "New Album!!"})
	expectStatusCode(t, res, http.StatusCreated)
	body := decodeResponse[struct {
		Name string `json:"name"`
	}](t, res)
	if body.Name != "New Album" {
		t.Errorf("name = %q, want %q", body.Name, "New Album")
	}
	if _, err := os.Stat(filepath.Join(root, "New Album")); err != nil {
		t.Errorf("folder not on disk: %v", err)
	}
}

func TestDeleteFolder(t *testing.T) {
	t.Parallel()
	srv, root := newTestServer(t)
	mkDir(t, root, "doomed")

	res := hit(srv, http.MethodDelete, "/folders/doomed", nil)
	expectStatusCode(t, res, http.StatusOK)
	if _, err := os.Stat(filepath.Join(root, "doomed")); !os.IsNotExist(err) {
		t.Errorf("folder still on disk: %v", err)
	}

	res = hit(srv, http.MethodDelete, "/folders/doomed", nil)
	expectStatusCode(t, res, http.StatusNotFound)
}

func TestDownloadPicture(t *testing.T) {
	t.Parallel()
	srv, root := newTestServer(t)
	seedPicture(t, root, "album", "a.png", "pixels")

	res := hit(srv, http.MethodGet, "/pictures/album/a.png", nil)
	expectStatusCode(t, res, http.StatusOK)
	if cd := res.Header.Get("Content-Disposition"); cd != "attachment; filename=a.png" {
		t.Errorf("Content-Disposition = %q", cd)
	}
	body, _ := io.ReadAll(res.Body)
	if string(body) != "pixels" {
		t.Errorf("body = %q, want %q", body, "pixels")
	}
}

func TestPictureInfo(t *testing.T) {
	t.Parallel()
	srv, root := newTestServer(t)
	seedPicture(t, root, "album", "a.png", "12345")

	res := hit(srv, http.MethodGet, "/pictures/album/a.png/info", nil)
	expectStatusCode(t, res, http.StatusOK)
	body := decodeResponse[struct {
		Filename string `json:"filename"`
		Size     int64  `json:"size"`
		MimeType string `json:"mime_type"`
	}](t, res)
	if body.Filename != "a.png" || body.Size != 5 || body.MimeType != "image/png" {
		t.Errorf("unexpected info: %+v", body)
	}

	res = hit(srv, http.MethodGet, "/pictures/album/missing.png/info", nil)
	expectStatusCode(t, res, http.StatusNotFound)
}

func TestReplacePictureRoundTrip(t *testing.T) {
	t.Parallel()
	srv, root := newTestServer(t)
	seedPicture(t, root, "album", "a.png", "old")

	res := hitUpload(t, srv, "/pictures/album/a.png", "file", "", map[string]string{"new.png": "new bytes"})
	expectStatusCode(t, res, http.StatusOK)

	res = hit(srv, http.MethodGet, "/pictures/album/a.png", nil)
	body, _ := io.ReadAll(res.Body)
	if string(body) != "new bytes" {
		t.Errorf("fetched body = %q, want %q", body, "new bytes")
	}
}

func TestDeletePicture(t *testing.T) {
	t.Parallel()
	srv, root := newTestServer(t)
	seedPicture(t, root, "album", "a.png", "x")

	res := hit(srv, http.MethodDelete, "/pictures/album/a.png", nil)
	expectStatusCode(t, res, http.StatusOK)

	res = hit(srv, http.MethodDelete, "/pictures/album/a.png", nil)
	expectStatusCode(t, res, http.StatusNotFound)
}

func mkDir(t *testing.T, root, name string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, name), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", name, err)
	}
}

func seedPicture(t *testing.T, root, folder, filename, content string) {
	t.Helper()
	mkDir(t, root, folder)
	if err := os.WriteFile(filepath.Join(root, folder, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}
