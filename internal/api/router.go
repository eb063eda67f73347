package api

import (
	h "github.com/MagePro310/systemManagePic/internal/api/handlers"
	"github.com/MagePro310/systemManagePic/internal/folders"
	"github.com/MagePro310/systemManagePic/internal/pictures"
	"github.com/MagePro310/systemManagePic/internal/uploads"
	"golang.org/x/time/rate"
	"net/http"
)

type Config struct {
	StaticPath      string
	MaxFileSize     int64
	UploadRateLimit rate.Limit
	UploadRateBurst int
}

type handlers struct {
	home    *h.HomeHandler
	folders *h.FolderHandler
	picture *h.PictureHandler
	upload  *h.UploadHandler
}

type Router struct {
	config   *Config
	handlers *handlers
}

func NewRouter(
	folderService *folders.Service,
	pictureService *pictures.Service,
	uploadService *uploads.Service,
	config *Config,
) *Router {
	return &Router{
		config: config,
		handlers: &handlers{
			home:    h.NewHomeHandler(),
			folders: h.NewFolderHandler(folderService),
			picture: h.NewPictureHandler(pictureService, config.MaxFileSize),
			upload:  h.NewUploadHandler(uploadService, config.MaxFileSize),
		},
	}
}

func (r *Router) SetupRoutes(mux *http.ServeMux) {
	uploadLimiter := rate.NewLimiter(r.config.UploadRateLimit, r.config.UploadRateBurst)

	mux.HandleFunc("GET /{$}", r.handlers.home.HandleHome)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(r.config.StaticPath))))

	// Upload routes
	mux.Handle("POST /pictures", RateLimitMiddleware(uploadLimiter)(http.HandlerFunc(r.handlers.upload.HandleUpload)))

	// Folder routes
	mux.HandleFunc("GET /folders", r.handlers.folders.HandleList)
	mux.HandleFunc("POST /folders", r.handlers.folders.HandleCreate)
	mux.HandleFunc("GET /folders/{folder}", r.handlers.folders.HandleContents)
	mux.HandleFunc("GET /folders/{folder}/info", r.handlers.folders.HandleInfo)
	mux.HandleFunc("PUT /folders/{folder}/rename", r.handlers.folders.HandleRename)
	mux.HandleFunc("POST /folders/{folder}/duplicate", r.handlers.folders.HandleDuplicate)
	mux.HandleFunc("DELETE /folders/{folder}", r.handlers.folders.HandleDelete)

	// Picture routes
	mux.HandleFunc("GET /pictures/{folder}/{filename}", r.handlers.picture.HandleDownload)
	mux.HandleFunc("GET /pictures/{folder}/{filename}/info", r.handlers.picture.HandleInfo)
	mux.HandleFunc("PUT /pictures/{folder}/{filename}", r.handlers.picture.HandleUpdate)
	mux.HandleFunc("DELETE /pictures/{folder}/{filename}", r.handlers.picture.HandleDelete)
}
