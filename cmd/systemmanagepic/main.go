package main

import (
	"github.com/MagePro310/systemManagePic/internal/api"
	"github.com/MagePro310/systemManagePic/internal/config"
	"github.com/MagePro310/systemManagePic/internal/folders"
	"github.com/MagePro310/systemManagePic/internal/pictures"
	"github.com/MagePro310/systemManagePic/internal/uploads"
	"golang.org/x/time/rate"
	"log"
	"net"
	"net/http"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	folderService := folders.NewService(&folders.Config{
		Root: cfg.Upload.Path,
	})
	pictureService := pictures.NewService(&pictures.Config{
		Root: cfg.Upload.Path,
	})
	uploadService, err := uploads.NewService(&uploads.Config{
		Root:        cfg.Upload.Path,
		MaxFileSize: cfg.Upload.MaxFileSize,
	})
	if err != nil {
		log.Fatalf("Failed to create upload service: %v", err)
	}

	apiCfg := &api.Config{
		StaticPath:      cfg.StaticPath,
		MaxFileSize:     cfg.Upload.MaxFileSize,
		UploadRateLimit: rate.Limit(cfg.Upload.RateLimit),
		UploadRateBurst: cfg.Upload.RateBurst,
	}

	router := api.NewRouter(folderService, pictureService, uploadService, apiCfg)

	mux := http.NewServeMux()
	router.SetupRoutes(mux)

	var handler http.Handler = mux
	handler = api.CorsMiddleware(cfg.AllowedOrigins)(handler)
	handler = api.LoggingMiddleWare(handler)
	handler = api.RequestIdMiddleware(handler)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
