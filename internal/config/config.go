package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type ServerConfig struct {
	Host string
	Port string
}

type UploadConfig struct {
	Path        string
	MaxFileSize int64
	RateLimit   float64
	RateBurst   int
}

type Config struct {
	StaticPath     string
	AllowedOrigins []string
	Server         *ServerConfig
	Upload         *UploadConfig
}

func LoadConfig() (*Config, error) {
	allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsStr == "" {
		allowedOriginsStr = "*"
	}
	allowedOrigins := strings.Split(allowedOriginsStr, ",")

	host := os.Getenv("HOST")
	if host == "" {
		host = "localhost"
	}

	maxFileSizeStr := os.Getenv("MAX_FILE_SIZE_BYTES")
	if maxFileSizeStr == "" {
		maxFileSizeStr = "10485760" // 10 MB
	}
	maxFileSize, err := strconv.ParseInt(maxFileSizeStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse MAX_FILE_SIZE_BYTES: %v", err)
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8000"
	}

	staticPath := os.Getenv("STATIC_PATH")
	if staticPath == "" {
		staticPath = "static"
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "uploads"
	}

	uploadRateLimitStr := os.Getenv("UPLOAD_RATE_LIMIT")
	if uploadRateLimitStr == "" {
		uploadRateLimitStr = "5"
	}
	uploadRateLimit, err := strconv.ParseFloat(uploadRateLimitStr, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse UPLOAD_RATE_LIMIT: %v", err)
	}

	uploadRateBurstStr := os.Getenv("UPLOAD_RATE_BURST")
	if uploadRateBurstStr == "" {
		uploadRateBurstStr = "10"
	}
	uploadRateBurst, err := strconv.Atoi(uploadRateBurstStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse UPLOAD_RATE_BURST: %v", err)
	}

	server := &ServerConfig{
		Host: host,
		Port: serverPort,
	}
	upload := &UploadConfig{
		Path:        uploadPath,
		MaxFileSize: maxFileSize,
		RateLimit:   uploadRateLimit,
		RateBurst:   uploadRateBurst,
	}

	cfg := &Config{
		StaticPath:     staticPath,
		AllowedOrigins: allowedOrigins,
		Server:         server,
		Upload:         upload,
	}
	return cfg, nil
}
