package pictures

import "time"

type Config struct {
	Root string
}

type Service struct {
	config *Config
}

type Info struct {
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	Path       string    `json:"path"`
	Folder     string    `json:"folder"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	MimeType   string    `json:"mime_type,omitempty"`
}

type UpdateResult struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Folder   string `json:"folder"`
}

type DeleteResult struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Folder   string `json:"folder"`
}
