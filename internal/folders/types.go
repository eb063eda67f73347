package folders

import "time"

type Config struct {
	Root string
}

type Service struct {
	config *Config
}

type Picture struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Path     string `json:"path"`
	Folder   string `json:"folder"`
}

type Folder struct {
	Name     string    `json:"name"`
	Pictures []Picture `json:"pictures"`
	Count    int       `json:"count"`
}

type FolderInfo struct {
	Folder
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	TotalSize  int64     `json:"total_size"`
}

type RenameResult struct {
	Message string `json:"message"`
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

type DuplicateResult struct {
	Message      string `json:"message"`
	OriginalName string `json:"original_name"`
	NewName      string `json:"new_name"`
}

type DeleteResult struct {
	Message    string `json:"message"`
	FolderName string `json:"folder_name"`
}

type CreateResult struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}
