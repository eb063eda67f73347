package uploads

type Config struct {
	Root        string
	MaxFileSize int64
}

type Service struct {
	config *Config
}

type Result struct {
	Message    string   `json:"message"`
	Folder     string   `json:"folder"`
	Files      []string `json:"files"`
	TotalFiles int      `json:"total_files"`
	Errors     []string `json:"errors,omitempty"`
}
