package domain

import "time"

// Download is one saved media file recorded in the download history.
type Download struct {
	ID        int       `json:"id"`
	URL       string    `json:"url"`
	Category  string    `json:"category"`
	FilePath  string    `json:"filePath"`
	CreatedAt time.Time `json:"createdAt"`
}
