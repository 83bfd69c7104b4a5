package model

import "time"

// LogSheet is an archived rendering of a trip's driver log sheet.
// The PDF itself lives in object storage under StoragePath.
type LogSheet struct {
	ID          string    `json:"id"`
	TripID      int64     `json:"trip_id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
	DownloadURL string    `json:"download_url,omitempty"`
}
