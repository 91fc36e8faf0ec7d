package models

import "time"

// Attachment describes one object stored in the blob bucket. It is embedded
// as JSON on trips (attachments), drivers and trucks (photo, documents).
type Attachment struct {
	FileName     string    `json:"file_name"`
	OriginalName string    `json:"original_name"`
	URL          string    `json:"url"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
