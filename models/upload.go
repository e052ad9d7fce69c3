package models

// UploadResponse carries the public URL of a stored object
type UploadResponse struct {
	URL string `json:"url"`
}
