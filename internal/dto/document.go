package dto

// UploadedFile is one user-selected file, read fully into memory.
type UploadedFile struct {
	Name        string
	ContentType string // declared media type; sniffed from content when empty
	Data        []byte
}

// UploadDocumentsResponse reports the result of a document upload.
type UploadDocumentsResponse struct {
	Added     int      `json:"added"`
	Documents []string `json:"documents"`
}

// ListDocumentsResponse wraps an account's document list.
type ListDocumentsResponse struct {
	Documents []string `json:"documents"`
}
