package types

// StartUploadRequest is the typed body of POST /start-upload.
type StartUploadRequest struct {
	UploadID    string `json:"upload_id"`
	Filename    string `json:"filename"`
	TotalSize   int64  `json:"total_size"`
	TotalChunks int    `json:"total_chunks"`
}

type StartUploadResponse struct {
	Status   string `json:"status"`
	UploadID string `json:"upload_id"`
	Filename string `json:"filename"`
	// ChunkSize is the nominal chunk size hint returned to clients.
	ChunkSize int64 `json:"chunk_size"`
}

type ChunkReceivedResponse struct {
	Status     string `json:"status"`
	ChunkIndex int    `json:"chunk_index"`
	ChunkSize  int64  `json:"chunk_size"`
}

type CompleteUploadResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
	FileSize int64  `json:"file_size"`
	Location string `json:"location"`
}

// UploadedFile is one finalized file in the GET /uploads listing.
type UploadedFile struct {
	Filename      string `json:"filename"`
	Size          int64  `json:"size"`
	SizeFormatted string `json:"size_formatted"`
	Modified      string `json:"modified"`
}

type UploadsResponse struct {
	Uploads    []UploadedFile `json:"uploads"`
	TotalFiles int            `json:"total_files"`
}
