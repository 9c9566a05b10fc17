package model

// VideoUploadRequest is the JSON alternative to a multipart video upload.
type VideoUploadRequest struct {
	VideoData string `json:"videoData" binding:"required"`
	Filename  string `json:"filename" binding:"max=255"`
}

// VideoUploadResult describes a stored video.
type VideoUploadResult struct {
	Success     bool   `json:"success"`
	URL         string `json:"url"`
	FileKey     string `json:"fileKey"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}
