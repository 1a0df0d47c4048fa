package responses

type SignedURLResponse struct {
	URL string `json:"url"`
}

type UploadFileResponse struct {
	FileKey string `json:"fileKey"`
	URL     string `json:"url"`
}
