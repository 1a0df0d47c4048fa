package requests

type GetSignedURLRequest struct {
	FileKey   string `json:"fileKey" validate:"required"`
	ExpiresIn int    `json:"expiresIn" validate:"gte=0,lte=86400"`
}
