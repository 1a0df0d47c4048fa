package files

import (
	"context"
	"mime/multipart"
	"omerald-service/internal/app/config"
	"omerald-service/internal/app/contracts"
	"omerald-service/internal/pkg/dto/requests"
	"omerald-service/internal/pkg/dto/responses"
	"time"

	"go.uber.org/zap"
)

type FileUsecase interface {
	UploadFile(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (*responses.UploadFileResponse, error)
	GetSignedURL(ctx context.Context, request *requests.GetSignedURLRequest) (*responses.SignedURLResponse, error)
}

type fileUsecase struct {
	Storage       contracts.Storage
	BucketName    string
	DefaultExpiry time.Duration
	Log           *zap.Logger
}

func NewFileUsecase(
	storage contracts.Storage,
	driverConfig *config.DriverConfig,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) FileUsecase {
	return &fileUsecase{
		Storage:       storage,
		BucketName:    driverConfig.Minio.BucketName,
		DefaultExpiry: time.Duration(internalConfig.App.SignedURLExpiryTimeInHours) * time.Hour,
		Log:           log,
	}
}

// UploadFile stores an attachment in the report bucket and returns the
// object key along with a first signed URL for immediate display.
func (uc *fileUsecase) UploadFile(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (*responses.UploadFileResponse, error) {
	fileKey, err := uc.Storage.UploadFile(ctx, file, fileHeader, uc.BucketName)
	if err != nil {
		return nil, err
	}

	signedURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.BucketName, fileKey, uc.DefaultExpiry)
	if err != nil {
		return nil, err
	}

	return &responses.UploadFileResponse{
		FileKey: fileKey,
		URL:     signedURL,
	}, nil
}

// GetSignedURL presigns a single object key on demand, for clients that hold
// a key directly instead of going through a report view.
func (uc *fileUsecase) GetSignedURL(ctx context.Context, request *requests.GetSignedURLRequest) (*responses.SignedURLResponse, error) {
	expiry := uc.DefaultExpiry
	if request.ExpiresIn > 0 {
		expiry = time.Duration(request.ExpiresIn) * time.Second
	}

	signedURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.BucketName, request.FileKey, expiry)
	if err != nil {
		return nil, err
	}
	return &responses.SignedURLResponse{URL: signedURL}, nil
}
