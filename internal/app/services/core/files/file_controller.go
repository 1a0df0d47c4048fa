package files

import (
	"context"
	"net/http"
	"omerald-service/internal/pkg/constvars"
	"omerald-service/internal/pkg/dto/requests"
	"omerald-service/internal/pkg/exceptions"
	"omerald-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// maxUploadMemory bounds how much of an upload is buffered in memory before
// spilling to disk.
const maxUploadMemory = 10 << 20

type FileController struct {
	Log         *zap.Logger
	FileUsecase FileUsecase
}

func NewFileController(logger *zap.Logger, fileUsecase FileUsecase) *FileController {
	return &FileController{
		Log:         logger,
		FileUsecase: fileUsecase,
	}
}

func (ctrl *FileController) UploadFile(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.FileUsecase.UploadFile(ctx, file, fileHeader)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.FileUploadedSuccess, response)
}

func (ctrl *FileController) GetSignedURL(w http.ResponseWriter, r *http.Request) {
	request := new(requests.GetSignedURLRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FileUsecase.GetSignedURL(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SignedURLGetSuccess, response)
}
