package diagnosticcenters

import (
	"context"
	"net/http"
	"omerald-service/internal/app/contracts"
	"omerald-service/internal/pkg/constvars"
	"omerald-service/internal/pkg/dto/requests"
	"omerald-service/internal/pkg/exceptions"
	"omerald-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DiagnosticCenterController struct {
	Log       *zap.Logger
	DCUsecase contracts.DiagnosticCenterUsecase
}

func NewDiagnosticCenterController(logger *zap.Logger, dcUsecase contracts.DiagnosticCenterUsecase) *DiagnosticCenterController {
	return &DiagnosticCenterController{
		Log:       logger,
		DCUsecase: dcUsecase,
	}
}

func (ctrl *DiagnosticCenterController) GetDCDetails(w http.ResponseWriter, r *http.Request) {
	request := new(requests.GetDCDetailsRequest)
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

	response, err := ctrl.DCUsecase.GetDCDetails(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DCDetailsGetSuccess, response)
}

func (ctrl *DiagnosticCenterController) GetBranchDetails(w http.ResponseWriter, r *http.Request) {
	request := new(requests.GetBranchDetailsRequest)
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

	response, err := ctrl.DCUsecase.GetBranchDetails(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BranchDetailsGetSuccess, response)
}

func (ctrl *DiagnosticCenterController) GetPathologistDetails(w http.ResponseWriter, r *http.Request) {
	request := new(requests.GetPathologistDetailsRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DCUsecase.GetPathologistDetails(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PathologistDetailsGetSuccess, response)
}
