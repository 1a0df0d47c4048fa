package analytics

import (
	"context"
	"net/http"
	"omerald-service/internal/app/contracts"
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/constvars"
	"omerald-service/internal/pkg/exceptions"
	"omerald-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AnalyticsController struct {
	Log              *zap.Logger
	AnalyticsUsecase contracts.AnalyticsUsecase
}

func NewAnalyticsController(logger *zap.Logger, analyticsUsecase contracts.AnalyticsUsecase) *AnalyticsController {
	return &AnalyticsController{
		Log:              logger,
		AnalyticsUsecase: analyticsUsecase,
	}
}

func (ctrl *AnalyticsController) GetBMISeries(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, constvars.URLParamProfileID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AnalyticsUsecase.BuildBMISeries(ctx, profileID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyticsBMISuccess, response)
}

func (ctrl *AnalyticsController) GetReportsPerMonth(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.ContextSessionData).(*models.Session)
	if !ok || session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AnalyticsUsecase.ReportsPerMonth(ctx, session.UserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyticsReportsPerMonthSuccess, response)
}

func (ctrl *AnalyticsController) GetConditionFrequency(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.ContextSessionData).(*models.Session)
	if !ok || session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AnalyticsUsecase.ConditionFrequency(ctx, session.UserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyticsConditionsSuccess, response)
}
