package routers

import (
	"omerald-service/internal/app/delivery/http/middlewares"
	"omerald-service/internal/app/services/core/analytics"

	"github.com/go-chi/chi/v5"
)

func attachAnalyticsRoutes(router chi.Router, middlewares *middlewares.Middlewares, analyticsController *analytics.AnalyticsController) {
	router.With(middlewares.Session).Get("/bmi/{profileID}", analyticsController.GetBMISeries)
	router.With(middlewares.Session).Get("/reports-per-month", analyticsController.GetReportsPerMonth)
	router.With(middlewares.Session).Get("/conditions", analyticsController.GetConditionFrequency)
}
