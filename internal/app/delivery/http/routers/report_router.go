package routers

import (
	"omerald-service/internal/app/delivery/http/middlewares"
	"omerald-service/internal/app/services/core/reports"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	router.With(middlewares.Session).Post("/", reportController.CreateReport)
	router.With(middlewares.Session).Get("/", reportController.ListReports)
	router.With(middlewares.Session).Get("/{reportID}", reportController.GetReport)
	router.With(middlewares.Session).Put("/{reportID}", reportController.UpdateReport)
	router.With(middlewares.Session).Delete("/{reportID}", reportController.DeleteReport)
	router.With(middlewares.Session).Get("/{reportID}/view", reportController.GetReportView)
	router.With(middlewares.Session).Post("/{reportID}/accept", reportController.AcceptSharedReport)
	router.With(middlewares.Session).Post("/{reportID}/reject", reportController.RejectSharedReport)
}
