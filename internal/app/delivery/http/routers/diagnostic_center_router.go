package routers

import (
	"omerald-service/internal/app/delivery/http/middlewares"
	"omerald-service/internal/app/services/core/diagnosticcenters"

	"github.com/go-chi/chi/v5"
)

func attachDiagnosticCenterRoutes(router chi.Router, middlewares *middlewares.Middlewares, dcController *diagnosticcenters.DiagnosticCenterController) {
	router.With(middlewares.Session).Post("/details", dcController.GetDCDetails)
	router.With(middlewares.Session).Post("/branch-details", dcController.GetBranchDetails)
	router.With(middlewares.Session).Post("/pathologist-details", dcController.GetPathologistDetails)
}
