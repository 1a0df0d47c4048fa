package routers

import (
	"fmt"
	"omerald-service/internal/app/config"
	"omerald-service/internal/app/delivery/http/middlewares"
	"omerald-service/internal/app/services/core/analytics"
	"omerald-service/internal/app/services/core/diagnosticcenters"
	"omerald-service/internal/app/services/core/files"
	"omerald-service/internal/app/services/core/reports"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	reportController *reports.ReportController,
	dcController *diagnosticcenters.DiagnosticCenterController,
	fileController *files.FileController,
	analyticsController *analytics.AnalyticsController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, middlewares, reportController)
			})

			r.Route("/diagnostic-centers", func(r chi.Router) {
				attachDiagnosticCenterRoutes(r, middlewares, dcController)
			})

			r.Route("/files", func(r chi.Router) {
				attachFileRoutes(r, middlewares, fileController)
			})

			r.Route("/analytics", func(r chi.Router) {
				attachAnalyticsRoutes(r, middlewares, analyticsController)
			})
		})
	})
}
