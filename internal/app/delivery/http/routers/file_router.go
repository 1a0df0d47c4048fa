package routers

import (
	"omerald-service/internal/app/delivery/http/middlewares"
	"omerald-service/internal/app/services/core/files"

	"github.com/go-chi/chi/v5"
)

func attachFileRoutes(router chi.Router, middlewares *middlewares.Middlewares, fileController *files.FileController) {
	router.With(middlewares.Session).Post("/", fileController.UploadFile)
	router.With(middlewares.Session).Post("/signed-url", fileController.GetSignedURL)
}
