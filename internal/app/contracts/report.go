package contracts

import (
	"context"
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/dto/requests"
	"omerald-service/internal/pkg/dto/responses"
)

type ReportRepository interface {
	CreateReport(ctx context.Context, report models.Report) (string, error)
	FindByID(ctx context.Context, reportID string) (models.Report, error)
	FindByOwner(ctx context.Context, userID string, page, pageSize int) ([]models.Report, int, error)
	FindAllByOwner(ctx context.Context, userID string) ([]models.Report, error)
	UpdateReport(ctx context.Context, reportID string, report models.Report) error
	UpdateStatus(ctx context.Context, reportID, status string) error
	DeleteReport(ctx context.Context, reportID string) error
}

type ReportUsecase interface {
	CreateReport(ctx context.Context, session *models.Session, request *requests.CreateReportRequest) (*responses.CreateReportResponse, error)
	GetReport(ctx context.Context, reportID string) (models.Report, error)
	ListReports(ctx context.Context, session *models.Session, page, pageSize int) ([]models.Report, int, error)
	UpdateReport(ctx context.Context, reportID string, request *requests.UpdateReportRequest) error
	DeleteReport(ctx context.Context, reportID string) error
	BuildViewPlan(ctx context.Context, session *models.Session, reportID string) (*responses.ReportViewPlan, error)
	AcceptSharedReport(ctx context.Context, session *models.Session, reportID string) (*responses.ShareDecisionResponse, error)
	RejectSharedReport(ctx context.Context, session *models.Session, reportID string) (*responses.ShareDecisionResponse, error)
}
