package reports

import (
	"context"
	"errors"
	"omerald-service/internal/app/config"
	"omerald-service/internal/app/contracts"
	"omerald-service/internal/app/models"
	"omerald-service/internal/app/services/core/labvalues"
	sharedstorage "omerald-service/internal/app/services/shared/storage"
	"omerald-service/internal/pkg/constvars"
	"omerald-service/internal/pkg/dto/requests"
	"omerald-service/internal/pkg/dto/responses"
	"omerald-service/internal/pkg/exceptions"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type reportUsecase struct {
	ReportRepository contracts.ReportRepository
	Storage          contracts.Storage
	EventPublisher   contracts.EventPublisher
	SignerLimiter    *rate.Limiter
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewReportUsecase(
	reportRepository contracts.ReportRepository,
	storage contracts.Storage,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.ReportUsecase {
	signerRate := internalConfig.App.SignerRequestsPerSecond
	if signerRate <= 0 {
		signerRate = 1
	}
	return &reportUsecase{
		ReportRepository: reportRepository,
		Storage:          storage,
		EventPublisher:   eventPublisher,
		SignerLimiter:    rate.NewLimiter(rate.Limit(signerRate), signerRate),
		InternalConfig:   internalConfig,
		Log:              log,
	}
}

func (uc *reportUsecase) CreateReport(ctx context.Context, session *models.Session, request *requests.CreateReportRequest) (*responses.CreateReportResponse, error) {
	report := models.Report(request.Report)
	if report == nil {
		report = models.Report{}
	}
	report = report.Clone()

	if report.OwnerID() == "" && session != nil {
		report["userId"] = session.UserID
	}
	if report.Str("status") == "" && (report.Has("shareDetail") || report.Has("sharedReportDetails")) {
		report["status"] = constvars.ReportStatusPending
	}
	report["createdAt"] = time.Now().UTC().Format(time.RFC3339)

	reportID, err := uc.ReportRepository.CreateReport(ctx, report)
	if err != nil {
		return nil, err
	}

	if report.Bool("isOmeraldSharedReport") || report.Bool("isSharedReport") || report.Has("shareDetail") {
		uc.publishEvent(ctx, constvars.ReportEventShared, reportID, report.OwnerID())
	}

	return &responses.CreateReportResponse{ReportID: reportID}, nil
}

func (uc *reportUsecase) GetReport(ctx context.Context, reportID string) (models.Report, error) {
	report, err := uc.ReportRepository.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrReportNotFound(nil)
	}
	return NormalizeShape(report), nil
}

func (uc *reportUsecase) ListReports(ctx context.Context, session *models.Session, page, pageSize int) ([]models.Report, int, error) {
	reports, total, err := uc.ReportRepository.FindByOwner(ctx, session.UserID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	normalized := make([]models.Report, len(reports))
	for i, report := range reports {
		normalized[i] = NormalizeShape(report)
	}
	return normalized, total, nil
}

func (uc *reportUsecase) UpdateReport(ctx context.Context, reportID string, request *requests.UpdateReportRequest) error {
	existing, err := uc.ReportRepository.FindByID(ctx, reportID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrReportNotFound(nil)
	}

	report := models.Report(request.Report).Clone()
	report["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
	return uc.ReportRepository.UpdateReport(ctx, reportID, report)
}

func (uc *reportUsecase) DeleteReport(ctx context.Context, reportID string) error {
	existing, err := uc.ReportRepository.FindByID(ctx, reportID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrReportNotFound(nil)
	}
	return uc.ReportRepository.DeleteReport(ctx, reportID)
}

// BuildViewPlan runs the full render pipeline for one report: shape
// normalization, origin and display classification, file resolution with
// signed URL fan-out, and lab parameter evaluation. The signed URL cache
// lives for exactly this call, mirroring one viewing session.
func (uc *reportUsecase) BuildViewPlan(ctx context.Context, session *models.Session, reportID string) (*responses.ReportViewPlan, error) {
	report, err := uc.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	viewerPhone := ""
	if session != nil {
		viewerPhone = session.PhoneNumber
	}
	classification := Classify(report, viewerPhone, uc.InternalConfig.App.EmbeddedViewerEnabled)

	cache := sharedstorage.NewSignedURLCache(
		uc.Storage,
		uc.SignerLimiter,
		uc.Log,
		time.Duration(uc.InternalConfig.App.SignedURLExpiryTimeInHours)*time.Hour,
	)
	resolved := cache.ResolveAll(ctx, classification.Files)

	fileTypeHint := report.Str("fileType")
	files := make([]responses.ReportFile, len(classification.Files))
	for i, rawURL := range classification.Files {
		file := responses.ReportFile{
			URL:      rawURL,
			FileType: ClassifyFileType(rawURL, fileTypeHint),
		}
		if signedURL := resolved[rawURL]; signedURL != "" {
			file.SignedURL = &signedURL
		}
		files[i] = file
	}

	parameters := labvalues.ParseParameters(report.Parameters())
	parameterViews := make([]responses.ParameterView, len(parameters))
	for i, parameter := range parameters {
		evaluation := labvalues.Evaluate(parameter)
		parameterViews[i] = responses.ParameterView{
			Name:         parameter.Name,
			Value:        parameter.Value,
			Units:        parameter.Units,
			Status:       string(evaluation.Status),
			DisplayRange: evaluation.DisplayRange,
			Color:        labvalues.ColorFor(evaluation.Status),
		}
	}

	return &responses.ReportViewPlan{
		ReportID:    reportID,
		Origin:      string(classification.Origin),
		DisplayMode: string(classification.Display),
		ShareStatus: classification.ShareStatus,
		Files:       files,
		Parameters:  parameterViews,
	}, nil
}

// AcceptSharedReport flips the share to accepted and inserts a derived
// record owned by the accepting user, carrying originalReportId back to the
// source record.
func (uc *reportUsecase) AcceptSharedReport(ctx context.Context, session *models.Session, reportID string) (*responses.ShareDecisionResponse, error) {
	report, err := uc.ReportRepository.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrReportNotFound(nil)
	}
	if report.Str("status") != constvars.ReportStatusPending {
		return nil, exceptions.ErrReportNotPending(errors.New("status is " + report.Str("status")))
	}

	if err := uc.ReportRepository.UpdateStatus(ctx, reportID, constvars.ReportStatusAccepted); err != nil {
		return nil, err
	}

	derived := report.Clone()
	delete(derived, "id")
	derived["originalReportId"] = reportID
	derived["status"] = constvars.ReportStatusAccepted
	if session != nil {
		derived["userId"] = session.UserID
	}
	derived["createdAt"] = time.Now().UTC().Format(time.RFC3339)

	derivedID, err := uc.ReportRepository.CreateReport(ctx, derived)
	if err != nil {
		return nil, err
	}

	userID := ""
	if session != nil {
		userID = session.UserID
	}
	uc.publishEvent(ctx, constvars.ReportEventAccepted, reportID, userID)

	return &responses.ShareDecisionResponse{
		ReportID:        reportID,
		Status:          constvars.ReportStatusAccepted,
		DerivedReportID: derivedID,
	}, nil
}

func (uc *reportUsecase) RejectSharedReport(ctx context.Context, session *models.Session, reportID string) (*responses.ShareDecisionResponse, error) {
	report, err := uc.ReportRepository.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrReportNotFound(nil)
	}
	if report.Str("status") != constvars.ReportStatusPending {
		return nil, exceptions.ErrReportNotPending(errors.New("status is " + report.Str("status")))
	}

	if err := uc.ReportRepository.UpdateStatus(ctx, reportID, constvars.ReportStatusRejected); err != nil {
		return nil, err
	}

	userID := ""
	if session != nil {
		userID = session.UserID
	}
	uc.publishEvent(ctx, constvars.ReportEventRejected, reportID, userID)

	return &responses.ShareDecisionResponse{
		ReportID: reportID,
		Status:   constvars.ReportStatusRejected,
	}, nil
}

// publishEvent fires a share event for downstream notification delivery.
// Publish failures degrade to a log line; they never fail the request.
func (uc *reportUsecase) publishEvent(ctx context.Context, eventType, reportID, userID string) {
	event := &contracts.ReportEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		ReportID:  reportID,
		UserID:    userID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.EventPublisher.PublishReportEvent(ctx, event); err != nil {
		uc.Log.Warn("failed to publish report event",
			zap.String("event_type", eventType),
			zap.String("report_id", reportID),
			zap.Error(err),
		)
	}
}
