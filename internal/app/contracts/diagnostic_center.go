package contracts

import (
	"context"
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/dto/requests"
)

// DiagnosticCenterClient talks to the upstream diagnostic center service.
type DiagnosticCenterClient interface {
	GetCenterByID(ctx context.Context, dcID string) (*models.DCDetails, error)
	GetBranchByID(ctx context.Context, branchID string) (*models.BranchDetails, error)
	GetPathologistByID(ctx context.Context, pathologistID string) (*models.PathologistDetails, error)
	GetPathologistsByBranch(ctx context.Context, branchID string) ([]models.PathologistDetails, error)
}

type DiagnosticCenterUsecase interface {
	GetDCDetails(ctx context.Context, request *requests.GetDCDetailsRequest) (*models.DCDetails, error)
	GetBranchDetails(ctx context.Context, request *requests.GetBranchDetailsRequest) (*models.BranchDetails, error)
	GetPathologistDetails(ctx context.Context, request *requests.GetPathologistDetailsRequest) (*models.PathologistDetails, error)
}
