package diagnosticcenters

import (
	"context"
	"errors"
	"fmt"
	"omerald-service/internal/app/config"
	"omerald-service/internal/app/contracts"
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/constvars"
	"omerald-service/internal/pkg/dto/requests"
	"omerald-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type dcUsecase struct {
	DCClient        contracts.DiagnosticCenterClient
	RedisRepository contracts.RedisRepository
	CacheTTL        time.Duration
	Log             *zap.Logger
}

func NewDiagnosticCenterUsecase(
	dcClient contracts.DiagnosticCenterClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.DiagnosticCenterUsecase {
	return &dcUsecase{
		DCClient:        dcClient,
		RedisRepository: redisRepository,
		CacheTTL:        time.Duration(internalConfig.App.DCDetailCacheTTLInMinutes) * time.Minute,
		Log:             log,
	}
}

func (uc *dcUsecase) GetDCDetails(ctx context.Context, request *requests.GetDCDetailsRequest) (*models.DCDetails, error) {
	cacheKey := fmt.Sprintf(constvars.CacheKeyDCDetails, request.DCID)

	details := new(models.DCDetails)
	if uc.fromCache(ctx, cacheKey, details) {
		return details, nil
	}

	details, err := uc.DCClient.GetCenterByID(ctx, request.DCID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, exceptions.ErrDCUpstreamNotFound(nil, constvars.ErrClientDiagnosticCenterNotFound)
	}

	uc.toCache(ctx, cacheKey, details)
	return details, nil
}

func (uc *dcUsecase) GetBranchDetails(ctx context.Context, request *requests.GetBranchDetailsRequest) (*models.BranchDetails, error) {
	cacheKey := fmt.Sprintf(constvars.CacheKeyBranchDetails, request.BranchID)

	details := new(models.BranchDetails)
	if uc.fromCache(ctx, cacheKey, details) {
		return details, nil
	}

	details, err := uc.DCClient.GetBranchByID(ctx, request.BranchID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, exceptions.ErrDCUpstreamNotFound(nil, constvars.ErrClientBranchNotFound)
	}

	uc.toCache(ctx, cacheKey, details)
	return details, nil
}

// GetPathologistDetails resolves a pathologist by ID when one is given, and
// falls back to scanning the branch roster for a name match otherwise. Older
// report records only carry the branch and the printed name.
func (uc *dcUsecase) GetPathologistDetails(ctx context.Context, request *requests.GetPathologistDetailsRequest) (*models.PathologistDetails, error) {
	if request.PathologistID != "" {
		return uc.pathologistByID(ctx, request.PathologistID)
	}
	if request.BranchID != "" {
		return uc.pathologistByBranchName(ctx, request.BranchID, request.PathologistName)
	}
	return nil, exceptions.ErrMissingPathologistIdentifier(nil)
}

func (uc *dcUsecase) pathologistByID(ctx context.Context, pathologistID string) (*models.PathologistDetails, error) {
	cacheKey := fmt.Sprintf(constvars.CacheKeyPathologistDetails, pathologistID)

	details := new(models.PathologistDetails)
	if uc.fromCache(ctx, cacheKey, details) {
		return details, nil
	}

	details, err := uc.DCClient.GetPathologistByID(ctx, pathologistID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, exceptions.ErrDCUpstreamNotFound(nil, constvars.ErrClientPathologistNotFound)
	}

	uc.toCache(ctx, cacheKey, details)
	return details, nil
}

func (uc *dcUsecase) pathologistByBranchName(ctx context.Context, branchID, pathologistName string) (*models.PathologistDetails, error) {
	pathologists, err := uc.DCClient.GetPathologistsByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	wanted := strings.ToLower(strings.TrimSpace(pathologistName))
	for i := range pathologists {
		if wanted == "" || strings.ToLower(strings.TrimSpace(pathologists[i].Name)) == wanted {
			return &pathologists[i], nil
		}
	}
	return nil, exceptions.ErrDCUpstreamNotFound(
		errors.New("no pathologist matched name "+pathologistName+" in branch "+branchID),
		constvars.ErrClientPathologistNotFound,
	)
}

// fromCache fills target from redis and reports whether it hit. Cache
// trouble is never fatal; the upstream call covers for it.
func (uc *dcUsecase) fromCache(ctx context.Context, key string, target interface{}) bool {
	cached, err := uc.RedisRepository.Get(ctx, key)
	if err != nil || cached == "" {
		return false
	}
	if err := json.Unmarshal([]byte(cached), target); err != nil {
		uc.Log.Warn("failed to unmarshal cached diagnostic center entry",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (uc *dcUsecase) toCache(ctx context.Context, key string, value interface{}) {
	if err := uc.RedisRepository.Set(ctx, key, value, uc.CacheTTL); err != nil {
		uc.Log.Warn("failed to cache diagnostic center entry",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
