package contracts

import (
	"context"
	"omerald-service/internal/pkg/dto/responses"
)

type AnalyticsUsecase interface {
	BuildBMISeries(ctx context.Context, profileID string) ([]responses.BMIPoint, error)
	ReportsPerMonth(ctx context.Context, userID string) ([]responses.MonthBucket, error)
	ConditionFrequency(ctx context.Context, userID string) ([]responses.ConditionCount, error)
}
