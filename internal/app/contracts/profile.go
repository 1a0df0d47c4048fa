package contracts

import (
	"context"
	"omerald-service/internal/app/models"
)

type ProfileRepository interface {
	FindByID(ctx context.Context, profileID string) (*models.Profile, error)
}
