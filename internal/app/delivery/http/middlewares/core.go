package middlewares

import (
	"omerald-service/internal/app/config"
	"omerald-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	InternalConfig  *config.InternalConfig
	RedisRepository contracts.RedisRepository
}

func NewMiddlewares(log *zap.Logger, internalConfig *config.InternalConfig, redisRepository contracts.RedisRepository) *Middlewares {
	return &Middlewares{
		Log:             log,
		InternalConfig:  internalConfig,
		RedisRepository: redisRepository,
	}
}
