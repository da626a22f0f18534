package catalog

import (
	"go.uber.org/zap"

	"ardoise/internal/httpclient"
	"ardoise/internal/query"
)

func NewModule(client *httpclient.Client, cache *query.Cache, logger *zap.Logger) *Service {
	return NewService(client, cache, logger.Named("catalog"))
}
