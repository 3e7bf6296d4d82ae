package catalog

import (
	"context"
	"time"

	"github.com/taskora/client-go/cmd/config"
	"github.com/taskora/client-go/constant"
	"github.com/taskora/client-go/model"
	cacherepo "github.com/taskora/client-go/repository/cache"
	"github.com/taskora/client-go/thirdparty/backendapi"
	"github.com/taskora/client-go/utils/errors"
	"github.com/taskora/client-go/utils/logger"
	"go.uber.org/zap"
)

// CatalogApp serves the public browse listings with a read-through cache.
type CatalogApp interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListRegions(ctx context.Context) ([]model.Region, error)
}

type catalogAppImpl struct {
	cacheTTL time.Duration
	api      backendapi.Client
	cache    cacherepo.Repository
}

func NewCatalogApp(cfg *config.Config, api backendapi.Client, cache cacherepo.Repository) CatalogApp {
	return &catalogAppImpl{
		cacheTTL: cfg.Catalog.CacheTTL,
		api:      api,
		cache:    cache,
	}
}

const (
	servicesCacheKey   = "catalog:services"
	categoriesCacheKey = "catalog:categories"
	regionsCacheKey    = "catalog:regions"
)

func (s *catalogAppImpl) ListServices(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	if hit, err := s.cache.GetJSON(ctx, servicesCacheKey, &services); err == nil && hit {
		return services, nil
	}

	services, err := s.api.ListServices(ctx)
	if err != nil {
		logger.Error("[ListServices] err api.ListServices", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.cache.SetJSON(ctx, servicesCacheKey, services, s.cacheTTL); err != nil {
		logger.Warn("[ListServices] err cache.SetJSON", zap.String("error", err.Error()))
	}
	return services, nil
}

func (s *catalogAppImpl) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if hit, err := s.cache.GetJSON(ctx, categoriesCacheKey, &categories); err == nil && hit {
		return categories, nil
	}

	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		logger.Error("[ListCategories] err api.ListCategories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.cache.SetJSON(ctx, categoriesCacheKey, categories, s.cacheTTL); err != nil {
		logger.Warn("[ListCategories] err cache.SetJSON", zap.String("error", err.Error()))
	}
	return categories, nil
}

func (s *catalogAppImpl) ListRegions(ctx context.Context) ([]model.Region, error) {
	var regions []model.Region
	if hit, err := s.cache.GetJSON(ctx, regionsCacheKey, &regions); err == nil && hit {
		return regions, nil
	}

	regions, err := s.api.ListRegions(ctx)
	if err != nil {
		logger.Error("[ListRegions] err api.ListRegions", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.cache.SetJSON(ctx, regionsCacheKey, regions, s.cacheTTL); err != nil {
		logger.Warn("[ListRegions] err cache.SetJSON", zap.String("error", err.Error()))
	}
	return regions, nil
}
