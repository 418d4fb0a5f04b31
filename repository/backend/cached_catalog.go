package backend

import (
	"context"

	"github.com/muhammadheryan/pempek-storefront/model"
	redisrepo "github.com/muhammadheryan/pempek-storefront/repository/redis"
	"github.com/muhammadheryan/pempek-storefront/utils/logger"
	"go.uber.org/zap"
)

// cachedCatalog writes successful public catalog reads through to the cache
// and serves the cached copy when the backend cannot answer. Admin writes
// invalidate the affected entries. Everything else goes straight to the backend.
type cachedCatalog struct {
	BackendRepository
	cache redisrepo.CatalogCache
}

func NewCachedCatalog(inner BackendRepository, cache redisrepo.CatalogCache) BackendRepository {
	return &cachedCatalog{BackendRepository: inner, cache: cache}
}

func (c *cachedCatalog) GetCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := c.BackendRepository.GetCategories(ctx)
	if err == nil {
		if cerr := c.cache.SetCategories(ctx, categories); cerr != nil {
			logger.Warn("[GetCategories] err cache.SetCategories", zap.String("error", cerr.Error()))
		}
		return categories, nil
	}

	cached, found, cerr := c.cache.GetCategories(ctx)
	if cerr != nil {
		logger.Warn("[GetCategories] err cache.GetCategories", zap.String("error", cerr.Error()))
	}
	if !found {
		return nil, err
	}
	logger.Info("[GetCategories] serving cached categories", zap.String("backend_error", err.Error()))
	return cached, nil
}

func (c *cachedCatalog) GetProducts(ctx context.Context, category string) ([]model.Product, error) {
	products, err := c.BackendRepository.GetProducts(ctx, category)
	if err == nil {
		if cerr := c.cache.SetProducts(ctx, category, products); cerr != nil {
			logger.Warn("[GetProducts] err cache.SetProducts", zap.String("error", cerr.Error()))
		}
		return products, nil
	}

	cached, found, cerr := c.cache.GetProducts(ctx, category)
	if cerr != nil {
		logger.Warn("[GetProducts] err cache.GetProducts", zap.String("error", cerr.Error()))
	}
	if !found {
		return nil, err
	}
	logger.Info("[GetProducts] serving cached products",
		zap.String("category", category),
		zap.String("backend_error", err.Error()),
	)
	return cached, nil
}

func (c *cachedCatalog) CreateProduct(ctx context.Context, token string, product *model.Product) (*model.MessageResponse, error) {
	res, err := c.BackendRepository.CreateProduct(ctx, token, product)
	if err == nil {
		c.invalidateProducts(ctx)
	}
	return res, err
}

func (c *cachedCatalog) UpdateProduct(ctx context.Context, token, productID string, product *model.Product) (*model.MessageResponse, error) {
	res, err := c.BackendRepository.UpdateProduct(ctx, token, productID, product)
	if err == nil {
		c.invalidateProducts(ctx)
	}
	return res, err
}

func (c *cachedCatalog) DeleteProduct(ctx context.Context, token, productID string) error {
	err := c.BackendRepository.DeleteProduct(ctx, token, productID)
	if err == nil {
		c.invalidateProducts(ctx)
	}
	return err
}

func (c *cachedCatalog) CreateCategory(ctx context.Context, token string, req *model.CategoryRequest) (*model.MessageResponse, error) {
	res, err := c.BackendRepository.CreateCategory(ctx, token, req)
	if err == nil {
		if cerr := c.cache.InvalidateCategories(ctx); cerr != nil {
			logger.Warn("[CreateCategory] err cache.InvalidateCategories", zap.String("error", cerr.Error()))
		}
	}
	return res, err
}

func (c *cachedCatalog) invalidateProducts(ctx context.Context) {
	if err := c.cache.InvalidateProducts(ctx); err != nil {
		logger.Warn("[invalidateProducts] err cache.InvalidateProducts", zap.String("error", err.Error()))
	}
}
