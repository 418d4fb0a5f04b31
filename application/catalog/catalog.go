package catalog

import (
	"context"
	"sync"

	"github.com/muhammadheryan/pempek-storefront/model"
	backendrepo "github.com/muhammadheryan/pempek-storefront/repository/backend"
	"github.com/muhammadheryan/pempek-storefront/utils/logger"
	"go.uber.org/zap"
)

// CatalogApp is the public menu: categories, products and the selected category filter.
// Load failures are logged and leave the previously loaded data in place.
type CatalogApp interface {
	LoadCategories(ctx context.Context)
	LoadProducts(ctx context.Context)
	SetFilter(ctx context.Context, category string)
	Refresh(ctx context.Context)
	Categories() []model.Category
	Products() []model.Product
	Filter() string
	FindCategory(id string) (model.Category, bool)
	FindProduct(id string) (model.Product, bool)
}

type catalogAppImpl struct {
	backendRepo backendrepo.BackendRepository

	mu         sync.Mutex
	categories []model.Category
	products   []model.Product
	filter     string

	// request tags; only the response of the latest dispatched fetch is applied
	categoriesSeq uint64
	productsSeq   uint64
}

func NewCatalogApp(backendRepo backendrepo.BackendRepository) CatalogApp {
	return &catalogAppImpl{backendRepo: backendRepo}
}

func (s *catalogAppImpl) LoadCategories(ctx context.Context) {
	s.mu.Lock()
	s.categoriesSeq++
	tag := s.categoriesSeq
	s.mu.Unlock()

	categories, err := s.backendRepo.GetCategories(ctx)
	if err != nil {
		logger.Error("[LoadCategories] err backendRepo.GetCategories", zap.String("error", err.Error()))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tag != s.categoriesSeq {
		logger.Debug("[LoadCategories] discard stale response", zap.Uint64("tag", tag), zap.Uint64("latest", s.categoriesSeq))
		return
	}
	s.categories = categories
}

// LoadProducts fetches products for the filter active at dispatch time.
func (s *catalogAppImpl) LoadProducts(ctx context.Context) {
	s.mu.Lock()
	s.productsSeq++
	tag := s.productsSeq
	filter := s.filter
	s.mu.Unlock()

	products, err := s.backendRepo.GetProducts(ctx, filter)
	if err != nil {
		logger.Error("[LoadProducts] err backendRepo.GetProducts",
			zap.String("category", filter),
			zap.String("error", err.Error()),
		)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tag != s.productsSeq || filter != s.filter {
		logger.Debug("[LoadProducts] discard stale response",
			zap.String("category", filter),
			zap.Uint64("tag", tag),
			zap.Uint64("latest", s.productsSeq),
		)
		return
	}
	s.products = products
}

// SetFilter selects a category by name ("" means all) and reloads products.
// Selecting the current filter again does nothing.
func (s *catalogAppImpl) SetFilter(ctx context.Context, category string) {
	s.mu.Lock()
	if category == s.filter {
		s.mu.Unlock()
		return
	}
	s.filter = category
	s.mu.Unlock()

	s.LoadProducts(ctx)
}

func (s *catalogAppImpl) Refresh(ctx context.Context) {
	s.LoadProducts(ctx)
}

func (s *catalogAppImpl) Categories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *catalogAppImpl) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *catalogAppImpl) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *catalogAppImpl) FindCategory(id string) (model.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

func (s *catalogAppImpl) FindProduct(id string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}
