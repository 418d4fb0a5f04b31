package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redisclient "github.com/muhammadheryan/pempek-storefront/cmd/redis"
	"github.com/muhammadheryan/pempek-storefront/model"
	goredis "github.com/redis/go-redis/v9"
)

// CatalogCache keeps the last good public catalog responses. A miss returns
// found=false and no error.
type CatalogCache interface {
	GetCategories(ctx context.Context) ([]model.Category, bool, error)
	SetCategories(ctx context.Context, categories []model.Category) error
	GetProducts(ctx context.Context, category string) ([]model.Product, bool, error)
	SetProducts(ctx context.Context, category string, products []model.Product) error
	InvalidateProducts(ctx context.Context) error
	InvalidateCategories(ctx context.Context) error
}

const (
	keyCategories     = "catalog:categories"
	keyProductsPrefix = "catalog:products:"
	keyAllProducts    = "all"
)

type redis struct {
	ttl time.Duration
}

// NewCatalogCache returns a cache over the shared client from cmd/redis.
func NewCatalogCache(ttl time.Duration) CatalogCache {
	return &redis{ttl: ttl}
}

func (r *redis) GetCategories(ctx context.Context) ([]model.Category, bool, error) {
	var out []model.Category
	found, err := r.get(ctx, keyCategories, &out)
	return out, found, err
}

func (r *redis) SetCategories(ctx context.Context, categories []model.Category) error {
	return r.set(ctx, keyCategories, categories)
}

func (r *redis) GetProducts(ctx context.Context, category string) ([]model.Product, bool, error) {
	var out []model.Product
	found, err := r.get(ctx, productsKey(category), &out)
	return out, found, err
}

func (r *redis) SetProducts(ctx context.Context, category string, products []model.Product) error {
	return r.set(ctx, productsKey(category), products)
}

// InvalidateProducts drops every cached product list, filtered or not.
func (r *redis) InvalidateProducts(ctx context.Context) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	var keys []string
	iter := client.Scan(ctx, 0, keyProductsPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}

func (r *redis) InvalidateCategories(ctx context.Context) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, keyCategories).Err()
}

func (r *redis) get(ctx context.Context, key string, out interface{}) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return false, nil
	}

	data, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		// a corrupt entry is a miss; drop it so the next write replaces it
		_ = client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (r *redis) set(ctx context.Context, key string, value interface{}) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, data, r.ttl).Err()
}

func productsKey(category string) string {
	if category == "" {
		return keyProductsPrefix + keyAllProducts
	}
	return keyProductsPrefix + "category:" + category
}
