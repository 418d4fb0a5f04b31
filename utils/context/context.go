package context

import (
	"context"

	"github.com/muhammadheryan/pempek-storefront/application/storefront"
	"github.com/muhammadheryan/pempek-storefront/constant"
)

func WithSession(ctx context.Context, sessionID string, sf *storefront.Storefront) context.Context {
	ctx = context.WithValue(ctx, constant.SessionIDKey, sessionID)
	return context.WithValue(ctx, constant.StorefrontKey, sf)
}

func GetSessionID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.SessionIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

func GetStorefront(ctx context.Context) (*storefront.Storefront, bool) {
	v := ctx.Value(constant.StorefrontKey)
	if v == nil {
		return nil, false
	}
	sf, ok := v.(*storefront.Storefront)
	return sf, ok && sf != nil
}
