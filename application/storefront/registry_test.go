package storefront

import (
	"context"
	"testing"
	"time"

	backendmocks "github.com/muhammadheryan/pempek-storefront/mocks/repository/backend"
	"github.com/muhammadheryan/pempek-storefront/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, idle time.Duration) (*Registry, *time.Time) {
	repo := backendmocks.NewBackendRepository(t)
	repo.On("GetCategories", mock.Anything).Return([]model.Category{}, nil).Maybe()
	repo.On("GetProducts", mock.Anything, "").Return([]model.Product{}, nil).Maybe()

	clock := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	r := NewRegistry(repo, nil, idle)
	r.now = func() time.Time { return clock }
	return r, &clock
}

func TestRegistry_Resolve(t *testing.T) {
	r, _ := newTestRegistry(t, time.Hour)
	ctx := context.Background()

	id, sf, created := r.Resolve(ctx, "")
	require.True(t, created)
	require.NotEmpty(t, id)
	require.NotNil(t, sf)

	sameID, same, created := r.Resolve(ctx, id)
	assert.False(t, created)
	assert.Equal(t, id, sameID)
	assert.Same(t, sf, same)

	otherID, other, created := r.Resolve(ctx, "unknown-session")
	assert.True(t, created)
	assert.NotEqual(t, id, otherID)
	assert.NotSame(t, sf, other)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	r, _ := newTestRegistry(t, time.Hour)
	ctx := context.Background()

	_, a := r.Create(ctx)
	_, b := r.Create(ctx)
	a.Cart().AddItem(model.Product{ID: "p1", Price: 15000})

	assert.Equal(t, 1, a.Cart().Len())
	assert.True(t, b.Cart().IsEmpty())
}

func TestRegistry_Sweep(t *testing.T) {
	r, clock := newTestRegistry(t, 30*time.Minute)
	ctx := context.Background()

	idle, _ := r.Create(ctx)
	active, _ := r.Create(ctx)

	*clock = clock.Add(20 * time.Minute)
	_, ok := r.Get(active)
	require.True(t, ok)

	*clock = clock.Add(15 * time.Minute)
	assert.Equal(t, 1, r.Sweep())

	_, ok = r.Get(idle)
	assert.False(t, ok)
	_, ok = r.Get(active)
	assert.True(t, ok)
}

func TestRegistry_SweepDisabled(t *testing.T) {
	r, clock := newTestRegistry(t, 0)
	r.Create(context.Background())

	*clock = clock.Add(24 * time.Hour)

	assert.Equal(t, 0, r.Sweep())
	assert.Equal(t, 1, r.Len())
}
