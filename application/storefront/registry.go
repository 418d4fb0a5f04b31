package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	checkoutapp "github.com/muhammadheryan/pempek-storefront/application/checkout"
	backendrepo "github.com/muhammadheryan/pempek-storefront/repository/backend"
	"github.com/muhammadheryan/pempek-storefront/utils/logger"
	"go.uber.org/zap"
)

type entry struct {
	storefront *Storefront
	lastSeen   time.Time
}

// Registry keeps one Storefront per browser session, in memory only. A
// restart or an idle eviction drops the cart with it.
type Registry struct {
	backendRepo backendrepo.BackendRepository
	publisher   checkoutapp.OrderPublisher
	idleTimeout time.Duration
	now         func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

func NewRegistry(backendRepo backendrepo.BackendRepository, publisher checkoutapp.OrderPublisher, idleTimeout time.Duration) *Registry {
	return &Registry{
		backendRepo: backendRepo,
		publisher:   publisher,
		idleTimeout: idleTimeout,
		now:         time.Now,
		entries:     make(map[string]*entry),
	}
}

// Get returns the storefront of sessionID and marks it as used.
func (r *Registry) Get(sessionID string) (*Storefront, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.storefront, true
}

// Create opens a new session and performs its initial menu load.
func (r *Registry) Create(ctx context.Context) (string, *Storefront) {
	sessionID := uuid.NewString()
	sf := New(r.backendRepo, r.publisher)

	r.mu.Lock()
	r.entries[sessionID] = &entry{storefront: sf, lastSeen: r.now()}
	r.mu.Unlock()

	sf.Init(ctx)
	logger.Debug("[Registry.Create] new session", zap.String("session_id", sessionID))
	return sessionID, sf
}

// Resolve returns the storefront of sessionID, creating a fresh session when
// it is unknown. created reports whether a new id was issued.
func (r *Registry) Resolve(ctx context.Context, sessionID string) (id string, sf *Storefront, created bool) {
	if sessionID != "" {
		if sf, ok := r.Get(sessionID); ok {
			return sessionID, sf, false
		}
	}
	id, sf = r.Create(ctx)
	return id, sf, true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep drops sessions idle for longer than the idle timeout and returns
// how many were dropped. A non-positive timeout disables eviction.
func (r *Registry) Sweep() int {
	if r.idleTimeout <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idleTimeout)
	evicted := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			evicted++
		}
	}
	return evicted
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				logger.Info("[Registry.Run] evicted idle sessions", zap.Int("evicted", n), zap.Int("active", r.Len()))
			}
		}
	}
}
