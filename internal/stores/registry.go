package stores

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/auth"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
)

// Session bundles the per-visitor stores. Each one persists under the
// session's own storage namespace.
type Session struct {
	ID       string
	Cart     CartStore
	Wishlist WishlistStore
	Compare  CompareStore
	Auth     AuthStore

	lastSeen time.Time
}

// Registry hands out sessions by id, restoring them from storage the first
// time an id is seen by this process.
type Registry interface {
	Session(ctx context.Context, sessionID string) *Session
	Evict(maxIdle time.Duration) int
	Len() int
}

type registry struct {
	mu            sync.Mutex
	sessions      map[string]*Session
	storage       storage.Storage
	authenticator auth.Authenticator
	now           func() time.Time
}

func NewRegistry(s storage.Storage, authenticator auth.Authenticator) Registry {
	return &registry{
		sessions:      make(map[string]*Session),
		storage:       s,
		authenticator: authenticator,
		now:           time.Now,
	}
}

func (r *registry) Session(ctx context.Context, sessionID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions[sessionID]; ok {
		sess.lastSeen = r.now()
		return sess
	}

	ns := storage.ForSession(r.storage, sessionID)
	cart := NewCartStore(ctx, ns)

	sess := &Session{
		ID:       sessionID,
		Cart:     cart,
		Wishlist: NewWishlistStore(ctx, ns, cart),
		Compare:  NewCompareStore(ctx, ns),
		Auth:     NewAuthStore(ctx, ns, r.authenticator),
		lastSeen: r.now(),
	}

	r.sessions[sessionID] = sess
	metrics.SetActiveSessions(len(r.sessions))

	middleware.LoggerFromContext(ctx).Debug("Session opened", slog.String("sessionId", sessionID))

	return sess
}

// Evict drops sessions idle for longer than maxIdle from memory. Their
// persisted state is untouched and is restored on the next request.
func (r *registry) Evict(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	evicted := 0

	for id, sess := range r.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}

	metrics.SetActiveSessions(len(r.sessions))

	return evicted
}

func (r *registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
