package storage

import (
	"context"
	"strings"
)

// Storage is the durable key/value port the stores persist through. Values
// are JSON-encoded; Get reports false on a miss rather than an error.
type Storage interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	CartKey     = "cart"
	WishlistKey = "wishlist"
	CompareKey  = "compare"
	UserKey     = "user"

	SessionKeyPrefix = "session"
)

type namespaced struct {
	base   Storage
	prefix string
}

// Namespace scopes every key under prefix, so one backing store can hold many
// sessions. Closing the view does not close the base.
func Namespace(base Storage, parts ...string) Storage {
	return &namespaced{base: base, prefix: strings.Join(parts, ":")}
}

// ForSession is the view a single browser session's stores persist through.
func ForSession(base Storage, sessionID string) Storage {
	return Namespace(base, SessionKeyPrefix, sessionID)
}

func (n *namespaced) Get(ctx context.Context, key string, value any) (bool, error) {
	return n.base.Get(ctx, Key(n.prefix, key), value)
}

func (n *namespaced) Set(ctx context.Context, key string, value any) error {
	return n.base.Set(ctx, Key(n.prefix, key), value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.base.Delete(ctx, Key(n.prefix, key))
}

func (n *namespaced) Close() error {
	return nil
}
