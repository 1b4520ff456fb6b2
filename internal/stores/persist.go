package stores

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
)

// load restores key into dest. A miss or a decode failure leaves dest as is;
// failures are logged and the store starts empty.
func load(ctx context.Context, s storage.Storage, key string, dest any) {
	found, err := s.Get(ctx, key, dest)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to restore persisted state", slog.String("key", key), slog.Any("error", err))
		return
	}

	if found {
		middleware.LoggerFromContext(ctx).Debug("Restored persisted state", slog.String("key", key))
	}
}

// save is fire-and-forget: the in-memory state is authoritative and a failed
// write is only logged.
func save(ctx context.Context, s storage.Storage, key string, value any) {
	if err := s.Set(ctx, key, value); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to persist state", slog.String("key", key), slog.Any("error", err))
	}
}

func remove(ctx context.Context, s storage.Storage, key string) {
	if err := s.Delete(ctx, key); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to delete persisted state", slog.String("key", key), slog.Any("error", err))
	}
}
