package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/auth"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/health"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/aaravmahajanofficial/storefront/internal/tracing"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, &cfg.Tracing, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis is shared by the redis storage driver and the login limiter
	var redisClient *redis.Client
	if cfg.Storage.Driver == config.StorageRedis || cfg.RateConfig.Enabled {
		redisClient, err = storage.NewRedisClient(&cfg.RedisConnect)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	store, err := newStorage(cfg, redisClient)
	if err != nil {
		slog.Error("❌ Error opening storage", slog.String("driver", cfg.Storage.Driver), slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("⚠️ Error closing storage", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Storage closed")
		}
	}()

	source, closeSource, err := newProductSource(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeSource()

	authenticator, err := auth.NewDemoAuthenticator(cfg.Auth.DemoName, cfg.Auth.DemoEmail, cfg.Auth.DemoPassword)
	if err != nil {
		slog.Error("❌ Error setting up authentication", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var limiter repository.LoginLimiter
	if cfg.RateConfig.Enabled {
		limiter = repository.NewLoginLimiter(redisClient, &cfg.RateConfig)
	}

	catalog := stores.NewCatalogStore(source)
	registry := stores.NewRegistry(store, authenticator)
	suppliers := stores.NewSupplierStore()
	tokens := auth.NewTokenIssuer([]byte(cfg.Security.SessionKey), cfg.Security.SessionTTL)

	// The catalog loads once in the background; routes answer 503 until it resolves.
	go func() {
		loadCtx, cancel := context.WithTimeout(ctx, cfg.Catalog.LoadTimeout)
		defer cancel()

		if err := catalog.Load(loadCtx); err != nil {
			slog.Error("❌ Catalog unavailable", slog.String("error", err.Error()))
		}
	}()

	go evictIdleSessions(ctx, registry, cfg.Security.SessionIdle)

	productHandler := handlers.NewProductHandler(catalog)
	cartHandler := handlers.NewCartHandler(registry)
	wishlistHandler := handlers.NewWishlistHandler(registry, catalog)
	compareHandler := handlers.NewCompareHandler(registry, catalog)
	authHandler := handlers.NewAuthHandler(registry, limiter)
	supplierHandler := handlers.NewSupplierHandler(suppliers)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{Catalog: catalog})
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("driver", cfg.Storage.Driver), slog.String("catalog", cfg.Catalog.Source))

	// Setup router
	apiMux := http.NewServeMux()
	route := func(pattern string, h http.HandlerFunc) {
		apiMux.Handle(pattern, metrics.Middleware(h))
	}

	route("GET /api/v1/products", productHandler.ListProducts())
	route("GET /api/v1/products/brands", productHandler.ListBrands())
	route("GET /api/v1/products/search", productHandler.QuickSearch())
	route("GET /api/v1/products/{id}", productHandler.GetProduct())
	route("GET /api/v1/cart", cartHandler.GetCart())
	route("POST /api/v1/cart/items", cartHandler.AddItem())
	route("PUT /api/v1/cart/items/{id}", cartHandler.UpdateQuantity())
	route("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	route("GET /api/v1/wishlist", wishlistHandler.GetWishlist())
	route("POST /api/v1/wishlist/items", wishlistHandler.AddItem())
	route("DELETE /api/v1/wishlist/items/{id}", wishlistHandler.RemoveItem())
	route("POST /api/v1/wishlist/items/{id}/move-to-cart", wishlistHandler.MoveToCart())
	route("GET /api/v1/compare", compareHandler.GetCompare())
	route("POST /api/v1/compare/items", compareHandler.AddItem())
	route("DELETE /api/v1/compare/items/{id}", compareHandler.RemoveItem())
	route("DELETE /api/v1/compare", compareHandler.Clear())
	route("GET /api/v1/auth/me", authHandler.Me())
	route("POST /api/v1/auth/login", authHandler.Login())
	route("POST /api/v1/auth/register", authHandler.Register())
	route("POST /api/v1/auth/logout", authHandler.Logout())
	route("GET /api/v1/suppliers", supplierHandler.ListSuppliers())
	route("POST /api/v1/suppliers", supplierHandler.CreateSupplier())
	route("GET /api/v1/suppliers/by-product", supplierHandler.SuppliersByProduct())
	route("GET /api/v1/suppliers/by-category", supplierHandler.SuppliersByCategory())
	route("GET /api/v1/suppliers/{id}", supplierHandler.GetSupplier())
	route("PATCH /api/v1/suppliers/{id}", supplierHandler.UpdateSupplier())
	route("DELETE /api/v1/suppliers/{id}", supplierHandler.DeleteSupplier())

	// Middleware chaining
	var api http.Handler = apiMux
	api = middleware.Session(tokens)(api)

	rootMux := http.NewServeMux()
	rootMux.Handle("/api/", api)
	rootMux.Handle("GET /metrics", metrics.Handler())
	rootMux.Handle("GET /health", healthHandler.Handler())

	var handler http.Handler = rootMux
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

}

func newStorage(cfg *config.Config, redisClient *redis.Client) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		return storage.NewRedisStorage(redisClient, cfg.Storage.TTL), nil
	case config.StorageBolt:
		return storage.NewBoltStorage(cfg.Storage.BoltPath)
	default:
		return storage.NewMemoryStorage(), nil
	}
}

func newProductSource(ctx context.Context, cfg *config.Config) (repository.ProductRepository, func(), error) {
	if cfg.Catalog.Source != config.CatalogPostgres {
		return repository.NewMockProductRepo(nil, cfg.Catalog.SimulatedDelay), func() {}, nil
	}

	db, err := repository.NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}

	return repository.NewProductRepo(db), closeDB, nil
}

func evictIdleSessions(ctx context.Context, registry stores.Registry, maxIdle time.Duration) {
	if maxIdle <= 0 {
		return
	}

	ticker := time.NewTicker(maxIdle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := registry.Evict(maxIdle); n > 0 {
				slog.Debug("Evicted idle sessions", slog.Int("count", n))
			}
		}
	}
}
