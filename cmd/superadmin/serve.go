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

	"github.com/aaravmahajanofficial/superadmin-catalog/internal/api/handlers"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/api/middleware"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/cache"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/config"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/health"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/metrics"
	repository "github.com/aaravmahajanofficial/superadmin-catalog/internal/repositories"
	service "github.com/aaravmahajanofficial/superadmin-catalog/internal/services"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/tracing"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfigFromPath(config.ResolvePath(configPath))
	if err != nil {
		return err
	}

	shutdownTracing, err := tracing.Setup(ctx, cfg.Otel, cfg.Env)
	if err != nil {
		return err
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		return err
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(&cfg.RedisConnect)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		return err
	}

	defer redisClient.Close()

	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg.RateConfig)

	jwtKey := []byte(cfg.Security.JWTKey)
	tokenTTL := time.Duration(cfg.Security.JWTExpiryHours) * time.Hour

	catalogService := service.NewCatalogService(repos.Product, repos.Sku, productCache, cfg.Catalog)
	dashboardService := service.NewDashboardService(repos.User, repos.Product)
	userService := service.NewUserService(repos.User, rateLimiter, jwtKey, tokenTTL)

	productHandler := handlers.NewProductHandler(catalogService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	userHandler := handlers.NewUserHandler(userService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthChecker, err := health.NewHealthHandler(cfg, version, &health.Endpoints{DB: repos.DB})
	if err != nil {
		return err
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", version))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))
	routerMux.HandleFunc("GET /api/v1/dashboard", authMiddleware.Authenticate(dashboardHandler.GetDashboard()))
	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /api/v1/products", authMiddleware.Authenticate(productHandler.ListProducts()))
	routerMux.HandleFunc("GET /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.GetProduct()))
	routerMux.HandleFunc("PUT /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("GET /api/v1/slugs/{slug}", authMiddleware.Authenticate(productHandler.GetProductBySlug()))
	routerMux.HandleFunc("POST /api/v1/products/{id}/skus", authMiddleware.Authenticate(productHandler.CreateSku()))
	routerMux.HandleFunc("GET /api/v1/products/{id}/skus", authMiddleware.Authenticate(productHandler.ListSkus()))
	routerMux.HandleFunc("GET /api/v1/skus/{id}", authMiddleware.Authenticate(productHandler.GetSku()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthChecker.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.HTTPServer.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.HTTPServer.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-done:
		slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")
	case err := <-serverErr:
		slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		return err
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
		return err
	}

	slog.Info("✅ Server shut down gracefully. All connections closed.")

	return nil
}
