package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mayarj/Ecommerceclientappdesign/auth"
	"github.com/mayarj/Ecommerceclientappdesign/catalog"
	"github.com/mayarj/Ecommerceclientappdesign/config"
	"github.com/mayarj/Ecommerceclientappdesign/middleware"
	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/mayarj/Ecommerceclientappdesign/orders"
	"github.com/mayarj/Ecommerceclientappdesign/routes"
	"github.com/mayarj/Ecommerceclientappdesign/session"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg := config.Load()
	logger := newLogger(cfg)
	logger.Info("Starting storefront...")

	if cfg.JWTSecretGenerated {
		logger.Warn("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}
	if cfg.AdminAPIKey == "" {
		logger.Warn("ADMIN_API_KEY not set, admin routes are disabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catalog
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	store := catalog.NewStore(db, logger)
	if err := store.Migrate(ctx); err != nil {
		logger.WithError(err).Fatal("AutoMigrate failed")
	}
	if err := store.Seed(ctx, catalog.MockProducts()); err != nil {
		logger.WithError(err).Fatal("Catalog seed failed")
	}

	// Sessions
	opts := []session.Option{
		session.WithTTL(cfg.SessionTTL),
		session.WithDeliveryFees(cfg.DeliveryFees),
	}
	if cfg.SeedDemoOrders {
		products, err := store.List(ctx, models.CategoryAll)
		if err != nil {
			logger.WithError(err).Fatal("Failed to load catalog for demo orders")
		}
		opts = append(opts, session.WithSeedOrders(func() []models.Order {
			return orders.Demo(products, cfg.DeliveryFees)
		}))
	}
	sessions := session.NewManager(logger, opts...)
	go sessions.Run(ctx, cfg.SweepInterval)

	// Gin setup
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "X-API-KEY", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: !allowsAnyOrigin(cfg.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Dependencies{
		Store:       store,
		Sessions:    sessions,
		Tokens:      auth.NewTokens(cfg.JWTSecret, sessions.TTL()),
		AdminAPIKey: cfg.AdminAPIKey,
		Logger:      logger,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	srv := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		logger.WithError(err).Fatal("Failed to start server")
	}

	logger.Infof("Server running on port %s", cfg.Port)
	if err := serve(srv, ln, quit, shutdownTimeout, logger); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	cancel()
	logger.Info("Storefront stopped")
}

const shutdownTimeout = 10 * time.Second

// serve runs srv on ln until a signal arrives on quit, then stops accepting
// connections and waits up to timeout for in-flight requests.
func serve(srv *http.Server, ln net.Listener, quit <-chan os.Signal, timeout time.Duration, logger logrus.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-quit:
	}
	logger.Info("Shutting down storefront...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if cfg.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// gin-contrib/cors rejects a wildcard origin combined with credentials.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
