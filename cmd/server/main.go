package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/bazaarmind/console/internal/application/catalog"
	chatapp "github.com/bazaarmind/console/internal/application/chat"
	ordersapp "github.com/bazaarmind/console/internal/application/orders"
	sessionapp "github.com/bazaarmind/console/internal/application/session"
	shopsapp "github.com/bazaarmind/console/internal/application/shops"
	"github.com/bazaarmind/console/internal/infrastructure/cache"
	"github.com/bazaarmind/console/internal/infrastructure/config"
	"github.com/bazaarmind/console/internal/infrastructure/logger"
	"github.com/bazaarmind/console/internal/infrastructure/persistence"
	"github.com/bazaarmind/console/internal/infrastructure/remote"
	"github.com/bazaarmind/console/internal/interfaces/http/handler"
	"github.com/bazaarmind/console/internal/interfaces/http/middleware"
	"github.com/bazaarmind/console/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting BazaarMind console backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := persistence.Migrate(db.DB); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Shop selection store: Redis when reachable, in-memory otherwise.
	// A lost selection falls back to the first shop, so the console
	// stays usable without Redis.
	var selectionStore sessionapp.SelectionStore
	redisStore, err := cache.NewRedisSelectionStore(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, shop selection will not survive restarts", zap.Error(err))
		selectionStore = cache.NewInMemorySelectionStore()
	} else {
		defer func() {
			_ = redisStore.Close()
		}()
		selectionStore = redisStore
	}

	// Initialize repositories
	shopRepo := persistence.NewGormShopRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	chatSessionRepo := persistence.NewGormChatSessionRepository(db.DB)

	// Remote order parser
	parserClient := remote.NewParserClient(cfg.Parser, log)

	// Initialize application services
	shopService := shopsapp.NewShopService(shopRepo, productRepo)
	productService := catalogapp.NewProductService(productRepo, shopRepo)
	orderService := ordersapp.NewOrderService(orderRepo, productRepo, shopRepo, log)
	chatService := chatapp.NewChatService(parserClient, chatSessionRepo, shopRepo, orderService, log)

	sessionManager := sessionapp.NewManager(shopService, selectionStore, log)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	if err := sessionManager.Load(loadCtx); err != nil {
		log.Warn("Initial shop list load failed", zap.Error(err))
	}
	cancelLoad()
	shopService.SetSessionNotifier(sessionManager)

	// Initialize handlers
	shopHandler := handler.NewShopHandler(shopService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	chatHandler := handler.NewChatHandler(chatService)
	sessionHandler := handler.NewSessionHandler(sessionManager)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(shopHandler, productHandler, orderHandler, chatHandler, sessionHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
