package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Skale-Club/xtimator/docs" // This will be auto-generated
	"github.com/Skale-Club/xtimator/internal/adapter/http/handlers"
	"github.com/Skale-Club/xtimator/internal/app"
	"github.com/Skale-Club/xtimator/internal/config"
	"github.com/Skale-Club/xtimator/internal/infrastructure/logging"
	"github.com/Skale-Club/xtimator/internal/infrastructure/share"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until SIGINT or SIGTERM. Pending store
// writes are flushed before it returns.
func Run() {
	cfg := config.Load()
	logging.Configure(cfg.LogLevel)
	logger := logging.GetLogger()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, app.WithShare(share.Unavailable{}, &share.MemoryClipboard{}))
	if err != nil {
		logger.Fatalf("Failed to startup the application: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: NewRouter(a),
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("[http][server] listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to startup the application: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("[http][server] shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.LogError(logger, "routes", "Run", "[http][server] shutdown", nil, err)
	}
	if err := a.Close(shutdownCtx); err != nil {
		logging.LogError(logger, "routes", "Run", "[app][close] flush failed", nil, err)
	}
	logger.Info("[http][server] stopped")
}

// NewRouter wires every handler of a onto a fresh engine.
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, handlers.NewCatalogHandler(a.Catalog))
	addCustomerRoutes(v1, handlers.NewCustomerHandler(a.Customers))
	addEstimateRoutes(v1, handlers.NewEstimateHandler(a.Estimates))
	addDraftRoutes(v1, handlers.NewDraftHandler(a.Drafts))
	addOnboardingRoutes(v1, handlers.NewOnboardingHandler(a.Onboarding, a.Settings))
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.GetLogger().WithField("panic", recovered).Error("[http][recovery] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
