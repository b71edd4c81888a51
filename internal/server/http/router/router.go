package router

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/sweetorders/internal/config"
	"github.com/polkiloo/sweetorders/internal/server/http/handlers"
	"github.com/polkiloo/sweetorders/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.SweetOrdersFacade, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	engine.Use(middleware.DecompressRequest(middleware.DefaultMaxBodyBytes))

	catalogHandler := handlers.NewCatalogHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)
	streamHandler := handlers.NewStreamHandler(facade, logger, cfg.CORSAllowedOrigins)

	api := engine.Group("/api")
	// Websocket upgrades hijack the connection; keep them clear of gzip and request deadlines.
	api.GET("/orders/stream", streamHandler.Orders)

	bounded := api.Group("")
	bounded.Use(gzip.Gzip(gzip.DefaultCompression))
	bounded.Use(middleware.RequestTimeout(cfg.RequestTimeout))
	bounded.GET("/catalog", catalogHandler.Get)
	bounded.GET("/health", healthHandler.Check)

	orders := bounded.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.POST("/preview", orderHandler.Preview)
	orders.GET("/pending", orderHandler.Pending)
	orders.GET("/summary", orderHandler.Summary)
	orders.POST("/:id/delivery", orderHandler.ConfirmDelivery)

	return engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Encoding", "Accept-Encoding", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
