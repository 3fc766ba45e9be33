package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/config"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/metrics"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/mw"
)

// NewRouter creates and configures the Gin router.
func NewRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	r := gin.Default()
	r.Use(metrics.Middleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst, cfg.Server.RequestIPHeader)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/login", handler.Login)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)

		// Everything the dashboard does after login.
		session := api.Group("")
		session.Use(mw.RequireSession(handler.sessions), caching)
		{
			session.POST("/logout", handler.Logout)
			session.GET("/session", handler.GetSession)

			session.GET("/machines", handler.ListMachines)
			session.POST("/machines", handler.UpsertMachine)
			session.DELETE("/machines/:id", handler.DeleteMachine)

			session.GET("/stations", handler.ListStations)
			session.POST("/stations", handler.UpsertStation)
			session.DELETE("/stations/:id", handler.DeleteStation)

			session.GET("/products", handler.ListProductTypes)
			session.POST("/products", handler.CreateProductType)
			session.DELETE("/products/:name", handler.DeleteProductType)
			session.GET("/products/names", handler.ListProductNames)
			session.GET("/products/overview", handler.ProductOverview)

			session.GET("/totals", handler.ProductTotals)
			session.GET("/statistics", handler.Statistics)

			session.GET("/subscriptions", handler.GetSubscription)
			session.PUT("/subscriptions", handler.PutSubscription)
			session.DELETE("/subscriptions", handler.DeleteSubscription)
		}

		// The external count feed authenticates with a shared token, not a
		// session. It shares the response cache so its writes flush stale
		// GET entries.
		feedGroup := api.Group("/feed")
		feedGroup.Use(mw.RequireFeedToken(cfg.Feed.Token), caching)
		{
			feedGroup.PUT("/machines/:id/count", handler.FeedSetMachineCount)
			feedGroup.PUT("/stations/:id/employees/:position/boxes", handler.FeedSetEmployeeBoxes)
		}
	}

	return r
}
