// Package metrics exposes prometheus counters for the service.
package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maasli_http_requests_total",
		Help: "Handled HTTP requests.",
	}, []string{"method", "route", "status"})

	// FeedUpdates counts count-feed mutations by target collection.
	FeedUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maasli_feed_updates_total",
		Help: "Count-feed mutations applied.",
	}, []string{"target"})

	// NotificationsSent counts web-push deliveries by outcome.
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maasli_notifications_sent_total",
		Help: "Web-push notifications attempted.",
	}, []string{"outcome"})
)

// Middleware records one HTTPRequests increment per handled request.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
