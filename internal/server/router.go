package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all the routes for the answer service. A nil
// gatherer leaves /metrics unregistered.
func RegisterRoutes(router *gin.Engine, api *API, gatherer prometheus.Gatherer) {
	router.POST("/ask", api.AskHandler)
	router.GET("/healthz", api.HealthHandler)
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

// NewRouter builds a gin engine with recovery, request ids and access logs.
func NewRouter(api *API, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog())
	RegisterRoutes(router, api, gatherer)
	return router
}
