// Package http assembles the gin engine serving the GraphQL endpoint plus the
// operational routes (health, metrics).
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fictus/bookstore/internal/infrastructure/config"
	"github.com/fictus/bookstore/internal/interface/http/middleware"
	"github.com/fictus/bookstore/pkg/response"
)

// NewRouter builds the gin engine. GraphiQL is enabled outside release mode.
func NewRouter(cfg *config.Config, schema graphql.Schema, authMiddleware *middleware.AuthMiddleware) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   cfg.Server.Mode != "release",
		GraphiQL: cfg.Server.Mode != "release",
	})

	graphqlGroup := r.Group("/graphql")
	graphqlGroup.Use(authMiddleware.Identify())
	graphqlGroup.POST("", gin.WrapH(h))
	graphqlGroup.GET("", gin.WrapH(h))

	return r
}
