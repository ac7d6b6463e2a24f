package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "book-agent/internal/chat/delivery/http"
	"book-agent/internal/middleware"
	"book-agent/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Rate limiting: production profile (%d/min, burst %d)", srv.rateLimit.PerMinute, srv.rateLimit.Burst)
	} else {
		srv.l.Infof(ctx, "Rate limiting: %s profile (%d/min, burst %d)", srv.environment, srv.rateLimit.PerMinute, srv.rateLimit.Burst)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	chatHTTP.RegisterRoutes(api, srv.chatHandler)
	srv.l.Infof(ctx, "Chat route registered at POST /api/v1/chat (store backend: %s)", srv.availability.Backend)
}
