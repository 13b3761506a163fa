package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taskbuster/internal/middleware"
	"taskbuster/internal/model"
	taskHTTP "taskbuster/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery())

	mw := middleware.New(srv.l)
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS(srv.clientOrigin))
	srv.gin.Use(mw.RateLimit(srv.rateLimitRequests, srv.rateLimitWindow))

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS origin: %s (production)", srv.clientOrigin)
	} else {
		srv.l.Infof(ctx, "CORS origin: %s (%s)", srv.clientOrigin, srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api")
	taskHTTP.RegisterRoutes(api, srv.taskHandler)
	srv.l.Infof(ctx, "Task route registered at POST /api/task")

	return nil
}
