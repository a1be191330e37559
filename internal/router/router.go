package router

import (
	"log/slog"

	"github.com/GrigorasVictor/HealthCare-AI/internal/config"
	"github.com/GrigorasVictor/HealthCare-AI/internal/handler"
	"github.com/GrigorasVictor/HealthCare-AI/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const serviceName = "healthcare-mock"

// New builds the engine with the mock routes mounted under cfg.Server.Prefix.
func New(cfg *config.Config, log *slog.Logger, mockH *handler.MockHandler, version string) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadBytes()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	r.Use(cors.New(corsConfig(cfg.CORS)))

	r.GET("/health", handler.Health(serviceName, version))

	api := r.Group(cfg.Server.Prefix)
	{
		api.GET("/status", mockH.Status)
		api.POST("/send", mockH.Send)
		api.POST("/calendar", mockH.Calendar)
	}

	return r
}

func corsConfig(c config.CORSConfig) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}
	if len(c.AllowOrigins) == 1 && c.AllowOrigins[0] == "*" {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = c.AllowOrigins
	}
	return cc
}
