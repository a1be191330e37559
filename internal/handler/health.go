package handler

import (
	"net/http"

	"github.com/GrigorasVictor/HealthCare-AI/internal/model"

	"github.com/gin-gonic/gin"
)

func Health(service, version string) gin.HandlerFunc {
	resp := model.HealthResponse{Status: "ok", Service: service, Version: version}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, resp)
	}
}
