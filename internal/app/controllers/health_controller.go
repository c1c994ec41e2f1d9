package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports process liveness
func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
