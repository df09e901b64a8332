package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-board/internal/services"
)

// HealthCheck reports liveness and whether the seed jobs have loaded.
func HealthCheck(jobs *services.JobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"loading": jobs.Loading(),
			"jobs":    len(jobs.ListAll()),
		})
	}
}
