package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/justsurfingit/job-board/internal/events"
	"github.com/justsurfingit/job-board/internal/logger"
	"github.com/justsurfingit/job-board/internal/services"
)

// RouterDeps is everything the HTTP layer needs.
type RouterDeps struct {
	Logger          logger.Logger
	Jobs            *services.JobService
	Extractor       *services.ExtractorService
	Applications    *services.ApplicationService
	Exporter        *services.ExportService
	Broker          *events.Broker
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
	// AllowedOrigins applies only when AllowAllOrigins is false. Empty allows any origin.
	AllowAllOrigins bool
	AllowedOrigins  []string
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(d RouterDeps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = logger.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(d.Logger))

	config := cors.DefaultConfig()
	if d.AllowAllOrigins || len(d.AllowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = d.AllowedOrigins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	jobHandler := NewJobHandler(d.Jobs, d.Extractor, d.Exporter)
	appHandler := NewApplicationHandler(d.Applications)

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck(d.Jobs))

		// Job Routes
		api.GET("/jobs", jobHandler.ListJobs)
		api.GET("/jobs/filtered", jobHandler.ListFilteredJobs)
		api.GET("/jobs/search", jobHandler.SearchJobs)
		api.POST("/jobs/extract", jobHandler.ParseJob)
		api.POST("/jobs", jobHandler.CreateJob)
		api.GET("/jobs/:id", jobHandler.GetJob)
		api.PUT("/jobs/:id", jobHandler.UpdateJob)
		api.DELETE("/jobs/:id", jobHandler.DeleteJob)

		api.POST("/jobs/:id/apply", appHandler.Apply)
		api.GET("/jobs/:id/applications", appHandler.ListApplications)

		api.GET("/filter", jobHandler.GetFilter)
		api.PUT("/filter", jobHandler.SetFilter)

		admin := api.Group("/admin")
		admin.GET("/stats", jobHandler.Stats)
		admin.GET("/jobs/export", jobHandler.ExportJobs)

		if d.Broker != nil {
			api.GET("/events", NewEventsHandler(d.Broker).Stream)
		}
	}

	return r
}
