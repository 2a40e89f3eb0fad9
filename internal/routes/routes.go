package routes

import (
	"net/http"
	"time"

	"github.com/civiclink/backend/internal/config"
	"github.com/civiclink/backend/internal/controllers"
	"github.com/civiclink/backend/internal/metrics"
	"github.com/civiclink/backend/internal/middleware"
	"github.com/civiclink/backend/internal/models"
	"github.com/civiclink/backend/internal/services"
	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

// SetupRoutes configures all application routes
func SetupRoutes(r *gin.Engine, cfg *config.Config, service *services.ComplaintService, m *metrics.Metrics) {
	complaintController := controllers.NewComplaintController(service, cfg.RecentLimit)
	userController := controllers.NewUserController(service)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"version":    Version,
			"complaints": service.GetDashboardAnalytics().TotalComplaints,
		})
	})
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	staff := models.DefaultStaff
	if cfg.DefaultAuthor != "" {
		staff.Name = cfg.DefaultAuthor
	}

	// API routes
	api := r.Group("/api/v1")
	api.Use(middleware.StaffMiddleware(cfg.JWTSecret, staff))
	api.Use(middleware.SimulatedLatency(cfg.SimulatedLatency))
	{
		complaints := api.Group("/complaints")
		{
			complaints.GET("", complaintController.ListComplaints)
			complaints.GET("/:id", complaintController.GetComplaint)
			complaints.PATCH("/:id", complaintController.UpdateComplaint)
			complaints.PUT("/:id", complaintController.UpdateComplaint)
			complaints.POST("/:id/comments", complaintController.AddComment)
		}

		// Analytics
		api.GET("/analytics", complaintController.GetAnalytics)
		api.GET("/dashboard", complaintController.GetDashboard)

		// Users
		users := api.Group("/users")
		{
			users.GET("", userController.GetUsers)
			users.GET("/me", userController.GetCurrentStaff)
			users.GET("/:id", userController.GetUser)
		}

		api.GET("/meta/enums", complaintController.GetEnums)
	}
}

// NewRouter builds the engine with the middleware chain the server uses.
func NewRouter(cfg *config.Config, service *services.ComplaintService, m *metrics.Metrics) *gin.Engine {
	r := gin.New()

	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(middleware.CustomLoggerMiddleware())
	r.Use(middleware.MetricsMiddleware(m))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(gin.Recovery())

	SetupRoutes(r, cfg, service, m)
	return r
}
