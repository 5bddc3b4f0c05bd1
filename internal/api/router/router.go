package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cuongbtq/career-tracker/internal/api/handler"
)

// Config holds router level settings
type Config struct {
	ServiceName  string
	AllowOrigins []string
}

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies, cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(MetricsMiddleware())
	r.Use(CORSMiddleware(cfg.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "healthy",
			"service":      cfg.ServiceName,
			"applications": deps.Store.Len(),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	applicationHandler := handler.NewApplicationHandler(deps)
	statsHandler := handler.NewStatsHandler(deps)
	authHandler := handler.NewAuthHandler(deps)
	resumeHandler := handler.NewResumeHandler(deps)
	activityHandler := handler.NewActivityHandler(deps)

	v1 := r.Group("/api/v1")
	{
		applications := v1.Group("/applications")
		{
			applications.POST("", applicationHandler.CreateApplication)
			applications.GET("", applicationHandler.ListApplications)
			applications.GET("/:id", applicationHandler.GetApplication)
			applications.PUT("/:id", applicationHandler.UpdateApplication)
			applications.PATCH("/:id/status", applicationHandler.UpdateStatus)
			applications.DELETE("/:id", applicationHandler.DeleteApplication)
		}

		stats := v1.Group("/stats")
		{
			stats.GET("/aggregates", statsHandler.GetAggregates)
			stats.GET("/overview", statsHandler.GetOverview)
			stats.GET("/analytics", statsHandler.GetAnalytics)
			stats.GET("/reports", statsHandler.GetReport)
		}

		v1.GET("/activity", activityHandler.ListActivity)

		resumes := v1.Group("/resumes")
		{
			resumes.GET("", resumeHandler.ListResumes)
			resumes.POST("/:id/default", resumeHandler.SetDefaultResume)
			resumes.DELETE("/:id", resumeHandler.DeleteResume)
		}

		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}
	}

	return r
}
