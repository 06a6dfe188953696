package app

import (
	"github.com/gin-gonic/gin"

	"github.com/Sneha-8765/task-manager/internal/config"
	"github.com/Sneha-8765/task-manager/internal/handlers"
	"github.com/Sneha-8765/task-manager/internal/service"
	"github.com/Sneha-8765/task-manager/internal/storage"
)

// Setup registers all routes on the given engine. The route table is the
// explicit contract the frontend codes against.
func Setup(r *gin.Engine, cfg config.Config, store *storage.Store) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))

	api := r.Group("/api")

	authSvc := service.NewAuthService(store, []byte(cfg.Token.SignKey), cfg.Token.TTL.Duration(), nil)
	authHandler := handlers.NewAuthHandler(authSvc)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/reset-demo-data", authHandler.ResetDemoData)

	taskSvc := service.NewTaskService(store, nil)
	taskHandler := handlers.NewTaskHandler(taskSvc)
	api.GET("/tasks", taskHandler.List)
	api.POST("/tasks", taskHandler.Create)
	api.PUT("/tasks/:id", taskHandler.Update)
	api.DELETE("/tasks/:id", taskHandler.Delete)
	api.GET("/dashboard/stats", taskHandler.Stats)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Task Manager Mock API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"health":  "/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}
