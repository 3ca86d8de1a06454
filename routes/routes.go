package routes

import (
	"fethink/config"
	"fethink/controllers"
	"fethink/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupExerciseRoutes registers the public API and the session-guarded
// marking route.
func SetupExerciseRoutes(router *gin.Engine, cfg *config.Config) {
	router.GET("/health", controllers.Health)

	api := router.Group("/api")
	api.GET("/config", controllers.GetConfig)
	api.POST("/unlock", controllers.Unlock)
	api.POST("/logout", controllers.Logout)

	guarded := api.Group("/")
	guarded.Use(middlewares.RequireSession(cfg.SecretBytes()))
	guarded.POST("/mark", controllers.Mark)
}
