package main

import (
	"log"
	"net/http"

	"fethink/config"
	"fethink/content"
	"fethink/controllers"
	"fethink/middlewares"
	"fethink/routes"
	"fethink/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if cfg.SecretGenerated() {
		logger.Warn("COOKIE_SECRET not set; generated a fresh secret, previously issued sessions are now invalid")
	}

	pack, err := content.Load()
	if err != nil {
		logger.Fatal("failed to load exercise content", zap.Error(err))
	}

	services.InitRubricService(pack)
	controllers.InitExerciseControllers(cfg, pack, logger)

	router := setupRouter(cfg, logger)
	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func setupRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger(logger))
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Cookie auth needs credentialed CORS; allow the configured frontend
	// origin, falling back to local dev servers.
	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if cfg.FrontendURL != "" {
		origins = []string{cfg.FrontendURL}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	routes.SetupExerciseRoutes(router, cfg)

	// Static exercise page; everything the API does not claim falls through
	// to the public directory.
	router.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.PublicDir))))

	return router
}
