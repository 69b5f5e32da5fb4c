package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/joblinkhq/joblink/internal/auth"
	"github.com/joblinkhq/joblink/internal/cache"
	"github.com/joblinkhq/joblink/internal/config"
	"github.com/joblinkhq/joblink/internal/database"
	"github.com/joblinkhq/joblink/internal/handlers"
	"github.com/joblinkhq/joblink/internal/services"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// 3. Cache and sessions. Without Redis both fall back to in-process
	// stores, which is fine for a single instance.
	var listingCache cache.Store = cache.NewMemory()
	var sessions auth.SessionStore = auth.NewMemorySessionStore(cfg.SessionTTL)
	if cfg.RedisURL != "" {
		rdb, err := database.NewRedisClient(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to connect to redis: ", err)
		}
		listingCache = cache.NewRedis(rdb)
		sessions = auth.NewRedisSessionStore(rdb, cfg.SessionTTL)
	} else {
		log.Println("REDIS_URL not set, using in-memory cache and sessions")
	}

	// 4. Services
	authService := services.NewAuthService(db, sessions)
	profileService := services.NewProfileService(db)
	jobService := services.NewJobService(db)
	searchService := services.NewSearchService(db, listingCache, cfg.CacheTTL)
	applicationService := services.NewApplicationService(db)
	adminService := services.NewAdminService(db)
	dashboardService := services.NewDashboardService(db)

	// 5. Handlers
	h := &handlers.Handlers{
		Auth:        handlers.NewAuthHandler(authService, int(cfg.SessionTTL.Seconds())),
		Public:      handlers.NewPublicJobHandler(searchService),
		Application: handlers.NewApplicationHandler(applicationService),
		Company:     handlers.NewCompanyHandler(jobService, applicationService),
		Profile:     handlers.NewProfileHandler(profileService, authService),
		Admin:       handlers.NewAdminHandler(adminService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		Language:    handlers.NewLanguageHandler(sessions),
	}

	// 6. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	mw := auth.NewMiddleware(db, sessions)
	handlers.RegisterRoutes(r, mw, h)

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
