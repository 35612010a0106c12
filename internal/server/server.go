package server

import (
	"context"
	"log"
	"strings"
	"time"

	"craftvale.gg/communityapi/internal/config"
	"craftvale.gg/communityapi/internal/middleware"
	"craftvale.gg/communityapi/pkg/storage"

	achievementHttp "craftvale.gg/communityapi/internal/modules/achievement/delivery/http"
	achievementRepo "craftvale.gg/communityapi/internal/modules/achievement/repository"
	achievementService "craftvale.gg/communityapi/internal/modules/achievement/service"

	contentHttp "craftvale.gg/communityapi/internal/modules/content/delivery/http"
	contentRepo "craftvale.gg/communityapi/internal/modules/content/repository"
	contentService "craftvale.gg/communityapi/internal/modules/content/service"

	gatewayHttp "craftvale.gg/communityapi/internal/modules/gateway/delivery/http"
	gatewayRepo "craftvale.gg/communityapi/internal/modules/gateway/repository"
	gatewayService "craftvale.gg/communityapi/internal/modules/gateway/service"

	leaderboardHttp "craftvale.gg/communityapi/internal/modules/leaderboard/delivery/http"
	leaderboardRepo "craftvale.gg/communityapi/internal/modules/leaderboard/repository"
	leaderboardService "craftvale.gg/communityapi/internal/modules/leaderboard/service"

	notiHttp "craftvale.gg/communityapi/internal/modules/notification/delivery/http"
	notifRepo "craftvale.gg/communityapi/internal/modules/notification/repository"
	notifService "craftvale.gg/communityapi/internal/modules/notification/service"

	productHttp "craftvale.gg/communityapi/internal/modules/product/delivery/http"
	productRepo "craftvale.gg/communityapi/internal/modules/product/repository"
	productService "craftvale.gg/communityapi/internal/modules/product/service"

	profileHttp "craftvale.gg/communityapi/internal/modules/profile/delivery/http"
	profileRepo "craftvale.gg/communityapi/internal/modules/profile/repository"
	profileService "craftvale.gg/communityapi/internal/modules/profile/service"

	progressionHttp "craftvale.gg/communityapi/internal/modules/progression/delivery/http"
	progressionService "craftvale.gg/communityapi/internal/modules/progression/service"

	searchHttp "craftvale.gg/communityapi/internal/modules/search/delivery/http"
	searchService "craftvale.gg/communityapi/internal/modules/search/service"

	settingsHttp "craftvale.gg/communityapi/internal/modules/settings/delivery/http"
	settingsRepo "craftvale.gg/communityapi/internal/modules/settings/repository"
	settingsService "craftvale.gg/communityapi/internal/modules/settings/service"

	statsHttp "craftvale.gg/communityapi/internal/modules/stats/delivery/http"
	statsRepo "craftvale.gg/communityapi/internal/modules/stats/repository"
	statsService "craftvale.gg/communityapi/internal/modules/stats/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	meiliHost := cfg.MeiliSearchHost
	if !strings.HasPrefix(meiliHost, "http") {
		meiliHost = "http://" + meiliHost + ":7700"
	}
	meiliClient := meilisearch.New(meiliHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	searchSvc := searchService.NewSearchService(meiliClient)
	searchHandler := searchHttp.NewSearchHandler(searchSvc)

	// Achievement module. The catalog cache feeds the search index on refresh.
	achRepo := achievementRepo.NewAchievementRepository(db)
	catalogCache := achievementService.NewCatalogCache(achRepo, redisClient, searchSvc, cfg.CatalogCacheTTL)
	achievementSvc := achievementService.NewAchievementService(achRepo, catalogCache)
	achievementHandler := achievementHttp.NewAchievementHandler(achievementSvc)

	// Notification Module
	notificationRepository := notifRepo.NewNotificationRepository(db)
	notificationSvc := notifService.NewNotificationService(notificationRepository, redisClient)
	notificationHandler := notiHttp.NewNotificationHandler(notificationSvc)

	playerStatsRepo := statsRepo.NewPlayerStatsRepository(db)
	statsSvc := statsService.NewStatsService(playerStatsRepo)
	statsHandler := statsHttp.NewStatsHandler(statsSvc)

	profRepo := profileRepo.NewProfileRepository(db)
	profileSvc := profileService.NewProfileService(profRepo, imageStorage, notificationSvc)
	profileHandler := profileHttp.NewProfileHandler(profileSvc)

	// Progression Module keeps a per-user tracker over the modules above.
	progressionManager := progressionService.NewManager(catalogCache, achRepo, playerStatsRepo, profileSvc)
	progressionHandler := progressionHttp.NewProgressionHandler(progressionManager)

	lbRepo := leaderboardRepo.NewLeaderboardRepository(db)
	leaderboardSvc := leaderboardService.NewLeaderboardService(lbRepo)
	leaderboardHandler := leaderboardHttp.NewLeaderboardHandler(leaderboardSvc)

	prodRepo := productRepo.NewProductRepository(db)
	productSvc := productService.NewProductService(prodRepo, searchSvc)
	productHandler := productHttp.NewProductHandler(productSvc)

	if err := productSvc.RefreshSearchIndex(context.Background()); err != nil {
		log.Printf("Failed to index product catalog: %v", err)
	}

	gwRepo := gatewayRepo.NewGatewayRepository(db)
	gatewaySvc := gatewayService.NewGatewayService(gwRepo)
	gatewayHandler := gatewayHttp.NewGatewayHandler(gatewaySvc)

	settingRepo := settingsRepo.NewSettingRepository(db)
	settingSvc := settingsService.NewSettingService(settingRepo)
	settingHandler := settingsHttp.NewSettingHandler(settingSvc)

	cntRepo := contentRepo.NewContentRepository(db)
	contentSvc := contentService.NewContentService(cntRepo)
	contentHandler := contentHttp.NewContentHandler(contentSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware()

	api := router.Group("/api")

	// Public routes (no auth required)
	api.GET("/content", contentHandler.GetSections)
	api.GET("/content/:slug", contentHandler.GetSectionBySlug)
	api.GET("/products", productHandler.GetStoreCatalog)
	api.GET("/products/:slug", productHandler.GetProductBySlug)
	api.GET("/gateways", gatewayHandler.GetEnabledGateways)
	api.GET("/settings", settingHandler.GetSettings)
	api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
	api.GET("/search", searchHandler.Search)
	api.GET("/achievements", authMiddleware.OptionalAuth(), achievementHandler.GetCatalog)
	api.GET("/profiles/:username", profileHandler.GetProfileByUsername)

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Admin routes
		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.POST("/achievements/refresh", achievementHandler.RefreshCatalog)
			adminGroup.GET("/gateways", gatewayHandler.GetAllGateways)
			adminGroup.PUT("/gateways/:slug", gatewayHandler.ToggleGateway)
			adminGroup.PUT("/settings/:key", settingHandler.SetSetting)
		}

		// Achievement routes
		protected.GET("/achievements/me", achievementHandler.GetMyAchievements)
		protected.PATCH("/achievements/:id/progress", achievementHandler.UpdateProgress)

		// Stats routes
		protected.GET("/stats/me", statsHandler.GetMyStats)
		protected.PATCH("/stats/me", statsHandler.UpdateMyStats)

		// Profile routes
		protected.GET("/profile/me", profileHandler.GetMyProfile)
		protected.PATCH("/profile/me", profileHandler.UpdateMyProfile)
		protected.POST("/profile/me/refresh", profileHandler.RefreshMyProfile)

		// Progression routes
		protected.GET("/me/progression", progressionHandler.GetProgression)
		protected.POST("/me/progression/refresh", progressionHandler.RefreshProgression)
		protected.PATCH("/me/progression/stats", progressionHandler.UpdateStats)
		protected.PATCH("/me/progression/profile", progressionHandler.UpdateProfile)
		protected.DELETE("/me/session", progressionHandler.Logout)

		// Notification routes
		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
