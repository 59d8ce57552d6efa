package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/cache"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/config"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/database"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/handler"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/middleware"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/service"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/worker"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/pkg/strategy"
)

// main is the application entrypoint for the campaign console API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting campaign hub api")

	utils.SetJWTSecret(cfg.JWTSecret)

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	profileCache := cache.NewProfileCache(redisClient)
	spendCache := cache.NewSpendCache(redisClient)

	// 4. Initialize strategy client
	strategyClient := strategy.NewClient(cfg.Strategy.BaseURL, cfg.Strategy.APIKey, cfg.Strategy.Timeout)

	// 5. Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)
	relationshipRepo := repository.NewRelationshipRepository(db)
	listRepo := repository.NewListEntryRepository(db)
	capRepo := repository.NewFrequencyCapRepository(db)
	metaRepo := repository.NewMetaCampaignRepository(db)
	googleRepo := repository.NewGoogleCampaignRepository(db)
	dealRepo := repository.NewPMPDealRepository(db)
	impressionRepo := repository.NewImpressionRepository(db)

	// 6. Initialize services
	authSvc := service.NewAuthService(userRepo, profileRepo)
	profileSvc := service.NewProfileService(profileRepo, relationshipRepo, profileCache)
	adminSvc := service.NewAdminService(userRepo, profileRepo, profileCache)
	campaignSvc := service.NewCampaignService(campaignRepo, strategyClient)
	commissionSvc := service.NewCommissionService(commissionRepo)
	relationshipSvc := service.NewRelationshipService(relationshipRepo, profileRepo, campaignRepo)
	listSvc := service.NewListService(listRepo)
	capSvc := service.NewCapService(capRepo, campaignRepo)
	platformSvc := service.NewPlatformService(metaRepo, googleRepo)
	dealSvc := service.NewDealService(dealRepo)
	statsSvc := service.NewStatsService(campaignRepo, impressionRepo, spendCache)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:       handler.NewHealthHandler(db, redisClient),
		Auth:         handler.NewAuthHandler(authSvc),
		Profile:      handler.NewProfileHandler(profileSvc),
		Admin:        handler.NewAdminHandler(adminSvc, commissionSvc),
		Campaign:     handler.NewCampaignHandler(campaignSvc),
		List:         handler.NewListHandler(listSvc),
		Cap:          handler.NewCapHandler(capSvc),
		Platform:     handler.NewPlatformHandler(platformSvc),
		Deal:         handler.NewDealHandler(dealSvc),
		Relationship: handler.NewRelationshipHandler(relationshipSvc),
		Stats:        handler.NewStatsHandler(statsSvc),
	}

	// 8. Initialize middleware
	authMw := middleware.NewAuthMiddleware(profileRepo, profileCache)

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, cfg, handlers, authMw)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	go worker.NewSpendWorker(impressionRepo, spendCache, cfg.Worker.SpendRefreshInterval).Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Profile      *handler.ProfileHandler
	Admin        *handler.AdminHandler
	Campaign     *handler.CampaignHandler
	List         *handler.ListHandler
	Cap          *handler.CapHandler
	Platform     *handler.PlatformHandler
	Deal         *handler.DealHandler
	Relationship *handler.RelationshipHandler
	Stats        *handler.StatsHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, cfg *config.Config, handlers *Handlers, authMw *middleware.AuthMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Public auth routes
	router.POST("/v1/auth/register", handlers.Auth.Register)
	router.POST("/v1/auth/login", handlers.Auth.Login)

	// Tracking ingest: called by ad servers, not console users.
	router.POST("/v1/tracking/impressions", handlers.Stats.TrackImpression)

	// Authenticated console routes
	api := router.Group("/v1")
	api.Use(authMw.Handle())
	{
		api.GET("/profile", handlers.Profile.GetProfile)
		api.PUT("/profile", handlers.Profile.UpdateProfile)

		// Campaigns
		api.POST("/campaigns", handlers.Campaign.CreateCampaign)
		api.POST("/campaigns/strategy", handlers.Campaign.CreateCampaignWithStrategy)
		api.GET("/campaigns", handlers.Campaign.ListCampaigns)
		api.GET("/campaigns/:id", handlers.Campaign.GetCampaign)
		api.PATCH("/campaigns/:id/status", handlers.Campaign.UpdateCampaignStatus)
		api.PATCH("/campaigns/:id/budget", handlers.Campaign.UpdateCampaignBudget)
		api.DELETE("/campaigns/:id", handlers.Campaign.DeleteCampaign)

		// Targeting lists
		api.POST("/lists", handlers.List.CreateEntry)
		api.POST("/lists/bulk", handlers.List.BulkCreateEntries)
		api.GET("/lists", handlers.List.ListEntries)
		api.PUT("/lists/:id", handlers.List.UpdateEntry)
		api.PATCH("/lists/:id/active", handlers.List.SetEntryActive)
		api.DELETE("/lists/:id", handlers.List.DeleteEntry)

		// Frequency caps
		api.POST("/frequency-caps", handlers.Cap.CreateCap)
		api.GET("/frequency-caps", handlers.Cap.ListCaps)
		api.PUT("/frequency-caps/:id", handlers.Cap.UpdateCap)
		api.DELETE("/frequency-caps/:id", handlers.Cap.DeleteCap)

		// Platform campaign mirrors
		api.POST("/meta-campaigns", handlers.Platform.CreateMetaCampaign)
		api.GET("/meta-campaigns", handlers.Platform.ListMetaCampaigns)
		api.PUT("/meta-campaigns/:id", handlers.Platform.UpdateMetaCampaign)
		api.DELETE("/meta-campaigns/:id", handlers.Platform.DeleteMetaCampaign)
		api.POST("/google-campaigns", handlers.Platform.CreateGoogleCampaign)
		api.GET("/google-campaigns", handlers.Platform.ListGoogleCampaigns)
		api.PUT("/google-campaigns/:id", handlers.Platform.UpdateGoogleCampaign)
		api.DELETE("/google-campaigns/:id", handlers.Platform.DeleteGoogleCampaign)

		// PMP deals
		api.POST("/pmp-deals", handlers.Deal.CreateDeal)
		api.GET("/pmp-deals", handlers.Deal.ListDeals)
		api.GET("/pmp-deals/:id", handlers.Deal.GetDeal)
		api.PUT("/pmp-deals/:id", handlers.Deal.UpdateDeal)
		api.DELETE("/pmp-deals/:id", handlers.Deal.DeleteDeal)

		// Budget statuses
		api.GET("/stats/budget", handlers.Stats.GetBudgetStatuses)

		// Advertiser marketplace: the full platform directory, open to any
		// agency.
		api.GET("/advertisers", middleware.RequireRoles(models.RoleAgency, models.RoleAdmin), handlers.Profile.ListAdvertisers)

		// Agency routes: only the advertisers linked to the caller.
		agency := api.Group("/agency")
		agency.Use(middleware.RequireRoles(models.RoleAgency, models.RoleAdmin))
		{
			agency.GET("/advertisers", handlers.Profile.ListManagedAdvertisers)
			agency.GET("/advertisers/:id/campaigns", handlers.Relationship.ListAdvertiserCampaigns)
			agency.POST("/relationships", handlers.Relationship.CreateLink)
			agency.PATCH("/relationships/:id/active", handlers.Relationship.SetLinkActive)
		}

		// Admin console: role AND configured email, both checked per request.
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(cfg))
		{
			admin.GET("/users", handlers.Admin.ListUsers)
			admin.PUT("/users/:id/role", handlers.Admin.UpdateUserRole)
			admin.POST("/commissions", handlers.Admin.CreateCommission)
			admin.GET("/commissions", handlers.Admin.ListCommissions)
			admin.GET("/commissions/user/:id", handlers.Admin.ListUserCommissions)
			admin.PATCH("/commissions/:id/active", handlers.Admin.SetCommissionActive)
		}
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
