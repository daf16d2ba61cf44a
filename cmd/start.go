/*
Copyright © 2025 booklyhq
*/
package cmd

import (
	"context"
	"log"

	"github.com/booklyhq/support-be/config"
	"github.com/booklyhq/support-be/database"
	"github.com/booklyhq/support-be/handler"
	"github.com/booklyhq/support-be/middleware"
	"github.com/booklyhq/support-be/pkg/logger"
	"github.com/booklyhq/support-be/repository"
	"github.com/booklyhq/support-be/service"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the support server",
	Long:  `Starts the HTTP server with the query pipeline, CRUD endpoints, analytics and the chat client.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		logger.Init(cfg.LogLevel)

		mongoClient, err := database.NewMongoClient(cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to create MongoDB client: %v", err)
		}
		if err := mongoClient.Ping(context.Background(), nil); err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		db := mongoClient.Database(cfg.MongoDatabase)
		if err := database.EnsureIndexes(context.Background(), db); err != nil {
			zlog.Warn().Err(err).Msg("index creation failed, text search may be degraded")
		}

		// init repos
		orderRepo := repository.NewOrderRepo(db.Collection(database.OrdersCollection))
		knowledgeRepo := repository.NewKnowledgeRepo(db.Collection(database.KnowledgeCollection))

		// The AI service stays nil without a credential; the query pipeline
		// reports that as a configuration error per request instead of
		// refusing to start.
		var aiService service.AIService
		switch cfg.AIProvider {
		case "openai":
			if cfg.OpenAIAPIKey != "" {
				aiService, err = service.NewOpenAIService(cfg.OpenAIEndpoint, cfg.OpenAIAPIKey, cfg.OpenAIModel)
				if err != nil {
					log.Fatalf("Failed to create OpenAI service: %v", err)
				}
			}
		default:
			if cfg.GeminiAPIKey != "" {
				aiService, err = service.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
				if err != nil {
					log.Fatalf("Failed to create Gemini service: %v", err)
				}
			}
		}
		if aiService == nil {
			zlog.Warn().Str("provider", cfg.AIProvider).Msg("no generation API key configured")
		}

		var redisClient *redis.Client
		if cfg.RedisAddr != "" {
			redisClient = redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
			})
			if err := redisClient.Ping(context.Background()).Err(); err != nil {
				zlog.Warn().Err(err).Msg("redis unavailable, analytics caching disabled")
				redisClient = nil
			}
		}

		// init services
		queryService := service.NewQueryService(orderRepo, knowledgeRepo, aiService, cfg.GenerateTimeout())
		orderService := service.NewOrderService(orderRepo)
		knowledgeService := service.NewKnowledgeService(knowledgeRepo)
		analyticsService := service.NewAnalyticsService(orderRepo, knowledgeRepo, redisClient, cfg.AnalyticsCacheTTL())
		wsService := service.NewWebSocketService(queryService)

		// init handlers
		corsHandler := handler.NewCorsHandler()
		queryHandler := handler.NewQueryHandler(queryService)
		orderHandler := handler.NewOrderHandler(orderService)
		knowledgeHandler := handler.NewKnowledgeHandler(knowledgeService)
		analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
		healthHandler := handler.NewHealthHandler(mongoClient)
		loginHandler := handler.NewLoginHandler(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminJWTSecret)

		// Setup Gin router
		router := gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.RequestLogger())
		router.Use(corsHandler.CorsMiddleware)

		api := router.Group("/api")
		api.POST("/login", loginHandler.HandleLogin)
		api.GET("/health", healthHandler.HandleHealth)

		api.POST("/query", queryHandler.HandleQuery)
		api.POST("/query/feedback", queryHandler.HandleFeedback)

		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.HandleList)
			orders.GET("/stats/overview", orderHandler.HandleStats)
			orders.GET("/:id", orderHandler.HandleGet)
		}
		knowledge := api.Group("/knowledge")
		{
			knowledge.GET("", knowledgeHandler.HandleList)
			knowledge.GET("/search", knowledgeHandler.HandleSearch)
			knowledge.GET("/:id", knowledgeHandler.HandleGet)
			knowledge.POST("/:id/helpful", knowledgeHandler.HandleHelpful)
		}
		analytics := api.Group("/analytics")
		{
			analytics.GET("/dashboard", analyticsHandler.HandleDashboard)
			analytics.GET("/customers", analyticsHandler.HandleCustomers)
		}

		// Mutating routes require the admin token
		admin := api.Group("/")
		admin.Use(middleware.AdminAuth(cfg.AdminJWTSecret))
		{
			admin.POST("/orders", orderHandler.HandleCreate)
			admin.PUT("/orders/:id", orderHandler.HandleUpdate)
			admin.DELETE("/orders/:id", orderHandler.HandleCancel)
			admin.POST("/knowledge", knowledgeHandler.HandleCreate)
			admin.PUT("/knowledge/:id", knowledgeHandler.HandleUpdate)
			admin.DELETE("/knowledge/:id", knowledgeHandler.HandleDelete)
		}

		router.GET("/ws/chat", func(c *gin.Context) {
			wsService.HandleChat(c.Writer, c.Request)
		})

		router.Static("/chat", cfg.StaticDir)
		router.GET("/", func(c *gin.Context) {
			c.File(cfg.StaticDir + "/index.html")
		})

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
