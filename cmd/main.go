package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fightpicks/internal/auth"
	"fightpicks/internal/config"
	"fightpicks/internal/database"
	"fightpicks/internal/events"
	"fightpicks/internal/handlers"
	"fightpicks/internal/repository"
	"fightpicks/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize JWT
	auth.InitJWT(cfg.App.JWTSecret)

	// Connect to database
	if err := database.Connect(cfg.GetDSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Load fight card template
	card, err := services.LoadFightCard(cfg.App.CardFile)
	if err != nil {
		log.Fatalf("Failed to load fight card: %v", err)
	}

	// Initialize repository and event hub
	repo := repository.NewRepository(database.GetDB())
	hub := events.NewHub()

	// Initialize services
	gameService := services.NewGameService(repo, hub, card)
	pickService := services.NewPickService(repo)
	resultService := services.NewResultService(repo, hub, cfg.App.StrictOrder)
	leaderboardService := services.NewLeaderboardService(repo)
	progressionService := services.NewProgressionService(repo)

	if cfg.App.StrictOrder {
		log.Println("Strict scoring order enabled: results only accepted for the current fight")
	}

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(gameService, cfg.Server.FrontendURL)
	pickHandler := handlers.NewPickHandler(pickService)
	resultHandler := handlers.NewResultHandler(resultService, progressionService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	eventsHandler := handlers.NewEventsHandler(hub)

	// Set up Gin router
	router := gin.Default()

	// CORS middleware
	allowedOrigins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Public game routes (join code in the path)
	router.POST("/api/games", gameHandler.CreateGame)
	router.POST("/api/games/join", gameHandler.JoinGame)
	router.GET("/api/games/:code", gameHandler.GetGame)
	router.GET("/api/games/:code/qr", gameHandler.GetJoinQR)
	router.GET("/api/time", gameHandler.ServerTime)

	// Public live views (game id in the path): the leaderboard hangs on a
	// TV, every phone watches the event stream
	router.GET("/api/live/:id/leaderboard", leaderboardHandler.GetLeaderboard)
	router.GET("/api/live/:id/progress", resultHandler.GetProgress)
	router.GET("/api/live/:id/events", eventsHandler.StreamEvents)

	// Player routes (authenticated)
	api := router.Group("/api")
	api.Use(auth.AuthMiddleware())
	{
		api.POST("/picks", pickHandler.SubmitPicks)
		api.GET("/picks", pickHandler.GetMyPicks)
		api.PATCH("/players/me/ready", gameHandler.UpdateReady)
		api.PATCH("/players/me/photo", gameHandler.UpdatePhoto)

		// Host routes
		host := api.Group("")
		host.Use(auth.HostOnly())
		{
			host.POST("/games/start", gameHandler.StartGame)
			host.POST("/fights/:id/result", resultHandler.RecordResult)
		}
	}

	// Start server
	port := cfg.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
