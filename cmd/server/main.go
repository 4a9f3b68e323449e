package main

import (
	"log"
	"strconv"
	"time"

	"nexustap/config"
	"nexustap/controllers"
	"nexustap/db"
	"nexustap/internal/ratelimit"
	"nexustap/middlewares"
	"nexustap/routes"
	"nexustap/services"
	"nexustap/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env values feed the environment overrides in config.LoadConfig
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	if cfg.Redis.Addr != "" {
		if err := ratelimit.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Connected to Redis, rate limiting enabled")
	}

	ledger := services.NewLedger(store, services.NewDevBroadcaster(), websocket.Broadcast)
	controllers.Init(ledger, cfg)

	ledger.StartLeaderboardBroadcast(30 * time.Second)

	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// openStore picks the ledger backend from config: the JSON file store by
// default, MongoDB when configured
func openStore(cfg *config.Config) (db.Store, error) {
	if cfg.Store.Driver == "mongo" {
		store, err := db.NewMongoStore(cfg.Store.MongoURI)
		if err != nil {
			return nil, err
		}
		log.Println("Connected to MongoDB")
		return store, nil
	}
	log.Printf("Using file store at %s", cfg.Store.Path)
	return db.NewFileStore(cfg.Store.Path), nil
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	origins := cfg.CORS.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		api.GET("/leaderboard", routes.GetLeaderboardRouteHandler)
		api.GET("/leaderboard/compact", routes.GetCompactLeaderboardRouteHandler)
		api.GET("/user/:address", routes.GetUserRouteHandler)

		// Taps burst up to the full energy bar; everything else is occasional
		api.POST("/user/:address", middlewares.RateLimit(10), routes.UpdateUserPointsRouteHandler)
		api.POST("/user/:address/tap", middlewares.RateLimit(150), routes.TapRouteHandler)
		api.POST("/user/:address/claim", middlewares.RateLimit(10), routes.ClaimTapsRouteHandler)
		api.POST("/user/:address/daily", middlewares.RateLimit(10), routes.ClaimDailyRouteHandler)
		api.POST("/user/:address/bridge", middlewares.RateLimit(10), routes.BridgeRouteHandler)
	}

	// Live score and leaderboard events
	router.GET("/ws", websocket.WebsocketHandler)

	return router
}
