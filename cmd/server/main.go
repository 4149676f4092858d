package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files in local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/flight-itinerary-search/internal/config"
	"github.com/iliyamo/flight-itinerary-search/internal/database"
	"github.com/iliyamo/flight-itinerary-search/internal/handler"
	"github.com/iliyamo/flight-itinerary-search/internal/middleware"
	"github.com/iliyamo/flight-itinerary-search/internal/queue"
	"github.com/iliyamo/flight-itinerary-search/internal/repository"
	"github.com/iliyamo/flight-itinerary-search/internal/router"
	"github.com/iliyamo/flight-itinerary-search/internal/search"
	queue_publisher "github.com/iliyamo/flight-itinerary-search/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("failed to connect to schedule store: %v", err)
	}
	defer db.Close()

	flightRepo := repository.NewFlightRepo(db)
	airportRepo := repository.NewAirportRepo(db)

	searcher := search.NewSearcher(flightRepo, airportRepo, search.Config{
		MinConnection:        cfg.Search.MinConnection,
		MaxConnection:        cfg.Search.MaxConnection,
		ConcurrentLegLookups: cfg.Search.ConcurrentLegLookups,
	})

	searchHandler := handler.NewSearchHandler(searcher, queue_publisher.New())
	flightHandler := handler.NewFlightHandler(flightRepo, airportRepo)
	airportHandler := handler.NewAirportHandler(airportRepo)

	// Rate limiting degrades gracefully: no redis means no limiter.
	var limit echo.MiddlewareFunc
	if rdb := config.NewRedisClient(); rdb != nil {
		limit = middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	} else {
		log.Printf("redis unavailable; search rate limiting disabled")
	}

	// Background consumer appends search.performed events to logs/search.log.
	go func() {
		if err := queue.StartSearchConsumer(); err != nil {
			log.Printf("search consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterSearch(e, searchHandler, limit)
	router.RegisterBrowse(e, flightHandler, airportHandler)
	router.RegisterOps(e, flightHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
