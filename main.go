package main

import (
	"log"

	"fablab-booking/cmd"
	"fablab-booking/internal/data/repository"
	"fablab-booking/internal/events"
	"fablab-booking/internal/wire"
	"fablab-booking/pkg/cache"
	"fablab-booking/pkg/database"
	"fablab-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected")

	// Both are optional collaborators: a nil cache or publisher degrades to
	// uncached reads and unsent notifications, never to a failed request.
	c := cache.NewCache(config.Redis, logger)
	publisher := events.NewPublisher(config.Broker.URL, logger)

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, config, c, publisher, logger)

	cmd.APIServer(app.Router, config.App.Port, logger)
}
