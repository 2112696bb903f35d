// main.go
package main

import (
	"context"
	"log"
	"time"

	"cinema-users/cmd"
	"cinema-users/internal/data/repository"
	"cinema-users/internal/wire"
	"cinema-users/pkg/database"
	"cinema-users/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig(".env")
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
		zap.String("db_driver", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	var repos *repository.Repository
	switch config.Database.Driver {
	case utils.DriverPostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to postgres", zap.Error(err))
		}
		defer db.Close()
		repos = repository.NewPgRepository(db, logger)

	default:
		mongoDB, err := database.InitMongo(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to mongo", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mongoDB.Close(ctx); err != nil {
				logger.Warn("Failed to disconnect mongo", zap.Error(err))
			}
		}()
		repos = repository.NewMongoRepository(mongoDB.DB, logger)
	}

	logger.Info("Database connected successfully")

	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
