package configuration

import (
	"context"
	"fmt"
	"time"

	"github.com/jmario91/GeneracionWidget-Back/internal/catalog"
	"github.com/jmario91/GeneracionWidget-Back/internal/db"
	"github.com/jmario91/GeneracionWidget-Back/internal/handler"
	"github.com/jmario91/GeneracionWidget-Back/internal/model"
	"github.com/jmario91/GeneracionWidget-Back/internal/repo"
	"github.com/jmario91/GeneracionWidget-Back/internal/service"
	"github.com/jmario91/GeneracionWidget-Back/internal/validation"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Container struct {
	UserHandler    handler.UserHandler
	CatalogHandler handler.CatalogHandler
	Config         Config
	Logger         *zap.Logger

	// private - for cleanup
	mongoClient *mongo.Database
}

func BuildContainer() (*Container, error) {
	config := LoadConfig()

	con, err := db.OpenConnection(config.Mongo.Uri, config.Mongo.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	mongoRepo := db.NewRepository[model.User](con, config.Mongo.UsersCollection)

	// email uniqueness is enforced by the storage layer
	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mongoRepo.EnsureUniqueIndex(indexCtx, "email"); err != nil {
		return nil, fmt.Errorf("failed to create unique index on email: %w", err)
	}

	catalogs := catalog.New()
	validator := validation.NewValidator(catalogs)

	userRepo := repo.NewUserRepository(con, mongoRepo, logger)
	userService := service.NewUserService(userRepo, validator, logger)
	userHandler := handler.NewUserHandler(userService)
	catalogHandler := handler.NewCatalogHandler(catalogs)

	return &Container{
		UserHandler:    userHandler,
		CatalogHandler: catalogHandler,
		Config:         *config,
		Logger:         logger,
		mongoClient:    con,
	}, nil
}

// Close gracefully shuts down all connections
func (c *Container) Close() error {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}

	if c.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.mongoClient.Client().Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to close MongoDB connection: %w", err)
		}
	}

	return nil
}
