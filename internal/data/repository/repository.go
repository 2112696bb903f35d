package repository

import (
	"cinema-users/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Repository struct {
	User UserRepository
}

func NewMongoRepository(db *mongo.Database, log *zap.Logger) *Repository {
	return &Repository{
		User: NewUserMongoRepository(db, log),
	}
}

func NewPgRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User: NewUserPgRepository(db, log),
	}
}
