package usecase

import (
	"cinema-users/internal/data/repository"
	"cinema-users/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		User: NewUserService(
			repo.User,
			utils.NewBcryptHasher(config.Security.BcryptCost),
			utils.NewSystemClock(),
			log,
		),
	}
}
