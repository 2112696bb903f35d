package adaptor

import (
	"cinema-users/internal/usecase"
	"cinema-users/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth *AuthHandler
	User *UserHandler
}

func NewHandler(service *usecase.Service, tokens *utils.TokenIssuer, log *zap.Logger) *Handler {
	return &Handler{
		Auth: NewAuthHandler(service.User, tokens, log),
		User: NewUserHandler(service.User, log),
	}
}
