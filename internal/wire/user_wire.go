package wire

import (
	"cinema-users/internal/adaptor"
	"cinema-users/pkg/middleware"
	"cinema-users/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	tokens *utils.TokenIssuer,
	log *zap.Logger,
) {
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", userHandler.Create)     // POST /api/users
		r.Get("/", userHandler.GetAllUsers) // GET /api/users?page=0&limit=10
		r.Get("/{id}/profile", userHandler.GetProfileByID)

		r.With(middleware.Auth(tokens, log)).Get("/profile", userHandler.GetProfile)
	})
}
