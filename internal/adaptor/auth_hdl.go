package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinema-users/internal/dto/request"
	"cinema-users/internal/dto/response"
	"cinema-users/internal/usecase"
	"cinema-users/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.UserService
	tokens  *utils.TokenIssuer
	log     *zap.Logger
}

func NewAuthHandler(service usecase.UserService, tokens *utils.TokenIssuer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		tokens:  tokens,
		log:     log,
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed: "+utils.FormatValidationErrors(validationErrors), validationErrors)
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.handleServiceError(w, err, "issue token")
		return
	}

	utils.ResponseSuccess(w, "Login successful", response.AuthResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		User:      response.UserToResponse(user),
	})
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrPasswordMismatch):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
