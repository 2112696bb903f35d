package adaptor

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"cinema-users/internal/dto/request"
	"cinema-users/internal/dto/response"
	"cinema-users/internal/usecase"
	"cinema-users/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed: "+utils.FormatValidationErrors(validationErrors), validationErrors)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create user")
		return
	}

	utils.ResponseCreated(w, result.Message, result)
}

// GetAllUsers handles GET /api/users?page=0&limit=10
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.PaginatedRequest{
		Page:  utils.ParseInt(query.Get("page"), 0, 0),
		Limit: utils.ParseInt(query.Get("limit"), defaultLimit, 1),
	}
	if req.Limit > maxLimit {
		req.Limit = maxLimit
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed: "+utils.FormatValidationErrors(validationErrors), validationErrors)
		return
	}

	// page*limit must fit the store's skip.
	if int64(req.Page) > math.MaxInt64/int64(req.Limit) {
		utils.ResponseBadRequest(w, "Page is out of range", nil)
		return
	}

	users, err := h.service.ListAll(r.Context(), req.Page, req.Limit)
	if err != nil {
		h.handleServiceError(w, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", response.NewPaginatedResponse(users, req.Page, req.Limit))
}

// GetProfile handles GET /api/users/profile for the authenticated user.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	h.writeProfile(w, r, userID)
}

// GetProfileByID handles GET /api/users/{id}/profile
func (h *UserHandler) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	h.writeProfile(w, r, userID)
}

func (h *UserHandler) writeProfile(w http.ResponseWriter, r *http.Request, userID string) {
	profiles, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	if len(profiles) == 0 {
		utils.ResponseNotFound(w, usecase.ErrUserNotFound.Error())
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profiles[0])
}

func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, usecase.ErrInvalidID.Error(), nil)

	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, "Password is too long", nil)

	case errors.Is(err, usecase.ErrUserNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
