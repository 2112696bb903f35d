package usecase

import (
	"context"
	"errors"
	"fmt"

	"cinema-users/internal/data/entity"
	"cinema-users/internal/data/repository"
	"cinema-users/internal/dto/request"
	"cinema-users/internal/dto/response"
	"cinema-users/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	Create(ctx context.Context, req *request.CreateUserRequest) (*response.CreateUserResponse, error)
	// Authenticate returns the stored user, password hash included.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	ListAll(ctx context.Context, page, limit int) ([]response.UserResponse, error)
	GetProfile(ctx context.Context, userID string) ([]response.ProfileResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	hasher   utils.PasswordHasher
	clock    utils.Clock
	log      *zap.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	hasher utils.PasswordHasher,
	clock utils.Clock,
	log *zap.Logger,
) UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		clock:    clock,
		log:      log,
	}
}

// Create replaces the plaintext password with its hash and stores the user.
// Email uniqueness is left to the store.
func (us *userService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.CreateUserResponse, error) {
	hash, err := us.hasher.Hash(req.Password)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Base: entity.Base{
			CreatedAt: us.clock.Now(),
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Attributes:   req.Attributes,
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	us.log.Info("User created",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))

	return &response.CreateUserResponse{
		Success: true,
		Message: "user created successfully",
	}, nil
}

func (us *userService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		us.log.Warn("User not found for login", zap.String("email", email))
		return nil, ErrUserNotFound
	}

	if !us.hasher.Compare(password, user.PasswordHash) {
		us.log.Warn("Invalid password", zap.String("user_id", user.ID))
		return nil, ErrPasswordMismatch
	}

	us.log.Info("User authenticated", zap.String("user_id", user.ID))
	return user, nil
}

// ListAll returns the zero-based page of users in store order.
func (us *userService) ListAll(ctx context.Context, page, limit int) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAll(ctx, utils.CalculateSkip(page, limit), int64(limit))
	if err != nil {
		return nil, err
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	us.log.Debug("Users retrieved",
		zap.Int("count", len(users)),
		zap.Int("page", page),
		zap.Int("limit", limit),
	)

	return userResponses, nil
}

// GetProfile reads the clock once, so every ticket is compared against the
// same instant.
func (us *userService) GetProfile(ctx context.Context, userID string) ([]response.ProfileResponse, error) {
	now := us.clock.Now()

	profiles, err := us.userRepo.FindProfile(ctx, userID, now)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			us.log.Warn("Invalid user ID", zap.String("user_id", userID))
		}
		return nil, err
	}

	result := make([]response.ProfileResponse, len(profiles))
	for i, profile := range profiles {
		result[i] = response.ProfileToResponse(profile)
	}

	return result, nil
}
