package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-users/internal/data/entity"
	"cinema-users/internal/data/repository"
	"cinema-users/internal/dto/request"
	"cinema-users/internal/usecase"
	"cinema-users/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepoMock) FindAll(ctx context.Context, skip, limit int64) ([]*entity.User, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *UserRepoMock) FindProfile(ctx context.Context, userID string, now time.Time) ([]*entity.UserProfile, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserProfile), args.Error(1)
}

type failingHasher struct{ err error }

func (h failingHasher) Hash(string) (string, error) { return "", h.err }
func (h failingHasher) Compare(string, string) bool { return false }

// memoryUserRepo keeps created users so create/authenticate can be
// exercised end to end.
type memoryUserRepo struct {
	UserRepoMock
	users []*entity.User
}

func (m *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	stored := *user
	stored.ID = "id-" + user.Email
	m.users = append(m.users, &stored)
	user.ID = stored.ID
	return nil
}

func (m *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

var snapshot = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newService(repo repository.UserRepository, hasher utils.PasswordHasher) usecase.UserService {
	return usecase.NewUserService(repo, hasher, utils.FixedClock(snapshot), zap.NewNop())
}

func TestUserService_CreateStoresHash(t *testing.T) {
	repo := new(UserRepoMock)
	svc := newService(repo, utils.NewBcryptHasher(bcrypt.MinCost))

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "a@x.com" &&
			u.PasswordHash != "" &&
			u.PasswordHash != "secret" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")) == nil &&
			u.CreatedAt.Equal(snapshot) &&
			u.Attributes["city"] == "Jakarta"
	})).Return(nil).Once()

	resp, err := svc.Create(context.Background(), &request.CreateUserRequest{
		Email:      "a@x.com",
		Password:   "secret",
		Attributes: map[string]any{"city": "Jakarta"},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "user created successfully", resp.Message)
	repo.AssertExpectations(t)
}

func TestUserService_CreatePropagatesErrors(t *testing.T) {
	hashErr := errors.New("hash boom")
	storeErr := errors.New("insert boom")

	tests := []struct {
		name    string
		hasher  utils.PasswordHasher
		setup   func(r *UserRepoMock)
		wantErr error
	}{
		{
			name:    "hasher failure",
			hasher:  failingHasher{err: hashErr},
			setup:   func(r *UserRepoMock) {},
			wantErr: hashErr,
		},
		{
			name:   "store failure",
			hasher: utils.NewBcryptHasher(bcrypt.MinCost),
			setup: func(r *UserRepoMock) {
				r.On("Create", mock.Anything, mock.Anything).Return(storeErr).Once()
			},
			wantErr: storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			tt.setup(repo)
			svc := newService(repo, tt.hasher)

			resp, err := svc.Create(context.Background(), &request.CreateUserRequest{Email: "a@x.com", Password: "secret"})

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_CreateThenAuthenticate(t *testing.T) {
	repo := &memoryUserRepo{}
	svc := newService(repo, utils.NewBcryptHasher(bcrypt.MinCost))
	ctx := context.Background()

	_, err := svc.Create(ctx, &request.CreateUserRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)

	_, err = svc.Authenticate(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, usecase.ErrPasswordMismatch)

	_, err = svc.Authenticate(ctx, "b@x.com", "secret")
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestUserService_AuthenticateStoreFailure(t *testing.T) {
	repo := new(UserRepoMock)
	storeErr := errors.New("connection reset")
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, storeErr).Once()

	svc := newService(repo, utils.NewBcryptHasher(bcrypt.MinCost))
	_, err := svc.Authenticate(context.Background(), "a@x.com", "secret")

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, usecase.ErrUserNotFound)
	repo.AssertNumberOfCalls(t, "FindByEmail", 1)
}

func TestUserService_ListAll(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantSkip  int64
		wantLimit int64
	}{
		{name: "first page", page: 0, limit: 10, wantSkip: 0, wantLimit: 10},
		{name: "third page", page: 2, limit: 5, wantSkip: 10, wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			repo.On("FindAll", mock.Anything, tt.wantSkip, tt.wantLimit).Return([]*entity.User{
				{Base: entity.Base{ID: "1"}, Email: "a@x.com"},
				{Base: entity.Base{ID: "2"}, Email: "b@x.com"},
			}, nil).Once()

			svc := newService(repo, utils.NewBcryptHasher(bcrypt.MinCost))
			users, err := svc.ListAll(context.Background(), tt.page, tt.limit)

			require.NoError(t, err)
			require.Len(t, users, 2)
			assert.Equal(t, "a@x.com", users[0].Email)
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_GetProfileUsesSingleSnapshot(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("FindProfile", mock.Anything, "u1", snapshot).Return([]*entity.UserProfile{
		{
			User: entity.User{Base: entity.Base{ID: "u1"}, Email: "a@x.com"},
			Tickets: []entity.Ticket{{
				ID:       "t1",
				ShowTime: snapshot.Add(time.Hour),
				Movie:    []entity.Movie{{ID: "m1"}},
				Cinema:   []entity.Cinema{{ID: "c1"}},
			}},
		},
	}, nil).Once()

	svc := newService(repo, utils.NewBcryptHasher(bcrypt.MinCost))
	profiles, err := svc.GetProfile(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, profiles, 1)
	require.Len(t, profiles[0].Tickets, 1)
	assert.Len(t, profiles[0].Tickets[0].Movie, 1)
	assert.Len(t, profiles[0].Tickets[0].Cinema, 1)
	repo.AssertExpectations(t)
}

func TestUserService_GetProfileErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "malformed id", repoErr: repository.ErrInvalidID},
		{name: "store failure", repoErr: errors.New("aggregate failed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			repo.On("FindProfile", mock.Anything, "nope", snapshot).Return(nil, tt.repoErr).Once()

			svc := newService(repo, utils.NewBcryptHasher(bcrypt.MinCost))
			profiles, err := svc.GetProfile(context.Background(), "nope")

			assert.Nil(t, profiles)
			assert.ErrorIs(t, err, tt.repoErr)
		})
	}
}

func TestUserService_GetProfileMissingUser(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("FindProfile", mock.Anything, "u404", snapshot).Return([]*entity.UserProfile{}, nil).Once()

	svc := newService(repo, utils.NewBcryptHasher(bcrypt.MinCost))
	profiles, err := svc.GetProfile(context.Background(), "u404")

	require.NoError(t, err)
	assert.Empty(t, profiles)
}
