//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"learnroute/internal/middleware"
	"learnroute/internal/model"
	"learnroute/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

// TokenConfig holds what is needed to sign access tokens.
type TokenConfig struct {
	Issuer    string
	SecretKey string
	TTL       time.Duration
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	token    TokenConfig
	now      func() time.Time
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, token TokenConfig) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		token:    token,
		now:      time.Now,
	}
}

// Register creates a user with a bcrypt password hash. Usernames are unique.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("username", req.Username)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByUsername(ctx, tx, req.Username)
		if err == nil {
			logger.Warn("Username already exists")
			return model.NewAppError("DUPLICATE_USERNAME", "Username already exists.", "username", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check username existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to process password.", "", err)
		}

		user := &model.User{
			ID:              uuid.New(),
			Username:        req.Username,
			PasswordHash:    string(hashedPassword),
			Email:           req.Email,
			FullName:        req.FullName,
			CurrentSkills:   datatypes.NewJSONSlice(nonNil(req.CurrentSkills)),
			LearningGoals:   datatypes.NewJSONSlice(nonNil(req.LearningGoals)),
			Points:          0,
			ThemePreference: model.ThemeDark,
			Role:            model.RoleUser,
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_USERNAME", "Username already exists.", "username", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create user.", "", err)
		}
		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", newUser.ID.String())
	return newUser, nil
}

// Login checks the password and issues an HS256 access token whose subject
// is the user id.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("username", req.Username)

	user, err := s.userRepo.FindByUsername(ctx, s.db, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "Invalid username or password.", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: db error on FindByUsername", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.ID.String())
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "Invalid username or password.", "", model.ErrUnauthorized)
	}

	now := s.now()
	claims := &model.JWTCustomClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.token.Issuer,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.token.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.token.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.ID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue token.", "", err)
	}

	logger.Info("Login successful", "user_id", user.ID.String())
	return &model.LoginResponse{AccessToken: signedToken, User: user}, nil
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
