//go:generate mockery --name UserService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"learnroute/internal/cache"
	"learnroute/internal/middleware"
	"learnroute/internal/model"
	"learnroute/internal/repository"
)

type UserService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	GetPublicUser(ctx context.Context, userID uuid.UUID) (*model.PublicUser, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error)
	UpdateTheme(ctx context.Context, userID uuid.UUID, theme string) (*model.User, error)
	Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
	ListCompletions(ctx context.Context, userID uuid.UUID) ([]*model.CourseCompletion, error)
	Summary(ctx context.Context, userID uuid.UUID) (*model.UserSummary, error)
}

type LeaderboardLimits struct {
	Default int
	Max     int
}

type userService struct {
	db             *gorm.DB
	userRepo       repository.UserRepository
	roadmapRepo    repository.RoadmapRepository
	completionRepo repository.CompletionRepository
	leaderboard    cache.LeaderboardCache
	limits         LeaderboardLimits
}

func NewUserService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	roadmapRepo repository.RoadmapRepository,
	completionRepo repository.CompletionRepository,
	leaderboard cache.LeaderboardCache,
	limits LeaderboardLimits,
) UserService {
	if leaderboard == nil {
		leaderboard = cache.NoopLeaderboardCache{}
	}
	if limits.Max <= 0 {
		limits.Max = 100
	}
	if limits.Default <= 0 || limits.Default > limits.Max {
		limits.Default = min(10, limits.Max)
	}
	return &userService{
		db:             db,
		userRepo:       userRepo,
		roadmapRepo:    roadmapRepo,
		completionRepo: completionRepo,
		leaderboard:    leaderboard,
		limits:         limits,
	}
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID.String())
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)
		}
		logger.Error("Error finding user by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load user.", "", err)
	}
	return user, nil
}

func (s *userService) GetPublicUser(ctx context.Context, userID uuid.UUID) (*model.PublicUser, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())

	updates := make(map[string]interface{})
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.ProfileImage != nil {
		updates["profile_image"] = *req.ProfileImage
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.CurrentSkills != nil {
		updates["current_skills"] = datatypes.NewJSONSlice(req.CurrentSkills)
	}
	if req.LearningGoals != nil {
		updates["learning_goals"] = datatypes.NewJSONSlice(req.LearningGoals)
	}

	var updated *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Update(ctx, tx, userID, updates); err != nil {
			return userWriteError(logger, err)
		}
		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			return userWriteError(logger, err)
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Profile updated", "fields", len(updates))
	return updated, nil
}

func (s *userService) UpdateTheme(ctx context.Context, userID uuid.UUID, theme string) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())
	if theme != model.ThemeDark && theme != model.ThemeLight {
		return nil, model.NewAppError("INVALID_THEME", "Theme must be 'dark' or 'light'.", "theme", model.ErrInvalidInput)
	}

	var updated *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Update(ctx, tx, userID, map[string]interface{}{"theme_preference": theme}); err != nil {
			return userWriteError(logger, err)
		}
		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			return userWriteError(logger, err)
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Leaderboard returns the top users by points. limit <= 0 means the
// configured default; larger values are capped at the configured max.
func (s *userService) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	logger := middleware.GetLogger(ctx)
	if limit <= 0 {
		limit = s.limits.Default
	}
	if limit > s.limits.Max {
		limit = s.limits.Max
	}

	if entries, ok, err := s.leaderboard.Get(ctx, limit); err != nil {
		logger.Warn("Leaderboard cache read failed", "error", err)
	} else if ok {
		return entries, nil
	}

	users, err := s.userRepo.TopByPoints(ctx, s.db, limit)
	if err != nil {
		logger.Error("Failed to load leaderboard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load leaderboard.", "", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, model.LeaderboardEntry{
			ID:           u.ID,
			Username:     u.Username,
			FullName:     u.FullName,
			ProfileImage: u.ProfileImage,
			Points:       u.Points,
		})
	}

	if err := s.leaderboard.Set(ctx, limit, entries); err != nil {
		logger.Warn("Leaderboard cache write failed", "error", err)
	}
	return entries, nil
}

func (s *userService) ListCompletions(ctx context.Context, userID uuid.UUID) ([]*model.CourseCompletion, error) {
	logger := middleware.GetLogger(ctx)
	completions, err := s.completionRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list completions", "error", err, "user_id", userID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list completions.", "", err)
	}
	return completions, nil
}

// Summary loads the profile, roadmaps, completions and the ledger total
// concurrently. LedgerPoints differing from User.Points indicates drift.
func (s *userService) Summary(ctx context.Context, userID uuid.UUID) (*model.UserSummary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())
	summary := &model.UserSummary{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, err := s.GetUser(gctx, userID)
		summary.User = user
		return err
	})
	g.Go(func() error {
		roadmaps, err := s.roadmapRepo.FindByUser(gctx, s.db, userID)
		summary.Roadmaps = roadmaps
		return err
	})
	g.Go(func() error {
		completions, err := s.completionRepo.FindByUser(gctx, s.db, userID)
		summary.Completions = completions
		return err
	})
	g.Go(func() error {
		total, err := s.completionRepo.SumPointsByUser(gctx, s.db, userID)
		summary.LedgerPoints = total
		return err
	})

	if err := g.Wait(); err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Failed to build user summary", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load user summary.", "", err)
	}

	if summary.Roadmaps == nil {
		summary.Roadmaps = []*model.Roadmap{}
	}
	if summary.LedgerPoints != summary.User.Points {
		logger.Warn("User points differ from completion ledger",
			"points", summary.User.Points,
			"ledger_points", summary.LedgerPoints,
		)
	}
	return summary, nil
}

func userWriteError(logger *slog.Logger, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		logger.Warn("User not found")
		return model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)
	}
	logger.Error("Failed to update user", "error", err)
	return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update user.", "", err)
}
