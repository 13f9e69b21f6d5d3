//go:generate mockery --name RoadmapService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnroute/internal/cache"
	"learnroute/internal/metrics"
	"learnroute/internal/middleware"
	"learnroute/internal/model"
	"learnroute/internal/repository"
)

// RoadmapService owns the relationship between a roadmap's steps, its
// progress, its completion state and the points it awards.
type RoadmapService interface {
	CreateRoadmap(ctx context.Context, userID uuid.UUID, req *model.CreateRoadmapRequest) (*model.Roadmap, error)
	GetRoadmap(ctx context.Context, roadmapID uuid.UUID) (*model.Roadmap, error)
	ListUserRoadmaps(ctx context.Context, userID uuid.UUID) ([]*model.Roadmap, error)
	UpdateProgress(ctx context.Context, roadmapID uuid.UUID, progress int) (*model.Roadmap, error)
	ToggleStep(ctx context.Context, roadmapID uuid.UUID, stepID string, completed bool) (*model.Roadmap, error)
	CompleteRoadmap(ctx context.Context, roadmapID, userID uuid.UUID) (*model.Roadmap, error)
}

type roadmapService struct {
	db             *gorm.DB
	roadmapRepo    repository.RoadmapRepository
	resourceRepo   repository.ResourceRepository
	userRepo       repository.UserRepository
	completionRepo repository.CompletionRepository
	leaderboard    cache.LeaderboardCache
	metrics        *metrics.Metrics
	now            func() time.Time
}

func NewRoadmapService(
	db *gorm.DB,
	roadmapRepo repository.RoadmapRepository,
	resourceRepo repository.ResourceRepository,
	userRepo repository.UserRepository,
	completionRepo repository.CompletionRepository,
	leaderboard cache.LeaderboardCache,
	m *metrics.Metrics,
) RoadmapService {
	if leaderboard == nil {
		leaderboard = cache.NoopLeaderboardCache{}
	}
	return &roadmapService{
		db:             db,
		roadmapRepo:    roadmapRepo,
		resourceRepo:   resourceRepo,
		userRepo:       userRepo,
		completionRepo: completionRepo,
		leaderboard:    leaderboard,
		metrics:        m,
		now:            time.Now,
	}
}

func (s *roadmapService) CreateRoadmap(ctx context.Context, userID uuid.UUID, req *model.CreateRoadmapRequest) (*model.Roadmap, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "category", req.Category)

	roadmap := &model.Roadmap{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Steps:       BuildSteps(req.Category),
		Progress:    0,
		Completed:   false,
	}

	if err := s.roadmapRepo.Create(ctx, s.db, roadmap); err != nil {
		logger.Error("Failed to create roadmap", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create roadmap.", "", err)
	}

	s.metrics.RoadmapCreated(roadmapCategoryLabel(req.Category))
	logger.Info("Roadmap created", "roadmap_id", roadmap.ID.String(), "steps", len(roadmap.Steps))
	return roadmap, nil
}

func (s *roadmapService) GetRoadmap(ctx context.Context, roadmapID uuid.UUID) (*model.Roadmap, error) {
	logger := middleware.GetLogger(ctx).With("roadmap_id", roadmapID.String())
	roadmap, err := s.roadmapRepo.FindByID(ctx, s.db, roadmapID)
	if err != nil {
		return nil, roadmapLookupError(logger, err)
	}
	return roadmap, nil
}

func (s *roadmapService) ListUserRoadmaps(ctx context.Context, userID uuid.UUID) ([]*model.Roadmap, error) {
	logger := middleware.GetLogger(ctx)
	roadmaps, err := s.roadmapRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list roadmaps", "error", err, "user_id", userID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list roadmaps.", "", err)
	}
	return roadmaps, nil
}

// UpdateProgress overrides the stored progress value. Steps and completion
// state are left alone; the next ToggleStep recomputes progress from steps.
func (s *roadmapService) UpdateProgress(ctx context.Context, roadmapID uuid.UUID, progress int) (*model.Roadmap, error) {
	logger := middleware.GetLogger(ctx).With("roadmap_id", roadmapID.String())
	if progress < 0 || progress > 100 {
		return nil, model.NewAppError("INVALID_PROGRESS", "Progress must be between 0 and 100.", "progress", model.ErrInvalidInput)
	}

	var updated *model.Roadmap
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roadmap, err := s.roadmapRepo.FindByID(ctx, tx, roadmapID)
		if err != nil {
			return roadmapLookupError(logger, err)
		}
		roadmap.Progress = progress
		if err := s.roadmapRepo.Save(ctx, tx, roadmap); err != nil {
			return roadmapSaveError(logger, err)
		}
		updated = roadmap
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ToggleStep sets one step's completed flag and recomputes the derived
// fields. Un-completing a finished roadmap clears CompletedAt but never
// takes back points already awarded. Concurrent toggles on the same roadmap
// are last-writer-wins on the steps column.
func (s *roadmapService) ToggleStep(ctx context.Context, roadmapID uuid.UUID, stepID string, completed bool) (*model.Roadmap, error) {
	logger := middleware.GetLogger(ctx).With("roadmap_id", roadmapID.String(), "step_id", stepID)

	var updated *model.Roadmap
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roadmap, err := s.roadmapRepo.FindByID(ctx, tx, roadmapID)
		if err != nil {
			return roadmapLookupError(logger, err)
		}

		idx := stepIndex(roadmap.Steps, stepID)
		if idx < 0 {
			logger.Warn("Step not found in roadmap")
			return model.NewAppError("STEP_NOT_FOUND", "Step not found in roadmap.", "step_id", model.ErrNotFound)
		}

		roadmap.Steps[idx].Completed = completed
		applyStepProgress(roadmap, s.now())

		if err := s.roadmapRepo.Save(ctx, tx, roadmap); err != nil {
			return roadmapSaveError(logger, err)
		}
		updated = roadmap
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.StepToggled(completed)
	logger.Info("Roadmap step toggled",
		"completed", completed,
		"progress", updated.Progress,
		"roadmap_completed", updated.Completed,
	)
	return updated, nil
}

// CompleteRoadmap marks the roadmap finished, appends a completion record
// and credits the user. Each call awards points again, and userID is not
// checked against the roadmap owner.
func (s *roadmapService) CompleteRoadmap(ctx context.Context, roadmapID, userID uuid.UUID) (*model.Roadmap, error) {
	logger := middleware.GetLogger(ctx).With("roadmap_id", roadmapID.String(), "user_id", userID.String())

	var (
		updated *model.Roadmap
		points  int
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roadmap, err := s.roadmapRepo.FindByID(ctx, tx, roadmapID)
		if err != nil {
			return roadmapLookupError(logger, err)
		}

		refs := roadmap.ResourceRefs()
		var resources []*model.Resource
		if len(refs) > 0 {
			resources, err = s.resourceRepo.FindByIDs(ctx, tx, refs)
			if err != nil {
				logger.Error("Failed to load roadmap resources", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load roadmap resources.", "", err)
			}
		}
		points = CalculatePoints(refs, resources)

		now := s.now()
		roadmap.Completed = true
		roadmap.CompletedAt = &now
		roadmap.Progress = 100
		if err := s.roadmapRepo.Save(ctx, tx, roadmap); err != nil {
			return roadmapSaveError(logger, err)
		}

		completion := &model.CourseCompletion{
			UserID:       userID,
			RoadmapID:    roadmap.ID,
			PointsEarned: points,
			CompletedAt:  now,
		}
		if err := s.completionRepo.Create(ctx, tx, completion); err != nil {
			logger.Error("Failed to record course completion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record completion.", "", err)
		}

		if err := s.userRepo.AddPoints(ctx, tx, userID, points); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("User to credit not found")
				return model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)
			}
			logger.Error("Failed to credit points", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to credit points.", "", err)
		}

		updated = roadmap
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RoadmapCompleted(points)
	if err := s.leaderboard.Invalidate(ctx); err != nil {
		logger.Warn("Failed to invalidate leaderboard cache", "error", err)
	}
	logger.Info("Roadmap completed", "points_earned", points)
	return updated, nil
}

// applyStepProgress recomputes Progress and Completed from the steps and
// stamps or clears CompletedAt on a state change.
func applyStepProgress(r *model.Roadmap, now time.Time) {
	progress, allDone := RecalculateProgress(r.Steps)
	r.Progress = progress
	switch {
	case allDone && !r.Completed:
		r.Completed = true
		r.CompletedAt = &now
	case !allDone:
		r.Completed = false
		r.CompletedAt = nil
	}
}

func stepIndex(steps []model.RoadmapStep, stepID string) int {
	for i := range steps {
		if steps[i].ID == stepID {
			return i
		}
	}
	return -1
}

// roadmapCategoryLabel keeps the metric label set to known categories.
func roadmapCategoryLabel(category string) string {
	if _, ok := roadmapTemplates[category]; ok {
		return category
	}
	return "other"
}

func roadmapLookupError(logger *slog.Logger, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		logger.Warn("Roadmap not found")
		return model.NewAppError("ROADMAP_NOT_FOUND", "Roadmap not found.", "", model.ErrNotFound)
	}
	logger.Error("Failed to load roadmap", "error", err)
	return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load roadmap.", "", err)
}

func roadmapSaveError(logger *slog.Logger, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		logger.Warn("Roadmap disappeared before save")
		return model.NewAppError("ROADMAP_NOT_FOUND", "Roadmap not found.", "", model.ErrNotFound)
	}
	logger.Error("Failed to save roadmap", "error", err)
	return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update roadmap.", "", err)
}
