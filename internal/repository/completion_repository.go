//go:generate mockery --name CompletionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnroute/internal/middleware"
	"learnroute/internal/model"
)

// CompletionRepository is append-only: there is no update or delete.
type CompletionRepository interface {
	Create(ctx context.Context, db *gorm.DB, completion *model.CourseCompletion) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.CourseCompletion, error)
	SumPointsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int, error)
}

type gormCompletionRepository struct{}

func NewGormCompletionRepository() CompletionRepository {
	return &gormCompletionRepository{}
}

func (r *gormCompletionRepository) Create(ctx context.Context, db *gorm.DB, completion *model.CourseCompletion) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(completion)
	if result.Error != nil {
		logger.Error("Error creating course completion in DB",
			"error", result.Error,
			"user_id", completion.UserID.String(),
			"roadmap_id", completion.RoadmapID.String(),
		)
		return fmt.Errorf("gormCompletionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCompletionRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.CourseCompletion, error) {
	logger := middleware.GetLogger(ctx)
	completions := []*model.CourseCompletion{}
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("completed_at DESC").Order("id DESC").Find(&completions)
	if result.Error != nil {
		logger.Error("Error finding course completions by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormCompletionRepository.FindByUser: %w", result.Error)
	}
	return completions, nil
}

func (r *gormCompletionRepository) SumPointsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx)
	var total int64
	result := db.WithContext(ctx).Model(&model.CourseCompletion{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points_earned), 0)").
		Scan(&total)
	if result.Error != nil {
		logger.Error("Error summing completion points in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormCompletionRepository.SumPointsByUser: %w", result.Error)
	}
	return int(total), nil
}
