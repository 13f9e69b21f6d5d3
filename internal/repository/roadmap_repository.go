//go:generate mockery --name RoadmapRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnroute/internal/middleware"
	"learnroute/internal/model"
)

type RoadmapRepository interface {
	Create(ctx context.Context, db *gorm.DB, roadmap *model.Roadmap) error
	FindByID(ctx context.Context, db *gorm.DB, roadmapID uuid.UUID) (*model.Roadmap, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Roadmap, error)
	// Save replaces the whole stored record, steps included.
	Save(ctx context.Context, db *gorm.DB, roadmap *model.Roadmap) error
}

type gormRoadmapRepository struct{}

func NewGormRoadmapRepository() RoadmapRepository {
	return &gormRoadmapRepository{}
}

func (r *gormRoadmapRepository) Create(ctx context.Context, db *gorm.DB, roadmap *model.Roadmap) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(roadmap)
	if result.Error != nil {
		logger.Error("Error creating roadmap in DB",
			"error", result.Error,
			"user_id", roadmap.UserID.String(),
			"category", roadmap.Category,
		)
		return fmt.Errorf("gormRoadmapRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormRoadmapRepository) FindByID(ctx context.Context, db *gorm.DB, roadmapID uuid.UUID) (*model.Roadmap, error) {
	logger := middleware.GetLogger(ctx)
	var roadmap model.Roadmap
	result := db.WithContext(ctx).Where("id = ?", roadmapID).First(&roadmap)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding roadmap by ID in DB",
			"error", result.Error,
			"roadmap_id", roadmapID.String(),
		)
		return nil, fmt.Errorf("gormRoadmapRepository.FindByID: %w", result.Error)
	}
	return &roadmap, nil
}

func (r *gormRoadmapRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Roadmap, error) {
	logger := middleware.GetLogger(ctx)
	var roadmaps []*model.Roadmap
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&roadmaps)
	if result.Error != nil {
		logger.Error("Error finding roadmaps by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormRoadmapRepository.FindByUser: %w", result.Error)
	}
	return roadmaps, nil
}

func (r *gormRoadmapRepository) Save(ctx context.Context, db *gorm.DB, roadmap *model.Roadmap) error {
	logger := middleware.GetLogger(ctx)
	// Select("*") writes zero values too (completed=false, completed_at=NULL).
	result := db.WithContext(ctx).Model(roadmap).Select("*").Omit("id", "user_id", "created_at").
		Where("id = ?", roadmap.ID).
		Updates(roadmap)
	if result.Error != nil {
		logger.Error("Error saving roadmap in DB",
			"error", result.Error,
			"roadmap_id", roadmap.ID.String(),
		)
		return fmt.Errorf("gormRoadmapRepository.Save: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
