//go:generate mockery --name ResourceRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"learnroute/internal/middleware"
	"learnroute/internal/model"
)

type ResourceRepository interface {
	Create(ctx context.Context, db *gorm.DB, resource *model.Resource) error
	CreateBatch(ctx context.Context, db *gorm.DB, resources []*model.Resource) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.Resource, error)
	// FindByIDs returns the distinct resources matching ids, ordered by id.
	// Unknown ids are silently absent from the result.
	FindByIDs(ctx context.Context, db *gorm.DB, ids []uint) ([]*model.Resource, error)
	FindAll(ctx context.Context, db *gorm.DB, category string) ([]*model.Resource, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormResourceRepository struct{}

func NewGormResourceRepository() ResourceRepository {
	return &gormResourceRepository{}
}

func (r *gormResourceRepository) Create(ctx context.Context, db *gorm.DB, resource *model.Resource) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(resource)
	if result.Error != nil {
		logger.Error("Error creating resource in DB",
			"error", result.Error,
			"title", resource.Title,
		)
		return fmt.Errorf("gormResourceRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormResourceRepository) CreateBatch(ctx context.Context, db *gorm.DB, resources []*model.Resource) error {
	logger := middleware.GetLogger(ctx)
	if len(resources) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Create(resources)
	if result.Error != nil {
		logger.Error("Error creating resources in DB",
			"error", result.Error,
			"count", len(resources),
		)
		return fmt.Errorf("gormResourceRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormResourceRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.Resource, error) {
	logger := middleware.GetLogger(ctx)
	var resource model.Resource
	result := db.WithContext(ctx).Where("id = ?", id).First(&resource)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding resource by ID in DB",
			"error", result.Error,
			"resource_id", id,
		)
		return nil, fmt.Errorf("gormResourceRepository.FindByID: %w", result.Error)
	}
	return &resource, nil
}

func (r *gormResourceRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []uint) ([]*model.Resource, error) {
	logger := middleware.GetLogger(ctx)
	resources := []*model.Resource{}
	if len(ids) == 0 {
		return resources, nil
	}
	result := db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&resources)
	if result.Error != nil {
		logger.Error("Error finding resources by IDs in DB",
			"error", result.Error,
			"count", len(ids),
		)
		return nil, fmt.Errorf("gormResourceRepository.FindByIDs: %w", result.Error)
	}
	return resources, nil
}

func (r *gormResourceRepository) FindAll(ctx context.Context, db *gorm.DB, category string) ([]*model.Resource, error) {
	logger := middleware.GetLogger(ctx)
	resources := []*model.Resource{}
	query := db.WithContext(ctx).Order("id ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if result := query.Find(&resources); result.Error != nil {
		logger.Error("Error listing resources in DB",
			"error", result.Error,
			"category", category,
		)
		return nil, fmt.Errorf("gormResourceRepository.FindAll: %w", result.Error)
	}
	return resources, nil
}

func (r *gormResourceRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	if result := db.WithContext(ctx).Model(&model.Resource{}).Count(&count); result.Error != nil {
		logger.Error("Error counting resources in DB", "error", result.Error)
		return 0, fmt.Errorf("gormResourceRepository.Count: %w", result.Error)
	}
	return count, nil
}
