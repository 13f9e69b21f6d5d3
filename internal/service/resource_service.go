//go:generate mockery --name ResourceService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"learnroute/internal/middleware"
	"learnroute/internal/model"
	"learnroute/internal/repository"
)

type ResourceService interface {
	ListResources(ctx context.Context, category string) ([]*model.Resource, error)
	GetResource(ctx context.Context, id uint) (*model.Resource, error)
	GetResources(ctx context.Context, ids []uint) ([]*model.Resource, error)
	CreateResource(ctx context.Context, req *model.CreateResourceRequest) (*model.Resource, error)
	// SeedCatalog inserts the sample catalog if the table is empty and
	// reports how many rows it wrote.
	SeedCatalog(ctx context.Context) (int, error)
}

type resourceService struct {
	db           *gorm.DB
	resourceRepo repository.ResourceRepository
}

func NewResourceService(db *gorm.DB, resourceRepo repository.ResourceRepository) ResourceService {
	return &resourceService{db: db, resourceRepo: resourceRepo}
}

func (s *resourceService) ListResources(ctx context.Context, category string) ([]*model.Resource, error) {
	logger := middleware.GetLogger(ctx)
	resources, err := s.resourceRepo.FindAll(ctx, s.db, category)
	if err != nil {
		logger.Error("Failed to list resources", "error", err, "category", category)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list resources.", "", err)
	}
	return resources, nil
}

func (s *resourceService) GetResource(ctx context.Context, id uint) (*model.Resource, error) {
	logger := middleware.GetLogger(ctx)
	resource, err := s.resourceRepo.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Resource not found", "resource_id", id)
			return nil, model.NewAppError("RESOURCE_NOT_FOUND", "Resource not found.", "", model.ErrNotFound)
		}
		logger.Error("Failed to load resource", "error", err, "resource_id", id)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load resource.", "", err)
	}
	return resource, nil
}

// GetResources returns the distinct known resources among ids.
func (s *resourceService) GetResources(ctx context.Context, ids []uint) ([]*model.Resource, error) {
	logger := middleware.GetLogger(ctx)
	resources, err := s.resourceRepo.FindByIDs(ctx, s.db, ids)
	if err != nil {
		logger.Error("Failed to load resources", "error", err, "count", len(ids))
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load resources.", "", err)
	}
	return resources, nil
}

func (s *resourceService) CreateResource(ctx context.Context, req *model.CreateResourceRequest) (*model.Resource, error) {
	logger := middleware.GetLogger(ctx)

	resource := &model.Resource{
		Title:       req.Title,
		Type:        req.Type,
		URL:         req.URL,
		Category:    req.Category,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Duration:    req.Duration,
		Difficulty:  model.DifficultyBeginner,
		PointsValue: 10,
	}
	if req.Difficulty != "" {
		resource.Difficulty = model.Difficulty(req.Difficulty)
	}
	if req.PointsValue != nil {
		resource.PointsValue = *req.PointsValue
	}

	if err := s.resourceRepo.Create(ctx, s.db, resource); err != nil {
		logger.Error("Failed to create resource", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create resource.", "", err)
	}
	logger.Info("Resource created", "resource_id", resource.ID, "category", resource.Category)
	return resource, nil
}

func (s *resourceService) SeedCatalog(ctx context.Context) (int, error) {
	logger := middleware.GetLogger(ctx)
	inserted := 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := s.resourceRepo.Count(ctx, tx)
		if err != nil {
			return err
		}
		if count > 0 {
			logger.Info("Resource catalog already populated, skipping seed", "count", count)
			return nil
		}
		catalog := sampleCatalog()
		if err := s.resourceRepo.CreateBatch(ctx, tx, catalog); err != nil {
			return err
		}
		inserted = len(catalog)
		return nil
	})
	if err != nil {
		logger.Error("Failed to seed resource catalog", "error", err)
		return 0, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to seed resources.", "", err)
	}
	if inserted > 0 {
		logger.Info("Resource catalog seeded", "count", inserted)
	}
	return inserted, nil
}
