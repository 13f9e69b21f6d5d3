package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"learnroute/internal/model"
	"learnroute/internal/repository"
	"learnroute/internal/repository/mocks"
	"learnroute/internal/service"
)

func TestResourceService_SeedCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewResourceService(db, repository.NewGormResourceRepository())
	ctx := context.Background()

	n, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	// second run is a no-op
	n, err = svc.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	all, err := svc.ListResources(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 8)

	devops, err := svc.GetResource(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyAdvanced, devops.Difficulty)
	assert.Equal(t, "devops", devops.Category)

	web, err := svc.ListResources(ctx, "web-development")
	require.NoError(t, err)
	assert.Len(t, web, 2)
}

func TestResourceService_GetResources(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewResourceService(db, repository.NewGormResourceRepository())
	ctx := context.Background()
	_, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)

	got, err := svc.GetResources(ctx, []uint{3, 1, 3, 404})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)

	_, err = svc.GetResource(ctx, 404)
	appErr := requireAppErrorCode(t, err, "RESOURCE_NOT_FOUND")
	assert.ErrorIs(t, appErr, model.ErrNotFound)
}

func TestResourceService_CreateResource(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewResourceService(db, repository.NewGormResourceRepository())
	ctx := context.Background()

	points := 40
	testCases := []struct {
		name           string
		req            *model.CreateResourceRequest
		wantDifficulty model.Difficulty
		wantPoints     int
	}{
		{
			name:           "defaults",
			req:            &model.CreateResourceRequest{Title: "SQL", Type: model.ResourceTypeArticle, URL: "https://example.com/sql", Category: "data-science"},
			wantDifficulty: model.DifficultyBeginner,
			wantPoints:     10,
		},
		{
			name:           "explicit",
			req:            &model.CreateResourceRequest{Title: "K8s", Type: model.ResourceTypeVideo, URL: "https://example.com/k8s", Category: "devops", Difficulty: "advanced", PointsValue: &points},
			wantDifficulty: model.DifficultyAdvanced,
			wantPoints:     40,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			created, err := svc.CreateResource(ctx, tc.req)
			require.NoError(t, err)
			assert.NotZero(t, created.ID)
			assert.Equal(t, tc.wantDifficulty, created.Difficulty)
			assert.Equal(t, tc.wantPoints, created.PointsValue)
		})
	}
}

func TestResourceService_SeedCatalogCountFailure(t *testing.T) {
	resources := mocks.NewResourceRepository(t)
	resources.On("Count", mock.Anything, mock.Anything).Return(int64(0), errors.New("no table")).Once()

	svc := service.NewResourceService(newTestDB(t), resources)
	n, err := svc.SeedCatalog(context.Background())
	requireAppErrorCode(t, err, "INTERNAL_SERVER_ERROR")
	assert.Zero(t, n)
}
