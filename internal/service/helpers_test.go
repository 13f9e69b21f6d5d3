package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"learnroute/internal/model"
	"learnroute/internal/repository"
)

// newTestDB opens a private in-memory database with the schema applied.
// One connection keeps every query on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

type repos struct {
	users       repository.UserRepository
	roadmaps    repository.RoadmapRepository
	resources   repository.ResourceRepository
	completions repository.CompletionRepository
}

func newRepos() repos {
	return repos{
		users:       repository.NewGormUserRepository(),
		roadmaps:    repository.NewGormRoadmapRepository(),
		resources:   repository.NewGormResourceRepository(),
		completions: repository.NewGormCompletionRepository(),
	}
}

func seedUser(t *testing.T, db *gorm.DB, username string, points int) *model.User {
	t.Helper()
	u := &model.User{ID: uuid.New(), Username: username, PasswordHash: "x", Points: points}
	require.NoError(t, repository.NewGormUserRepository().Create(context.Background(), db, u))
	return u
}

// seedResources inserts resources with ids 1..n in the given difficulties.
func seedResources(t *testing.T, db *gorm.DB, difficulties ...model.Difficulty) {
	t.Helper()
	repo := repository.NewGormResourceRepository()
	for i, d := range difficulties {
		r := &model.Resource{
			ID:         uint(i + 1),
			Title:      "resource",
			Type:       model.ResourceTypeArticle,
			URL:        "https://example.com",
			Category:   "web-development",
			Difficulty: d,
		}
		require.NoError(t, repo.Create(context.Background(), db, r))
	}
}

// seedRoadmap stores a roadmap for owner whose steps carry the given
// resource references. The first done steps are marked completed.
func seedRoadmap(t *testing.T, db *gorm.DB, owner uuid.UUID, done int, refs ...[]uint) *model.Roadmap {
	t.Helper()
	steps := make([]model.RoadmapStep, len(refs))
	for i, r := range refs {
		steps[i] = model.RoadmapStep{
			ID:          uuid.NewString(),
			Title:       "step",
			ResourceIDs: r,
			Completed:   i < done,
		}
	}
	roadmap := &model.Roadmap{
		ID:          uuid.New(),
		UserID:      owner,
		Title:       "Plan",
		Description: "desc",
		Category:    "web-development",
		Steps:       steps,
	}
	require.NoError(t, repository.NewGormRoadmapRepository().Create(context.Background(), db, roadmap))
	return roadmap
}

func noRefs(n int) [][]uint {
	out := make([][]uint, n)
	for i := range out {
		out[i] = []uint{}
	}
	return out
}

func requireAppErrorCode(t *testing.T, err error, code string) *model.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Detail.Code)
	return appErr
}

// fakeLeaderboardCache records calls and serves entries it was given.
type fakeLeaderboardCache struct {
	mu          sync.Mutex
	entries     map[int][]model.LeaderboardEntry
	gets        int
	sets        int
	invalidates int
	getErr      error
}

func newFakeLeaderboardCache() *fakeLeaderboardCache {
	return &fakeLeaderboardCache{entries: map[int][]model.LeaderboardEntry{}}
}

func (c *fakeLeaderboardCache) Get(_ context.Context, limit int) ([]model.LeaderboardEntry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	e, ok := c.entries[limit]
	return e, ok, nil
}

func (c *fakeLeaderboardCache) Set(_ context.Context, limit int, entries []model.LeaderboardEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.entries[limit] = entries
	return nil
}

func (c *fakeLeaderboardCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidates++
	c.entries = map[int][]model.LeaderboardEntry{}
	return nil
}
