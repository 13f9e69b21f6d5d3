package service_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"learnroute/internal/metrics"
	"learnroute/internal/model"
	"learnroute/internal/repository/mocks"
	"learnroute/internal/service"
)

type RoadmapServiceTestSuite struct {
	suite.Suite

	db      *gorm.DB
	repos   repos
	cache   *fakeLeaderboardCache
	metrics *metrics.Metrics
	svc     service.RoadmapService
	owner   *model.User
}

func (s *RoadmapServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.repos = newRepos()
	s.cache = newFakeLeaderboardCache()
	s.metrics = metrics.New()
	s.svc = service.NewRoadmapService(s.db, s.repos.roadmaps, s.repos.resources, s.repos.users, s.repos.completions, s.cache, s.metrics)
	s.owner = seedUser(s.T(), s.db, "learner", 0)

	// 1 beginner, 2 intermediate, 3 advanced
	seedResources(s.T(), s.db, model.DifficultyBeginner, model.DifficultyIntermediate, model.DifficultyAdvanced)
}

func TestRoadmapService(t *testing.T) {
	suite.Run(t, new(RoadmapServiceTestSuite))
}

func (s *RoadmapServiceTestSuite) reload(id uuid.UUID) *model.Roadmap {
	r, err := s.repos.roadmaps.FindByID(context.Background(), s.db, id)
	s.Require().NoError(err)
	return r
}

func (s *RoadmapServiceTestSuite) points(id uuid.UUID) int {
	u, err := s.repos.users.FindByID(context.Background(), s.db, id)
	s.Require().NoError(err)
	return u.Points
}

func (s *RoadmapServiceTestSuite) TestCreateRoadmap() {
	ctx := context.Background()
	req := &model.CreateRoadmapRequest{Title: "Go deeper", Description: "backend", Category: "devops"}

	created, err := s.svc.CreateRoadmap(ctx, s.owner.ID, req)
	s.Require().NoError(err)
	s.Equal(s.owner.ID, created.UserID)
	s.Equal("devops", created.Category)
	s.Equal(0, created.Progress)
	s.False(created.Completed)
	s.Nil(created.CompletedAt)
	s.Len(created.Steps, 8)

	stored := s.reload(created.ID)
	s.Len(stored.Steps, 8)
	s.Equal(created.Steps[0].ID, stored.Steps[0].ID)
	s.Equal(0, stored.CompletedStepCount())

	list, err := s.svc.ListUserRoadmaps(ctx, s.owner.ID)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *RoadmapServiceTestSuite) TestCreateRoadmap_UnknownCategoryUsesDefaultSteps() {
	created, err := s.svc.CreateRoadmap(context.Background(), s.owner.ID, &model.CreateRoadmapRequest{
		Title: "Misc", Description: "d", Category: "gardening",
	})
	s.Require().NoError(err)
	s.Equal("gardening", created.Category)

	defaults := service.BuildSteps(service.DefaultCategory)
	s.Require().Len(created.Steps, len(defaults))
	s.Equal(defaults[0].Title, created.Steps[0].Title)
}

func (s *RoadmapServiceTestSuite) TestGetRoadmap_NotFound() {
	_, err := s.svc.GetRoadmap(context.Background(), uuid.New())
	appErr := requireAppErrorCode(s.T(), err, "ROADMAP_NOT_FOUND")
	s.ErrorIs(appErr, model.ErrNotFound)
}

func (s *RoadmapServiceTestSuite) TestToggleStep_RecomputesProgress() {
	roadmap := seedRoadmap(s.T(), s.db, s.owner.ID, 2, noRefs(8)...)

	updated, err := s.svc.ToggleStep(context.Background(), roadmap.ID, roadmap.Steps[2].ID, true)
	s.Require().NoError(err)
	s.Equal(38, updated.Progress)
	s.False(updated.Completed)
	s.Nil(updated.CompletedAt)

	stored := s.reload(roadmap.ID)
	s.Equal(38, stored.Progress)
	s.Equal(3, stored.CompletedStepCount())
	s.True(stored.Steps[2].Completed)
}

func (s *RoadmapServiceTestSuite) TestToggleStep_LastStepCompletesRoadmap() {
	ctx := context.Background()
	roadmap := seedRoadmap(s.T(), s.db, s.owner.ID, 7, noRefs(8)...)

	updated, err := s.svc.ToggleStep(ctx, roadmap.ID, roadmap.Steps[7].ID, true)
	s.Require().NoError(err)
	s.Equal(100, updated.Progress)
	s.True(updated.Completed)
	s.NotNil(updated.CompletedAt)

	// completing through steps awards nothing
	s.Equal(0, s.points(s.owner.ID))
	completions, err := s.repos.completions.FindByUser(ctx, s.db, s.owner.ID)
	s.Require().NoError(err)
	s.Empty(completions)
}

func (s *RoadmapServiceTestSuite) TestToggleStep_SameValueIsIdempotent() {
	ctx := context.Background()
	roadmap := seedRoadmap(s.T(), s.db, s.owner.ID, 1, noRefs(2)...)

	_, err := s.svc.ToggleStep(ctx, roadmap.ID, roadmap.Steps[1].ID, true)
	s.Require().NoError(err)
	first := s.reload(roadmap.ID)
	s.Require().NotNil(first.CompletedAt)

	_, err = s.svc.ToggleStep(ctx, roadmap.ID, roadmap.Steps[1].ID, true)
	s.Require().NoError(err)
	second := s.reload(roadmap.ID)

	s.Equal(first.Progress, second.Progress)
	s.Equal(first.Completed, second.Completed)
	s.Require().NotNil(second.CompletedAt)
	s.True(first.CompletedAt.Equal(*second.CompletedAt))
}

func (s *RoadmapServiceTestSuite) TestToggleStep_UncompleteKeepsPoints() {
	ctx := context.Background()
	roadmap := seedRoadmap(s.T(), s.db, s.owner.ID, 8, [][]uint{{1}, {3}, {}, {}, {}, {}, {}, {}}...)

	_, err := s.svc.CompleteRoadmap(ctx, roadmap.ID, s.owner.ID)
	s.Require().NoError(err)
	s.Equal(150, s.points(s.owner.ID))

	updated, err := s.svc.ToggleStep(ctx, roadmap.ID, roadmap.Steps[0].ID, false)
	s.Require().NoError(err)
	s.False(updated.Completed)
	s.Nil(updated.CompletedAt)
	s.Equal(88, updated.Progress)

	stored := s.reload(roadmap.ID)
	s.False(stored.Completed)
	s.Nil(stored.CompletedAt)
	s.Equal(150, s.points(s.owner.ID))
}

func (s *RoadmapServiceTestSuite) TestToggleStep_NotFound() {
	ctx := context.Background()
	roadmap := seedRoadmap(s.T(), s.db, s.owner.ID, 0, noRefs(3)...)

	testCases := []struct {
		name      string
		roadmapID uuid.UUID
		stepID    string
		code      string
	}{
		{name: "unknown roadmap", roadmapID: uuid.New(), stepID: roadmap.Steps[0].ID, code: "ROADMAP_NOT_FOUND"},
		{name: "unknown step", roadmapID: roadmap.ID, stepID: "missing", code: "STEP_NOT_FOUND"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.ToggleStep(ctx, tc.roadmapID, tc.stepID, true)
			appErr := requireAppErrorCode(s.T(), err, tc.code)
			s.ErrorIs(appErr, model.ErrNotFound)
		})
	}

	// nothing was written
	s.Equal(0, s.reload(roadmap.ID).Progress)
}

func (s *RoadmapServiceTestSuite) TestCompleteRoadmap_WeightedPoints() {
	testCases := []struct {
		name string
		refs [][]uint
		want int
	}{
		{name: "beginner and advanced", refs: [][]uint{{1}, {3}}, want: 150},
		{name: "no references", refs: noRefs(4), want: 100},
		{name: "unresolvable references", refs: [][]uint{{404}, {405}}, want: 100},
		{name: "unresolvable skipped", refs: [][]uint{{3, 404}}, want: 200},
		{name: "duplicates counted", refs: [][]uint{{1, 1}, {1, 3}}, want: 125},
		{name: "intermediate only", refs: [][]uint{{2}}, want: 150},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			ctx := context.Background()
			user := seedUser(s.T(), s.db, "u-"+uuid.NewString()[:8], 0)
			roadmap := seedRoadmap(s.T(), s.db, user.ID, 0, tc.refs...)

			updated, err := s.svc.CompleteRoadmap(ctx, roadmap.ID, user.ID)
			s.Require().NoError(err)
			s.True(updated.Completed)
			s.Equal(100, updated.Progress)
			s.NotNil(updated.CompletedAt)
			s.Equal(tc.want, s.points(user.ID))

			completions, err := s.repos.completions.FindByUser(ctx, s.db, user.ID)
			s.Require().NoError(err)
			s.Require().Len(completions, 1)
			s.Equal(tc.want, completions[0].PointsEarned)
			s.Equal(roadmap.ID, completions[0].RoadmapID)
		})
	}
}

func (s *RoadmapServiceTestSuite) TestCompleteRoadmap_StepsUntouched() {
	roadmap := seedRoadmap(s.T(), s.db, s.owner.ID, 1, noRefs(4)...)

	_, err := s.svc.CompleteRoadmap(context.Background(), roadmap.ID, s.owner.ID)
	s.Require().NoError(err)

	stored := s.reload(roadmap.ID)
	s.True(stored.Completed)
	s.Equal(100, stored.Progress)
	s.Equal(1, stored.CompletedStepCount())
}

func (s *RoadmapServiceTestSuite) TestCompleteRoadmap_TwiceAwardsTwice() {
	ctx := context.Background()
	roadmap := seedRoadmap(s.T(), s.db, s.owner.ID, 0, [][]uint{{1}, {3}}...)

	_, err := s.svc.CompleteRoadmap(ctx, roadmap.ID, s.owner.ID)
	s.Require().NoError(err)
	_, err = s.svc.CompleteRoadmap(ctx, roadmap.ID, s.owner.ID)
	s.Require().NoError(err)

	s.Equal(300, s.points(s.owner.ID))
	total, err := s.repos.completions.SumPointsByUser(ctx, s.db, s.owner.ID)
	s.Require().NoError(err)
	s.Equal(300, total)
	s.Equal(2, s.cache.invalidates)
}

func (s *RoadmapServiceTestSuite) TestCompleteRoadmap_CreditsCallerNotOwner() {
	ctx := context.Background()
	other := seedUser(s.T(), s.db, "other", 5)
	roadmap := seedRoadmap(s.T(), s.db, s.owner.ID, 0, noRefs(1)...)

	_, err := s.svc.CompleteRoadmap(ctx, roadmap.ID, other.ID)
	s.Require().NoError(err)
	s.Equal(105, s.points(other.ID))
	s.Equal(0, s.points(s.owner.ID))
}

func (s *RoadmapServiceTestSuite) TestCompleteRoadmap_UnknownUserRollsBack() {
	ctx := context.Background()
	roadmap := seedRoadmap(s.T(), s.db, s.owner.ID, 0, noRefs(2)...)
	ghost := uuid.New()

	_, err := s.svc.CompleteRoadmap(ctx, roadmap.ID, ghost)
	requireAppErrorCode(s.T(), err, "USER_NOT_FOUND")

	stored := s.reload(roadmap.ID)
	s.False(stored.Completed)
	s.Nil(stored.CompletedAt)
	s.Equal(0, stored.Progress)

	completions, err := s.repos.completions.FindByUser(ctx, s.db, ghost)
	s.Require().NoError(err)
	s.Empty(completions)
	s.Equal(0, s.cache.invalidates)
}

func (s *RoadmapServiceTestSuite) TestCompleteRoadmap_UnknownRoadmap() {
	_, err := s.svc.CompleteRoadmap(context.Background(), uuid.New(), s.owner.ID)
	requireAppErrorCode(s.T(), err, "ROADMAP_NOT_FOUND")
	s.Equal(0, s.points(s.owner.ID))
}

func (s *RoadmapServiceTestSuite) TestUpdateProgress() {
	ctx := context.Background()
	roadmap := seedRoadmap(s.T(), s.db, s.owner.ID, 1, noRefs(4)...)

	updated, err := s.svc.UpdateProgress(ctx, roadmap.ID, 55)
	s.Require().NoError(err)
	s.Equal(55, updated.Progress)

	stored := s.reload(roadmap.ID)
	s.Equal(55, stored.Progress)
	s.False(stored.Completed)
	s.Equal(1, stored.CompletedStepCount())

	// the next toggle recomputes from steps
	toggled, err := s.svc.ToggleStep(ctx, roadmap.ID, roadmap.Steps[1].ID, true)
	s.Require().NoError(err)
	s.Equal(50, toggled.Progress)
}

func (s *RoadmapServiceTestSuite) TestUpdateProgress_Invalid() {
	roadmap := seedRoadmap(s.T(), s.db, s.owner.ID, 0, noRefs(1)...)

	for _, p := range []int{-1, 101} {
		_, err := s.svc.UpdateProgress(context.Background(), roadmap.ID, p)
		appErr := requireAppErrorCode(s.T(), err, "INVALID_PROGRESS")
		s.ErrorIs(appErr, model.ErrInvalidInput)
	}
}

func (s *RoadmapServiceTestSuite) TestMetricsRecorded() {
	ctx := context.Background()
	roadmap := seedRoadmap(s.T(), s.db, s.owner.ID, 0, [][]uint{{3}}...)

	_, err := s.svc.ToggleStep(ctx, roadmap.ID, roadmap.Steps[0].ID, true)
	s.Require().NoError(err)
	_, err = s.svc.CompleteRoadmap(ctx, roadmap.ID, s.owner.ID)
	s.Require().NoError(err)
	_, err = s.svc.CreateRoadmap(ctx, s.owner.ID, &model.CreateRoadmapRequest{Title: "t", Description: "d", Category: "blockchain"})
	s.Require().NoError(err)

	rec := httptest.NewRecorder()
	s.metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	s.Require().NoError(err)

	s.Contains(string(body), `learnroute_step_toggles_total{completed="true"} 1`)
	s.Contains(string(body), "learnroute_roadmap_completions_total 1")
	s.Contains(string(body), "learnroute_points_awarded_total 200")
	s.Contains(string(body), `learnroute_roadmaps_created_total{category="blockchain"} 1`)
}

func TestRoadmapService_RepositoryFailures(t *testing.T) {
	dbErr := errors.New("connection reset")
	roadmapID := uuid.New()
	userID := uuid.New()
	stored := func() *model.Roadmap {
		return &model.Roadmap{
			ID:     roadmapID,
			UserID: userID,
			Steps:  []model.RoadmapStep{{ID: "s1", ResourceIDs: []uint{1}}},
		}
	}

	testCases := []struct {
		name      string
		setupMock func(rm *mocks.RoadmapRepository, res *mocks.ResourceRepository, u *mocks.UserRepository, c *mocks.CompletionRepository)
		act       func(svc service.RoadmapService) error
		code      string
	}{
		{
			name: "complete: resource lookup fails",
			setupMock: func(rm *mocks.RoadmapRepository, res *mocks.ResourceRepository, _ *mocks.UserRepository, _ *mocks.CompletionRepository) {
				rm.On("FindByID", mock.Anything, mock.Anything, roadmapID).Return(stored(), nil).Once()
				res.On("FindByIDs", mock.Anything, mock.Anything, []uint{1}).Return(nil, dbErr).Once()
			},
			act: func(svc service.RoadmapService) error {
				_, err := svc.CompleteRoadmap(context.Background(), roadmapID, userID)
				return err
			},
			code: "INTERNAL_SERVER_ERROR",
		},
		{
			name: "complete: completion insert fails",
			setupMock: func(rm *mocks.RoadmapRepository, res *mocks.ResourceRepository, _ *mocks.UserRepository, c *mocks.CompletionRepository) {
				rm.On("FindByID", mock.Anything, mock.Anything, roadmapID).Return(stored(), nil).Once()
				res.On("FindByIDs", mock.Anything, mock.Anything, []uint{1}).Return([]*model.Resource{{ID: 1, Difficulty: model.DifficultyAdvanced}}, nil).Once()
				rm.On("Save", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Roadmap")).Return(nil).Once()
				c.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(cc *model.CourseCompletion) bool {
					return cc.PointsEarned == 200 && cc.UserID == userID
				})).Return(dbErr).Once()
			},
			act: func(svc service.RoadmapService) error {
				_, err := svc.CompleteRoadmap(context.Background(), roadmapID, userID)
				return err
			},
			code: "INTERNAL_SERVER_ERROR",
		},
		{
			name: "toggle: save fails",
			setupMock: func(rm *mocks.RoadmapRepository, _ *mocks.ResourceRepository, _ *mocks.UserRepository, _ *mocks.CompletionRepository) {
				rm.On("FindByID", mock.Anything, mock.Anything, roadmapID).Return(stored(), nil).Once()
				rm.On("Save", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Roadmap")).Return(dbErr).Once()
			},
			act: func(svc service.RoadmapService) error {
				_, err := svc.ToggleStep(context.Background(), roadmapID, "s1", true)
				return err
			},
			code: "INTERNAL_SERVER_ERROR",
		},
		{
			name: "toggle: roadmap deleted before save",
			setupMock: func(rm *mocks.RoadmapRepository, _ *mocks.ResourceRepository, _ *mocks.UserRepository, _ *mocks.CompletionRepository) {
				rm.On("FindByID", mock.Anything, mock.Anything, roadmapID).Return(stored(), nil).Once()
				rm.On("Save", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Roadmap")).Return(model.ErrNotFound).Once()
			},
			act: func(svc service.RoadmapService) error {
				_, err := svc.ToggleStep(context.Background(), roadmapID, "s1", true)
				return err
			},
			code: "ROADMAP_NOT_FOUND",
		},
		{
			name: "create: insert fails",
			setupMock: func(rm *mocks.RoadmapRepository, _ *mocks.ResourceRepository, _ *mocks.UserRepository, _ *mocks.CompletionRepository) {
				rm.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Roadmap")).Return(dbErr).Once()
			},
			act: func(svc service.RoadmapService) error {
				_, err := svc.CreateRoadmap(context.Background(), userID, &model.CreateRoadmapRequest{Title: "t", Description: "d", Category: "devops"})
				return err
			},
			code: "INTERNAL_SERVER_ERROR",
		},
		{
			name: "list: query fails",
			setupMock: func(rm *mocks.RoadmapRepository, _ *mocks.ResourceRepository, _ *mocks.UserRepository, _ *mocks.CompletionRepository) {
				rm.On("FindByUser", mock.Anything, mock.Anything, userID).Return(nil, dbErr).Once()
			},
			act: func(svc service.RoadmapService) error {
				_, err := svc.ListUserRoadmaps(context.Background(), userID)
				return err
			},
			code: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rm := mocks.NewRoadmapRepository(t)
			res := mocks.NewResourceRepository(t)
			u := mocks.NewUserRepository(t)
			c := mocks.NewCompletionRepository(t)
			tc.setupMock(rm, res, u, c)

			cache := newFakeLeaderboardCache()
			svc := service.NewRoadmapService(newTestDB(t), rm, res, u, c, cache, nil)

			err := tc.act(svc)
			requireAppErrorCode(t, err, tc.code)
			if tc.code == "INTERNAL_SERVER_ERROR" {
				assert.ErrorIs(t, err, dbErr)
			}
			assert.Zero(t, cache.invalidates)
		})
	}
}
