package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnroute/internal/model"
)

func makeSteps(done, total int) []model.RoadmapStep {
	out := make([]model.RoadmapStep, total)
	for i := range out {
		out[i] = model.RoadmapStep{ID: string(rune('a' + i)), Completed: i < done}
	}
	return out
}

func TestRecalculateProgress(t *testing.T) {
	testCases := []struct {
		name         string
		steps        []model.RoadmapStep
		wantProgress int
		wantAllDone  bool
	}{
		{name: "empty", steps: nil, wantProgress: 0, wantAllDone: false},
		{name: "none done", steps: makeSteps(0, 8), wantProgress: 0, wantAllDone: false},
		{name: "3 of 8 rounds half up", steps: makeSteps(3, 8), wantProgress: 38, wantAllDone: false},
		{name: "1 of 3", steps: makeSteps(1, 3), wantProgress: 33, wantAllDone: false},
		{name: "2 of 3", steps: makeSteps(2, 3), wantProgress: 67, wantAllDone: false},
		{name: "7 of 8", steps: makeSteps(7, 8), wantProgress: 88, wantAllDone: false},
		{name: "all done", steps: makeSteps(8, 8), wantProgress: 100, wantAllDone: true},
		{name: "single step done", steps: makeSteps(1, 1), wantProgress: 100, wantAllDone: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			progress, allDone := RecalculateProgress(tc.steps)
			assert.Equal(t, tc.wantProgress, progress)
			assert.Equal(t, tc.wantAllDone, allDone)
		})
	}
}

func TestDifficultyWeight(t *testing.T) {
	assert.Equal(t, 1.0, DifficultyWeight(model.DifficultyBeginner))
	assert.Equal(t, 1.5, DifficultyWeight(model.DifficultyIntermediate))
	assert.Equal(t, 2.0, DifficultyWeight(model.DifficultyAdvanced))
	assert.Equal(t, 1.0, DifficultyWeight("expert"))
	assert.Equal(t, 1.0, DifficultyWeight(""))
}

func TestCalculatePoints(t *testing.T) {
	resources := []*model.Resource{
		{ID: 1, Difficulty: model.DifficultyBeginner},
		{ID: 2, Difficulty: model.DifficultyIntermediate},
		{ID: 8, Difficulty: model.DifficultyAdvanced},
		{ID: 9, Difficulty: "unknown"},
	}

	testCases := []struct {
		name string
		refs []uint
		want int
	}{
		{name: "no references", refs: nil, want: 100},
		{name: "beginner and advanced", refs: []uint{1, 8}, want: 150},
		{name: "all advanced", refs: []uint{8, 8}, want: 200},
		{name: "duplicates weigh each time", refs: []uint{1, 1, 1, 8}, want: 125},
		{name: "intermediate and beginner", refs: []uint{2, 1}, want: 125},
		{name: "unresolvable skipped", refs: []uint{8, 404}, want: 200},
		{name: "only unresolvable", refs: []uint{404, 405}, want: 100},
		{name: "unknown difficulty weighs as beginner", refs: []uint{9, 8}, want: 150},
		{name: "rounded", refs: []uint{1, 1, 2}, want: 117},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculatePoints(tc.refs, resources))
		})
	}
}

func TestApplyStepProgress(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	r := &model.Roadmap{Steps: makeSteps(2, 2)}
	applyStepProgress(r, t1)
	assert.True(t, r.Completed)
	assert.Equal(t, 100, r.Progress)
	require.NotNil(t, r.CompletedAt)
	assert.Equal(t, t1, *r.CompletedAt)

	// already complete: the existing stamp is kept
	applyStepProgress(r, t2)
	assert.Equal(t, t1, *r.CompletedAt)

	r.Steps[0].Completed = false
	applyStepProgress(r, t2)
	assert.False(t, r.Completed)
	assert.Nil(t, r.CompletedAt)
	assert.Equal(t, 50, r.Progress)
}

func TestBuildSteps(t *testing.T) {
	for _, category := range Categories() {
		t.Run(category, func(t *testing.T) {
			got := BuildSteps(category)
			require.Len(t, got, 8)

			seen := make(map[string]bool, len(got))
			for _, s := range got {
				assert.NotEmpty(t, s.ID)
				assert.False(t, seen[s.ID], "duplicate step id %s", s.ID)
				seen[s.ID] = true
				assert.False(t, s.Completed)
				assert.NotEmpty(t, s.Title)
				assert.NotEmpty(t, s.ResourceIDs)
			}
		})
	}
}

func TestBuildSteps_UnknownCategoryFallsBack(t *testing.T) {
	got := BuildSteps("underwater-basket-weaving")
	want := BuildSteps(DefaultCategory)
	require.Len(t, got, len(want))
	for i := range got {
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].ResourceIDs, got[i].ResourceIDs)
		assert.NotEqual(t, want[i].ID, got[i].ID)
	}
}

func TestBuildSteps_FreshCopies(t *testing.T) {
	a := BuildSteps(DefaultCategory)
	a[0].ResourceIDs[0] = 999
	b := BuildSteps(DefaultCategory)
	assert.NotEqual(t, uint(999), b[0].ResourceIDs[0])
}

func TestTemplatesReferenceCatalog(t *testing.T) {
	catalogSize := uint(len(sampleCatalog()))
	for _, category := range Categories() {
		for _, s := range BuildSteps(category) {
			for _, id := range s.ResourceIDs {
				assert.True(t, id >= 1 && id <= catalogSize, "%s step %q refers to %d", category, s.Title, id)
			}
		}
	}
}

func TestRoadmapCategoryLabel(t *testing.T) {
	assert.Equal(t, "devops", roadmapCategoryLabel("devops"))
	assert.Equal(t, "other", roadmapCategoryLabel("knitting"))
}
