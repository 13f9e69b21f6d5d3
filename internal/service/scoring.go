package service

import (
	"math"

	"learnroute/internal/model"
)

// BasePoints is awarded for a roadmap whose resources are all beginner
// level, or that references no resolvable resources at all.
const BasePoints = 100

// RecalculateProgress returns round(100*done/total) and whether every step
// is done. An empty step list is 0% and never done.
func RecalculateProgress(steps []model.RoadmapStep) (progress int, allDone bool) {
	total := len(steps)
	if total == 0 {
		return 0, false
	}
	done := 0
	for _, s := range steps {
		if s.Completed {
			done++
		}
	}
	// math.Round rounds half away from zero, which is half up here
	return int(math.Round(100 * float64(done) / float64(total))), done == total
}

// DifficultyWeight maps a difficulty to its points multiplier. Unknown
// values weigh the same as beginner.
func DifficultyWeight(d model.Difficulty) float64 {
	switch d {
	case model.DifficultyIntermediate:
		return 1.5
	case model.DifficultyAdvanced:
		return 2.0
	default:
		return 1.0
	}
}

// CalculatePoints averages the difficulty weight over every reference in
// refs (duplicates count each time) and scales it by BasePoints. References
// missing from resources are skipped.
func CalculatePoints(refs []uint, resources []*model.Resource) int {
	byID := make(map[uint]*model.Resource, len(resources))
	for _, r := range resources {
		byID[r.ID] = r
	}

	var sum float64
	n := 0
	for _, id := range refs {
		r, ok := byID[id]
		if !ok {
			continue
		}
		sum += DifficultyWeight(r.Difficulty)
		n++
	}
	if n == 0 {
		return BasePoints
	}
	return int(math.Round(BasePoints * sum / float64(n)))
}
