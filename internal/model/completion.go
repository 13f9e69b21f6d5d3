// internal/model/completion.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseCompletion is an append-only ledger row written every time a roadmap
// is completed explicitly. Rows are never updated.
type CourseCompletion struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	RoadmapID    uuid.UUID `gorm:"type:uuid;not null;index" json:"roadmapId"`
	PointsEarned int       `gorm:"not null" json:"pointsEarned"`
	CompletedAt  time.Time `gorm:"not null" json:"completedAt"`
	Feedback     *string   `json:"feedback,omitempty"`
}

func (CourseCompletion) TableName() string {
	return "course_completions"
}
