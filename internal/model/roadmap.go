// internal/model/roadmap.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RoadmapStep lives inside Roadmap.Steps and is persisted as part of one
// JSON column. ID is unique within its roadmap.
type RoadmapStep struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ResourceIDs []uint `json:"resourceIds"`
	Completed   bool   `json:"completed"`
}

// Roadmap is a user's ordered learning plan. Progress, Completed and
// CompletedAt are derived from Steps by the roadmap service, except when a
// roadmap is completed explicitly.
type Roadmap struct {
	ID          uuid.UUID                        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID                        `gorm:"type:uuid;not null;index" json:"userId"`
	Title       string                           `gorm:"not null" json:"title"`
	Description string                           `gorm:"not null" json:"description"`
	Category    string                           `gorm:"not null;index" json:"category"`
	Progress    int                              `gorm:"not null;default:0" json:"progress"`
	Steps       datatypes.JSONSlice[RoadmapStep] `gorm:"not null" json:"steps"`
	Completed   bool                             `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time                       `json:"completedAt"`
	CreatedAt   time.Time                        `json:"createdAt"`
	UpdatedAt   time.Time                        `json:"updatedAt"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

// CompletedStepCount counts steps marked completed.
func (r *Roadmap) CompletedStepCount() int {
	n := 0
	for _, s := range r.Steps {
		if s.Completed {
			n++
		}
	}
	return n
}

// ResourceRefs flattens every step's resource ids in step order.
// Duplicates are kept.
func (r *Roadmap) ResourceRefs() []uint {
	var ids []uint
	for _, s := range r.Steps {
		ids = append(ids, s.ResourceIDs...)
	}
	return ids
}

type CreateRoadmapRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1,max=2000"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
}

// ToggleStepRequest uses a pointer so a missing "completed" is rejected
// instead of read as false.
type ToggleStepRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

type UpdateProgressRequest struct {
	Progress *int `json:"progress" validate:"required,min=0,max=100"`
}
