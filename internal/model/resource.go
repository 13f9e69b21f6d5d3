// internal/model/resource.go
package model

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

const (
	ResourceTypeVideo   = "video"
	ResourceTypeArticle = "article"
)

// Resource is an entry in the learning catalog that roadmap steps point at.
type Resource struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Type        string     `gorm:"not null" json:"type"`
	URL         string     `gorm:"not null" json:"url"`
	Category    string     `gorm:"not null;index" json:"category"`
	Description string     `gorm:"not null" json:"description"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	Duration    string     `json:"duration,omitempty"`
	Difficulty  Difficulty `gorm:"not null;default:beginner" json:"difficulty"`
	PointsValue int        `gorm:"not null;default:10" json:"pointsValue"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (Resource) TableName() string {
	return "resources"
}

type CreateResourceRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Type        string `json:"type" validate:"required,oneof=video article"`
	URL         string `json:"url" validate:"required,url"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"required"`
	Thumbnail   string `json:"thumbnail,omitempty" validate:"omitempty,url"`
	Duration    string `json:"duration,omitempty"`
	Difficulty  string `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	PointsValue *int   `json:"pointsValue,omitempty" validate:"omitempty,min=0"`
}

type MultipleResourcesRequest struct {
	IDs []uint `json:"ids" validate:"required,dive,min=1"`
}
