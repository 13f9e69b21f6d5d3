// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a learner account. Points is a running total credited by
// roadmap completions; the completion ledger is the history behind it.
type User struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Username        string                      `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash    string                      `gorm:"not null" json:"-"`
	Email           string                      `json:"email,omitempty"`
	FullName        string                      `json:"fullName,omitempty"`
	Bio             string                      `json:"bio,omitempty"`
	ProfileImage    string                      `json:"profileImage,omitempty"`
	CurrentSkills   datatypes.JSONSlice[string] `json:"currentSkills"`
	LearningGoals   datatypes.JSONSlice[string] `json:"learningGoals"`
	Points          int                         `gorm:"not null;default:0" json:"points"`
	ThemePreference string                      `gorm:"not null;default:dark" json:"themePreference"`
	Role            string                      `gorm:"not null;default:user" json:"role"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser is what other users may see.
type PublicUser struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"fullName,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Points       int       `json:"points"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Username:     u.Username,
		FullName:     u.FullName,
		Bio:          u.Bio,
		ProfileImage: u.ProfileImage,
		Points:       u.Points,
		CreatedAt:    u.CreatedAt,
	}
}

// LeaderboardEntry carries only the fields safe to rank publicly.
type LeaderboardEntry struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"fullName,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Points       int       `json:"points"`
}

type UpdateProfileRequest struct {
	FullName      *string  `json:"fullName,omitempty" validate:"omitempty,max=100"`
	Bio           *string  `json:"bio,omitempty" validate:"omitempty,max=1000"`
	ProfileImage  *string  `json:"profileImage,omitempty" validate:"omitempty,url"`
	Email         *string  `json:"email,omitempty" validate:"omitempty,email"`
	CurrentSkills []string `json:"currentSkills,omitempty" validate:"omitempty,dive,min=1"`
	LearningGoals []string `json:"learningGoals,omitempty" validate:"omitempty,dive,min=1"`
}

type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=dark light"`
}

// UserSummary bundles a user's profile with everything they have done.
// LedgerPoints is the sum over Completions and should equal User.Points.
type UserSummary struct {
	User         *User               `json:"user"`
	Roadmaps     []*Roadmap          `json:"roadmaps"`
	Completions  []*CourseCompletion `json:"completions"`
	LedgerPoints int                 `json:"ledgerPoints"`
}
