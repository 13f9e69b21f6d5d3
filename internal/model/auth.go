package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username      string   `json:"username" validate:"required,min=3,max=50"`
	Password      string   `json:"password" validate:"required,min=8,max=72"`
	Email         string   `json:"email,omitempty" validate:"omitempty,email"`
	FullName      string   `json:"fullName,omitempty" validate:"omitempty,max=100"`
	CurrentSkills []string `json:"currentSkills,omitempty"`
	LearningGoals []string `json:"learningGoals,omitempty"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// JWTCustomClaims is the access token payload. Subject holds the user id.
type JWTCustomClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
