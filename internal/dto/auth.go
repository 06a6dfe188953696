package dto

import "github.com/Sneha-8765/task-manager/internal/domain"

// LoginRequest is the JSON body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /api/register.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=120"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=1"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// AuthResponse is returned by successful register and login calls.
type AuthResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// Credential is a demo username/password pair, echoed by reset-demo-data
// for operator convenience.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResetResponse is returned by POST /api/reset-demo-data.
type ResetResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	DemoUsers []Credential `json:"demoUsers"`
}
