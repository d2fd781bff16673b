package model

import "time"

// UserEntity represents the user document
type UserEntity struct {
	ID             string     `db:"id" json:"id"`
	FirstName      string     `db:"first_name" json:"first_name"`
	LastName       string     `db:"last_name" json:"last_name"`
	Email          string     `db:"email" json:"email"`
	Mobile         string     `db:"mobile" json:"mobile"`
	PasswordHash   string     `db:"password_hash" json:"-"`
	Avatar         string     `db:"avatar" json:"avatar"`
	IsActive       bool       `db:"is_active" json:"is_active"`
	IsVerified     bool       `db:"is_verified" json:"is_verified"`
	Role           string     `db:"role" json:"role"`
	LastAPIHitTime *time.Time `db:"last_api_hit_time" json:"last_api_hit_time,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    string
	Email string
}

type SignupRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	Mobile    string `json:"mobile"`
	Password  string `json:"password" validate:"required,min=6"`
}

type SignupResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *UserEntity `json:"user"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

type EditUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Mobile    string `json:"mobile"`
	Avatar    string `json:"-"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type ForgetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
