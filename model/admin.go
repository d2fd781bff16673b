package model

import "time"

// AdminEntity represents the admin document. Admins are seeded by the
// cmd/seedadmin tool, never through the public API.
type AdminEntity struct {
	ID           string     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Avatar       string     `db:"avatar" json:"avatar"`
	Role         string     `db:"role" json:"role"`
	OTP          *string    `db:"otp" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type AdminFilter struct {
	ID    string
	Email string
}

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Token string       `json:"token"`
	Admin *AdminEntity `json:"admin"`
}

type EditAdminRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"-"`
}
