package model

import "time"

// TestimonialEntity represents the testimonial document
type TestimonialEntity struct {
	ID          string     `db:"id" json:"id"`
	FullName    string     `db:"full_name" json:"full_name"`
	Rating      int        `db:"rating" json:"rating"`
	Description string     `db:"description" json:"description"`
	Avatar      string     `db:"avatar" json:"avatar"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	DeletedAt   *time.Time `db:"deleted_at" json:"-"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type CreateTestimonialRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Description string `json:"description" validate:"required"`
	Avatar      string `json:"-"`
}

type UpdateTestimonialRequest struct {
	ID          string `json:"id" validate:"required"`
	FullName    string `json:"full_name"`
	Rating      int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}
