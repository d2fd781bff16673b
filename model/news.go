package model

import "time"

// NewsEntity represents the news document. At most 10 live entries may
// exist at creation time.
type NewsEntity struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Author      string     `db:"author" json:"author"`
	PublishDate time.Time  `db:"publish_date" json:"publish_date"`
	CoverImg    string     `db:"cover_img" json:"cover_img"`
	DeletedAt   *time.Time `db:"deleted_at" json:"-"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type CreateNewsRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Author      string `json:"author" validate:"required"`
	PublishDate string `json:"publish_date" validate:"required"`
	CoverImg    string `json:"-"`
}

type UpdateNewsRequest struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      string `json:"author"`
	PublishDate string `json:"publish_date"`
}
