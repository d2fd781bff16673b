package testimonial

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

type TestimonialRepository interface {
	ListActive(ctx context.Context) ([]model.TestimonialEntity, error)
	List(ctx context.Context) ([]model.TestimonialEntity, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.TestimonialEntity, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.TestimonialEntity) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.TestimonialEntity) error
	SoftDeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error
	HardDeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error
}

func NewTestimonialRepository(conn *sqlx.DB) TestimonialRepository {
	return &SQL{conn: conn}
}

// notDeleted is the single soft-delete predicate applied by every query.
const notDeleted = " AND deleted_at IS NULL"

const getTestimonialBase = `SELECT id, full_name, rating, description, avatar, is_active, deleted_at, created_at, updated_at FROM testimonial WHERE true`

func (s *SQL) ListActive(ctx context.Context) ([]model.TestimonialEntity, error) {
	items := []model.TestimonialEntity{}
	err := s.conn.SelectContext(ctx, &items, getTestimonialBase+notDeleted+" AND is_active = true ORDER BY created_at DESC")
	return items, err
}

func (s *SQL) List(ctx context.Context) ([]model.TestimonialEntity, error) {
	items := []model.TestimonialEntity{}
	err := s.conn.SelectContext(ctx, &items, getTestimonialBase+notDeleted+" ORDER BY created_at DESC")
	return items, err
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.TestimonialEntity, error) {
	var entity model.TestimonialEntity
	if err := tx.QueryRowxContext(ctx, getTestimonialBase+notDeleted+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.TestimonialEntity) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO testimonial (id, full_name, rating, description, avatar, is_active, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`,
		data.ID, data.FullName, data.Rating, data.Description, data.Avatar, data.IsActive)
	return err
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.TestimonialEntity) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE testimonial SET full_name = ?, rating = ?, description = ?, is_active = ?, updated_at = NOW() WHERE id = ?`+notDeleted,
		data.FullName, data.Rating, data.Description, data.IsActive, data.ID)
	return err
}

func (s *SQL) SoftDeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE testimonial SET deleted_at = NOW() WHERE id = ?`+notDeleted, id)
	return err
}

func (s *SQL) HardDeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM testimonial WHERE id = ?`, id)
	return err
}
