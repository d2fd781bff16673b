package news

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

type NewsRepository interface {
	List(ctx context.Context) ([]model.NewsEntity, error)
	Get(ctx context.Context, id string) (*model.NewsEntity, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.NewsEntity, error)
	CountLiveTx(ctx context.Context, tx *sqlx.Tx) (int64, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.NewsEntity) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.NewsEntity) error
	SoftDeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error
}

func NewNewsRepository(conn *sqlx.DB) NewsRepository {
	return &SQL{conn: conn}
}

// notDeleted is the single soft-delete predicate applied by every query,
// listing included.
const notDeleted = " AND deleted_at IS NULL"

const getNewsBase = `SELECT id, title, description, author, publish_date, cover_img, deleted_at, created_at, updated_at FROM news WHERE true`

func (s *SQL) List(ctx context.Context) ([]model.NewsEntity, error) {
	items := []model.NewsEntity{}
	err := s.conn.SelectContext(ctx, &items, getNewsBase+notDeleted+" ORDER BY publish_date DESC")
	return items, err
}

func (s *SQL) Get(ctx context.Context, id string) (*model.NewsEntity, error) {
	var entity model.NewsEntity
	if err := s.conn.QueryRowxContext(ctx, getNewsBase+notDeleted+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.NewsEntity, error) {
	var entity model.NewsEntity
	if err := tx.QueryRowxContext(ctx, getNewsBase+notDeleted+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// CountLiveTx locks the live rows so the count-then-insert cap check cannot
// race with a concurrent create in another transaction.
func (s *SQL) CountLiveTx(ctx context.Context, tx *sqlx.Tx) (int64, error) {
	var count int64
	err := tx.QueryRowxContext(ctx, `SELECT COUNT(*) FROM news WHERE deleted_at IS NULL FOR UPDATE`).Scan(&count)
	return count, err
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.NewsEntity) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO news (id, title, description, author, publish_date, cover_img, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`,
		data.ID, data.Title, data.Description, data.Author, data.PublishDate, data.CoverImg)
	return err
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.NewsEntity) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE news SET title = ?, description = ?, author = ?, publish_date = ?, updated_at = NOW() WHERE id = ?`+notDeleted,
		data.Title, data.Description, data.Author, data.PublishDate, data.ID)
	return err
}

func (s *SQL) SoftDeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE news SET deleted_at = NOW() WHERE id = ?`+notDeleted, id)
	return err
}
