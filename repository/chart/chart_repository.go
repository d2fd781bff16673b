package chart

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ChartRepository interface {
	List(ctx context.Context) ([]model.TopChartEntity, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.TopChartEntity, error)
	UpsertTx(ctx context.Context, tx *sqlx.Tx, data *model.TopChartEntity) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error
}

func NewChartRepository(conn *sqlx.DB) ChartRepository {
	return &SQL{conn: conn}
}

const getChartBase = `SELECT id, lfid, title, artists, duration, isrc, has_lrc, copyright, writer, created_at FROM top_chart WHERE true`

func (s *SQL) List(ctx context.Context) ([]model.TopChartEntity, error) {
	items := []model.TopChartEntity{}
	err := s.conn.SelectContext(ctx, &items, getChartBase+" ORDER BY created_at DESC")
	return items, err
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.TopChartEntity, error) {
	var entity model.TopChartEntity
	if err := tx.QueryRowxContext(ctx, getChartBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// UpsertTx inserts a chart entry or refreshes the existing row keyed by lfid.
func (s *SQL) UpsertTx(ctx context.Context, tx *sqlx.Tx, data *model.TopChartEntity) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO top_chart (id, lfid, title, artists, duration, isrc, has_lrc, copyright, writer, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE title = VALUES(title), artists = VALUES(artists), duration = VALUES(duration),
		isrc = VALUES(isrc), has_lrc = VALUES(has_lrc), copyright = VALUES(copyright), writer = VALUES(writer)`,
		data.ID, data.LFID, data.Title, data.Artists, data.Duration, data.ISRC,
		data.HasLRC, data.Copyright, data.Writer)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM top_chart WHERE id = ?`, id)
	return err
}
