package hotsong

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

type HotSongRepository interface {
	List(ctx context.Context) ([]model.HotSongEntity, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.HotSongEntity, error)
	CountTx(ctx context.Context, tx *sqlx.Tx) (int64, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.HotSongEntity) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error
}

func NewHotSongRepository(conn *sqlx.DB) HotSongRepository {
	return &SQL{conn: conn}
}

const getHotSongBase = `SELECT id, images, name, release_date, artists, isrc, album, genre, duration, spotify_url, territory, created_at FROM hot_song WHERE true`

func (s *SQL) List(ctx context.Context) ([]model.HotSongEntity, error) {
	items := []model.HotSongEntity{}
	err := s.conn.SelectContext(ctx, &items, getHotSongBase+" ORDER BY created_at DESC")
	return items, err
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.HotSongEntity, error) {
	var entity model.HotSongEntity
	if err := tx.QueryRowxContext(ctx, getHotSongBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// CountTx locks the rows so the cap check and the insert are serialized
// against concurrent creates.
func (s *SQL) CountTx(ctx context.Context, tx *sqlx.Tx) (int64, error) {
	var count int64
	err := tx.QueryRowxContext(ctx, `SELECT COUNT(*) FROM hot_song FOR UPDATE`).Scan(&count)
	return count, err
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.HotSongEntity) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO hot_song (id, images, name, release_date, artists, isrc, album, genre, duration, spotify_url, territory, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		data.ID, data.Images, data.Name, data.ReleaseDate, data.Artists, data.ISRC,
		data.Album, data.Genre, data.Duration, data.SpotifyURL, data.Territory)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM hot_song WHERE id = ?`, id)
	return err
}
