package artist

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

// ArtistRepository reads the bulk-loaded artist catalogue. There is no write
// path through the API.
type ArtistRepository interface {
	ListArtists(ctx context.Context) ([]model.ArtistDetailEntity, error)
	ListAlbumsByArtist(ctx context.Context, artistID int64) ([]model.ArtistAlbumEntity, error)
	ListSongsByArtist(ctx context.Context, artistID int64) ([]model.ArtistSongEntity, error)
	ListSongsByAlbum(ctx context.Context, albumID int64) ([]model.ArtistSongEntity, error)
}

func NewArtistRepository(conn *sqlx.DB) ArtistRepository {
	return &SQL{conn: conn}
}

func (s *SQL) ListArtists(ctx context.Context) ([]model.ArtistDetailEntity, error) {
	items := []model.ArtistDetailEntity{}
	err := s.conn.SelectContext(ctx, &items,
		`SELECT artist_id, name, link, status FROM artist_detail ORDER BY name ASC`)
	return items, err
}

func (s *SQL) ListAlbumsByArtist(ctx context.Context, artistID int64) ([]model.ArtistAlbumEntity, error) {
	items := []model.ArtistAlbumEntity{}
	err := s.conn.SelectContext(ctx, &items,
		`SELECT album_id, artist_id, name, link, status FROM artist_album WHERE artist_id = ? ORDER BY name ASC`, artistID)
	return items, err
}

func (s *SQL) ListSongsByArtist(ctx context.Context, artistID int64) ([]model.ArtistSongEntity, error) {
	items := []model.ArtistSongEntity{}
	err := s.conn.SelectContext(ctx, &items,
		`SELECT song_id, album_id, artist_id, name, link, status FROM artist_song WHERE artist_id = ? ORDER BY name ASC`, artistID)
	return items, err
}

func (s *SQL) ListSongsByAlbum(ctx context.Context, albumID int64) ([]model.ArtistSongEntity, error) {
	items := []model.ArtistSongEntity{}
	err := s.conn.SelectContext(ctx, &items,
		`SELECT song_id, album_id, artist_id, name, link, status FROM artist_song WHERE album_id = ? ORDER BY name ASC`, albumID)
	return items, err
}
