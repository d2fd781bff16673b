package model

// Artist catalogue documents are bulk-loaded out of band and cross-referenced
// by the provider's numeric ids, not by the document's own id.

type ArtistDetailEntity struct {
	ArtistID int64  `db:"artist_id" json:"artist_id"`
	Name     string `db:"name" json:"name"`
	Link     string `db:"link" json:"link"`
	Status   bool   `db:"status" json:"status"`
}

type ArtistAlbumEntity struct {
	AlbumID  int64  `db:"album_id" json:"album_id"`
	ArtistID int64  `db:"artist_id" json:"artist_id"`
	Name     string `db:"name" json:"name"`
	Link     string `db:"link" json:"link"`
	Status   bool   `db:"status" json:"status"`
}

type ArtistSongEntity struct {
	SongID   int64  `db:"song_id" json:"song_id"`
	AlbumID  int64  `db:"album_id" json:"album_id"`
	ArtistID int64  `db:"artist_id" json:"artist_id"`
	Name     string `db:"name" json:"name"`
	Link     string `db:"link" json:"link"`
	Status   bool   `db:"status" json:"status"`
}
