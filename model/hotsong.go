package model

import "time"

// HotSongEntity represents the curated hot-songs document, built from the
// first metadata-provider track matching the requested ISRC. At most 8 live
// entries may exist at creation time.
type HotSongEntity struct {
	ID          string      `db:"id" json:"id"`
	Images      StringSlice `db:"images" json:"images"`
	Name        string      `db:"name" json:"name"`
	ReleaseDate string      `db:"release_date" json:"release_date"`
	Artists     StringSlice `db:"artists" json:"artists"`
	ISRC        string      `db:"isrc" json:"isrc"`
	Album       string      `db:"album" json:"album"`
	Genre       string      `db:"genre" json:"genre"`
	Duration    int         `db:"duration" json:"duration"`
	SpotifyURL  string      `db:"spotify_url" json:"spotifyUrl"`
	Territory   string      `db:"territory" json:"territory"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}

type AddHotSongRequest struct {
	ISRC      string `json:"isrc" validate:"required"`
	Genre     string `json:"genre"`
	Territory string `json:"territory"`
}
