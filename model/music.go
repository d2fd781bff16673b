package model

// TrackResult is the normalized shape returned by free-text track search.
type TrackResult struct {
	Name   string  `json:"name"`
	ID     string  `json:"id"`
	ISRC   string  `json:"isrc"`
	Artist string  `json:"artist"`
	Image  *string `json:"image"`
}

// SpotifyTrack is the normalized metadata-provider track used internally.
type SpotifyTrack struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ISRC        string   `json:"isrc"`
	Artists     []string `json:"artists"`
	Album       string   `json:"album"`
	ReleaseDate string   `json:"release_date"`
	DurationMs  int      `json:"duration_ms"`
	SpotifyURL  string   `json:"spotify_url"`
	Images      []string `json:"images"`
}

// LyricsResult is the normalized lyrics-provider payload.
type LyricsResult struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Lyrics string `json:"lyrics"`
}

// ChartTrackResult is one entry of the lyrics-provider chart listing.
type ChartTrackResult struct {
	Rank   int    `json:"rank"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	ISRC   string `json:"isrc"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit"`
}

// LyricsRequest accepts either a 22-character metadata-provider track id or
// a raw ISRC.
type LyricsRequest struct {
	ID string `json:"id" validate:"required"`
}
