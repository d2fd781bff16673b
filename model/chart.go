package model

import "time"

// TopChartEntity represents one top-chart document. Rows are populated out
// of band through the chart ingest queue, never through a public endpoint.
type TopChartEntity struct {
	ID        string      `db:"id" json:"id"`
	LFID      string      `db:"lfid" json:"lfid"`
	Title     string      `db:"title" json:"title"`
	Artists   StringSlice `db:"artists" json:"artists"`
	Duration  int         `db:"duration" json:"duration"`
	ISRC      string      `db:"isrc" json:"isrc"`
	HasLRC    bool        `db:"has_lrc" json:"has_lrc"`
	Copyright string      `db:"copyright" json:"copyright"`
	Writer    string      `db:"writer" json:"writer"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

type ChartEntry struct {
	LFID      string   `json:"lfid" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	Artists   []string `json:"artists"`
	Duration  int      `json:"duration"`
	ISRC      string   `json:"isrc"`
	HasLRC    bool     `json:"has_lrc"`
	Copyright string   `json:"copyright"`
	Writer    string   `json:"writer"`
}

type ChartIngestRequest struct {
	Entries []ChartEntry `json:"entries" validate:"required,dive"`
}
