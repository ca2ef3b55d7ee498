package trackhaus

import "time"

// Stats is a snapshot of the listening statistics of a single listener
type Stats struct {
	Overall Overall `json:"overall"`

	TopTracks   []TopItem `json:"top_tracks"`
	TopArtists  []TopItem `json:"top_artists"`
	TopAlbums   []TopItem `json:"top_albums"`
	TopStations []TopItem `json:"top_stations"`

	// the time histograms are sparse, buckets without plays are not included
	PlaysByHour  []HourCount  `json:"plays_by_hour"`
	PlaysByDay   []DayCount   `json:"plays_by_day"`
	PlaysByMonth []MonthCount `json:"plays_by_month"`

	// RatingDistribution contains every rating, including those without plays
	RatingDistribution []RatingCount `json:"rating_distribution"`
}

// Overall contains the listener-wide counters of a Stats
type Overall struct {
	TotalPlays    int64 `json:"total_plays"`
	UniqueTracks  int64 `json:"unique_tracks"`
	UniqueArtists int64 `json:"unique_artists"`
	// TotalTimeSeconds is the sum of known track durations
	TotalTimeSeconds int64     `json:"total_time_seconds"`
	FirstPlay        time.Time `json:"first_play"`
	LastPlay         time.Time `json:"last_play"`
}

// TopItem is a single entry of a top ranking
type TopItem struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	PlayCount  int64     `json:"play_count"`
	LastPlayed time.Time `json:"last_played"`
}

// HourCount is the amount of plays in an hour of the day, 0-23 UTC
type HourCount struct {
	Hour      int   `json:"hour"`
	PlayCount int64 `json:"play_count"`
}

// DayCount is the amount of plays on a day of the week, 0 (Sunday) to 6
type DayCount struct {
	Day       int   `json:"day"`
	PlayCount int64 `json:"play_count"`
}

// MonthCount is the amount of plays in a calendar month, 1-12
type MonthCount struct {
	Month     int   `json:"month"`
	PlayCount int64 `json:"play_count"`
}

// RatingCount is the amount of plays with a specific rating
type RatingCount struct {
	Rating    Rating `json:"rating"`
	PlayCount int64  `json:"play_count"`
}
