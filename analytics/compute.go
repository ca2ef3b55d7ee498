package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
)

// TopN is the maximum length of each ranking in a Stats
const TopN = 10

// tally is the running count of a single entity in a ranking
type tally struct {
	id       uint64
	name     string
	count    int64
	lastSeen time.Time
}

// compareTally orders by count descending, then by lastSeen descending and
// finally by id ascending
func compareTally(a, b *tally) int {
	if c := cmp.Compare(b.count, a.count); c != 0 {
		return c
	}
	if c := b.lastSeen.Compare(a.lastSeen); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

// accumulator groups plays by entity id for a single ranking dimension
type accumulator map[uint64]*tally

func (acc accumulator) add(id uint64, name string, at time.Time) {
	t, ok := acc[id]
	if !ok {
		t = &tally{id: id, name: name}
		acc[id] = t
	}
	t.count++
	if at.After(t.lastSeen) {
		t.lastSeen = at
	}
}

// top returns the n highest ranked entries of the accumulator
func (acc accumulator) top(n int) []trackhaus.TopItem {
	tallies := make([]*tally, 0, len(acc))
	for _, t := range acc {
		tallies = append(tallies, t)
	}
	slices.SortFunc(tallies, compareTally)
	if len(tallies) > n {
		tallies = tallies[:n]
	}

	items := make([]trackhaus.TopItem, len(tallies))
	for i, t := range tallies {
		items[i] = trackhaus.TopItem{
			ID:         t.id,
			Name:       t.name,
			PlayCount:  t.count,
			LastPlayed: t.lastSeen,
		}
	}
	return items
}

// Compute folds the plays given into a Stats snapshot, the plays can be in any
// order. Zero plays is an errors.ListenerNoPlays error since a snapshot has no
// meaningful first and last play in that case.
func Compute(plays []trackhaus.Play) (trackhaus.Stats, error) {
	const op errors.Op = "analytics/Compute"

	if len(plays) == 0 {
		return trackhaus.Stats{}, errors.E(op, errors.ListenerNoPlays)
	}

	var (
		tracks   = accumulator{}
		artists  = accumulator{}
		albums   = accumulator{}
		stations = accumulator{}

		hours   [24]int64
		days    [7]int64
		months  [12]int64
		ratings = make([]int64, len(trackhaus.Ratings()))

		overall trackhaus.Overall
	)

	for i, p := range plays {
		at := p.OccurredAt.UTC()

		overall.TotalPlays++
		if p.Track.DurationSeconds > 0 {
			overall.TotalTimeSeconds += p.Track.DurationSeconds
		}
		if i == 0 || at.Before(overall.FirstPlay) {
			overall.FirstPlay = at
		}
		if i == 0 || at.After(overall.LastPlay) {
			overall.LastPlay = at
		}

		tracks.add(uint64(p.Track.ID), p.Track.Title, at)
		artists.add(uint64(p.Track.ArtistID), p.Artist.Name, at)
		albums.add(uint64(p.Track.AlbumID), p.Album.Title, at)
		stations.add(uint64(p.Station.ID), p.Station.Name, at)

		hours[at.Hour()]++
		days[at.Weekday()]++
		months[at.Month()-1]++

		if int(p.Rating) < len(ratings) {
			ratings[p.Rating]++
		} else {
			ratings[trackhaus.RatingUnrated]++
		}
	}

	overall.UniqueTracks = int64(len(tracks))
	overall.UniqueArtists = int64(len(artists))

	stats := trackhaus.Stats{
		Overall:     overall,
		TopTracks:   tracks.top(TopN),
		TopArtists:  artists.top(TopN),
		TopAlbums:   albums.top(TopN),
		TopStations: stations.top(TopN),
	}

	for hour, count := range hours {
		if count > 0 {
			stats.PlaysByHour = append(stats.PlaysByHour, trackhaus.HourCount{Hour: hour, PlayCount: count})
		}
	}
	for day, count := range days {
		if count > 0 {
			stats.PlaysByDay = append(stats.PlaysByDay, trackhaus.DayCount{Day: day, PlayCount: count})
		}
	}
	for month, count := range months {
		if count > 0 {
			stats.PlaysByMonth = append(stats.PlaysByMonth, trackhaus.MonthCount{Month: month + 1, PlayCount: count})
		}
	}

	// dense, every rating shows up even without plays
	stats.RatingDistribution = make([]trackhaus.RatingCount, 0, len(ratings))
	for _, r := range trackhaus.Ratings() {
		stats.RatingDistribution = append(stats.RatingDistribution, trackhaus.RatingCount{
			Rating:    r,
			PlayCount: ratings[r],
		})
	}

	return stats, nil
}
