package analytics

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
)

var base = time.Date(2024, 11, 4, 12, 0, 0, 0, time.UTC)

// play returns a play of the track with id on the default artist, album and
// station
func play(id trackhaus.TrackID, at time.Time) trackhaus.Play {
	return trackhaus.Play{
		Track: trackhaus.Track{
			ID:       id,
			Title:    fmt.Sprintf("track %d", id),
			ArtistID: 1,
			AlbumID:  1,
		},
		Artist:     trackhaus.Artist{ID: 1, Name: "Radiohead"},
		Album:      trackhaus.Album{ID: 1, Title: "Kid A", ArtistID: 1},
		Station:    trackhaus.Station{ID: 1, Name: "KEXP"},
		OccurredAt: at,
	}
}

func repeat(n int, id trackhaus.TrackID, last time.Time) []trackhaus.Play {
	plays := make([]trackhaus.Play, n)
	for i := range plays {
		plays[i] = play(id, last.Add(-time.Duration(i)*time.Hour))
	}
	return plays
}

func TestComputeEmpty(t *testing.T) {
	_, err := Compute(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(errors.ListenerNoPlays, err))

	_, err = Compute([]trackhaus.Play{})
	assert.True(t, errors.Is(errors.ListenerNoPlays, err))
}

func TestComputeTopOrder(t *testing.T) {
	t1 := base
	t2 := base.Add(time.Hour * 24)

	var plays []trackhaus.Play
	// C first so that input order can't be what decides the result
	plays = append(plays, repeat(3, 3, t2.Add(time.Hour))...)
	plays = append(plays, repeat(5, 2, t1)...)
	plays = append(plays, repeat(5, 1, t2)...)

	stats, err := Compute(plays)
	require.NoError(t, err)

	require.Len(t, stats.TopTracks, 3)
	assert.Equal(t, uint64(1), stats.TopTracks[0].ID)
	assert.Equal(t, uint64(2), stats.TopTracks[1].ID)
	assert.Equal(t, uint64(3), stats.TopTracks[2].ID)

	assert.EqualValues(t, 5, stats.TopTracks[0].PlayCount)
	assert.True(t, t2.Equal(stats.TopTracks[0].LastPlayed))
	assert.True(t, t1.Equal(stats.TopTracks[1].LastPlayed))
	assert.Equal(t, "track 1", stats.TopTracks[0].Name)

	require.Len(t, stats.TopArtists, 1)
	assert.EqualValues(t, 13, stats.TopArtists[0].PlayCount)
	assert.Equal(t, "Radiohead", stats.TopArtists[0].Name)
	require.Len(t, stats.TopAlbums, 1)
	assert.Equal(t, "Kid A", stats.TopAlbums[0].Name)
	require.Len(t, stats.TopStations, 1)
	assert.Equal(t, "KEXP", stats.TopStations[0].Name)
}

func TestComputeTopTieOnID(t *testing.T) {
	plays := []trackhaus.Play{
		play(9, base),
		play(4, base),
		play(7, base),
	}

	stats, err := Compute(plays)
	require.NoError(t, err)
	require.Len(t, stats.TopTracks, 3)
	assert.Equal(t, uint64(4), stats.TopTracks[0].ID)
	assert.Equal(t, uint64(7), stats.TopTracks[1].ID)
	assert.Equal(t, uint64(9), stats.TopTracks[2].ID)
}

func TestComputeTopTruncated(t *testing.T) {
	var plays []trackhaus.Play
	for id := trackhaus.TrackID(1); id <= TopN+5; id++ {
		plays = append(plays, repeat(int(id), id, base)...)
	}

	stats, err := Compute(plays)
	require.NoError(t, err)
	require.Len(t, stats.TopTracks, TopN)
	assert.Equal(t, uint64(TopN+5), stats.TopTracks[0].ID)
	assert.EqualValues(t, TopN+5, stats.Overall.UniqueTracks)
}

func TestComputeHourSparse(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	plays := []trackhaus.Play{
		play(1, day.Add(3*time.Hour)),
		play(1, day.Add(3*time.Hour+20*time.Minute)),
		play(2, day.Add(9*time.Hour)),
	}

	stats, err := Compute(plays)
	require.NoError(t, err)
	assert.Equal(t, []trackhaus.HourCount{
		{Hour: 3, PlayCount: 2},
		{Hour: 9, PlayCount: 1},
	}, stats.PlaysByHour)
	// 2024-06-01 is a saturday
	assert.Equal(t, []trackhaus.DayCount{{Day: 6, PlayCount: 3}}, stats.PlaysByDay)
	assert.Equal(t, []trackhaus.MonthCount{{Month: 6, PlayCount: 3}}, stats.PlaysByMonth)
}

func TestComputeUsesUTC(t *testing.T) {
	// 01:30 in UTC+3 is 22:30 on the previous day in UTC
	zone := time.FixedZone("UTC+3", 3*60*60)
	at := time.Date(2024, 1, 1, 1, 30, 0, 0, zone)

	stats, err := Compute([]trackhaus.Play{play(1, at)})
	require.NoError(t, err)
	assert.Equal(t, []trackhaus.HourCount{{Hour: 22, PlayCount: 1}}, stats.PlaysByHour)
	// 2023-12-31 is a sunday
	assert.Equal(t, []trackhaus.DayCount{{Day: 0, PlayCount: 1}}, stats.PlaysByDay)
	assert.Equal(t, []trackhaus.MonthCount{{Month: 12, PlayCount: 1}}, stats.PlaysByMonth)
	assert.Equal(t, time.UTC, stats.Overall.FirstPlay.Location())
}

func TestComputeRatingDense(t *testing.T) {
	unrated := play(1, base)
	like := play(1, base.Add(time.Minute))
	like.Rating = trackhaus.RatingLike

	stats, err := Compute([]trackhaus.Play{unrated, like, like})
	require.NoError(t, err)
	assert.Equal(t, []trackhaus.RatingCount{
		{Rating: trackhaus.RatingUnrated, PlayCount: 1},
		{Rating: trackhaus.RatingLike, PlayCount: 2},
		{Rating: trackhaus.RatingBan, PlayCount: 0},
		{Rating: trackhaus.RatingTired, PlayCount: 0},
	}, stats.RatingDistribution)
}

func TestComputeOverall(t *testing.T) {
	a := play(1, base)
	a.Track.DurationSeconds = 200
	b := play(2, base.Add(-48*time.Hour))
	b.Track.DurationSeconds = 100
	// unknown duration counts as zero
	c := play(3, base.Add(time.Hour))
	c.Track.ArtistID = 2
	c.Artist = trackhaus.Artist{ID: 2, Name: "Portishead"}

	stats, err := Compute([]trackhaus.Play{a, b, c, a})
	require.NoError(t, err)

	assert.Equal(t, trackhaus.Overall{
		TotalPlays:       4,
		UniqueTracks:     3,
		UniqueArtists:    2,
		TotalTimeSeconds: 500,
		FirstPlay:        base.Add(-48 * time.Hour),
		LastPlay:         base.Add(time.Hour),
	}, stats.Overall)
}

func TestComputeProperties(t *testing.T) {
	const start, end = 946684800, 4102444800 // 2000 to 2100

	p := gopter.NewProperties(nil)

	genPlays := gen.SliceOf(gen.Struct(reflectPlayInput, map[string]gopter.Gen{
		"Track":  gen.UInt32Range(1, 20),
		"Unix":   gen.Int64Range(start, end),
		"Rating": gen.UInt8Range(0, 3),
	}))

	p.Property("histograms account for every play", prop.ForAll(func(in []playInput) bool {
		stats, err := Compute(toPlays(in))
		if len(in) == 0 {
			return errors.Is(errors.ListenerNoPlays, err)
		}
		if err != nil {
			return false
		}

		var hours, days, months, ratings int64
		prev := -1
		for _, h := range stats.PlaysByHour {
			if h.PlayCount <= 0 || h.Hour <= prev || h.Hour > 23 {
				return false
			}
			prev = h.Hour
			hours += h.PlayCount
		}
		prev = -1
		for _, d := range stats.PlaysByDay {
			if d.PlayCount <= 0 || d.Day <= prev || d.Day > 6 {
				return false
			}
			prev = d.Day
			days += d.PlayCount
		}
		prev = 0
		for _, m := range stats.PlaysByMonth {
			if m.PlayCount <= 0 || m.Month <= prev || m.Month > 12 {
				return false
			}
			prev = m.Month
			months += m.PlayCount
		}
		if len(stats.RatingDistribution) != len(trackhaus.Ratings()) {
			return false
		}
		for _, r := range stats.RatingDistribution {
			ratings += r.PlayCount
		}

		total := int64(len(in))
		return stats.Overall.TotalPlays == total &&
			hours == total && days == total && months == total && ratings == total
	}, genPlays))

	p.Property("rankings are ordered", prop.ForAll(func(in []playInput) bool {
		stats, err := Compute(toPlays(in))
		if err != nil {
			return len(in) == 0
		}

		top := stats.TopTracks
		if len(top) > TopN {
			return false
		}
		for i := 1; i < len(top); i++ {
			a, b := top[i-1], top[i]
			if a.PlayCount < b.PlayCount {
				return false
			}
			if a.PlayCount == b.PlayCount && a.LastPlayed.Before(b.LastPlayed) {
				return false
			}
		}
		return true
	}, genPlays))

	p.TestingRun(t)
}

type playInput struct {
	Track  uint32
	Unix   int64
	Rating uint8
}

var reflectPlayInput = reflect.TypeOf(playInput{})

func toPlays(in []playInput) []trackhaus.Play {
	plays := make([]trackhaus.Play, len(in))
	for i, p := range in {
		plays[i] = play(trackhaus.TrackID(p.Track), time.Unix(p.Unix, 0))
		plays[i].Rating = trackhaus.Rating(p.Rating)
	}
	return plays
}
