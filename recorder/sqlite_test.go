package recorder_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/recorder"
	storagetest "github.com/trackhaus/trackhaus/storage/test"
)

func newListener(t *testing.T, store trackhaus.StorageService, email string) trackhaus.ListenerID {
	t.Helper()

	key, err := trackhaus.NewAPIKey()
	require.NoError(t, err)

	id, err := store.Listeners(context.Background()).Create(trackhaus.Listener{
		Email:        email,
		PasswordHash: "hash",
		APIKey:       key,
		Active:       true,
	})
	require.NoError(t, err)
	return id
}

func TestRecordSQLite(t *testing.T) {
	ctx := context.Background()
	store := storagetest.SQLite(t)
	listener := newListener(t, store, "kid-a@example.org")
	r := recorder.NewRecorder(store)

	like := 1
	occurred := time.Date(2024, 10, 2, 21, 30, 0, 0, time.FixedZone("CEST", 2*60*60))

	first, err := r.Record(ctx, listener, trackhaus.PlaySubmission{
		Title:           "Everything In Its Right Place",
		Artist:          "Radiohead",
		Album:           "Kid A",
		Station:         "BBC 6 Music",
		Rating:          &like,
		OccurredAt:      occurred,
		DurationSeconds: 251,
	})
	require.NoError(t, err)

	second, err := r.Record(ctx, listener, trackhaus.PlaySubmission{
		Title:   "Everything In Its Right Place",
		Artist:  "Radiohead",
		Album:   "Kid A",
		Station: "BBC 6 Music",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	a, err := store.Plays(ctx).Get(first)
	require.NoError(t, err)
	b, err := store.Plays(ctx).Get(second)
	require.NoError(t, err)

	// both plays point at the same catalog entities
	assert.Equal(t, a.Track.ID, b.Track.ID)
	assert.Equal(t, a.Artist.ID, b.Artist.ID)
	assert.Equal(t, a.Album.ID, b.Album.ID)
	assert.Equal(t, a.Station.ID, b.Station.ID)

	assert.Equal(t, "Radiohead", a.Artist.Name)
	assert.Equal(t, "Kid A", a.Album.Title)
	assert.Equal(t, a.Artist.ID, a.Album.ArtistID)
	assert.Equal(t, int64(251), a.Track.DurationSeconds)
	assert.Equal(t, trackhaus.RatingLike, a.Rating)
	assert.Equal(t, trackhaus.RatingUnrated, b.Rating)
	assert.True(t, occurred.Equal(a.OccurredAt))
	assert.Equal(t, time.UTC, a.OccurredAt.Location())

	count, err := store.Plays(ctx).CountByListener(listener)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestRecordSQLiteInvalidWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := storagetest.SQLite(t)
	listener := newListener(t, store, "invalid@example.org")
	r := recorder.NewRecorder(store)

	_, err := r.Record(ctx, listener, trackhaus.PlaySubmission{
		Title:   "Idioteque",
		Artist:  "Radiohead",
		Station: "BBC 6 Music",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(errors.InvalidArgument, err))

	count, err := store.Plays(ctx).CountByListener(listener)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecordSQLiteConcurrent(t *testing.T) {
	ctx := context.Background()
	store := storagetest.SQLite(t)
	listener := newListener(t, store, "concurrent@example.org")
	r := recorder.NewRecorder(store)

	const n = 8
	var wg sync.WaitGroup
	ids := make([]trackhaus.PlayID, n)
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i], errs[i] = r.Record(ctx, listener, trackhaus.PlaySubmission{
				Title:   "The National Anthem",
				Artist:  "Radiohead",
				Album:   "Kid A",
				Station: "KEXP",
			})
		}()
	}
	wg.Wait()

	tracks := map[trackhaus.TrackID]struct{}{}
	for i := range n {
		require.NoError(t, errs[i])
		play, err := store.Plays(ctx).Get(ids[i])
		require.NoError(t, err)
		tracks[play.Track.ID] = struct{}{}
	}
	assert.Len(t, tracks, 1, "concurrent recordings created duplicate tracks")

	count, err := store.Plays(ctx).CountByListener(listener)
	require.NoError(t, err)
	assert.EqualValues(t, n, count)
}
