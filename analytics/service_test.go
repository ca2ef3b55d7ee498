package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/analytics"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/mocks"
	storagetest "github.com/trackhaus/trackhaus/storage/test"
)

func playStorage(ps trackhaus.PlayStorage) *mocks.StorageServiceMock {
	return mocks.StorageServiceWith(nil, nil, ps, nil)
}

func TestUserStatsNoPlays(t *testing.T) {
	ps := &mocks.PlayStorageMock{
		AllByListenerFunc: func(trackhaus.ListenerID) ([]trackhaus.Play, error) {
			return nil, nil
		},
	}

	_, err := analytics.NewService(playStorage(ps)).UserStats(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(errors.ListenerNoPlays, err))
	require.Len(t, ps.AllByListenerCalls(), 1)
	assert.Equal(t, trackhaus.ListenerID(5), ps.AllByListenerCalls()[0].ListenerID)
}

func TestUserStatsStorageError(t *testing.T) {
	ps := &mocks.PlayStorageMock{
		AllByListenerFunc: func(trackhaus.ListenerID) ([]trackhaus.Play, error) {
			return nil, errors.E(errors.StorageUnavailable)
		},
	}

	_, err := analytics.NewService(playStorage(ps)).UserStats(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(errors.StorageUnavailable, err))
}

func TestUserPlaysClamp(t *testing.T) {
	cases := []struct {
		name           string
		limit, offset  int
		expectedLimit  int
		expectedOffset int
	}{
		{"default", 0, 0, analytics.DefaultLimit, 0},
		{"negative limit", -5, 10, 1, 10},
		{"too large", 5000, 0, analytics.MaxLimit, 0},
		{"negative offset", 20, -1, 20, 0},
		{"in range", 200, 400, 200, 400},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ps := &mocks.PlayStorageMock{
				ListByListenerFunc: func(trackhaus.ListenerID, int, int) ([]trackhaus.Play, error) {
					return []trackhaus.Play{}, nil
				},
			}

			_, err := analytics.NewService(playStorage(ps)).UserPlays(context.Background(), 1, c.limit, c.offset)
			require.NoError(t, err)

			calls := ps.ListByListenerCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, c.expectedLimit, calls[0].Limit)
			assert.Equal(t, c.expectedOffset, calls[0].Offset)
		})
	}
}

func TestUserStatsSQLite(t *testing.T) {
	ctx := context.Background()
	store := storagetest.SQLite(t)

	listener, err := store.Listeners(ctx).Create(trackhaus.Listener{
		Email:        "stats@example.org",
		PasswordHash: "hash",
		APIKey:       "stats-key",
		Active:       true,
	})
	require.NoError(t, err)

	service := analytics.NewService(store)

	_, err = service.UserStats(ctx, listener)
	assert.True(t, errors.Is(errors.ListenerNoPlays, err))

	cs := store.Catalog(ctx)
	artist, err := cs.ResolveArtist(trackhaus.Artist{Name: "Massive Attack"})
	require.NoError(t, err)
	album, err := cs.ResolveAlbum(trackhaus.Album{Title: "Mezzanine", ArtistID: artist})
	require.NoError(t, err)
	track, err := cs.ResolveTrack(trackhaus.Track{Title: "Teardrop", ArtistID: artist, AlbumID: album, DurationSeconds: 330})
	require.NoError(t, err)
	station, err := cs.ResolveStation("FIP")
	require.NoError(t, err)

	for range 3 {
		_, err = store.Plays(ctx).Create(trackhaus.PlayRecord{
			ListenerID: listener,
			TrackID:    track,
			StationID:  station,
			Rating:     trackhaus.RatingLike,
		})
		require.NoError(t, err)
	}

	stats, err := service.UserStats(ctx, listener)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Overall.TotalPlays)
	assert.EqualValues(t, 990, stats.Overall.TotalTimeSeconds)
	require.Len(t, stats.TopArtists, 1)
	assert.Equal(t, "Massive Attack", stats.TopArtists[0].Name)
	require.Len(t, stats.TopAlbums, 1)
	assert.Equal(t, "Mezzanine", stats.TopAlbums[0].Name)

	plays, err := service.UserPlays(ctx, listener, 2, 0)
	require.NoError(t, err)
	assert.Len(t, plays, 2)
}
