package storagetest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
)

// createListener creates a listener with a unique email and api key
func createListener(t *testing.T, s trackhaus.StorageService, suite *Suite, email string) trackhaus.ListenerID {
	t.Helper()

	key, err := trackhaus.NewAPIKey()
	require.NoError(t, err)

	id, err := s.Listeners(suite.ctx).Create(trackhaus.Listener{
		Email:        email,
		PasswordHash: "not a real hash",
		APIKey:       key,
		Active:       true,
	})
	require.NoError(t, err)
	return id
}

type catalogRefs struct {
	track   trackhaus.TrackID
	station trackhaus.StationID
}

// resolveTrack resolves a full track reference in the catalog
func resolveTrack(t *testing.T, cs trackhaus.CatalogStorage, artist, album, title, station string) catalogRefs {
	t.Helper()

	artistID, err := cs.ResolveArtist(trackhaus.Artist{Name: artist})
	require.NoError(t, err)
	albumID, err := cs.ResolveAlbum(trackhaus.Album{Title: album, ArtistID: artistID})
	require.NoError(t, err)
	trackID, err := cs.ResolveTrack(trackhaus.Track{
		Title:           title,
		ArtistID:        artistID,
		AlbumID:         albumID,
		DurationSeconds: 240,
	})
	require.NoError(t, err)
	stationID, err := cs.ResolveStation(station)
	require.NoError(t, err)

	return catalogRefs{trackID, stationID}
}

func (suite *Suite) TestPlayCreateAndGet(t *testing.T) {
	s := suite.Storage(t)
	listener := createListener(t, s, suite, "play-get@example.org")
	refs := resolveTrack(t, s.Catalog(suite.ctx), "Radiohead", "Kid A", "Idioteque", "KEXP")

	occurred := time.Date(2024, 3, 14, 15, 9, 26, 0, time.UTC)
	id, err := s.Plays(suite.ctx).Create(trackhaus.PlayRecord{
		ListenerID: listener,
		TrackID:    refs.track,
		StationID:  refs.station,
		Rating:     trackhaus.RatingLike,
		OccurredAt: occurred,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	play, err := s.Plays(suite.ctx).Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, play.ID)
	assert.Equal(t, listener, play.ListenerID)
	assert.Equal(t, "Idioteque", play.Track.Title)
	assert.EqualValues(t, 240, play.Track.DurationSeconds)
	assert.Equal(t, "Radiohead", play.Artist.Name)
	assert.Equal(t, "Kid A", play.Album.Title)
	assert.Equal(t, play.Artist.ID, play.Album.ArtistID)
	assert.Equal(t, "KEXP", play.Station.Name)
	assert.Equal(t, trackhaus.RatingLike, play.Rating)
	assert.True(t, occurred.Equal(play.OccurredAt), "expected %s got %s", occurred, play.OccurredAt)
	assert.Equal(t, time.UTC, play.OccurredAt.Location())
	assert.False(t, play.RecordedAt.IsZero())
}

func (suite *Suite) TestPlayGetUnknown(t *testing.T) {
	_, err := suite.Storage(t).Plays(suite.ctx).Get(424242)
	assert.True(t, errors.Is(errors.PlayUnknown, err))
}

func (suite *Suite) TestPlayCreateDefaultsOccurredAt(t *testing.T) {
	s := suite.Storage(t)
	listener := createListener(t, s, suite, "play-default@example.org")
	refs := resolveTrack(t, s.Catalog(suite.ctx), "Björk", "Homogenic", "Jóga", "BBC 6 Music")

	before := time.Now()
	id, err := s.Plays(suite.ctx).Create(trackhaus.PlayRecord{
		ListenerID: listener,
		TrackID:    refs.track,
		StationID:  refs.station,
	})
	require.NoError(t, err)

	play, err := s.Plays(suite.ctx).Get(id)
	require.NoError(t, err)
	assert.WithinDuration(t, before, play.OccurredAt, time.Minute)
	assert.Equal(t, trackhaus.RatingUnrated, play.Rating)
}

func (suite *Suite) TestPlayListByListener(t *testing.T) {
	s := suite.Storage(t)
	listener := createListener(t, s, suite, "play-list@example.org")
	other := createListener(t, s, suite, "play-list-other@example.org")
	cs := s.Catalog(suite.ctx)
	ps := s.Plays(suite.ctx)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var ids []trackhaus.PlayID
	for i := range 5 {
		refs := resolveTrack(t, cs, "Artist", "Album", fmt.Sprintf("Track %d", i), "Station")
		id, err := ps.Create(trackhaus.PlayRecord{
			ListenerID: listener,
			TrackID:    refs.track,
			StationID:  refs.station,
			OccurredAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	// a play of someone else should never show up
	refs := resolveTrack(t, cs, "Artist", "Album", "Track 0", "Station")
	_, err := ps.Create(trackhaus.PlayRecord{
		ListenerID: other,
		TrackID:    refs.track,
		StationID:  refs.station,
		OccurredAt: base.Add(time.Hour * 100),
	})
	require.NoError(t, err)

	page, err := ps.ListByListener(listener, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	// newest first
	assert.Equal(t, ids[4], page[0].ID)
	assert.Equal(t, ids[3], page[1].ID)

	page, err = ps.ListByListener(listener, 2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[0], page[0].ID)

	page, err = ps.ListByListener(listener, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, page)

	all, err := ps.AllByListener(listener)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	for _, play := range all {
		assert.Equal(t, listener, play.ListenerID)
	}

	count, err := ps.CountByListener(listener)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)

	count, err = ps.CountByListener(other)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func (suite *Suite) TestPlayListByListenerEmpty(t *testing.T) {
	s := suite.Storage(t)
	listener := createListener(t, s, suite, "play-empty@example.org")

	plays, err := s.Plays(suite.ctx).ListByListener(listener, 50, 0)
	require.NoError(t, err)
	assert.Empty(t, plays)

	plays, err = s.Plays(suite.ctx).AllByListener(listener)
	require.NoError(t, err)
	assert.Empty(t, plays)

	count, err := s.Plays(suite.ctx).CountByListener(listener)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func (suite *Suite) TestPlayRatingsRoundtrip(t *testing.T) {
	s := suite.Storage(t)
	listener := createListener(t, s, suite, "play-rating@example.org")
	refs := resolveTrack(t, s.Catalog(suite.ctx), "Massive Attack", "Mezzanine", "Teardrop", "NTS")
	ps := s.Plays(suite.ctx)

	for _, rating := range trackhaus.Ratings() {
		id, err := ps.Create(trackhaus.PlayRecord{
			ListenerID: listener,
			TrackID:    refs.track,
			StationID:  refs.station,
			Rating:     rating,
		})
		require.NoError(t, err)

		play, err := ps.Get(id)
		require.NoError(t, err)
		assert.Equal(t, rating, play.Rating)
	}
}

func (suite *Suite) TestPlayCreateInvalid(t *testing.T) {
	_, err := suite.Storage(t).Plays(suite.ctx).Create(trackhaus.PlayRecord{ListenerID: 1})
	assert.True(t, errors.Is(errors.InvalidArgument, err))
}
