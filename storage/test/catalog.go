package storagetest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
)

func (suite *Suite) TestCatalogResolveArtistIdempotent(t *testing.T) {
	cs := suite.Storage(t).Catalog(suite.ctx)

	first, err := cs.ResolveArtist(trackhaus.Artist{Name: "Radiohead"})
	require.NoError(t, err)
	require.NotZero(t, first)

	second, err := cs.ResolveArtist(trackhaus.Artist{Name: "Radiohead"})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := cs.ResolveArtist(trackhaus.Artist{Name: "Portishead"})
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func (suite *Suite) TestCatalogResolveExactMatch(t *testing.T) {
	cs := suite.Storage(t).Catalog(suite.ctx)

	names := []string{"Sigur Rós", "sigur rós", "Sigur Ros", "Sigur Rós "}
	seen := map[trackhaus.ArtistID]string{}
	for _, name := range names {
		id, err := cs.ResolveArtist(trackhaus.Artist{Name: name})
		require.NoError(t, err)
		if prev, ok := seen[id]; ok {
			t.Errorf("%q and %q resolved to the same artist %d", prev, name, id)
		}
		seen[id] = name
	}
}

func (suite *Suite) TestCatalogResolveTrailingSpace(t *testing.T) {
	cs := suite.Storage(t).Catalog(suite.ctx)

	artist, err := cs.ResolveArtist(trackhaus.Artist{Name: "Múm"})
	require.NoError(t, err)
	spaced, err := cs.ResolveArtist(trackhaus.Artist{Name: "Múm "})
	require.NoError(t, err)
	assert.NotEqual(t, artist, spaced)

	album, err := cs.ResolveAlbum(trackhaus.Album{Title: "Finally We Are No One", ArtistID: artist})
	require.NoError(t, err)
	spacedAlbum, err := cs.ResolveAlbum(trackhaus.Album{Title: "Finally We Are No One ", ArtistID: artist})
	require.NoError(t, err)
	assert.NotEqual(t, album, spacedAlbum)

	track, err := cs.ResolveTrack(trackhaus.Track{Title: "Green Grass of Tunnel", ArtistID: artist, AlbumID: album})
	require.NoError(t, err)
	spacedTrack, err := cs.ResolveTrack(trackhaus.Track{Title: "Green Grass of Tunnel  ", ArtistID: artist, AlbumID: album})
	require.NoError(t, err)
	assert.NotEqual(t, track, spacedTrack)

	station, err := cs.ResolveStation("KEXP")
	require.NoError(t, err)
	spacedStation, err := cs.ResolveStation("KEXP ")
	require.NoError(t, err)
	assert.NotEqual(t, station, spacedStation)

	// the stored names keep their trailing whitespace
	a, err := cs.Artist(spaced)
	require.NoError(t, err)
	assert.Equal(t, "Múm ", a.Name)
	st, err := cs.Station(spacedStation)
	require.NoError(t, err)
	assert.Equal(t, "KEXP ", st.Name)
}

func (suite *Suite) TestCatalogResolveArtistOptionalOnCreate(t *testing.T) {
	cs := suite.Storage(t).Catalog(suite.ctx)

	id, err := cs.ResolveArtist(trackhaus.Artist{
		Name:       "Boards of Canada",
		ExternalID: "69158f97-4c07-4c4e-baf8-4e4ab1ed666e",
	})
	require.NoError(t, err)

	// a later resolve with different optional attributes changes nothing
	again, err := cs.ResolveArtist(trackhaus.Artist{
		Name:       "Boards of Canada",
		ExternalID: "00000000-0000-0000-0000-000000000000",
	})
	require.NoError(t, err)
	require.Equal(t, id, again)

	artist, err := cs.Artist(id)
	require.NoError(t, err)
	assert.Equal(t, "Boards of Canada", artist.Name)
	assert.Equal(t, "69158f97-4c07-4c4e-baf8-4e4ab1ed666e", artist.ExternalID)
	assert.Nil(t, artist.ValidatedAt)
	assert.False(t, artist.CreatedAt.IsZero())
}

func (suite *Suite) TestCatalogResolveSharedExternalID(t *testing.T) {
	cs := suite.Storage(t).Catalog(suite.ctx)

	// spelling variants of one artist carry the same metadata identifier,
	// each must still resolve to its own entity
	const mbid = "b10bbbfc-cf9e-42e0-be17-e2c3e1d2600d"
	first, err := cs.ResolveArtist(trackhaus.Artist{Name: "The Beatles", ExternalID: mbid})
	require.NoError(t, err)
	second, err := cs.ResolveArtist(trackhaus.Artist{Name: "the beatles", ExternalID: mbid})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	artist, err := cs.Artist(second)
	require.NoError(t, err)
	assert.Equal(t, mbid, artist.ExternalID)

	// albums and tracks behave the same
	album, err := cs.ResolveAlbum(trackhaus.Album{Title: "Abbey Road", ArtistID: first, ExternalID: mbid})
	require.NoError(t, err)
	otherAlbum, err := cs.ResolveAlbum(trackhaus.Album{Title: "Abbey Road", ArtistID: second, ExternalID: mbid})
	require.NoError(t, err)
	assert.NotEqual(t, album, otherAlbum)

	track, err := cs.ResolveTrack(trackhaus.Track{Title: "Something", ArtistID: first, AlbumID: album, ExternalID: mbid})
	require.NoError(t, err)
	otherTrack, err := cs.ResolveTrack(trackhaus.Track{Title: "something", ArtistID: first, AlbumID: album, ExternalID: mbid})
	require.NoError(t, err)
	assert.NotEqual(t, track, otherTrack)
}

func (suite *Suite) TestCatalogResolveArtistConcurrent(t *testing.T) {
	s := suite.Storage(t)

	const workers = 8
	var wg sync.WaitGroup
	ids := make([]trackhaus.ArtistID, workers)
	errs := make([]error, workers)

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i], errs[i] = s.Catalog(suite.ctx).ResolveArtist(trackhaus.Artist{Name: "Aphex Twin"})
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}
}

func (suite *Suite) TestCatalogResolveAlbumScopedToArtist(t *testing.T) {
	cs := suite.Storage(t).Catalog(suite.ctx)

	a1, err := cs.ResolveArtist(trackhaus.Artist{Name: "Weezer"})
	require.NoError(t, err)
	a2, err := cs.ResolveArtist(trackhaus.Artist{Name: "Peter Gabriel"})
	require.NoError(t, err)

	// both released a self-titled album
	al1, err := cs.ResolveAlbum(trackhaus.Album{Title: "Self Titled", ArtistID: a1})
	require.NoError(t, err)
	al2, err := cs.ResolveAlbum(trackhaus.Album{Title: "Self Titled", ArtistID: a2})
	require.NoError(t, err)
	assert.NotEqual(t, al1, al2)

	again, err := cs.ResolveAlbum(trackhaus.Album{
		Title:       "Self Titled",
		ArtistID:    a1,
		CoverArtURL: "https://example.org/cover.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, al1, again)

	album, err := cs.Album(al1)
	require.NoError(t, err)
	assert.Equal(t, a1, album.ArtistID)
	assert.Empty(t, album.CoverArtURL)
}

func (suite *Suite) TestCatalogResolveTrack(t *testing.T) {
	cs := suite.Storage(t).Catalog(suite.ctx)

	artist, err := cs.ResolveArtist(trackhaus.Artist{Name: "Radiohead"})
	require.NoError(t, err)
	album1, err := cs.ResolveAlbum(trackhaus.Album{Title: "Kid A", ArtistID: artist})
	require.NoError(t, err)
	album2, err := cs.ResolveAlbum(trackhaus.Album{Title: "Kid A Mnesia", ArtistID: artist})
	require.NoError(t, err)

	t1, err := cs.ResolveTrack(trackhaus.Track{
		Title:           "Idioteque",
		ArtistID:        artist,
		AlbumID:         album1,
		DurationSeconds: 309,
		DetailURL:       "https://example.org/idioteque",
	})
	require.NoError(t, err)

	// same title on another album is a different track
	t2, err := cs.ResolveTrack(trackhaus.Track{Title: "Idioteque", ArtistID: artist, AlbumID: album2})
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)

	again, err := cs.ResolveTrack(trackhaus.Track{Title: "Idioteque", ArtistID: artist, AlbumID: album1, DurationSeconds: 1})
	require.NoError(t, err)
	assert.Equal(t, t1, again)

	track, err := cs.Track(t1)
	require.NoError(t, err)
	assert.Equal(t, "Idioteque", track.Title)
	assert.Equal(t, artist, track.ArtistID)
	assert.Equal(t, album1, track.AlbumID)
	assert.EqualValues(t, 309, track.DurationSeconds)
	assert.Equal(t, "https://example.org/idioteque", track.DetailURL)

	unknown, err := cs.Track(t2)
	require.NoError(t, err)
	assert.Zero(t, unknown.DurationSeconds)
}

func (suite *Suite) TestCatalogResolveStation(t *testing.T) {
	cs := suite.Storage(t).Catalog(suite.ctx)

	s1, err := cs.ResolveStation("KEXP")
	require.NoError(t, err)
	s2, err := cs.ResolveStation("KEXP")
	require.NoError(t, err)
	assert.Equal(t, s1, s2)

	station, err := cs.Station(s1)
	require.NoError(t, err)
	assert.Equal(t, "KEXP", station.Name)
}

func (suite *Suite) TestCatalogResolveInvalid(t *testing.T) {
	cs := suite.Storage(t).Catalog(suite.ctx)

	_, err := cs.ResolveArtist(trackhaus.Artist{})
	assert.True(t, errors.Is(errors.InvalidArgument, err))

	_, err = cs.ResolveAlbum(trackhaus.Album{Title: "No Artist"})
	assert.True(t, errors.Is(errors.InvalidArgument, err))

	_, err = cs.ResolveTrack(trackhaus.Track{Title: "No Album", ArtistID: 1})
	assert.True(t, errors.Is(errors.InvalidArgument, err))

	_, err = cs.ResolveStation("")
	assert.True(t, errors.Is(errors.InvalidArgument, err))
}

func (suite *Suite) TestCatalogUnknown(t *testing.T) {
	cs := suite.Storage(t).Catalog(suite.ctx)

	_, err := cs.Artist(424242)
	assert.True(t, errors.Is(errors.ArtistUnknown, err))
	_, err = cs.Album(424242)
	assert.True(t, errors.Is(errors.AlbumUnknown, err))
	_, err = cs.Track(424242)
	assert.True(t, errors.Is(errors.TrackUnknown, err))
	_, err = cs.Station(424242)
	assert.True(t, errors.Is(errors.StationUnknown, err))
}
