package storagetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
)

func (suite *Suite) TestTransactionCommit(t *testing.T) {
	s := suite.Storage(t)
	listener := createListener(t, s, suite, "tx-commit@example.org")

	cs, tx, err := s.CatalogTx(suite.ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	refs := resolveTrack(t, cs, "Daft Punk", "Discovery", "Digital Love", "Radio Nova")

	ps, _, err := s.PlaysTx(suite.ctx, tx)
	require.NoError(t, err)
	id, err := ps.Create(trackhaus.PlayRecord{
		ListenerID: listener,
		TrackID:    refs.track,
		StationID:  refs.station,
	})
	require.NoError(t, err)

	require.NoError(t, tx.Commit())

	play, err := s.Plays(suite.ctx).Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Digital Love", play.Track.Title)
	assert.Equal(t, "Radio Nova", play.Station.Name)
}

func (suite *Suite) TestTransactionRollback(t *testing.T) {
	s := suite.Storage(t)
	listener := createListener(t, s, suite, "tx-rollback@example.org")

	cs, tx, err := s.CatalogTx(suite.ctx, nil)
	require.NoError(t, err)

	refs := resolveTrack(t, cs, "Daft Punk", "Homework", "Da Funk", "Radio Nova")

	ps, _, err := s.PlaysTx(suite.ctx, tx)
	require.NoError(t, err)
	id, err := ps.Create(trackhaus.PlayRecord{
		ListenerID: listener,
		TrackID:    refs.track,
		StationID:  refs.station,
	})
	require.NoError(t, err)

	require.NoError(t, tx.Rollback())

	_, err = s.Plays(suite.ctx).Get(id)
	assert.True(t, errors.Is(errors.PlayUnknown, err))
	_, err = s.Catalog(suite.ctx).Track(refs.track)
	assert.True(t, errors.Is(errors.TrackUnknown, err))

	count, err := s.Plays(suite.ctx).CountByListener(listener)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func (suite *Suite) TestTransactionNestedCommitIsNoop(t *testing.T) {
	s := suite.Storage(t)

	cs, tx, err := s.CatalogTx(suite.ctx, nil)
	require.NoError(t, err)

	artist, err := cs.ResolveArtist(trackhaus.Artist{Name: "Air"})
	require.NoError(t, err)

	// a storage created from an existing transaction can't commit it
	_, inner, err := s.PlaysTx(suite.ctx, tx)
	require.NoError(t, err)
	require.NoError(t, inner.Commit())

	require.NoError(t, tx.Rollback())

	_, err = s.Catalog(suite.ctx).Artist(artist)
	assert.True(t, errors.Is(errors.ArtistUnknown, err))
}
