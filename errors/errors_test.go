package errors

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackhaus/trackhaus"
)

func TestKindPullUp(t *testing.T) {
	inner := E(Op("inner"), ListenerNoPlays)
	outer := E(Op("outer"), inner)

	assert.True(t, Is(ListenerNoPlays, outer))
	assert.False(t, Is(Conflict, outer))
	assert.Equal(t, ListenerNoPlays, KindOf(outer))
}

func TestKindOuterWins(t *testing.T) {
	inner := E(Op("inner"), Conflict)
	outer := E(Op("outer"), StorageUnavailable, inner)

	assert.True(t, Is(StorageUnavailable, outer))
	e, ok := Select(StorageUnavailable, outer)
	require.True(t, ok)
	assert.Equal(t, Op("outer"), e.Op)
}

func TestErrorString(t *testing.T) {
	err := E(Op("recorder/Recorder.Record"), InvalidArgument, trackhaus.ListenerID(5), Info("Title"))

	assert.Equal(t,
		"recorder/Recorder.Record: invalid argument: ListenerID<5>, Info<Title>",
		err.Error())
}

func TestErrorDuplicateSuppression(t *testing.T) {
	inner := E(Op("inner"), trackhaus.ListenerID(5), Info("same"))
	outer := E(Op("outer"), trackhaus.ListenerID(5), Info("same"), inner)

	assert.Equal(t, "outer: ListenerID<5>, Info<same>"+Separator+"inner", outer.Error())
}

func TestUnwrap(t *testing.T) {
	err := E(Op("outer"), E(Op("inner"), sql.ErrNoRows))
	assert.True(t, IsE(err, sql.ErrNoRows))
}

func TestUnwrapJoin(t *testing.T) {
	a, b := New("a"), New("b")
	err := E(Op("TestUnwrapJoin"), Join(a, b))

	assert.True(t, IsE(err, a))
	assert.True(t, IsE(err, b))
}

func TestKindString(t *testing.T) {
	for k := Other; k <= Testing; k++ {
		assert.NotEqual(t, "unknown error kind", k.String(), "kind %d has no string", k)
	}
	assert.Equal(t, "unknown error kind", Kind(255).String())
}

func TestInfoOf(t *testing.T) {
	inner := E(Op("inner"), InvalidArgument, Info("Album"))
	outer := E(Op("outer"), inner, trackhaus.ListenerID(5))

	assert.True(t, Is(InvalidArgument, outer))
	assert.Equal(t, Info("Album"), InfoOf(outer))
	assert.Equal(t, Info(""), InfoOf(sql.ErrNoRows))
	assert.Equal(t, Info(""), InfoOf(E(Op("empty"), Testing)))
}
