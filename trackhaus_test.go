package trackhaus

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/arbitrary"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringAndComparable interface {
	fmt.Stringer
	~uint32 | ~uint64
}

func testParseAndString[T stringAndComparable](t *testing.T, parseFn func(string) (T, error)) {
	a := arbitrary.DefaultArbitraries()

	p := gopter.NewProperties(nil)
	// roundtrips should always succeed
	p.Property("roundtrip", a.ForAll(func(in T) bool {
		out, err := parseFn(in.String())
		if err != nil {
			return false
		}
		return in == out
	}))
	// alpha-only should always fail
	p.Property("alpha-only", prop.ForAll(func(in string) bool {
		out, err := parseFn(in)
		return out == 0 && err != nil
	}, gen.AlphaString()))
	p.TestingRun(t)
}

func TestParseListenerID(t *testing.T) {
	testParseAndString(t, ParseListenerID)
}

func TestParseArtistID(t *testing.T) {
	testParseAndString(t, ParseArtistID)
}

func TestParseAlbumID(t *testing.T) {
	testParseAndString(t, ParseAlbumID)
}

func TestParseTrackID(t *testing.T) {
	testParseAndString(t, ParseTrackID)
}

func TestParseStationID(t *testing.T) {
	testParseAndString(t, ParseStationID)
}

func TestParsePlayID(t *testing.T) {
	testParseAndString(t, ParsePlayID)
}

func TestRatingFromCode(t *testing.T) {
	code := func(i int) *int { return &i }

	cases := []struct {
		name     string
		code     *int
		expected Rating
	}{
		{"absent", nil, RatingUnrated},
		{"zero", code(0), RatingUnrated},
		{"like", code(1), RatingLike},
		{"ban", code(2), RatingBan},
		{"tired", code(3), RatingTired},
		{"negative", code(-1), RatingUnrated},
		{"too large", code(4), RatingUnrated},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, RatingFromCode(c.code))
		})
	}
}

func TestRatingFromCodeTotal(t *testing.T) {
	known := map[Rating]bool{}
	for _, r := range Ratings() {
		known[r] = true
	}

	p := gopter.NewProperties(nil)
	p.Property("always a known rating", prop.ForAll(func(in int) bool {
		return known[RatingFromCode(&in)]
	}, gen.Int()))
	p.Property("outside of domain is unrated", prop.ForAll(func(in int) bool {
		if in >= 0 && in <= 3 {
			return true
		}
		return RatingFromCode(&in) == RatingUnrated
	}, gen.Int()))
	p.TestingRun(t)
}

func TestRatingText(t *testing.T) {
	for _, r := range Ratings() {
		text, err := r.MarshalText()
		require.NoError(t, err)

		var out Rating
		require.NoError(t, out.UnmarshalText(text))
		assert.Equal(t, r, out)
	}

	var r Rating
	assert.Error(t, r.UnmarshalText([]byte("DISLIKE")))
}

func TestRatingScan(t *testing.T) {
	var r Rating
	require.NoError(t, r.Scan([]byte("BAN")))
	assert.Equal(t, RatingBan, r)

	require.NoError(t, r.Scan("TIRED"))
	assert.Equal(t, RatingTired, r)

	require.NoError(t, r.Scan(nil))
	assert.Equal(t, RatingUnrated, r)

	assert.Error(t, r.Scan(int64(1)))

	v, err := RatingLike.Value()
	require.NoError(t, err)
	assert.Equal(t, "LIKE", v)
}

func TestNewAPIKey(t *testing.T) {
	a, err := NewAPIKey()
	require.NoError(t, err)
	b, err := NewAPIKey()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.LessOrEqual(t, len(a), 64)
}
