package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/mocks"
	"github.com/trackhaus/trackhaus/website/middleware"
	"github.com/trackhaus/trackhaus/website/shared"
	"golang.org/x/crypto/bcrypt"
)

const testKey = "test-api-key"

type testAPI struct {
	api      *API
	catalog  *mocks.CatalogStorageMock
	plays    *mocks.PlayStorageMock
	listener *mocks.ListenerStorageMock

	created []trackhaus.PlayRecord
}

func newTestAPI(t *testing.T, tx trackhaus.StorageTx) *testAPI {
	var ta testAPI

	ta.catalog = &mocks.CatalogStorageMock{
		ResolveArtistFunc: func(artist trackhaus.Artist) (trackhaus.ArtistID, error) {
			return 1, nil
		},
		ResolveAlbumFunc: func(album trackhaus.Album) (trackhaus.AlbumID, error) {
			return 2, nil
		},
		ResolveTrackFunc: func(track trackhaus.Track) (trackhaus.TrackID, error) {
			return 3, nil
		},
		ResolveStationFunc: func(name string) (trackhaus.StationID, error) {
			return 4, nil
		},
	}
	ta.plays = &mocks.PlayStorageMock{
		CreateFunc: func(play trackhaus.PlayRecord) (trackhaus.PlayID, error) {
			ta.created = append(ta.created, play)
			return trackhaus.PlayID(len(ta.created)), nil
		},
	}
	ta.listener = &mocks.ListenerStorageMock{
		ByAPIKeyFunc: func(key string) (*trackhaus.Listener, error) {
			if key != testKey {
				return nil, errors.E(errors.ListenerUnknown)
			}
			return &trackhaus.Listener{ID: 7, APIKey: testKey, Active: true}, nil
		},
	}

	store := mocks.StorageServiceWith(tx, ta.catalog, ta.plays, ta.listener)
	ta.api = NewAPI(config.TestConfig(), store)
	ta.api.bcryptCost = bcrypt.MinCost
	return &ta
}

func (ta *testAPI) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(middleware.APIKeyHeader, testKey)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	ta.api.Router().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestPostPlay(t *testing.T) {
	ta := newTestAPI(t, mocks.CommitTx(t))

	rec := ta.do(t, http.MethodPost, "/track/play", `{
		"title": "Kid A",
		"artist": "Radiohead",
		"album": "Kid A",
		"station": "Radiohead Radio",
		"rating": 1,
		"occurred_at": "2025-03-28T15:14:05Z"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp playResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Play recorded successfully", resp.Message)
	assert.Equal(t, trackhaus.PlayID(1), resp.ID)

	require.Len(t, ta.created, 1)
	play := ta.created[0]
	assert.Equal(t, trackhaus.ListenerID(7), play.ListenerID)
	assert.Equal(t, trackhaus.TrackID(3), play.TrackID)
	assert.Equal(t, trackhaus.StationID(4), play.StationID)
	assert.Equal(t, trackhaus.RatingLike, play.Rating)
	assert.True(t, time.Date(2025, 3, 28, 15, 14, 5, 0, time.UTC).Equal(play.OccurredAt))

	calls := ta.catalog.ResolveArtistCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Radiohead", calls[0].Artist.Name)
}

func TestPostPlayMissingField(t *testing.T) {
	ta := newTestAPI(t, mocks.NotUsedTx(t))

	rec := ta.do(t, http.MethodPost, "/track/play", `{
		"title": "Kid A",
		"artist": "Radiohead",
		"station": "Radiohead Radio"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing or invalid field: Album", decodeError(t, rec))
	assert.Empty(t, ta.created)
}

func TestPostPlayBadJSON(t *testing.T) {
	ta := newTestAPI(t, mocks.NotUsedTx(t))

	rec := ta.do(t, http.MethodPost, "/track/play", `{"title": 5`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ta.do(t, http.MethodPost, "/track/play", `{"title": 5, "artist": "a", "album": "b", "station": "c"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing or invalid field: body", decodeError(t, rec))
	assert.Empty(t, ta.created)
}

func TestPostPlayExtraFields(t *testing.T) {
	ta := newTestAPI(t, mocks.CommitTx(t))

	// event scripts send more than we store, extra keys are ignored
	rec := ta.do(t, http.MethodPost, "/track/play", `{
		"title": "Idioteque",
		"artist": "Radiohead",
		"album": "Kid A",
		"station": "Radiohead Radio",
		"stationId": "123",
		"songStationName": "Radiohead Radio",
		"pRet": 1
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, ta.created, 1)
	assert.Equal(t, trackhaus.StationID(4), ta.created[0].StationID)
}

func TestPostPlayStorageUnavailable(t *testing.T) {
	ta := newTestAPI(t, mocks.RollbackTx(t))
	ta.catalog.ResolveArtistFunc = func(trackhaus.Artist) (trackhaus.ArtistID, error) {
		return 0, errors.E(errors.StorageUnavailable)
	}

	rec := ta.do(t, http.MethodPost, "/track/play", `{
		"title": "Kid A", "artist": "Radiohead", "album": "Kid A", "station": "KEXP"
	}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Empty(t, ta.created)
}

func TestAPIKeyRequired(t *testing.T) {
	ta := newTestAPI(t, mocks.NotUsedTx(t))

	for _, target := range []string{"/plays", "/stats"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		ta.api.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.Equal(t, "missing api key", decodeError(t, rec))

		req = httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set(middleware.APIKeyHeader, "wrong")
		rec = httptest.NewRecorder()
		ta.api.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.Equal(t, "invalid api key", decodeError(t, rec))
	}
}

func TestGetStatsNoPlays(t *testing.T) {
	ta := newTestAPI(t, mocks.NotUsedTx(t))
	ta.plays.AllByListenerFunc = func(trackhaus.ListenerID) ([]trackhaus.Play, error) {
		return nil, nil
	}

	rec := ta.do(t, http.MethodGet, "/stats", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no listening history yet", decodeError(t, rec))
}

func TestGetStats(t *testing.T) {
	ta := newTestAPI(t, mocks.NotUsedTx(t))
	at := time.Date(2025, 3, 28, 3, 0, 0, 0, time.UTC)
	ta.plays.AllByListenerFunc = func(id trackhaus.ListenerID) ([]trackhaus.Play, error) {
		return []trackhaus.Play{{
			ID:         1,
			ListenerID: id,
			Track:      trackhaus.Track{ID: 3, Title: "Kid A", ArtistID: 1, AlbumID: 2},
			Artist:     trackhaus.Artist{ID: 1, Name: "Radiohead"},
			Album:      trackhaus.Album{ID: 2, Title: "Kid A", ArtistID: 1},
			Station:    trackhaus.Station{ID: 4, Name: "Radiohead Radio"},
			Rating:     trackhaus.RatingLike,
			OccurredAt: at,
		}}, nil
	}

	rec := ta.do(t, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stats trackhaus.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.Overall.TotalPlays)
	require.Len(t, stats.TopArtists, 1)
	assert.Equal(t, "Radiohead", stats.TopArtists[0].Name)
	assert.Equal(t, []trackhaus.HourCount{{Hour: 3, PlayCount: 1}}, stats.PlaysByHour)
	require.Len(t, stats.RatingDistribution, 4)
	assert.Equal(t, trackhaus.RatingLike, stats.RatingDistribution[1].Rating)

	// ratings are sent by name
	assert.Contains(t, rec.Body.String(), `"rating":"LIKE"`)
}

func TestGetPlaysPaging(t *testing.T) {
	ta := newTestAPI(t, mocks.NotUsedTx(t))
	ta.plays.ListByListenerFunc = func(trackhaus.ListenerID, int, int) ([]trackhaus.Play, error) {
		return nil, nil
	}

	rec := ta.do(t, http.MethodGet, "/plays?limit=10&offset=20", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = ta.do(t, http.MethodGet, "/plays", "")
	require.Equal(t, http.StatusOK, rec.Code)

	calls := ta.plays.ListByListenerCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, trackhaus.ListenerID(7), calls[0].Id)
	assert.Equal(t, 10, calls[0].Limit)
	assert.Equal(t, 20, calls[0].Offset)
	assert.Equal(t, 50, calls[1].Limit)
	assert.Equal(t, 0, calls[1].Offset)

	rec = ta.do(t, http.MethodGet, "/plays?limit=ten", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing or invalid field: limit", decodeError(t, rec))
}

func TestRegisterAndLogin(t *testing.T) {
	ta := newTestAPI(t, mocks.NotUsedTx(t))

	var stored trackhaus.Listener
	var lastLogin time.Time
	ta.listener.CreateFunc = func(l trackhaus.Listener) (trackhaus.ListenerID, error) {
		if stored.ID != 0 && stored.Email == l.Email {
			return 0, errors.E(errors.ListenerExists)
		}
		stored = l
		stored.ID = 9
		return stored.ID, nil
	}
	ta.listener.ByEmailFunc = func(email string) (*trackhaus.Listener, error) {
		if stored.ID == 0 || stored.Email != email {
			return nil, errors.E(errors.ListenerUnknown)
		}
		l := stored
		return &l, nil
	}
	ta.listener.UpdateLastLoginFunc = func(id trackhaus.ListenerID, at time.Time) error {
		lastLogin = at
		return nil
	}

	body := `{"email": "thom@example.org", "password": "everything in its right place"}`

	rec := ta.do(t, http.MethodPost, "/auth/register", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var registered listenerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.Equal(t, "thom@example.org", registered.Email)
	assert.NotEmpty(t, registered.APIKey)
	assert.NotEqual(t, "everything in its right place", stored.PasswordHash)
	assert.True(t, stored.Active)

	rec = ta.do(t, http.MethodPost, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = ta.do(t, http.MethodPost, "/auth/login", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var loggedIn listenerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loggedIn))
	assert.Equal(t, registered.APIKey, loggedIn.APIKey)
	assert.False(t, lastLogin.IsZero())

	rec = ta.do(t, http.MethodPost, "/auth/login", `{"email": "thom@example.org", "password": "wrong password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid email or password", decodeError(t, rec))

	rec = ta.do(t, http.MethodPost, "/auth/login", `{"email": "nobody@example.org", "password": "wrong password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	stored.Active = false
	rec = ta.do(t, http.MethodPost, "/auth/login", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRegisterInvalid(t *testing.T) {
	ta := newTestAPI(t, mocks.NotUsedTx(t))

	rec := ta.do(t, http.MethodPost, "/auth/register", `{"email": "not an email", "password": "long enough password"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing or invalid field: Email", decodeError(t, rec))

	rec = ta.do(t, http.MethodPost, "/auth/register", `{"email": "a@example.org", "password": "short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing or invalid field: Password", decodeError(t, rec))
}

func TestRateLimit(t *testing.T) {
	ta := newTestAPI(t, mocks.NotUsedTx(t))
	c := ta.api.Config.Conf()
	c.Website.RateLimit = 1
	c.Website.RateLimitWindow = config.Duration(time.Hour)
	ta.api.Config.StoreConf(c)

	router := ta.api.Router()
	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/track/play", strings.NewReader(`{}`))
		req.Header.Set(middleware.APIKeyHeader, testKey)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	// the first goes through to validation, the second hits the limit
	assert.Equal(t, http.StatusBadRequest, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}
