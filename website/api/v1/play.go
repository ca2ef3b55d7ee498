package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/website/middleware"
	"github.com/trackhaus/trackhaus/website/shared"
)

// playRequest is the JSON body of a play submission
type playRequest struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Album   string `json:"album"`
	Station string `json:"station"`
	// Rating is the rating code, 0 or absent is unrated
	Rating     *int       `json:"rating"`
	OccurredAt *time.Time `json:"occurred_at"`

	DurationSeconds  int64  `json:"duration_seconds"`
	TrackExternalID  string `json:"track_external_id"`
	ArtistExternalID string `json:"artist_external_id"`
	AlbumExternalID  string `json:"album_external_id"`
	CoverArtURL      string `json:"cover_art_url"`
	DetailURL        string `json:"detail_url"`
}

func (p playRequest) Submission() trackhaus.PlaySubmission {
	sub := trackhaus.PlaySubmission{
		Title:            p.Title,
		Artist:           p.Artist,
		Album:            p.Album,
		Station:          p.Station,
		Rating:           p.Rating,
		DurationSeconds:  p.DurationSeconds,
		TrackExternalID:  p.TrackExternalID,
		ArtistExternalID: p.ArtistExternalID,
		AlbumExternalID:  p.AlbumExternalID,
		CoverArtURL:      p.CoverArtURL,
		DetailURL:        p.DetailURL,
	}
	if p.OccurredAt != nil {
		sub.OccurredAt = *p.OccurredAt
	}
	return sub
}

type playResponse struct {
	Message string           `json:"message"`
	ID      trackhaus.PlayID `json:"id"`
}

func (a *API) PostPlay(w http.ResponseWriter, r *http.Request) {
	id, err := a.postPlay(r)
	if err != nil {
		shared.ErrorHandler(w, r, err)
		return
	}

	shared.WriteJSON(w, r, http.StatusOK, playResponse{
		Message: "Play recorded successfully",
		ID:      id,
	})
}

func (a *API) postPlay(r *http.Request) (trackhaus.PlayID, error) {
	const op errors.Op = "website/api/v1/API.postPlay"

	listener := middleware.ListenerFromContext(r.Context())
	if listener == nil {
		return 0, errors.E(op, errors.ListenerUnknown)
	}

	var req playRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return 0, errors.E(op, err, listener.ID)
	}

	id, err := a.recorder.Record(r.Context(), listener.ID, req.Submission())
	if err != nil {
		return 0, errors.E(op, err)
	}
	return id, nil
}

func (a *API) GetPlays(w http.ResponseWriter, r *http.Request) {
	plays, err := a.getPlays(r)
	if err != nil {
		shared.ErrorHandler(w, r, err)
		return
	}

	shared.WriteJSON(w, r, http.StatusOK, plays)
}

func (a *API) getPlays(r *http.Request) ([]trackhaus.Play, error) {
	const op errors.Op = "website/api/v1/API.getPlays"

	listener := middleware.ListenerFromContext(r.Context())
	if listener == nil {
		return nil, errors.E(op, errors.ListenerUnknown)
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		return nil, errors.E(op, err, listener.ID)
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		return nil, errors.E(op, err, listener.ID)
	}

	plays, err := a.analytics.UserPlays(r.Context(), listener.ID, limit, offset)
	if err != nil {
		return nil, errors.E(op, err)
	}
	if plays == nil {
		plays = []trackhaus.Play{}
	}
	return plays, nil
}

// queryInt parses the query parameter given as an integer, a missing
// parameter is zero
func queryInt(r *http.Request, name string) (int, error) {
	const op errors.Op = "website/api/v1.queryInt"

	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.E(op, errors.InvalidArgument, errors.Info(name), err)
	}
	return n, nil
}

func (a *API) GetStats(w http.ResponseWriter, r *http.Request) {
	const op errors.Op = "website/api/v1/API.GetStats"

	listener := middleware.ListenerFromContext(r.Context())
	if listener == nil {
		shared.ErrorHandler(w, r, errors.E(op, errors.ListenerUnknown))
		return
	}

	stats, err := a.analytics.UserStats(r.Context(), listener.ID)
	if err != nil {
		shared.ErrorHandler(w, r, errors.E(op, err))
		return
	}

	shared.WriteJSON(w, r, http.StatusOK, stats)
}
