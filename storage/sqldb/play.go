package sqldb

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
)

// PlayStorage implements trackhaus.PlayStorage
type PlayStorage struct {
	handle handle
}

const playCreateQuery = `
INSERT INTO plays (
	listener_id,
	track_id,
	station_id,
	rating,
	occurred_at,
	recorded_at
) VALUES (
	:listener_id,
	:track_id,
	:station_id,
	:rating,
	:occurred_at,
	:recorded_at
);
`

type playCreate struct {
	ListenerID trackhaus.ListenerID `db:"listener_id"`
	TrackID    trackhaus.TrackID    `db:"track_id"`
	StationID  trackhaus.StationID  `db:"station_id"`
	Rating     trackhaus.Rating     `db:"rating"`
	OccurredAt time.Time            `db:"occurred_at"`
	RecordedAt time.Time            `db:"recorded_at"`
}

// Create implements trackhaus.PlayStorage
func (ps PlayStorage) Create(play trackhaus.PlayRecord) (trackhaus.PlayID, error) {
	const op errors.Op = "sqldb/PlayStorage.Create"
	handle, deferFn := ps.handle.span(op)
	defer deferFn()

	if play.ListenerID == 0 || play.TrackID == 0 || play.StationID == 0 {
		return 0, errors.E(op, errors.InvalidArgument, play.ListenerID,
			errors.Info("play is missing a listener, track or station"))
	}

	now := time.Now().UTC()
	if play.OccurredAt.IsZero() {
		play.OccurredAt = now
	}
	if play.RecordedAt.IsZero() {
		play.RecordedAt = now
	}

	id, err := namedExecLastInsertId(handle, playCreateQuery, playCreate{
		ListenerID: play.ListenerID,
		TrackID:    play.TrackID,
		StationID:  play.StationID,
		Rating:     play.Rating,
		OccurredAt: play.OccurredAt.UTC(),
		RecordedAt: play.RecordedAt.UTC(),
	})
	if err != nil {
		return 0, errors.E(op, handle.classify(err), play.ListenerID)
	}
	return trackhaus.PlayID(id), nil
}

// playSelect selects a play joined with everything it references, the
// columns match playRow
const playSelect = `
SELECT
	plays.id AS id,
	plays.listener_id AS listener_id,
	plays.rating AS rating,
	plays.occurred_at AS occurred_at,
	plays.recorded_at AS recorded_at,

	tracks.id AS track_id,
	tracks.title AS track_title,
	tracks.external_id AS track_external_id,
	tracks.duration_seconds AS track_duration_seconds,
	tracks.detail_url AS track_detail_url,
	tracks.validated_at AS track_validated_at,
	tracks.created_at AS track_created_at,
	tracks.updated_at AS track_updated_at,

	artists.id AS artist_id,
	artists.name AS artist_name,
	artists.external_id AS artist_external_id,
	artists.validated_at AS artist_validated_at,
	artists.created_at AS artist_created_at,
	artists.updated_at AS artist_updated_at,

	albums.id AS album_id,
	albums.title AS album_title,
	albums.external_id AS album_external_id,
	albums.cover_art_url AS album_cover_art_url,
	albums.validated_at AS album_validated_at,
	albums.created_at AS album_created_at,
	albums.updated_at AS album_updated_at,

	stations.id AS station_id,
	stations.name AS station_name,
	stations.created_at AS station_created_at,
	stations.updated_at AS station_updated_at
FROM
	plays
JOIN
	tracks ON tracks.id = plays.track_id
JOIN
	artists ON artists.id = tracks.artist_id
JOIN
	albums ON albums.id = tracks.album_id
JOIN
	stations ON stations.id = plays.station_id
`

type playRow struct {
	ID         trackhaus.PlayID     `db:"id"`
	ListenerID trackhaus.ListenerID `db:"listener_id"`
	Rating     trackhaus.Rating     `db:"rating"`
	OccurredAt time.Time            `db:"occurred_at"`
	RecordedAt time.Time            `db:"recorded_at"`

	TrackID              trackhaus.TrackID `db:"track_id"`
	TrackTitle           string            `db:"track_title"`
	TrackExternalID      sql.NullString    `db:"track_external_id"`
	TrackDurationSeconds sql.NullInt64     `db:"track_duration_seconds"`
	TrackDetailURL       sql.NullString    `db:"track_detail_url"`
	TrackValidatedAt     sql.NullTime      `db:"track_validated_at"`
	TrackCreatedAt       time.Time         `db:"track_created_at"`
	TrackUpdatedAt       time.Time         `db:"track_updated_at"`

	ArtistID          trackhaus.ArtistID `db:"artist_id"`
	ArtistName        string             `db:"artist_name"`
	ArtistExternalID  sql.NullString     `db:"artist_external_id"`
	ArtistValidatedAt sql.NullTime       `db:"artist_validated_at"`
	ArtistCreatedAt   time.Time          `db:"artist_created_at"`
	ArtistUpdatedAt   time.Time          `db:"artist_updated_at"`

	AlbumID          trackhaus.AlbumID `db:"album_id"`
	AlbumTitle       string            `db:"album_title"`
	AlbumExternalID  sql.NullString    `db:"album_external_id"`
	AlbumCoverArtURL sql.NullString    `db:"album_cover_art_url"`
	AlbumValidatedAt sql.NullTime      `db:"album_validated_at"`
	AlbumCreatedAt   time.Time         `db:"album_created_at"`
	AlbumUpdatedAt   time.Time         `db:"album_updated_at"`

	StationID        trackhaus.StationID `db:"station_id"`
	StationName      string              `db:"station_name"`
	StationCreatedAt time.Time           `db:"station_created_at"`
	StationUpdatedAt time.Time           `db:"station_updated_at"`
}

// Play converts the row into its denormalized value
func (r playRow) Play() trackhaus.Play {
	return trackhaus.Play{
		ID:         r.ID,
		ListenerID: r.ListenerID,
		Track: trackRow{
			ID:              r.TrackID,
			Title:           r.TrackTitle,
			ArtistID:        r.ArtistID,
			AlbumID:         r.AlbumID,
			ExternalID:      r.TrackExternalID,
			DurationSeconds: r.TrackDurationSeconds,
			DetailURL:       r.TrackDetailURL,
			ValidatedAt:     r.TrackValidatedAt,
			CreatedAt:       r.TrackCreatedAt,
			UpdatedAt:       r.TrackUpdatedAt,
		}.Track(),
		Artist: artistRow{
			ID:          r.ArtistID,
			Name:        r.ArtistName,
			ExternalID:  r.ArtistExternalID,
			ValidatedAt: r.ArtistValidatedAt,
			CreatedAt:   r.ArtistCreatedAt,
			UpdatedAt:   r.ArtistUpdatedAt,
		}.Artist(),
		Album: albumRow{
			ID:          r.AlbumID,
			Title:       r.AlbumTitle,
			ArtistID:    r.ArtistID,
			ExternalID:  r.AlbumExternalID,
			CoverArtURL: r.AlbumCoverArtURL,
			ValidatedAt: r.AlbumValidatedAt,
			CreatedAt:   r.AlbumCreatedAt,
			UpdatedAt:   r.AlbumUpdatedAt,
		}.Album(),
		Station: stationRow{
			ID:        r.StationID,
			Name:      r.StationName,
			CreatedAt: r.StationCreatedAt,
			UpdatedAt: r.StationUpdatedAt,
		}.Station(),
		Rating:     r.Rating,
		OccurredAt: r.OccurredAt.UTC(),
		RecordedAt: r.RecordedAt.UTC(),
	}
}

const playGetQuery = playSelect + `
WHERE
	plays.id=?;
`

// Get implements trackhaus.PlayStorage
func (ps PlayStorage) Get(id trackhaus.PlayID) (*trackhaus.Play, error) {
	const op errors.Op = "sqldb/PlayStorage.Get"
	handle, deferFn := ps.handle.span(op)
	defer deferFn()

	var row playRow
	err := sqlx.Get(handle, &row, playGetQuery, id)
	if err != nil {
		if errors.IsE(err, sql.ErrNoRows) {
			return nil, errors.E(op, errors.PlayUnknown, err)
		}
		return nil, errors.E(op, handle.classify(err))
	}

	play := row.Play()
	return &play, nil
}

const playListByListenerQuery = playSelect + `
WHERE
	plays.listener_id=?
ORDER BY
	plays.occurred_at DESC, plays.id DESC
LIMIT ? OFFSET ?;
`

// ListByListener implements trackhaus.PlayStorage
func (ps PlayStorage) ListByListener(id trackhaus.ListenerID, limit, offset int) ([]trackhaus.Play, error) {
	const op errors.Op = "sqldb/PlayStorage.ListByListener"
	handle, deferFn := ps.handle.span(op)
	defer deferFn()

	if limit < 0 || offset < 0 {
		return nil, errors.E(op, errors.InvalidArgument, id, errors.Info("negative limit or offset"))
	}

	plays, err := Collect(Map(
		SelectIter[playRow](handle, playListByListenerQuery, id, limit, offset),
		playRow.Play,
	))
	if err != nil {
		return nil, errors.E(op, handle.classify(err), id)
	}
	return plays, nil
}

const playAllByListenerQuery = playSelect + `
WHERE
	plays.listener_id=?;
`

// AllByListener implements trackhaus.PlayStorage
func (ps PlayStorage) AllByListener(id trackhaus.ListenerID) ([]trackhaus.Play, error) {
	const op errors.Op = "sqldb/PlayStorage.AllByListener"
	handle, deferFn := ps.handle.span(op)
	defer deferFn()

	plays, err := Collect(Map(
		SelectIter[playRow](handle, playAllByListenerQuery, id),
		playRow.Play,
	))
	if err != nil {
		return nil, errors.E(op, handle.classify(err), id)
	}
	return plays, nil
}

const playCountByListenerQuery = `
SELECT
	COUNT(*)
FROM
	plays
WHERE
	listener_id=?;
`

// CountByListener implements trackhaus.PlayStorage
func (ps PlayStorage) CountByListener(id trackhaus.ListenerID) (int64, error) {
	const op errors.Op = "sqldb/PlayStorage.CountByListener"
	handle, deferFn := ps.handle.span(op)
	defer deferFn()

	var count int64
	err := sqlx.Get(handle, &count, playCountByListenerQuery, id)
	if err != nil {
		return 0, errors.E(op, handle.classify(err), id)
	}
	return count, nil
}
