package sqldb

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/telemetry"
)

// CatalogStorage implements trackhaus.CatalogStorage
type CatalogStorage struct {
	handle handle
}

// resolve looks an entity up and creates it if it doesn't exist. Losing a
// creation race to a concurrent creator shows up as a unique violation on
// insert, in which case the lookup is retried to find the winner's row
func resolve[ID ~uint32](h handle, kind string, lookup func() (ID, error), create func() (ID, error)) (ID, error) {
	id, err := lookup()
	if err == nil {
		return id, nil
	}
	if !errors.IsE(err, sql.ErrNoRows) {
		return 0, h.classify(err)
	}

	id, err = create()
	if err == nil {
		telemetry.CatalogCreated.WithLabelValues(kind).Inc()
		return id, nil
	}
	if !h.dialect.uniqueViolation(err) {
		return 0, h.classify(err)
	}

	zerolog.Ctx(h.ctx).Debug().Str("kind", kind).Err(err).Msg("lost creation race, retrying lookup")

	id, err = lookup()
	if err == nil {
		return id, nil
	}
	if errors.IsE(err, sql.ErrNoRows) {
		// the unique violation came from a row we can't see
		return 0, errors.E(errors.Conflict, err)
	}
	return 0, h.classify(err)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

const artistLookupQuery = `
SELECT
	id
FROM
	artists
WHERE
	name=?;
`

const artistCreateQuery = `
INSERT INTO artists (
	name,
	external_id,
	created_at,
	updated_at
) VALUES (
	:name,
	:external_id,
	:now,
	:now
);
`

type artistCreate struct {
	Name       string         `db:"name"`
	ExternalID sql.NullString `db:"external_id"`
	Now        time.Time      `db:"now"`
}

// ResolveArtist implements trackhaus.CatalogStorage
func (cs CatalogStorage) ResolveArtist(artist trackhaus.Artist) (trackhaus.ArtistID, error) {
	const op errors.Op = "sqldb/CatalogStorage.ResolveArtist"
	handle, deferFn := cs.handle.span(op)
	defer deferFn()

	if artist.Name == "" {
		return 0, errors.E(op, errors.InvalidArgument, errors.Info("artist name is empty"))
	}

	id, err := resolve(handle, "artist",
		func() (id trackhaus.ArtistID, err error) {
			err = sqlx.Get(handle, &id, artistLookupQuery, artist.Name)
			return id, err
		},
		func() (trackhaus.ArtistID, error) {
			id, err := namedExecLastInsertId(handle, artistCreateQuery, artistCreate{
				Name:       artist.Name,
				ExternalID: nullString(artist.ExternalID),
				Now:        time.Now().UTC(),
			})
			return trackhaus.ArtistID(id), err
		},
	)
	if err != nil {
		return 0, errors.E(op, err, errors.Info(artist.Name))
	}
	return id, nil
}

const albumLookupQuery = `
SELECT
	id
FROM
	albums
WHERE
	title=? AND artist_id=?;
`

const albumCreateQuery = `
INSERT INTO albums (
	title,
	artist_id,
	external_id,
	cover_art_url,
	created_at,
	updated_at
) VALUES (
	:title,
	:artist_id,
	:external_id,
	:cover_art_url,
	:now,
	:now
);
`

type albumCreate struct {
	Title       string             `db:"title"`
	ArtistID    trackhaus.ArtistID `db:"artist_id"`
	ExternalID  sql.NullString     `db:"external_id"`
	CoverArtURL sql.NullString     `db:"cover_art_url"`
	Now         time.Time          `db:"now"`
}

// ResolveAlbum implements trackhaus.CatalogStorage
func (cs CatalogStorage) ResolveAlbum(album trackhaus.Album) (trackhaus.AlbumID, error) {
	const op errors.Op = "sqldb/CatalogStorage.ResolveAlbum"
	handle, deferFn := cs.handle.span(op)
	defer deferFn()

	if album.Title == "" {
		return 0, errors.E(op, errors.InvalidArgument, errors.Info("album title is empty"))
	}
	if album.ArtistID == 0 {
		return 0, errors.E(op, errors.InvalidArgument, errors.Info("album has no artist"))
	}

	id, err := resolve(handle, "album",
		func() (id trackhaus.AlbumID, err error) {
			err = sqlx.Get(handle, &id, albumLookupQuery, album.Title, album.ArtistID)
			return id, err
		},
		func() (trackhaus.AlbumID, error) {
			id, err := namedExecLastInsertId(handle, albumCreateQuery, albumCreate{
				Title:       album.Title,
				ArtistID:    album.ArtistID,
				ExternalID:  nullString(album.ExternalID),
				CoverArtURL: nullString(album.CoverArtURL),
				Now:         time.Now().UTC(),
			})
			return trackhaus.AlbumID(id), err
		},
	)
	if err != nil {
		return 0, errors.E(op, err, errors.Info(album.Title))
	}
	return id, nil
}

const trackLookupQuery = `
SELECT
	id
FROM
	tracks
WHERE
	title=? AND artist_id=? AND album_id=?;
`

const trackCreateQuery = `
INSERT INTO tracks (
	title,
	artist_id,
	album_id,
	external_id,
	duration_seconds,
	detail_url,
	created_at,
	updated_at
) VALUES (
	:title,
	:artist_id,
	:album_id,
	:external_id,
	:duration_seconds,
	:detail_url,
	:now,
	:now
);
`

type trackCreate struct {
	Title           string             `db:"title"`
	ArtistID        trackhaus.ArtistID `db:"artist_id"`
	AlbumID         trackhaus.AlbumID  `db:"album_id"`
	ExternalID      sql.NullString     `db:"external_id"`
	DurationSeconds sql.NullInt64      `db:"duration_seconds"`
	DetailURL       sql.NullString     `db:"detail_url"`
	Now             time.Time          `db:"now"`
}

// ResolveTrack implements trackhaus.CatalogStorage
func (cs CatalogStorage) ResolveTrack(track trackhaus.Track) (trackhaus.TrackID, error) {
	const op errors.Op = "sqldb/CatalogStorage.ResolveTrack"
	handle, deferFn := cs.handle.span(op)
	defer deferFn()

	if track.Title == "" {
		return 0, errors.E(op, errors.InvalidArgument, errors.Info("track title is empty"))
	}
	if track.ArtistID == 0 || track.AlbumID == 0 {
		return 0, errors.E(op, errors.InvalidArgument, errors.Info("track has no artist or album"))
	}

	id, err := resolve(handle, "track",
		func() (id trackhaus.TrackID, err error) {
			err = sqlx.Get(handle, &id, trackLookupQuery, track.Title, track.ArtistID, track.AlbumID)
			return id, err
		},
		func() (trackhaus.TrackID, error) {
			id, err := namedExecLastInsertId(handle, trackCreateQuery, trackCreate{
				Title:      track.Title,
				ArtistID:   track.ArtistID,
				AlbumID:    track.AlbumID,
				ExternalID: nullString(track.ExternalID),
				DurationSeconds: sql.NullInt64{
					Int64: track.DurationSeconds,
					Valid: track.DurationSeconds > 0,
				},
				DetailURL: nullString(track.DetailURL),
				Now:       time.Now().UTC(),
			})
			return trackhaus.TrackID(id), err
		},
	)
	if err != nil {
		return 0, errors.E(op, err, errors.Info(track.Title))
	}
	return id, nil
}

const stationLookupQuery = `
SELECT
	id
FROM
	stations
WHERE
	name=?;
`

const stationCreateQuery = `
INSERT INTO stations (
	name,
	created_at,
	updated_at
) VALUES (
	:name,
	:now,
	:now
);
`

type stationCreate struct {
	Name string    `db:"name"`
	Now  time.Time `db:"now"`
}

// ResolveStation implements trackhaus.CatalogStorage
func (cs CatalogStorage) ResolveStation(name string) (trackhaus.StationID, error) {
	const op errors.Op = "sqldb/CatalogStorage.ResolveStation"
	handle, deferFn := cs.handle.span(op)
	defer deferFn()

	if name == "" {
		return 0, errors.E(op, errors.InvalidArgument, errors.Info("station name is empty"))
	}

	id, err := resolve(handle, "station",
		func() (id trackhaus.StationID, err error) {
			err = sqlx.Get(handle, &id, stationLookupQuery, name)
			return id, err
		},
		func() (trackhaus.StationID, error) {
			id, err := namedExecLastInsertId(handle, stationCreateQuery, stationCreate{
				Name: name,
				Now:  time.Now().UTC(),
			})
			return trackhaus.StationID(id), err
		},
	)
	if err != nil {
		return 0, errors.E(op, err, errors.Info(name))
	}
	return id, nil
}

type artistRow struct {
	ID          trackhaus.ArtistID `db:"id"`
	Name        string             `db:"name"`
	ExternalID  sql.NullString     `db:"external_id"`
	ValidatedAt sql.NullTime       `db:"validated_at"`
	CreatedAt   time.Time          `db:"created_at"`
	UpdatedAt   time.Time          `db:"updated_at"`
}

func (r artistRow) Artist() trackhaus.Artist {
	return trackhaus.Artist{
		ID:          r.ID,
		Name:        r.Name,
		ExternalID:  r.ExternalID.String,
		ValidatedAt: nullTime(r.ValidatedAt),
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

const artistGetQuery = `
SELECT
	id,
	name,
	external_id,
	validated_at,
	created_at,
	updated_at
FROM
	artists
WHERE
	id=?;
`

// Artist implements trackhaus.CatalogStorage
func (cs CatalogStorage) Artist(id trackhaus.ArtistID) (*trackhaus.Artist, error) {
	const op errors.Op = "sqldb/CatalogStorage.Artist"
	handle, deferFn := cs.handle.span(op)
	defer deferFn()

	var row artistRow
	err := sqlx.Get(handle, &row, artistGetQuery, id)
	if err != nil {
		if errors.IsE(err, sql.ErrNoRows) {
			return nil, errors.E(op, errors.ArtistUnknown, err)
		}
		return nil, errors.E(op, handle.classify(err))
	}

	artist := row.Artist()
	return &artist, nil
}

type albumRow struct {
	ID          trackhaus.AlbumID  `db:"id"`
	Title       string             `db:"title"`
	ArtistID    trackhaus.ArtistID `db:"artist_id"`
	ExternalID  sql.NullString     `db:"external_id"`
	CoverArtURL sql.NullString     `db:"cover_art_url"`
	ValidatedAt sql.NullTime       `db:"validated_at"`
	CreatedAt   time.Time          `db:"created_at"`
	UpdatedAt   time.Time          `db:"updated_at"`
}

func (r albumRow) Album() trackhaus.Album {
	return trackhaus.Album{
		ID:          r.ID,
		Title:       r.Title,
		ArtistID:    r.ArtistID,
		ExternalID:  r.ExternalID.String,
		CoverArtURL: r.CoverArtURL.String,
		ValidatedAt: nullTime(r.ValidatedAt),
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

const albumGetQuery = `
SELECT
	id,
	title,
	artist_id,
	external_id,
	cover_art_url,
	validated_at,
	created_at,
	updated_at
FROM
	albums
WHERE
	id=?;
`

// Album implements trackhaus.CatalogStorage
func (cs CatalogStorage) Album(id trackhaus.AlbumID) (*trackhaus.Album, error) {
	const op errors.Op = "sqldb/CatalogStorage.Album"
	handle, deferFn := cs.handle.span(op)
	defer deferFn()

	var row albumRow
	err := sqlx.Get(handle, &row, albumGetQuery, id)
	if err != nil {
		if errors.IsE(err, sql.ErrNoRows) {
			return nil, errors.E(op, errors.AlbumUnknown, err)
		}
		return nil, errors.E(op, handle.classify(err))
	}

	album := row.Album()
	return &album, nil
}

type trackRow struct {
	ID              trackhaus.TrackID  `db:"id"`
	Title           string             `db:"title"`
	ArtistID        trackhaus.ArtistID `db:"artist_id"`
	AlbumID         trackhaus.AlbumID  `db:"album_id"`
	ExternalID      sql.NullString     `db:"external_id"`
	DurationSeconds sql.NullInt64      `db:"duration_seconds"`
	DetailURL       sql.NullString     `db:"detail_url"`
	ValidatedAt     sql.NullTime       `db:"validated_at"`
	CreatedAt       time.Time          `db:"created_at"`
	UpdatedAt       time.Time          `db:"updated_at"`
}

func (r trackRow) Track() trackhaus.Track {
	return trackhaus.Track{
		ID:              r.ID,
		Title:           r.Title,
		ArtistID:        r.ArtistID,
		AlbumID:         r.AlbumID,
		ExternalID:      r.ExternalID.String,
		DurationSeconds: r.DurationSeconds.Int64,
		DetailURL:       r.DetailURL.String,
		ValidatedAt:     nullTime(r.ValidatedAt),
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}
}

const trackGetQuery = `
SELECT
	id,
	title,
	artist_id,
	album_id,
	external_id,
	duration_seconds,
	detail_url,
	validated_at,
	created_at,
	updated_at
FROM
	tracks
WHERE
	id=?;
`

// Track implements trackhaus.CatalogStorage
func (cs CatalogStorage) Track(id trackhaus.TrackID) (*trackhaus.Track, error) {
	const op errors.Op = "sqldb/CatalogStorage.Track"
	handle, deferFn := cs.handle.span(op)
	defer deferFn()

	var row trackRow
	err := sqlx.Get(handle, &row, trackGetQuery, id)
	if err != nil {
		if errors.IsE(err, sql.ErrNoRows) {
			return nil, errors.E(op, errors.TrackUnknown, err)
		}
		return nil, errors.E(op, handle.classify(err))
	}

	track := row.Track()
	return &track, nil
}

type stationRow struct {
	ID        trackhaus.StationID `db:"id"`
	Name      string              `db:"name"`
	CreatedAt time.Time           `db:"created_at"`
	UpdatedAt time.Time           `db:"updated_at"`
}

func (r stationRow) Station() trackhaus.Station {
	return trackhaus.Station{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

const stationGetQuery = `
SELECT
	id,
	name,
	created_at,
	updated_at
FROM
	stations
WHERE
	id=?;
`

// Station implements trackhaus.CatalogStorage
func (cs CatalogStorage) Station(id trackhaus.StationID) (*trackhaus.Station, error) {
	const op errors.Op = "sqldb/CatalogStorage.Station"
	handle, deferFn := cs.handle.span(op)
	defer deferFn()

	var row stationRow
	err := sqlx.Get(handle, &row, stationGetQuery, id)
	if err != nil {
		if errors.IsE(err, sql.ErrNoRows) {
			return nil, errors.E(op, errors.StationUnknown, err)
		}
		return nil, errors.E(op, handle.classify(err))
	}

	station := row.Station()
	return &station, nil
}
