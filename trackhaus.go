package trackhaus

import (
	"context"
	"strconv"
	"time"
)

// ListenerID is the identifier of a listener account
type ListenerID uint32

func ParseListenerID(s string) (ListenerID, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return ListenerID(id), nil
}

func (id ListenerID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ArtistID is the identifier of an artist in the catalog
type ArtistID uint32

func ParseArtistID(s string) (ArtistID, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return ArtistID(id), nil
}

func (id ArtistID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// AlbumID is the identifier of an album in the catalog
type AlbumID uint32

func ParseAlbumID(s string) (AlbumID, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return AlbumID(id), nil
}

func (id AlbumID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// TrackID is the identifier of a track in the catalog
type TrackID uint32

func ParseTrackID(s string) (TrackID, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return TrackID(id), nil
}

func (id TrackID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// StationID is the identifier of a station in the catalog
type StationID uint32

func ParseStationID(s string) (StationID, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return StationID(id), nil
}

func (id StationID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// PlayID is the identifier of a single recorded play
type PlayID uint64

func ParsePlayID(s string) (PlayID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return PlayID(id), nil
}

func (id PlayID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Artist is an artist in the catalog, identified by its exact name
type Artist struct {
	ID   ArtistID `json:"id"`
	Name string   `json:"name"`
	// ExternalID is an optional identifier into an external music metadata
	// catalog, such as a MusicBrainz id, spelling variants of an artist may
	// share one
	ExternalID string `json:"external_id,omitempty"`
	// ValidatedAt is set when an external process validated this entry
	ValidatedAt *time.Time `json:"validated_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Album is an album in the catalog, identified by its title and artist
type Album struct {
	ID          AlbumID    `json:"id"`
	Title       string     `json:"title"`
	ArtistID    ArtistID   `json:"artist_id"`
	ExternalID  string     `json:"external_id,omitempty"`
	CoverArtURL string     `json:"cover_art_url,omitempty"`
	ValidatedAt *time.Time `json:"validated_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Track is a track in the catalog, identified by its title, artist and album
type Track struct {
	ID         TrackID  `json:"id"`
	Title      string   `json:"title"`
	ArtistID   ArtistID `json:"artist_id"`
	AlbumID    AlbumID  `json:"album_id"`
	ExternalID string   `json:"external_id,omitempty"`
	// DurationSeconds is the length of the track, zero if unknown
	DurationSeconds int64      `json:"duration_seconds,omitempty"`
	DetailURL       string     `json:"detail_url,omitempty"`
	ValidatedAt     *time.Time `json:"validated_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Duration returns the track length as a time.Duration
func (t Track) Duration() time.Duration {
	return time.Duration(t.DurationSeconds) * time.Second
}

// Station is the station a play was heard on, identified by its exact name
type Station struct {
	ID   StationID `json:"id"`
	Name string    `json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayRecord is a play as it is persisted
type PlayRecord struct {
	ID         PlayID
	ListenerID ListenerID
	TrackID    TrackID
	StationID  StationID
	Rating     Rating
	// OccurredAt is when the listener heard the track
	OccurredAt time.Time
	// RecordedAt is when the play was received
	RecordedAt time.Time
}

// Play is a play with the catalog entities it references already resolved,
// this is the shape both play listings and analytics operate on
type Play struct {
	ID         PlayID     `json:"id"`
	ListenerID ListenerID `json:"listener_id"`

	Track   Track   `json:"track"`
	Artist  Artist  `json:"artist"`
	Album   Album   `json:"album"`
	Station Station `json:"station"`

	Rating     Rating    `json:"rating"`
	OccurredAt time.Time `json:"occurred_at"`
	RecordedAt time.Time `json:"recorded_at"`
}

// PlaySubmission is what a client reports for a single play, the limits
// match the widest column every storage provider can hold
type PlaySubmission struct {
	Title   string `validate:"required,max=255"`
	Artist  string `validate:"required,max=255"`
	Album   string `validate:"required,max=255"`
	Station string `validate:"required,max=255"`
	// Rating is the optional rating code, see RatingFromCode
	Rating *int
	// OccurredAt defaults to the time of ingestion if zero
	OccurredAt time.Time

	DurationSeconds  int64  `validate:"gte=0,lte=4294967295"`
	TrackExternalID  string `validate:"max=36"`
	ArtistExternalID string `validate:"max=36"`
	AlbumExternalID  string `validate:"max=36"`
	CoverArtURL      string `validate:"omitempty,url,max=2048"`
	DetailURL        string `validate:"omitempty,url,max=2048"`
}

// Listener is an account plays are recorded for
type Listener struct {
	ID           ListenerID
	Email        string
	PasswordHash string
	APIKey       string
	Active       bool

	CreatedAt   time.Time
	LastLoginAt *time.Time
}

// StorageTx is a transaction that can be committed or rolled back, Rollback is
// safe to call after Commit
type StorageTx interface {
	Commit() error
	Rollback() error
}

// StorageService is an interface containing all *StorageService interfaces
type StorageService interface {
	CatalogStorageService
	PlayStorageService
	ListenerStorageService
	// Close closes the storage service and cleans up any resources
	Close() error
}

// CatalogStorageService is a service able to supply a CatalogStorage
type CatalogStorageService interface {
	Catalog(context.Context) CatalogStorage
	CatalogTx(context.Context, StorageTx) (CatalogStorage, StorageTx, error)
}

// CatalogStorage resolves free-text references to catalog entities. The
// Resolve methods look the entity up by its natural key and create it if it
// does not exist yet; optional attributes are only stored on creation.
type CatalogStorage interface {
	// ResolveArtist resolves by Artist.Name
	ResolveArtist(Artist) (ArtistID, error)
	// ResolveAlbum resolves by Album.Title and Album.ArtistID
	ResolveAlbum(Album) (AlbumID, error)
	// ResolveTrack resolves by Track.Title, Track.ArtistID and Track.AlbumID
	ResolveTrack(Track) (TrackID, error)
	// ResolveStation resolves by name
	ResolveStation(name string) (StationID, error)

	Artist(ArtistID) (*Artist, error)
	Album(AlbumID) (*Album, error)
	Track(TrackID) (*Track, error)
	Station(StationID) (*Station, error)
}

// PlayStorageService is a service able to supply a PlayStorage
type PlayStorageService interface {
	Plays(context.Context) PlayStorage
	PlaysTx(context.Context, StorageTx) (PlayStorage, StorageTx, error)
}

// PlayStorage stores the append-only play log
type PlayStorage interface {
	// Create appends a play and returns its id
	Create(PlayRecord) (PlayID, error)
	// Get returns a single play
	Get(PlayID) (*Play, error)
	// ListByListener returns plays of the listener, newest first
	ListByListener(id ListenerID, limit, offset int) ([]Play, error)
	// AllByListener returns every play of the listener, in no particular order
	AllByListener(ListenerID) ([]Play, error)
	// CountByListener returns the amount of plays the listener has
	CountByListener(ListenerID) (int64, error)
}

// ListenerStorageService is a service able to supply a ListenerStorage
type ListenerStorageService interface {
	Listeners(context.Context) ListenerStorage
	ListenersTx(context.Context, StorageTx) (ListenerStorage, StorageTx, error)
}

// ListenerStorage stores listener accounts
type ListenerStorage interface {
	// Create creates a new listener and returns its id
	Create(Listener) (ListenerID, error)
	// Get returns the listener with the id given
	Get(ListenerID) (*Listener, error)
	// ByEmail returns the listener with the email given
	ByEmail(email string) (*Listener, error)
	// ByAPIKey returns the listener owning the api key given
	ByAPIKey(key string) (*Listener, error)
	// UpdateLastLogin sets the last login time of the listener
	UpdateLastLogin(ListenerID, time.Time) error
}
