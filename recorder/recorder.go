package recorder

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/telemetry"
)

// MaxRetries is the amount of times a recording that failed with a storage
// conflict is retried before giving up
const MaxRetries = 3

// NewRecorder returns a Recorder that stores plays in the storage given
func NewRecorder(storage trackhaus.StorageService) *Recorder {
	return &Recorder{
		storage:  storage,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
		backoff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(time.Millisecond*10),
				backoff.WithMaxInterval(time.Millisecond*200),
			)
		},
	}
}

// Recorder records plays, resolving the free-text catalog references of a
// submission into catalog entities as it goes
type Recorder struct {
	storage  trackhaus.StorageService
	validate *validator.Validate
	now      func() time.Time
	backoff  func() backoff.BackOff
}

// Record validates the submission and stores it as a play of the listener given.
// Resolving the catalog entities and storing the play happens in a single
// transaction; nothing is stored if any step fails.
func (r *Recorder) Record(ctx context.Context, listener trackhaus.ListenerID, sub trackhaus.PlaySubmission) (trackhaus.PlayID, error) {
	const op errors.Op = "recorder/Recorder.Record"

	if listener == 0 {
		return 0, errors.E(op, errors.InvalidArgument, errors.Info("no listener"))
	}
	if err := r.Validate(sub); err != nil {
		return 0, errors.E(op, err, listener)
	}

	now := r.now().UTC()
	play := trackhaus.PlayRecord{
		ListenerID: listener,
		Rating:     trackhaus.RatingFromCode(sub.Rating),
		OccurredAt: sub.OccurredAt.UTC(),
		RecordedAt: now,
	}
	if sub.OccurredAt.IsZero() {
		play.OccurredAt = now
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(r.backoff(), MaxRetries), ctx)

	var id trackhaus.PlayID
	err := backoff.RetryNotify(func() error {
		var err error
		id, err = r.record(ctx, play, sub)
		if err != nil && !errors.Is(errors.Conflict, err) {
			return backoff.Permanent(err)
		}
		return err
	}, bo, func(err error, d time.Duration) {
		telemetry.RecordRetries.Inc()
		zerolog.Ctx(ctx).Warn().Ctx(ctx).Err(err).Dur("retry_in", d).Msg("conflict while recording play")
	})
	if err != nil {
		return 0, errors.E(op, err, listener)
	}

	telemetry.PlaysRecorded.WithLabelValues(play.Rating.String()).Inc()
	zerolog.Ctx(ctx).Debug().Ctx(ctx).
		Uint64("play_id", uint64(id)).
		Uint32("listener_id", uint32(listener)).
		Str("rating", play.Rating.String()).
		Msg("recorded play")
	return id, nil
}

// record does a single attempt at storing the play
func (r *Recorder) record(ctx context.Context, play trackhaus.PlayRecord, sub trackhaus.PlaySubmission) (trackhaus.PlayID, error) {
	const op errors.Op = "recorder/Recorder.record"

	cs, tx, err := r.storage.CatalogTx(ctx, nil)
	if err != nil {
		return 0, errors.E(op, err)
	}
	defer tx.Rollback()

	artistID, err := cs.ResolveArtist(trackhaus.Artist{
		Name:       sub.Artist,
		ExternalID: sub.ArtistExternalID,
	})
	if err != nil {
		return 0, errors.E(op, err)
	}

	albumID, err := cs.ResolveAlbum(trackhaus.Album{
		Title:       sub.Album,
		ArtistID:    artistID,
		ExternalID:  sub.AlbumExternalID,
		CoverArtURL: sub.CoverArtURL,
	})
	if err != nil {
		return 0, errors.E(op, err)
	}

	play.TrackID, err = cs.ResolveTrack(trackhaus.Track{
		Title:           sub.Title,
		ArtistID:        artistID,
		AlbumID:         albumID,
		ExternalID:      sub.TrackExternalID,
		DurationSeconds: sub.DurationSeconds,
		DetailURL:       sub.DetailURL,
	})
	if err != nil {
		return 0, errors.E(op, err)
	}

	play.StationID, err = cs.ResolveStation(sub.Station)
	if err != nil {
		return 0, errors.E(op, err)
	}

	ps, _, err := r.storage.PlaysTx(ctx, tx)
	if err != nil {
		return 0, errors.E(op, err)
	}

	id, err := ps.Create(play)
	if err != nil {
		return 0, errors.E(op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, errors.E(op, errors.TransactionCommit, err)
	}
	return id, nil
}

// Validate checks the submission for missing or malformed fields, the first
// offending field is returned as the Info of an InvalidArgument error
func (r *Recorder) Validate(sub trackhaus.PlaySubmission) error {
	const op errors.Op = "recorder/Recorder.Validate"

	err := r.validate.Struct(sub)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.E(op, errors.InvalidArgument, errors.Info(verrs[0].Field()), err)
	}
	return errors.E(op, errors.InvalidArgument, err)
}
