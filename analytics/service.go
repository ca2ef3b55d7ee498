package analytics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/telemetry"
)

const (
	// DefaultLimit is the page size used by UserPlays when none is given
	DefaultLimit = 50
	// MaxLimit is the largest page size UserPlays returns
	MaxLimit = 200
)

// NewService returns a Service reading plays from the storage given
func NewService(store trackhaus.PlayStorageService) *Service {
	return &Service{store: store}
}

// Service answers questions about the listening history of a listener
type Service struct {
	store trackhaus.PlayStorageService
}

// UserStats returns the statistics snapshot of the listener, a listener
// without any plays returns an errors.ListenerNoPlays error
func (s *Service) UserStats(ctx context.Context, listener trackhaus.ListenerID) (trackhaus.Stats, error) {
	const op errors.Op = "analytics/Service.UserStats"

	timer := prometheus.NewTimer(telemetry.StatsDuration)
	defer timer.ObserveDuration()

	plays, err := s.store.Plays(ctx).AllByListener(listener)
	if err != nil {
		return trackhaus.Stats{}, errors.E(op, err, listener)
	}

	stats, err := Compute(plays)
	if err != nil {
		return trackhaus.Stats{}, errors.E(op, err, listener)
	}

	zerolog.Ctx(ctx).Debug().Ctx(ctx).
		Uint32("listener_id", uint32(listener)).
		Int64("total_plays", stats.Overall.TotalPlays).
		Msg("computed stats")
	return stats, nil
}

// UserPlays returns a page of plays of the listener, newest first. A limit
// outside of [1, MaxLimit] is clamped, zero means DefaultLimit and a negative
// offset is treated as zero.
func (s *Service) UserPlays(ctx context.Context, listener trackhaus.ListenerID, limit, offset int) ([]trackhaus.Play, error) {
	const op errors.Op = "analytics/Service.UserPlays"

	limit, offset = ClampPage(limit, offset)

	plays, err := s.store.Plays(ctx).ListByListener(listener, limit, offset)
	if err != nil {
		return nil, errors.E(op, err, listener)
	}
	return plays, nil
}

// ClampPage applies the paging rules of UserPlays to limit and offset
func ClampPage(limit, offset int) (int, int) {
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
