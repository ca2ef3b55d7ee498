package sqldb

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/trackhaus/trackhaus/storage/sqldb"

// DatabaseConnectFunc is used to open all database connections, it can be
// swapped out to instrument the connection
var DatabaseConnectFunc = sqlx.ConnectContext

// Connect opens a database with DatabaseConnectFunc, retrying until the
// configured connect timeout runs out, and applies the pool settings
func Connect(ctx context.Context, cfg config.Config, driverName, dsn string) (*sqlx.DB, error) {
	var db *sqlx.DB

	bo := config.NewConnectionBackoff(ctx, cfg)
	err := backoff.RetryNotify(func() error {
		var err error
		db, err = DatabaseConnectFunc(ctx, driverName, dsn)
		return err
	}, bo, func(err error, d time.Duration) {
		zerolog.Ctx(ctx).Warn().Ctx(ctx).Err(err).Str("driver", driverName).Dur("retry_in", d).Msg("failed to connect to database")
	})
	if err != nil {
		return nil, err
	}

	conf := cfg.Conf().Database
	db.SetMaxOpenConns(conf.MaxOpenConns)
	db.SetMaxIdleConns(conf.MaxIdleConns)
	db.SetConnMaxLifetime(conf.ConnMaxLifetime.Duration())
	return db, nil
}

// New returns a StorageService using the database and dialect given
func New(db *sqlx.DB, dialect Dialect) *StorageService {
	return &StorageService{
		db:      db,
		dialect: &dialect,
	}
}

// StorageService implements trackhaus.StorageService with a sql database
type StorageService struct {
	db      *sqlx.DB
	dialect *Dialect
}

var _ trackhaus.StorageService = (*StorageService)(nil)

func (s *StorageService) Close() error {
	return s.db.Close()
}

// fakeTx is a *sqlx.Tx with the Commit method disabled
type fakeTx struct {
	*sqlx.Tx
	called atomic.Bool
}

// Commit does nothing
func (tx *fakeTx) Commit() error {
	success := tx.called.CompareAndSwap(false, true)
	if !success {
		return sql.ErrTxDone
	}
	return nil
}

// Rollback only calls the real Rollback if Commit has not been called yet,
// this is to support the common `defer tx.Rollback()` pattern
func (tx *fakeTx) Rollback() error {
	success := tx.called.CompareAndSwap(false, true)
	if !success {
		return sql.ErrTxDone
	}
	return tx.Tx.Rollback()
}

type spanTx struct {
	*sqlx.Tx
	span trace.Span
	end  func()
}

func (tx spanTx) Commit() error {
	defer tx.end()
	tx.span.AddEvent("commit")

	return tx.Tx.Commit()
}

func (tx spanTx) Rollback() error {
	defer tx.end()
	tx.span.AddEvent("rollback")

	return tx.Tx.Rollback()
}

// tx either unwraps the tx given to a *sqlx.Tx, or creates a new transaction if tx is
// nil. Passing in a StorageTx not returned by this package will panic
func (s *StorageService) tx(ctx context.Context, tx trackhaus.StorageTx) (context.Context, *sqlx.Tx, trackhaus.StorageTx, error) {
	return beginTx(ctx, s.db, tx, s.dialect.TxOptions)
}

// beginTx starts a new transaction but only if a transaction doesn't already exist in any of the
// arguments given.
func beginTx(ctx context.Context, ex extContext, tx trackhaus.StorageTx, opts *sql.TxOptions) (context.Context, *sqlx.Tx, trackhaus.StorageTx, error) {
	if tx != nil {
		// existing transaction, make sure it's one of ours and then use it
		switch txx := tx.(type) {
		case *sqlx.Tx:
			// if this is a real tx, we disable the commit so that the transaction can't
			// be committed earlier than expected by the creator
			return ctx, txx, &fakeTx{Tx: txx}, nil
		case spanTx:
			return ctx, txx.Tx, &fakeTx{Tx: txx.Tx}, nil
		case *fakeTx:
			return ctx, txx.Tx, txx, nil
		default:
			panic("sqldb: invalid tx passed to beginTx")
		}
	}

	// now check if our ex is already a transaction
	switch sx := ex.(type) {
	case *sqlx.Tx:
		// ex was already a transaction, return it wrapped in a fake
		return ctx, sx, &fakeTx{Tx: sx}, nil
	case *sqlx.DB:
		// it's just our normal db instance, create a new transaction
		tx, err := sx.BeginTxx(ctx, opts)
		if err != nil {
			return ctx, nil, nil, err
		}
		ctx, span := otel.Tracer(tracerName).Start(ctx, "transaction")
		end := sync.OnceFunc(func() { span.End() })
		return ctx, tx, spanTx{tx, span, end}, nil
	}

	panic("sqldb: invalid ex passed to beginTx")
}

func (s *StorageService) newHandle(ctx context.Context, ext extContext, name string) handle {
	return handle{
		ext:     ext,
		ctx:     ctx,
		service: name,
		dialect: s.dialect,
	}
}

func (s *StorageService) Catalog(ctx context.Context) trackhaus.CatalogStorage {
	return CatalogStorage{
		handle: s.newHandle(ctx, s.db, "catalog"),
	}
}

func (s *StorageService) CatalogTx(ctx context.Context, tx trackhaus.StorageTx) (trackhaus.CatalogStorage, trackhaus.StorageTx, error) {
	const op errors.Op = "sqldb/StorageService.CatalogTx"

	ctx, db, tx, err := s.tx(ctx, tx)
	if err != nil {
		return nil, nil, errors.E(op, errors.TransactionBegin, err)
	}

	storage := CatalogStorage{
		handle: s.newHandle(ctx, db, "catalog"),
	}
	return storage, tx, nil
}

func (s *StorageService) Plays(ctx context.Context) trackhaus.PlayStorage {
	return PlayStorage{
		handle: s.newHandle(ctx, s.db, "plays"),
	}
}

func (s *StorageService) PlaysTx(ctx context.Context, tx trackhaus.StorageTx) (trackhaus.PlayStorage, trackhaus.StorageTx, error) {
	const op errors.Op = "sqldb/StorageService.PlaysTx"

	ctx, db, tx, err := s.tx(ctx, tx)
	if err != nil {
		return nil, nil, errors.E(op, errors.TransactionBegin, err)
	}

	storage := PlayStorage{
		handle: s.newHandle(ctx, db, "plays"),
	}
	return storage, tx, nil
}

func (s *StorageService) Listeners(ctx context.Context) trackhaus.ListenerStorage {
	return ListenerStorage{
		handle: s.newHandle(ctx, s.db, "listeners"),
	}
}

func (s *StorageService) ListenersTx(ctx context.Context, tx trackhaus.StorageTx) (trackhaus.ListenerStorage, trackhaus.StorageTx, error) {
	const op errors.Op = "sqldb/StorageService.ListenersTx"

	ctx, db, tx, err := s.tx(ctx, tx)
	if err != nil {
		return nil, nil, errors.E(op, errors.TransactionBegin, err)
	}

	storage := ListenerStorage{
		handle: s.newHandle(ctx, db, "listeners"),
	}
	return storage, tx, nil
}

type extContext interface {
	sqlx.ExecerContext
	sqlx.QueryerContext
	// these are methods on sqlx.binder that is private, we need to implement these
	// to be a sqlx.Ext so that we can use all extensions added by sqlx
	DriverName() string
	Rebind(string) string
	BindNamed(string, any) (string, []any, error)
}

func namedExecLastInsertId(e sqlx.Ext, query string, arg any) (int64, error) {
	res, err := sqlx.NamedExec(e, query, arg)
	if err != nil {
		return 0, err
	}

	new, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return new, nil
}

// handle is an implementation of sqlx.Execer and sqlx.Queryer that can either use
// a *sqlx.DB directly, or a *sqlx.Tx. It implements these with the *Context equivalents
type handle struct {
	ext extContext
	ctx context.Context

	service string
	dialect *Dialect
}

func (h handle) span(op errors.Op) (handle, func(...trace.SpanEndOption)) {
	var span trace.Span
	h.ctx, span = otel.Tracer(tracerName).Start(h.ctx, string(op))

	return h, span.End
}

// classify wraps err with the Kind matching the driver error
func (h handle) classify(err error) error {
	if err == nil {
		return nil
	}
	if kind := h.dialect.kind(err); kind != errors.Other {
		return errors.E(kind, err)
	}
	return err
}

func (h handle) Exec(query string, args ...any) (sql.Result, error) {
	defer func(start time.Time) {
		zerolog.Ctx(h.ctx).Debug().
			Str("storage_service", h.service).
			Str("query", query).
			Any("arguments", args).
			TimeDiff("execution_time", time.Now(), start).
			Msg("exec")
	}(time.Now())

	return h.ext.ExecContext(h.ctx, query, args...)
}

func (h handle) Query(query string, args ...any) (*sql.Rows, error) {
	defer func(start time.Time) {
		zerolog.Ctx(h.ctx).Debug().
			Str("storage_service", h.service).
			Str("query", query).
			Any("arguments", args).
			TimeDiff("execution_time", time.Now(), start).
			Msg("query")
	}(time.Now())

	return h.ext.QueryContext(h.ctx, query, args...)
}

func (h handle) Queryx(query string, args ...any) (*sqlx.Rows, error) {
	defer func(start time.Time) {
		zerolog.Ctx(h.ctx).Debug().
			Str("storage_service", h.service).
			Str("query", query).
			Any("arguments", args).
			TimeDiff("execution_time", time.Now(), start).
			Msg("queryx")
	}(time.Now())

	return h.ext.QueryxContext(h.ctx, query, args...)
}

func (h handle) QueryRowx(query string, args ...any) *sqlx.Row {
	defer func(start time.Time) {
		zerolog.Ctx(h.ctx).Debug().
			Str("storage_service", h.service).
			Str("query", query).
			Any("arguments", args).
			TimeDiff("execution_time", time.Now(), start).
			Msg("query_rowx")
	}(time.Now())

	return h.ext.QueryRowxContext(h.ctx, query, args...)
}

func (h handle) BindNamed(query string, arg any) (string, []any, error) {
	return h.ext.BindNamed(query, arg)
}

func (h handle) Rebind(query string) string {
	return h.ext.Rebind(query)
}

func (h handle) DriverName() string {
	return h.ext.DriverName()
}

var _ sqlx.Execer = handle{}
var _ sqlx.Queryer = handle{}
var _ sqlx.Ext = handle{}
