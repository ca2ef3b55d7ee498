package sqlite

import (
	"context"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3" // sqlite3
	"github.com/rs/zerolog"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/storage"
	"github.com/trackhaus/trackhaus/storage/sqldb"
)

func init() {
	storage.Register("sqlite", Connect)
}

// defaultParams are added to the DSN if they are not set already. _txlock makes
// a transaction take the write lock when it starts, otherwise two transactions
// that both read before writing deadlock each other
var defaultParams = map[string]string{
	"_loc":          "UTC",
	"_txlock":       "immediate",
	"_busy_timeout": "5000",
	"_foreign_keys": "on",
	"_journal_mode": "WAL",
	"_synchronous":  "NORMAL",
}

func sqliteError(err error) (sqlite3.Error, bool) {
	var serr sqlite3.Error
	if !errors.As(err, &serr) {
		return serr, false
	}
	return serr, true
}

// Dialect is the sqldb.Dialect for sqlite databases
var Dialect = sqldb.Dialect{
	Name: "sqlite",
	IsUniqueViolation: func(err error) bool {
		serr, ok := sqliteError(err)
		return ok && (serr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey)
	},
	IsRetryable: func(err error) bool {
		serr, ok := sqliteError(err)
		return ok && (serr.Code == sqlite3.ErrBusy || serr.Code == sqlite3.ErrLocked)
	},
	IsUnavailable: func(err error) bool {
		serr, ok := sqliteError(err)
		return ok && (serr.Code == sqlite3.ErrCantOpen || serr.Code == sqlite3.ErrIoErr)
	},
}

// FormatDSN adds the parameters required by this package to the DSN given
func FormatDSN(dsn string) (string, error) {
	path, rawQuery, _ := strings.Cut(dsn, "?")

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", err
	}

	for k, v := range defaultParams {
		if !query.Has(k) {
			query.Set(k, v)
		}
	}
	return path + "?" + query.Encode(), nil
}

// ConnectDB opens the configured sqlite database and returns the raw database object
func ConnectDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	const op errors.Op = "sqlite/ConnectDB"

	dsn, err := FormatDSN(cfg.Conf().Database.DSN)
	if err != nil {
		return nil, errors.E(op, errors.InvalidArgument, err)
	}

	zerolog.Ctx(ctx).Info().Ctx(ctx).Str("address", dsn).Msg("trying to connect")

	return sqldb.Connect(ctx, cfg, "sqlite3", dsn)
}

// Connect opens the database configured in cfg
func Connect(ctx context.Context, cfg config.Config) (trackhaus.StorageService, error) {
	db, err := ConnectDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return sqldb.New(db, Dialect), nil
}
