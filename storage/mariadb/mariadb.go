package mariadb

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-sql-driver/mysql" // mariadb
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/storage"
	"github.com/trackhaus/trackhaus/storage/sqldb"
)

func init() {
	storage.Register("mariadb", Connect)
}

// mysql server error numbers
const (
	errDuplicateEntry   = 1062
	errLockWaitTimeout  = 1205
	errLockDeadlock     = 1213
	errServerShutdown   = 1053
	errTooManyConns     = 1040
	errConnCountError   = 1203
	errServerGoneAway   = 2006
	errServerLostConn   = 2013
	errCantConnect      = 2002
	errCantConnectTCPIP = 2003
)

func errorNumber(err error) (uint16, bool) {
	var merr *mysql.MySQLError
	if !errors.As(err, &merr) {
		return 0, false
	}
	return merr.Number, true
}

// Dialect is the sqldb.Dialect for mariadb and mysql servers
var Dialect = sqldb.Dialect{
	Name: "mariadb",
	// the default REPEATABLE READ would keep returning the snapshot taken before a
	// concurrent insert we lost a race against
	TxOptions: &sql.TxOptions{Isolation: sql.LevelReadCommitted},
	IsUniqueViolation: func(err error) bool {
		n, ok := errorNumber(err)
		return ok && n == errDuplicateEntry
	},
	IsRetryable: func(err error) bool {
		n, ok := errorNumber(err)
		return ok && (n == errLockDeadlock || n == errLockWaitTimeout)
	},
	IsUnavailable: func(err error) bool {
		if errors.IsE(err, mysql.ErrInvalidConn) {
			return true
		}
		n, ok := errorNumber(err)
		if !ok {
			return false
		}
		switch n {
		case errServerShutdown, errTooManyConns, errConnCountError,
			errServerGoneAway, errServerLostConn, errCantConnect, errCantConnectTCPIP:
			return true
		}
		return false
	},
}

// ConnectDB connects to the configured mariadb instance and returns the raw database
// object. Argument multistatement indicates if we should allow queries with multiple
// statements in them.
func ConnectDB(ctx context.Context, cfg config.Config, multistatement bool) (*sqlx.DB, error) {
	info := cfg.Conf().Database

	// we require some specific arguments in the DSN to have code work properly, so make
	// sure those are included
	dsn, err := mysql.ParseDSN(info.DSN)
	if err != nil {
		return nil, err
	}

	// enable multistatement queries if asked for
	if multistatement {
		dsn.MultiStatements = true
	}
	// UTC location to handle time.Time location
	dsn.Loc = time.UTC
	// parsetime to handle time.Time in the driver
	dsn.ParseTime = true
	// matched rows instead of changed rows, an update that sets a column to
	// the value it already had still reports the row
	dsn.ClientFoundRows = true
	// time_zone to have the database not try and interpret dates and times as the
	// locale of the system, but as UTC+0 instead
	if dsn.Params == nil {
		dsn.Params = map[string]string{}
	}
	dsn.Params["time_zone"] = "'+00:00'"
	conndsn := dsn.FormatDSN()

	// we want to print what we're connecting to, but not print our password
	if dsn.Passwd != "" {
		dsn.Passwd = "<redacted>"
	}

	zerolog.Ctx(ctx).Info().Ctx(ctx).Str("address", dsn.FormatDSN()).Msg("trying to connect")

	return sqldb.Connect(ctx, cfg, "mysql", conndsn)
}

// Connect connects to the database configured in cfg
func Connect(ctx context.Context, cfg config.Config) (trackhaus.StorageService, error) {
	db, err := ConnectDB(ctx, cfg, false)
	if err != nil {
		return nil, err
	}
	return sqldb.New(db, Dialect), nil
}
