package sqldb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net"

	"github.com/trackhaus/trackhaus/errors"
)

// Dialect contains the behaviour that differs between database drivers
type Dialect struct {
	// Name is the name of the dialect, used in logging
	Name string
	// TxOptions are passed to every transaction started
	TxOptions *sql.TxOptions
	// IsUniqueViolation reports if err is a unique constraint violation
	IsUniqueViolation func(error) bool
	// IsRetryable reports if err is a transient conflict such as a deadlock, the
	// whole transaction should be retried
	IsRetryable func(error) bool
	// IsUnavailable reports if err means the database can't be used right now
	IsUnavailable func(error) bool
}

func (d *Dialect) uniqueViolation(err error) bool {
	return d.IsUniqueViolation != nil && d.IsUniqueViolation(err)
}

// kind returns the errors.Kind that err should be reported as
func (d *Dialect) kind(err error) errors.Kind {
	switch {
	case d.uniqueViolation(err):
		return errors.Conflict
	case d.IsRetryable != nil && d.IsRetryable(err):
		return errors.Conflict
	case d.IsUnavailable != nil && d.IsUnavailable(err):
		return errors.StorageUnavailable
	case isUnavailable(err):
		return errors.StorageUnavailable
	}
	return errors.Other
}

// isUnavailable checks for the driver independent errors that mean we lost
// or could not get a connection
func isUnavailable(err error) bool {
	if errors.IsE(err, driver.ErrBadConn) || errors.IsE(err, sql.ErrConnDone) {
		return true
	}
	if errors.IsE(err, context.DeadlineExceeded) {
		return true
	}

	var nerr net.Error
	return errors.As(err, &nerr)
}
