package sqldb

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
)

// ListenerStorage implements trackhaus.ListenerStorage
type ListenerStorage struct {
	handle handle
}

type listenerRow struct {
	ID           trackhaus.ListenerID `db:"id"`
	Email        string               `db:"email"`
	PasswordHash string               `db:"password_hash"`
	APIKey       string               `db:"api_key"`
	Active       bool                 `db:"active"`
	CreatedAt    time.Time            `db:"created_at"`
	LastLoginAt  sql.NullTime         `db:"last_login_at"`
}

func (r listenerRow) Listener() *trackhaus.Listener {
	return &trackhaus.Listener{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		APIKey:       r.APIKey,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt.UTC(),
		LastLoginAt:  nullTime(r.LastLoginAt),
	}
}

const listenerCreateQuery = `
INSERT INTO listeners (
	email,
	password_hash,
	api_key,
	active,
	created_at
) VALUES (
	:email,
	:password_hash,
	:api_key,
	:active,
	:created_at
);
`

// Create implements trackhaus.ListenerStorage
func (ls ListenerStorage) Create(listener trackhaus.Listener) (trackhaus.ListenerID, error) {
	const op errors.Op = "sqldb/ListenerStorage.Create"
	handle, deferFn := ls.handle.span(op)
	defer deferFn()

	if listener.Email == "" || listener.PasswordHash == "" || listener.APIKey == "" {
		return 0, errors.E(op, errors.InvalidArgument, errors.Info("listener is missing email, password or api key"))
	}
	if listener.CreatedAt.IsZero() {
		listener.CreatedAt = time.Now()
	}

	id, err := namedExecLastInsertId(handle, listenerCreateQuery, listenerRow{
		Email:        listener.Email,
		PasswordHash: listener.PasswordHash,
		APIKey:       listener.APIKey,
		Active:       listener.Active,
		CreatedAt:    listener.CreatedAt.UTC(),
	})
	if err != nil {
		if handle.dialect.uniqueViolation(err) {
			return 0, errors.E(op, errors.ListenerExists, err, errors.Info(listener.Email))
		}
		return 0, errors.E(op, handle.classify(err))
	}
	return trackhaus.ListenerID(id), nil
}

const listenerSelect = `
SELECT
	id,
	email,
	password_hash,
	api_key,
	active,
	created_at,
	last_login_at
FROM
	listeners
`

// get runs the query given that is expected to return exactly one listener
func (ls ListenerStorage) get(op errors.Op, query string, arg any) (*trackhaus.Listener, error) {
	handle, deferFn := ls.handle.span(op)
	defer deferFn()

	var row listenerRow
	err := sqlx.Get(handle, &row, query, arg)
	if err != nil {
		if errors.IsE(err, sql.ErrNoRows) {
			return nil, errors.E(op, errors.ListenerUnknown, err)
		}
		return nil, errors.E(op, handle.classify(err))
	}
	return row.Listener(), nil
}

const listenerGetQuery = listenerSelect + `
WHERE
	id=?;
`

// Get implements trackhaus.ListenerStorage
func (ls ListenerStorage) Get(id trackhaus.ListenerID) (*trackhaus.Listener, error) {
	const op errors.Op = "sqldb/ListenerStorage.Get"

	listener, err := ls.get(op, listenerGetQuery, id)
	if err != nil {
		return nil, errors.E(op, err, id)
	}
	return listener, nil
}

const listenerByEmailQuery = listenerSelect + `
WHERE
	email=?;
`

// ByEmail implements trackhaus.ListenerStorage
func (ls ListenerStorage) ByEmail(email string) (*trackhaus.Listener, error) {
	const op errors.Op = "sqldb/ListenerStorage.ByEmail"

	return ls.get(op, listenerByEmailQuery, email)
}

const listenerByAPIKeyQuery = listenerSelect + `
WHERE
	api_key=?;
`

// ByAPIKey implements trackhaus.ListenerStorage
func (ls ListenerStorage) ByAPIKey(key string) (*trackhaus.Listener, error) {
	const op errors.Op = "sqldb/ListenerStorage.ByAPIKey"

	if key == "" {
		return nil, errors.E(op, errors.ListenerUnknown)
	}
	return ls.get(op, listenerByAPIKeyQuery, key)
}

const listenerUpdateLastLoginQuery = `
UPDATE
	listeners
SET
	last_login_at=?
WHERE
	id=?;
`

// UpdateLastLogin implements trackhaus.ListenerStorage
func (ls ListenerStorage) UpdateLastLogin(id trackhaus.ListenerID, t time.Time) error {
	const op errors.Op = "sqldb/ListenerStorage.UpdateLastLogin"
	handle, deferFn := ls.handle.span(op)
	defer deferFn()

	res, err := handle.Exec(listenerUpdateLastLoginQuery, t.UTC(), id)
	if err != nil {
		return errors.E(op, handle.classify(err), id)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.E(op, err, id)
	}
	if n == 0 {
		return errors.E(op, errors.ListenerUnknown, id)
	}
	return nil
}
