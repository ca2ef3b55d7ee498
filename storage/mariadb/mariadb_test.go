package mariadb_test

import (
	"context"
	"os"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmariadb "github.com/testcontainers/testcontainers-go/modules/mariadb"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/migrations"
	"github.com/trackhaus/trackhaus/storage"
	"github.com/trackhaus/trackhaus/storage/mariadb"
	"github.com/trackhaus/trackhaus/storage/sqldb"
	storagetest "github.com/trackhaus/trackhaus/storage/test"
)

type MariaDBSetup struct {
	container *tcmariadb.MariaDBContainer
	db        *sqlx.DB
}

func (setup *MariaDBSetup) Setup(ctx context.Context) error {
	testcontainers.Logger = testcontainers.TestLogger(storagetest.CtxT(ctx))

	// setup a container to test in
	container, err := tcmariadb.Run(ctx, "mariadb:11",
		tcmariadb.WithUsername("root"),
		tcmariadb.WithPassword(""),
	)
	if err != nil {
		return err
	}
	setup.container = container

	dsn, err := container.ConnectionString(ctx)
	if err != nil {
		return err
	}
	setup.db, err = sqlx.ConnectContext(ctx, "mysql", dsn)
	return err
}

func (setup *MariaDBSetup) TearDown(ctx context.Context) error {
	if setup.db != nil {
		setup.db.Close()
	}
	return setup.container.Terminate(ctx)
}

func (setup *MariaDBSetup) CreateStorage(ctx context.Context, name string) (trackhaus.StorageService, error) {
	// database names are limited to 64 characters
	if len(name) > 64 {
		name = name[len(name)-64:]
	}
	// create the database
	setup.db.MustExecContext(ctx, "CREATE DATABASE "+name+";")

	dsn, err := setup.container.ConnectionString(ctx)
	if err != nil {
		return nil, err
	}

	mycfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	mycfg.DBName = name

	// update our config to connect to the container
	cfg := config.TestConfig()
	bare := cfg.Conf()
	bare.Providers.Storage = "mariadb"
	bare.Database.DSN = mycfg.FormatDSN()
	cfg.StoreConf(bare)

	// run migrations
	migr, err := migrations.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	err = migr.Up()
	migr.Close()
	if err != nil {
		return nil, err
	}

	// then open a storage instance
	return storage.Open(ctx, cfg)
}

func TestMariaDBStorage(t *testing.T) {
	if testing.Short() || os.Getenv("TRACKHAUS_TEST_MARIADB") == "" {
		t.Skip("set TRACKHAUS_TEST_MARIADB to run the mariadb storage tests, requires docker")
	}
	storagetest.RunTests(t, new(MariaDBSetup))
}

func newTestStorage(t *testing.T) (*sqldb.StorageService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open stub database: %s", err)
	}
	t.Cleanup(func() { db.Close() })

	return sqldb.New(sqlx.NewDb(db, "mysql"), mariadb.Dialect), mock
}

func TestResolveArtistLostRace(t *testing.T) {
	s, mock := newTestStorage(t)
	cs := s.Catalog(context.Background())

	lookup := `SELECT\s+id\s+FROM\s+artists\s+WHERE\s+name=\?`
	mock.ExpectQuery(lookup).WithArgs("Radiohead").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`INSERT INTO artists`).
		WithArgs("Radiohead", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Radiohead'"})
	// the concurrent creator committed, so the second lookup finds it
	mock.ExpectQuery(lookup).WithArgs("Radiohead").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := cs.ResolveArtist(trackhaus.Artist{Name: "Radiohead"})
	require.NoError(t, err)
	assert.Equal(t, trackhaus.ArtistID(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveArtistInvisibleDuplicate(t *testing.T) {
	s, mock := newTestStorage(t)
	cs := s.Catalog(context.Background())

	lookup := `SELECT\s+id\s+FROM\s+artists\s+WHERE\s+name=\?`
	mock.ExpectQuery(lookup).WithArgs("Radiohead").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`INSERT INTO artists`).
		WillReturnError(&mysql.MySQLError{Number: 1062})
	mock.ExpectQuery(lookup).WithArgs("Radiohead").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := cs.ResolveArtist(trackhaus.Artist{Name: "Radiohead"})
	assert.True(t, errors.Is(errors.Conflict, err), "expected Conflict, got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveArtistDeadlock(t *testing.T) {
	s, mock := newTestStorage(t)
	cs := s.Catalog(context.Background())

	mock.ExpectQuery(`SELECT\s+id\s+FROM\s+artists`).
		WillReturnError(&mysql.MySQLError{Number: 1213})

	_, err := cs.ResolveArtist(trackhaus.Artist{Name: "Radiohead"})
	assert.True(t, errors.Is(errors.Conflict, err), "expected Conflict, got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveArtistUnavailable(t *testing.T) {
	s, mock := newTestStorage(t)
	cs := s.Catalog(context.Background())

	mock.ExpectQuery(`SELECT\s+id\s+FROM\s+artists`).
		WillReturnError(&mysql.MySQLError{Number: 2013})

	_, err := cs.ResolveArtist(trackhaus.Artist{Name: "Radiohead"})
	assert.True(t, errors.Is(errors.StorageUnavailable, err), "expected StorageUnavailable, got %v", err)
}

func TestDialect(t *testing.T) {
	d := mariadb.Dialect

	assert.True(t, d.IsUniqueViolation(&mysql.MySQLError{Number: 1062}))
	assert.False(t, d.IsUniqueViolation(&mysql.MySQLError{Number: 1213}))
	assert.False(t, d.IsUniqueViolation(errors.New("1062")))

	assert.True(t, d.IsRetryable(&mysql.MySQLError{Number: 1213}))
	assert.True(t, d.IsRetryable(&mysql.MySQLError{Number: 1205}))
	assert.False(t, d.IsRetryable(&mysql.MySQLError{Number: 1062}))

	assert.True(t, d.IsUnavailable(mysql.ErrInvalidConn))
	assert.True(t, d.IsUnavailable(&mysql.MySQLError{Number: 2006}))
	assert.False(t, d.IsUnavailable(&mysql.MySQLError{Number: 1062}))

	// wrapped errors are still recognized
	wrapped := errors.E(errors.Op("test"), &mysql.MySQLError{Number: 1062})
	assert.True(t, d.IsUniqueViolation(wrapped))
}
