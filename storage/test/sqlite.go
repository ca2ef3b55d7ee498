package storagetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/migrations"
	"github.com/trackhaus/trackhaus/storage"
	_ "github.com/trackhaus/trackhaus/storage/sqlite"
)

// SQLiteConfig returns a configuration using a fresh sqlite database inside
// of dir
func SQLiteConfig(dir, name string) config.Config {
	cfg := config.TestConfig()
	c := cfg.Conf()
	c.Providers.Storage = "sqlite"
	c.Database.DSN = filepath.Join(dir, name+".db")
	cfg.StoreConf(c)
	return cfg
}

// OpenSQLite creates a migrated sqlite database and opens a storage for it
func OpenSQLite(ctx context.Context, cfg config.Config) (trackhaus.StorageService, error) {
	m, err := migrations.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	err = m.Up()
	m.Close()
	if err != nil && err != migrate.ErrNoChange {
		return nil, err
	}

	return storage.Open(ctx, cfg)
}

// SQLite returns a storage backed by a migrated sqlite database in a
// temporary directory, it is closed when the test ends
func SQLite(t testing.TB) trackhaus.StorageService {
	t.Helper()

	ctx := context.Background()
	s, err := OpenSQLite(ctx, SQLiteConfig(t.TempDir(), "test"))
	if err != nil {
		t.Fatal("failed to open sqlite storage:", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// SQLiteSetup implements TestSetup with a sqlite database per test
type SQLiteSetup struct {
	dir string
}

func (setup *SQLiteSetup) Setup(ctx context.Context) error {
	setup.dir = CtxT(ctx).TempDir()
	return nil
}

func (setup *SQLiteSetup) CreateStorage(ctx context.Context, name string) (trackhaus.StorageService, error) {
	return OpenSQLite(ctx, SQLiteConfig(setup.dir, name))
}

func (setup *SQLiteSetup) TearDown(ctx context.Context) error {
	return nil
}
