package migrations

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/migrations/mysql"
	"github.com/trackhaus/trackhaus/migrations/sqlite"
)

// New returns a migrate instance for the configured storage provider, the
// caller should Close it when done
func New(ctx context.Context, cfg config.Config) (*migrate.Migrate, error) {
	const op errors.Op = "migrations.New"

	var err error
	var files source.Driver
	var driver database.Driver

	driverName := cfg.Conf().Providers.Storage
	switch driverName {
	case "mariadb":
		files, driver, err = mysql.New(ctx, cfg)
	case "sqlite":
		files, driver, err = sqlite.New(ctx, cfg)
	default:
		return nil, errors.E(op, errors.NoMigrations, errors.Info(driverName))
	}

	if err != nil {
		return nil, errors.E(op, err)
	}

	m, err := migrate.NewWithInstance(
		"embed", files,
		driverName, driver,
	)
	if err != nil {
		return nil, errors.E(op, err)
	}
	return m, nil
}

// FS returns the embedded migration files of the storage provider given
func FS(provider string) (fs.FS, bool) {
	switch provider {
	case "mariadb":
		return mysql.FS, true
	case "sqlite":
		return sqlite.FS, true
	}
	return nil, false
}

// Latest returns the newest migration version available for the provider given
func Latest(provider string) (uint, error) {
	const op errors.Op = "migrations.Latest"

	fsys, ok := FS(provider)
	if !ok {
		return 0, errors.E(op, errors.NoMigrations, errors.Info(provider))
	}

	files, err := iofs.New(fsys, ".")
	if err != nil {
		return 0, errors.E(op, err)
	}
	defer files.Close()

	version, err := files.First()
	if err != nil {
		return 0, errors.E(op, err)
	}

	for {
		next, err := files.Next(version)
		if errors.IsE(err, fs.ErrNotExist) {
			return version, nil
		}
		if err != nil {
			return 0, errors.E(op, err)
		}
		version = next
	}
}

// CheckVersion returns an error if the database is not migrated to the latest
// version available, or if a previous migration failed halfway
func CheckVersion(ctx context.Context, cfg config.Config) error {
	const op errors.Op = "migrations.CheckVersion"

	m, err := New(ctx, cfg)
	if err != nil {
		return errors.E(op, err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil {
		return errors.E(op, err)
	}
	if dirty {
		return errors.E(op, errors.Info(fmt.Sprintf("database is dirty at version %d", version)))
	}

	latest, err := Latest(cfg.Conf().Providers.Storage)
	if err != nil {
		return errors.E(op, err)
	}
	if version < latest {
		return errors.E(op, errors.Info(fmt.Sprintf("database is at version %d, latest is %d", version, latest)))
	}
	return nil
}
