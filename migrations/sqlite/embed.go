package sqlite

import (
	"context"
	"embed"

	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/storage/sqlite"
)

//go:embed *.sql
var FS embed.FS

func New(ctx context.Context, cfg config.Config) (source.Driver, database.Driver, error) {
	sd, err := iofs.New(FS, ".")
	if err != nil {
		return nil, nil, err
	}
	db, err := sqlite.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	dd, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return sd, dd, nil
}
