package repository

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/xo/dburl"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open parses databaseURL, connects with the matching GORM dialector and
// verifies the connection. Supported schemes: sqlite (sqlite:path/to/file.sqlite),
// mysql and postgres.
func Open(ctx context.Context, databaseURL string, opts ...Option) (*GormStore, error) {
	dialector, err := dialectorFor(databaseURL)
	if err != nil {
		return nil, err
	}
	if dialector.Name() == "sqlite" {
		// sqlite would otherwise create an empty database on a typo.
		path := sqlitePath(databaseURL)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("sqlite database %s: %w", path, err)
		}
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return New(db, opts...), nil
}

// dialectorFor maps a database URL onto a GORM dialector.
func dialectorFor(databaseURL string) (gorm.Dialector, error) {
	u, err := dburl.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedURL, err)
	}
	switch u.UnaliasedDriver {
	case "sqlite3", "moderncsqlite":
		return sqlite.Open(u.DSN), nil
	case "mysql":
		return mysql.Open(u.DSN), nil
	case "postgres", "pgx":
		return postgres.Open(u.DSN), nil
	}
	return nil, fmt.Errorf("%w: driver %s", ErrUnsupportedURL, u.UnaliasedDriver)
}

func sqlitePath(databaseURL string) string {
	u, err := dburl.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	path, _, _ := strings.Cut(u.DSN, "?")
	return path
}
