package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/extra/bundebug"

	_ "modernc.org/sqlite"
)

type Config struct {
	Path  string
	Debug bool
}

// Database is the single handle every store embeds.
type Database struct {
	*bun.DB
	Log *log.Logger
}

// New opens the database file at cfg.Path with foreign keys enforced.
// Plain paths and "file:" URIs are both accepted.
func New(cfg Config, lg *log.Logger) (*Database, error) {
	if cfg.Path == "" {
		return nil, errors.New("missing database path")
	}
	if lg == nil {
		lg = log.New(os.Stderr, "ERP : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	}

	sqldb, err := sql.Open("sqlite", DSN(cfg.Path))
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	// sqlite has a single writer.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	} else {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.FromEnv("BUNDEBUG")))
	}

	if err = db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "connecting database")
	}

	return &Database{DB: db, Log: lg}, nil
}

// DSN appends the pragmas the stores rely on to path.
func DSN(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// DeleteRow removes rows of table where column equals key. Deleting a
// missing row is not an error.
func (d Database) DeleteRow(ctx context.Context, table, column string, key any) error {
	_, err := d.NewDelete().
		Table(table).
		Where("? = ?", bun.Ident(column), key).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("deleting %s", table))
	}

	return nil
}

// Logf writes a storage failure with the operation name and key.
func (d Database) Logf(op string, key any, err error) {
	d.Log.Printf("%s [%v]: %v", op, key, err)
}
