package repository

import (
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/videohub/videohub/internal/app/config"
	"github.com/videohub/videohub/migrations"
)

type DBStorage struct {
	DBConn *sqlx.DB
}

func NewDBStorage(cfg config.AppConfig) *DBStorage {
	db := Open(cfg.DatabaseDSN)
	err := MigrateFS(db, migrations.FS, ".")
	if err != nil {
		panic(err)
	}

	return &DBStorage{DBConn: db}
}

// Open connects through the pgx stdlib driver so that driver errors surface
// as *pgconn.PgError, which the repositories match on for unique violations.
func Open(dsn string) *sqlx.DB {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		panic(fmt.Errorf("open database: %w", err))
	}
	if err := db.Ping(); err != nil {
		panic(fmt.Errorf("ping database: %w", err))
	}
	return db
}

func MigrateFS(db *sqlx.DB, fsys fs.FS, dir string) error {
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.Up(db.DB, dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
