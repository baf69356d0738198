package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/hexplay/internal/dbx"
	"github.com/dmitrijs2005/hexplay/internal/server/migrations"
	"github.com/dmitrijs2005/hexplay/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories over a
// shared connection pool.
type PostgresRepositoryManager struct {
	db *sqlx.DB
}

// OpenPostgres opens a pgx-backed pool for dsn and verifies it is reachable.
func OpenPostgres(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", dbx.Classify(err))
	}
	return db, nil
}

func NewPostgresRepositoryManager(db *sqlx.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return users.NewPostgresRepository(m.db)
}

// InTx classifies driver errors from begin and commit. Errors returned by fn
// are passed back untouched.
func (m *PostgresRepositoryManager) InTx(ctx context.Context, fn TxFunc) error {
	return m.runTx(ctx, nil, fn)
}

// readOnlyTxOptions gives a read-only scope one snapshot for all its statements.
var readOnlyTxOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

func (m *PostgresRepositoryManager) InReadTx(ctx context.Context, fn TxFunc) error {
	return m.runTx(ctx, readOnlyTxOptions, fn)
}

func (m *PostgresRepositoryManager) runTx(ctx context.Context, opts *sql.TxOptions, fn TxFunc) error {
	var fnErr error
	err := dbx.WithTx(ctx, m.db, opts, func(ctx context.Context, tx dbx.DBTX) error {
		fnErr = fn(ctx, users.NewPostgresRepository(tx))
		return fnErr
	})
	if err != nil && fnErr == nil {
		return dbx.Classify(err)
	}
	return err
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and applies them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db.DB, ".")
}

func (m *PostgresRepositoryManager) Ping(ctx context.Context) error {
	return dbx.Classify(m.db.PingContext(ctx))
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
