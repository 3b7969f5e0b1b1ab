package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"net/url"

	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	pgxvector "github.com/pgvector/pgvector-go/pgx"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// InitDB opens the route store, applies the embedded migrations and registers the
// instrumented *sql.DB in the dependency container.
type InitDB struct {
	Logger   *log.Logger `resolve:""`
	DBUser   string      `config:"DB_USER"`
	DBPass   string      `config:"DB_PASS"`
	DBHost   string      `config:"DB_HOST"`
	DBPort   string      `config:"DB_PORT" default:"5432"`
	DBName   string      `config:"DB_NAME"`
	SSLMode  string      `config:"DB_SSL_MODE" default:"disable"`
	MaxConns int         `config:"DB_MAX_CONNS" default:"10"`

	db                 *sql.DB
	metricRegistration metric.Registration
	skipMigration      bool
}

// dsn builds the connection URL. Credentials are escaped, so passwords coming from
// Vault may contain any character.
func (di *InitDB) dsn() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(di.DBUser, di.DBPass),
		Host:   fmt.Sprintf("%s:%s", di.DBHost, di.DBPort),
		Path:   di.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", di.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	cfg, err := pgxpool.ParseConfig(di.dsn())
	if err != nil {
		return ctx, fmt.Errorf("invalid database settings: %w", err)
	}
	if di.MaxConns > 0 {
		cfg.MaxConns = int32(di.MaxConns)
	}
	// Route embeddings are stored as pgvector values.
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvector.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return ctx, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	dbAttributes := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(di.DBName),
	)
	di.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		dbAttributes,
		otelsql.WithInstrumentAttributesGetter(queryAttributes(di.Logger)),
	)

	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(di.db, dbAttributes)
	if err != nil {
		return ctx, fmt.Errorf("failed to register db stats metrics: %w", err)
	}

	if !di.skipMigration {
		if err := di.migrate(); err != nil {
			return ctx, err
		}
	}

	depend.Register(di.db)
	return ctx, nil
}

func (di *InitDB) migrate() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}
	driver, err := postgres.WithInstance(di.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		di.Logger.Println("InitDB: route store schema is up to date")
	case err != nil:
		return fmt.Errorf("failed to apply migrations: %w", err)
	default:
		version, _, _ := m.Version()
		di.Logger.Printf("InitDB: route store schema migrated to version %d", version)
	}
	return nil
}

// Close releases the connection pool and the db stats callback.
func (di *InitDB) Close() {
	if di.db == nil {
		return
	}
	if err := di.db.Close(); err != nil {
		di.Logger.Printf("InitDB: failed to close database connection: %v", err)
	}
	if di.metricRegistration == nil {
		return
	}
	if err := di.metricRegistration.Unregister(); err != nil {
		di.Logger.Printf("InitDB: failed to unregister db stats metrics: %v", err)
	}
}
