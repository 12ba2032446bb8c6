package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"fmt"
	"log"
	"strings"

	"github.com/DataDog/go-sqllexer"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/symbiont/config"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// BackendName is the TODO_STORE value that selects this adapter.
const BackendName = "postgres"

// InitDB opens the Postgres connection, runs migrations, and registers the
// *sql.DB together with the transactional domain.UnitOfWork and the domain.TodoRepository.
// It does nothing unless TODO_STORE is "postgres".
type InitDB struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	skipMigration      bool
	Logger             *log.Logger `resolve:""`
	Backend            string      `config:"TODO_STORE" default:"memory"`
	ViewerName         string      `config:"VIEWER_NAME" default:"Anonymous"`
}

// dbConfig is loaded only when Postgres is selected, so the keys without
// defaults are not required by the memory backend.
type dbConfig struct {
	DBUser string `config:"DB_USER"`
	DBPass string `config:"DB_PASS"`
	DBHost string `config:"DB_HOST"`
	DBPort string `config:"DB_PORT" default:"5432"`
	DBName string `config:"DB_NAME"`
}

// DSN returns the pgx connection string.
func (c dbConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// Initialize sets up the database connection and runs migrations.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	if di.Backend != BackendName {
		return ctx, nil
	}

	var dbCfg dbConfig
	if err := config.LoadStruct(ctx, &dbCfg); err != nil {
		return ctx, err
	}

	cfg, err := pgxpool.ParseConfig(dbCfg.DSN())
	if err != nil {
		return ctx, fmt.Errorf("create connection pool: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return ctx, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	dbSystemAttributes := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(dbCfg.DBName),
	)

	di.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		dbSystemAttributes,
		otelsql.WithInstrumentAttributesGetter(withQueryAttributes),
	)

	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(
		di.db,
		dbSystemAttributes,
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to register db stats metrics: %w", err)
	}

	if !di.skipMigration {
		if err := di.runMigrations(); err != nil {
			return ctx, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	uow := NewUnitOfWork(di.db, domain.User{ID: domain.ViewerID, Name: di.ViewerName}, di.Logger)
	depend.Register(di.db)
	depend.Register[domain.UnitOfWork](uow)
	depend.Register[domain.TodoRepository](uow.Todo())

	return ctx, nil
}

func (di *InitDB) runMigrations() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(di.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	di.Logger.Println("InitDB: migrations applied successfully")
	return nil
}

// Close releases the connection pool and the metric registration.
func (di *InitDB) Close() {
	if di.db == nil {
		return
	}
	if err := di.db.Close(); err != nil {
		di.Logger.Printf("InitDB: failed to close database connection: %v", err)
	}
	if di.metricRegistration != nil {
		if err := di.metricRegistration.Unregister(); err != nil {
			di.Logger.Printf("InitDB: failed to unregister metric registration: %v", err)
		}
	}
}

func withQueryAttributes(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
	if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
		return nil
	}
	operations, tables := extractSQLOperation(query)
	return []attribute.KeyValue{
		semconv.DBQuerySummary(fmt.Sprintf("%s %s", strings.Join(operations, ","), tables)),
		semconv.DBCollectionName(tables),
	}
}

// extractSQLOperation returns the SQL commands and the tables a query touches.
func extractSQLOperation(query string) ([]string, string) {
	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)

	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		return []string{"unknown"}, "unknown"
	}

	operations := []string{"unknown"}
	if len(meta.Commands) > 0 {
		operations = meta.Commands
	}

	tables := "unknown"
	if len(meta.Tables) > 0 {
		tables = strings.Join(meta.Tables, ",")
	}

	return operations, tables
}
