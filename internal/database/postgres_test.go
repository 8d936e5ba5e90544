package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr, downErr error }

func (f fakeMigrator) Up() error   { return f.upErr }
func (f fakeMigrator) Down() error { return f.downErr }

func restore() {
	pgxpoolNew = pgxpool.New
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func TestNewPgxPool(t *testing.T) {
	t.Cleanup(restore)
	pgxpoolNew = func(ctx context.Context, url string) (*pgxpool.Pool, error) { return nil, errors.New("bad") }
	_, err := NewPgxPool(context.Background(), "url")
	require.ErrorContains(t, err, "NewPgxPool")

	pgxpoolNew = func(ctx context.Context, url string) (*pgxpool.Pool, error) { return &pgxpool.Pool{}, nil }
	db, err := NewPgxPool(context.Background(), "url")
	require.NoError(t, err)
	require.NotNil(t, db)
}

func okMigrator(m migrateInstance) {
	sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) { return m, nil }
}

func TestNewMigratorErrors(t *testing.T) {
	steps := map[string]func(){
		"open": func() {
			sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
		},
		"driver": func() {
			postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
		},
		"source": func() {
			iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("src") }
		},
		"migrate": func() {
			migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
				return nil, errors.New("mig")
			}
		},
	}
	for name, breakStep := range steps {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(restore)
			okMigrator(fakeMigrator{})
			breakStep()

			err := RunMigrations("url")
			require.ErrorContains(t, err, "RunMigrations")
			err = RollbackAll("url")
			require.ErrorContains(t, err, "RollbackAll")
		})
	}
}

func TestRunMigrations(t *testing.T) {
	t.Cleanup(restore)

	okMigrator(fakeMigrator{})
	require.NoError(t, RunMigrations("url"))

	okMigrator(fakeMigrator{upErr: migrate.ErrNoChange})
	require.NoError(t, RunMigrations("url"))

	okMigrator(fakeMigrator{upErr: errors.New("dirty")})
	require.ErrorContains(t, RunMigrations("url"), "dirty")
}

func TestRollbackAll(t *testing.T) {
	t.Cleanup(restore)

	okMigrator(fakeMigrator{})
	require.NoError(t, RollbackAll("url"))

	okMigrator(fakeMigrator{downErr: migrate.ErrNoChange})
	require.NoError(t, RollbackAll("url"))

	okMigrator(fakeMigrator{downErr: errors.New("d")})
	require.ErrorContains(t, RollbackAll("url"), "d")
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Contains(t, names, "0001_create_users.up.sql")
	require.Contains(t, names, "0002_create_microposts.up.sql")
	require.Contains(t, names, "0003_create_relationships.up.sql")

	up, err := migrationsFS.ReadFile("migrations/0003_create_relationships.up.sql")
	require.NoError(t, err)
	require.Contains(t, string(up), "relationships_follower_followed_key")
	require.Contains(t, string(up), "ON DELETE CASCADE")
}
