package postgres

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jhoicas/employee-api/migrations"
)

// Acciones soportadas por Migrate.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateDrop    = "drop"
	MigrateVersion = "version"
)

// MigrationStatus estado del esquema tras ejecutar una acción.
type MigrationStatus struct {
	Version uint
	Dirty   bool
	Applied bool // false si no había cambios o no hay versión aplicada
}

// NewMigrator crea la instancia de golang-migrate. dir vacío usa las migraciones embebidas.
func NewMigrator(dsn, dir string) (*migrate.Migrate, error) {
	if dir == "" {
		src, err := iofs.New(migrations.FS, ".")
		if err != nil {
			return nil, fmt.Errorf("leer migraciones embebidas: %w", err)
		}
		m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
		if err != nil {
			return nil, fmt.Errorf("crear migrador: %w", err)
		}
		return m, nil
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolver ruta %s: %w", dir, err)
	}
	m, err := migrate.New("file://"+filepath.ToSlash(absDir), dsn)
	if err != nil {
		return nil, fmt.Errorf("crear migrador: %w", err)
	}
	return m, nil
}

// Migrate ejecuta action (up, down, drop, version) contra dsn.
func Migrate(action, dsn, dir string) (MigrationStatus, error) {
	m, err := NewMigrator(dsn, dir)
	if err != nil {
		return MigrationStatus{}, err
	}
	defer m.Close()
	return runMigration(m, action)
}

// migrator subconjunto de *migrate.Migrate usado aquí.
type migrator interface {
	Up() error
	Down() error
	Drop() error
	Version() (uint, bool, error)
}

func runMigration(m migrator, action string) (MigrationStatus, error) {
	var status MigrationStatus
	switch action {
	case MigrateUp:
		err := m.Up()
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return status, fmt.Errorf("migración up: %w", err)
		}
		status.Applied = err == nil
	case MigrateDown:
		err := m.Down()
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return status, fmt.Errorf("migración down: %w", err)
		}
		status.Applied = err == nil
		if status.Applied {
			return status, nil
		}
	case MigrateDrop:
		if err := m.Drop(); err != nil {
			return status, fmt.Errorf("migración drop: %w", err)
		}
		status.Applied = true
		return status, nil
	case MigrateVersion:
	default:
		return status, fmt.Errorf("acción no soportada %q", action)
	}

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return status, nil
		}
		return status, fmt.Errorf("leer versión: %w", err)
	}
	status.Version = version
	status.Dirty = dirty
	return status, nil
}
