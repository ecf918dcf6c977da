package postgres

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/employee-api/migrations"
)

type fakeMigrator struct {
	upErr, downErr, dropErr error
	version                 uint
	dirty                   bool
	versionErr              error
	calls                   []string
}

func (f *fakeMigrator) Up() error   { f.calls = append(f.calls, "up"); return f.upErr }
func (f *fakeMigrator) Down() error { f.calls = append(f.calls, "down"); return f.downErr }
func (f *fakeMigrator) Drop() error { f.calls = append(f.calls, "drop"); return f.dropErr }
func (f *fakeMigrator) Version() (uint, bool, error) {
	f.calls = append(f.calls, "version")
	return f.version, f.dirty, f.versionErr
}

func TestRunMigration_Up(t *testing.T) {
	m := &fakeMigrator{version: 2}
	status, err := runMigration(m, MigrateUp)
	require.NoError(t, err)
	assert.Equal(t, MigrationStatus{Version: 2, Applied: true}, status)
	assert.Equal(t, []string{"up", "version"}, m.calls)
}

func TestRunMigration_UpSinCambios(t *testing.T) {
	m := &fakeMigrator{upErr: migrate.ErrNoChange, version: 2}
	status, err := runMigration(m, MigrateUp)
	require.NoError(t, err)
	assert.False(t, status.Applied)
	assert.EqualValues(t, 2, status.Version)
}

func TestRunMigration_Errores(t *testing.T) {
	boom := errors.New("boom")

	_, err := runMigration(&fakeMigrator{upErr: boom}, MigrateUp)
	assert.ErrorIs(t, err, boom)

	_, err = runMigration(&fakeMigrator{}, "sideways")
	assert.Error(t, err)
}

func TestRunMigration_VersionSinAplicar(t *testing.T) {
	m := &fakeMigrator{versionErr: migrate.ErrNilVersion}
	status, err := runMigration(m, MigrateVersion)
	require.NoError(t, err)
	assert.Equal(t, MigrationStatus{}, status)
}

func TestMigracionesEmbebidas(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "000001_create_employees.up.sql")
	assert.Contains(t, files, "000001_create_employees.down.sql")
	assert.Zero(t, len(files)%2, "cada migración up necesita su down")
}
