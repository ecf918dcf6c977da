package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/employee-api/internal/domain"
	"github.com/jhoicas/employee-api/internal/domain/entity"
)

var employeeRowColumns = []string{"id", "role", "email", "experience", "deletion_date", "is_active"}

func newMockRepo(t *testing.T) (*EmployeeRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewEmployeeRepository(mock), mock
}

func sampleEmployee() *entity.Employee {
	return &entity.Employee{
		ID:           "1234-567890",
		Role:         "Админ",
		Email:        "admin@example.com",
		Experience:   5,
		DeletionDate: "2030-01-01",
		IsActive:     true,
	}
}

func TestEmployeeRepo_Replace(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	e := sampleEmployee()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeSQL)).
		WithArgs(e.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectQuery(regexp.QuoteMeta(insertEmployeeSQL)).
		WithArgs(e.ID, e.Role, e.Email, e.Experience, e.DeletionDate).
		WillReturnRows(pgxmock.NewRows(employeeRowColumns).
			AddRow(e.ID, e.Role, e.Email, e.Experience, e.DeletionDate, true))
	mock.ExpectCommit()

	created, err := repo.Replace(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, e, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_Replace_ConflictoHaceRollback(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	e := sampleEmployee()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeSQL)).
		WithArgs(e.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectQuery(regexp.QuoteMeta(insertEmployeeSQL)).
		WithArgs(e.ID, e.Role, e.Email, e.Experience, e.DeletionDate).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
	mock.ExpectRollback()

	_, err := repo.Replace(context.Background(), e)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_Replace_ErrorEnDelete(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	e := sampleEmployee()
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeSQL)).
		WithArgs(e.ID).
		WillReturnError(boom)
	mock.ExpectRollback()

	_, err := repo.Replace(context.Background(), e)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_GetActiveByID(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	e := sampleEmployee()

	mock.ExpectQuery(regexp.QuoteMeta(getActiveEmployeeSQL)).
		WithArgs(e.ID).
		WillReturnRows(pgxmock.NewRows(employeeRowColumns).
			AddRow(e.ID, e.Role, e.Email, e.Experience, e.DeletionDate, true))

	got, err := repo.GetActiveByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_GetActiveByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getActiveEmployeeSQL)).
		WithArgs("9999-999999").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetActiveByID(context.Background(), "9999-999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_ListActive(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listActiveEmployeesSQL)).
		WithArgs(2, 4).
		WillReturnRows(pgxmock.NewRows(employeeRowColumns).
			AddRow("0001-000001", "Админ", "a@example.com", 1, "", true).
			AddRow("0001-000002", "Работник", "b@example.com", 2, "", true))

	list, err := repo.ListActive(context.Background(), 2, 4)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "0001-000001", list[0].ID)
	assert.Equal(t, "Работник", list[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_ListActive_Vacio(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listActiveEmployeesSQL)).
		WithArgs(10, 0).
		WillReturnRows(pgxmock.NewRows(employeeRowColumns))

	list, err := repo.ListActive(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_Update(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	e := sampleEmployee()
	e.Experience = 9

	mock.ExpectQuery(regexp.QuoteMeta(updateEmployeeSQL)).
		WithArgs(e.ID, e.Role, e.Email, 9, e.DeletionDate).
		WillReturnRows(pgxmock.NewRows(employeeRowColumns).
			AddRow(e.ID, e.Role, e.Email, 9, e.DeletionDate, true))

	got, err := repo.Update(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Experience)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	e := sampleEmployee()

	mock.ExpectQuery(regexp.QuoteMeta(updateEmployeeSQL)).
		WithArgs(e.ID, e.Role, e.Email, e.Experience, e.DeletionDate).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), e)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_Deactivate(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deactivateEmployeeSQL)).
		WithArgs("1234-567890").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(deactivateEmployeeSQL)).
		WithArgs("1234-567890").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.Deactivate(context.Background(), "1234-567890"))
	assert.ErrorIs(t, repo.Deactivate(context.Background(), "1234-567890"), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(errors.Join(errors.New("wrap"), &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("23505")))
}
