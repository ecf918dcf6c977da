package employee_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/employee-api/internal/domain"
	"github.com/jhoicas/employee-api/internal/domain/employee"
)

func TestValidateID(t *testing.T) {
	valid := []string{"1234-567890", "0000-000000"}
	for _, id := range valid {
		got, err := employee.ValidateID(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, got)
	}

	invalid := []string{"", "1234567890", "123-4567890", "12345-67890", "abcd-efghij", "1234-5678901", " 1234-567890", "1234-567890\n"}
	for _, id := range invalid {
		_, err := employee.ValidateID(id)
		assert.ErrorIs(t, err, employee.ErrInvalidID, "id %q", id)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "id %q debe envolver ErrInvalidInput", id)
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last@mail-server.co.uk", "a_b-c@d.e"}
	for _, email := range valid {
		got, err := employee.ValidateEmail(email)
		require.NoError(t, err, email)
		assert.Equal(t, email, got)
	}

	invalid := []string{"", "plain", "user@", "@example.com", "user@example", "user@@example.com", "user@example.com trailing"}
	for _, email := range invalid {
		_, err := employee.ValidateEmail(email)
		assert.ErrorIs(t, err, employee.ErrInvalidEmail, "email %q", email)
	}
}

func TestValidateRole_SoloRolesPermitidos(t *testing.T) {
	for _, role := range employee.Roles() {
		got, err := employee.ValidateRole(role)
		require.NoError(t, err)
		assert.Equal(t, role, got)
	}

	// Antes cualquier valor distinto de Админ pasaba por la disyunción rota.
	invalid := []string{"", "admin", "Админы", "Работник Админ", "Manager"}
	for _, role := range invalid {
		_, err := employee.ValidateRole(role)
		assert.ErrorIs(t, err, employee.ErrInvalidRole, "role %q", role)
	}
}

func TestValidateRole_NoRecortaEspacios(t *testing.T) {
	_, err := employee.ValidateRole(" " + employee.RoleAdmin)
	assert.ErrorIs(t, err, employee.ErrInvalidRole)
}

func TestValidatePage(t *testing.T) {
	offset, err := employee.ValidatePage(1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, offset)

	offset, err = employee.ValidatePage(3, 25)
	require.NoError(t, err)
	assert.Equal(t, 50, offset)

	for _, tc := range [][2]int{{0, 10}, {-1, 10}, {1, 0}, {1, -5}, {1, employee.MaxPageSize + 1}} {
		_, err := employee.ValidatePage(tc[0], tc[1])
		assert.ErrorIs(t, err, employee.ErrInvalidPage, "page=%d size=%d", tc[0], tc[1])
	}
}

func TestValidatePage_OffsetDesbordado(t *testing.T) {
	for _, tc := range [][2]int{{math.MaxInt, employee.MaxPageSize}, {math.MaxInt/10 + 2, employee.MaxPageSize}, {math.MaxInt, 2}} {
		offset, err := employee.ValidatePage(tc[0], tc[1])
		assert.ErrorIs(t, err, employee.ErrPageOutOfRange, "page=%d size=%d", tc[0], tc[1])
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Zero(t, offset)
	}

	// último offset representable
	offset, err := employee.ValidatePage(math.MaxInt/employee.MaxPageSize+1, employee.MaxPageSize)
	require.NoError(t, err)
	assert.Positive(t, offset)

	offset, err = employee.ValidatePage(math.MaxInt, 1)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt-1, offset)
}
