// Package employee contiene las reglas de validación del registro de empleado.
// Son funciones puras: no dependen de la persistencia ni del transporte HTTP.
package employee

import (
	"fmt"
	"math"
	"regexp"
	"slices"

	"github.com/jhoicas/employee-api/internal/domain"
)

// Roles aceptados.
const (
	RoleAdmin  = "Админ"
	RoleWorker = "Работник"
)

// Errores de validación; todos envuelven domain.ErrInvalidInput.
var (
	ErrInvalidID    = fmt.Errorf("%w: formato de ID de pasaporte inválido", domain.ErrInvalidInput)
	ErrInvalidRole  = fmt.Errorf("%w: rol inválido, elija <%s> o <%s>", domain.ErrInvalidInput, RoleAdmin, RoleWorker)
	ErrInvalidEmail = fmt.Errorf("%w: formato de email inválido", domain.ErrInvalidInput)
)

var (
	passportIDPattern = regexp.MustCompile(`^\d{4}-\d{6}$`)
	emailPattern      = regexp.MustCompile(`^[\w.-]+@[\w-]+\.[\w.]+$`)
)

// Roles devuelve el conjunto de roles aceptados.
func Roles() []string {
	return []string{RoleAdmin, RoleWorker}
}

// ValidateID devuelve id sin cambios si cumple NNNN-NNNNNN.
func ValidateID(id string) (string, error) {
	if !passportIDPattern.MatchString(id) {
		return "", ErrInvalidID
	}
	return id, nil
}

// ValidateEmail devuelve email sin cambios si cumple local@dominio.tld.
func ValidateEmail(email string) (string, error) {
	if !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// ValidateRole exige igualdad exacta con uno de los roles aceptados.
func ValidateRole(role string) (string, error) {
	if !slices.Contains(Roles(), role) {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Límites de paginación.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ErrInvalidPage paginación fuera de rango.
var ErrInvalidPage = fmt.Errorf("%w: current_page debe ser >= 1 y page_size entre 1 y %d", domain.ErrInvalidInput, MaxPageSize)

// ErrPageOutOfRange la página pedida queda más allá de cualquier offset representable; siempre está vacía.
var ErrPageOutOfRange = fmt.Errorf("%w: página fuera de rango", domain.ErrNotFound)

// ValidateCurrentPage current_page >= 1.
func ValidateCurrentPage(currentPage int) error {
	if currentPage < DefaultPage {
		return ErrInvalidPage
	}
	return nil
}

// ValidatePageSize 1 <= page_size <= MaxPageSize.
func ValidatePageSize(pageSize int) error {
	if pageSize < 1 || pageSize > MaxPageSize {
		return ErrInvalidPage
	}
	return nil
}

// ValidatePage valida la página solicitada y devuelve el offset correspondiente.
// Si el offset no cabe en int devuelve ErrPageOutOfRange.
func ValidatePage(currentPage, pageSize int) (offset int, err error) {
	if err := ValidateCurrentPage(currentPage); err != nil {
		return 0, err
	}
	if err := ValidatePageSize(pageSize); err != nil {
		return 0, err
	}
	if currentPage-1 > math.MaxInt/pageSize {
		return 0, ErrPageOutOfRange
	}
	return (currentPage - 1) * pageSize, nil
}
