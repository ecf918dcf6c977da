package repository

import (
	"context"

	"github.com/jhoicas/employee-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Las lecturas solo consideran registros activos.
type EmployeeRepository interface {
	// Replace borra cualquier registro con el mismo ID (activo o no) e inserta uno nuevo.
	Replace(ctx context.Context, employee *entity.Employee) (*entity.Employee, error)
	// GetActiveByID devuelve domain.ErrNotFound si no existe o está inactivo.
	GetActiveByID(ctx context.Context, id string) (*entity.Employee, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) (*entity.Employee, error)
	// Deactivate pone is_active = false; domain.ErrNotFound si no hay registro activo.
	Deactivate(ctx context.Context, id string) error
}
