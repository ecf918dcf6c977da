package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/employee-api/internal/domain"
	"github.com/jhoicas/employee-api/internal/domain/entity"
	"github.com/jhoicas/employee-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, role, email, experience, deletion_date, is_active`

const (
	deleteEmployeeSQL = `DELETE FROM employees WHERE id = $1`

	insertEmployeeSQL = `
		INSERT INTO employees (id, role, email, experience, deletion_date, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING ` + employeeColumns

	getActiveEmployeeSQL = `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND is_active
		LIMIT 1`

	listActiveEmployeesSQL = `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_active
		ORDER BY id ASC
		LIMIT $1 OFFSET $2`

	updateEmployeeSQL = `
		UPDATE employees
		SET role = $2, email = $3, experience = $4, deletion_date = $5
		WHERE id = $1 AND is_active
		RETURNING ` + employeeColumns

	deactivateEmployeeSQL = `UPDATE employees SET is_active = FALSE WHERE id = $1 AND is_active`
)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db DB
	tx *TxRunner
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db DB) *EmployeeRepo {
	return &EmployeeRepo{db: db, tx: NewTxRunner(db)}
}

// Replace borra el registro previo con el mismo ID e inserta el nuevo en una sola transacción.
// Dos Replace concurrentes con el mismo ID pueden chocar en la PK: el perdedor recibe domain.ErrConflict.
func (r *EmployeeRepo) Replace(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	var created *entity.Employee
	err := r.tx.Run(ctx, func(q Queryer) error {
		if _, err := q.Exec(ctx, deleteEmployeeSQL, employee.ID); err != nil {
			return fmt.Errorf("delete employee: %w", err)
		}
		row := q.QueryRow(ctx, insertEmployeeSQL,
			employee.ID, employee.Role, employee.Email, employee.Experience, employee.DeletionDate,
		)
		e, err := scanEmployee(row)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrConflict
			}
			return fmt.Errorf("insert employee: %w", err)
		}
		created = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetActiveByID obtiene un empleado activo por ID.
func (r *EmployeeRepo) GetActiveByID(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, getActiveEmployeeSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// ListActive lista empleados activos ordenados por ID.
func (r *EmployeeRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	rows, err := r.db.Query(ctx, listActiveEmployeesSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update sobrescribe los campos editables de un empleado activo.
func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	row := r.db.QueryRow(ctx, updateEmployeeSQL,
		employee.ID, employee.Role, employee.Email, employee.Experience, employee.DeletionDate,
	)
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return e, nil
}

// Deactivate marca el empleado como inactivo (borrado lógico).
func (r *EmployeeRepo) Deactivate(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, deactivateEmployeeSQL, id)
	if err != nil {
		return fmt.Errorf("deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	if err := row.Scan(&e.ID, &e.Role, &e.Email, &e.Experience, &e.DeletionDate, &e.IsActive); err != nil {
		return nil, err
	}
	return &e, nil
}
