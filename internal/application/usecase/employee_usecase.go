package usecase

import (
	"context"

	"github.com/jhoicas/employee-api/internal/application/dto"
	"github.com/jhoicas/employee-api/internal/application/validation"
	"github.com/jhoicas/employee-api/internal/domain"
	"github.com/jhoicas/employee-api/internal/domain/employee"
	"github.com/jhoicas/employee-api/internal/domain/entity"
	"github.com/jhoicas/employee-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados. Solo se exponen registros activos.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create valida la entrada y reemplaza por completo cualquier registro con el mismo ID.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	created, err := uc.repo.Replace(ctx, &entity.Employee{
		ID:           in.ID,
		Role:         in.Role,
		Email:        in.Email,
		Experience:   in.Experience,
		DeletionDate: in.DeletionDate,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(created), nil
}

// GetByID obtiene un empleado activo. Un ID mal formado nunca se almacena: ErrNotFound sin consultar.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	if _, err := employee.ValidateID(id); err != nil {
		return nil, domain.ErrNotFound
	}
	found, err := uc.repo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(found), nil
}

// List devuelve la página solicitada de empleados activos. Una página vacía es ErrNotFound.
func (uc *EmployeeUseCase) List(ctx context.Context, currentPage, pageSize int) (*dto.EmployeeListResponse, error) {
	offset, err := employee.ValidatePage(currentPage, pageSize)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListActive(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{CurrentPage: currentPage, PageSize: pageSize},
	}, nil
}

// Update sobrescribe solo los campos no vacíos; experience = 0 se interpreta como ausente.
func (uc *EmployeeUseCase) Update(ctx context.Context, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	current, err := uc.repo.GetActiveByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Role != "" {
		current.Role = in.Role
	}
	if in.Email != "" {
		current.Email = in.Email
	}
	if in.Experience != 0 {
		current.Experience = in.Experience
	}
	if in.DeletionDate != "" {
		current.DeletionDate = in.DeletionDate
	}
	updated, err := uc.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(updated), nil
}

// Delete realiza el borrado lógico (is_active = false).
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	if _, err := employee.ValidateID(id); err != nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(ctx, id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:           e.ID,
		Role:         e.Role,
		Email:        e.Email,
		Experience:   e.Experience,
		DeletionDate: e.DeletionDate,
		IsActive:     e.IsActive,
	}
}
