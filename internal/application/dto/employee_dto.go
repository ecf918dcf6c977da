package dto

// CreateEmployeeRequest entrada para crear (o reemplazar) un empleado.
type CreateEmployeeRequest struct {
	ID           string `json:"id" validate:"passport_id"`
	Role         string `json:"role" validate:"employee_role"`
	Email        string `json:"email" validate:"employee_email"`
	Experience   int    `json:"experience" validate:"min=0"`
	DeletionDate string `json:"deletion_date"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado por ID.
// Los campos vacíos (o experience = 0) no modifican el valor almacenado.
type UpdateEmployeeRequest struct {
	ID           string `json:"id" validate:"passport_id"`
	Role         string `json:"role" validate:"omitempty,employee_role"`
	Email        string `json:"email" validate:"omitempty,employee_email"`
	Experience   int    `json:"experience" validate:"min=0"`
	DeletionDate string `json:"deletion_date"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID           string `json:"id"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	Experience   int    `json:"experience"`
	DeletionDate string `json:"deletion_date"`
	IsActive     bool   `json:"is_active"`
}

// EmployeeListResponse página de empleados activos.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
