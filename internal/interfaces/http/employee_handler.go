package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/employee-api/internal/application/dto"
	"github.com/jhoicas/employee-api/internal/application/validation"
	"github.com/jhoicas/employee-api/internal/domain/employee"
	"github.com/jhoicas/employee-api/pkg/logger"
)

// EmployeeService operaciones que el handler necesita; la implementa *usecase.EmployeeUseCase.
type EmployeeService interface {
	Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	List(ctx context.Context, currentPage, pageSize int) (*dto.EmployeeListResponse, error)
	Update(ctx context.Context, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeHandler maneja las peticiones HTTP de /employee.
type EmployeeHandler struct {
	svc EmployeeService
	log *logger.Logger
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(svc EmployeeService, log *logger.Logger) *EmployeeHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &EmployeeHandler{svc: svc, log: log}
}

// GetByID godoc
// @Summary      Obtener empleado activo por ID
// @Tags         employee
// @Produce      json
// @Param        id   path  string  true  "Pasaporte: 4 dígitos, guion, 6 dígitos"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employee/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empleados activos
// @Tags         employee
// @Produce      json
// @Param        current_page  query  int  false  "Página (desde 1)"  default(1)
// @Param        page_size     query  int  false  "Tamaño de página"  default(10)  maximum(100)
// @Success      200  {object}  dto.EmployeeListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employee [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{CurrentPage: employee.DefaultPage, PageSize: employee.DefaultPageSize}
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "current_page y page_size deben ser enteros"})
	}
	if err := validation.Struct(page); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.svc.List(c.UserContext(), page.CurrentPage, page.PageSize)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear o reemplazar empleado
// @Description  Si ya existe un registro con el mismo ID (activo o no) se reemplaza por completo.
// @Tags         employee
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /employee [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar empleado
// @Description  Solo se sobrescriben los campos no vacíos; experience = 0 no modifica el valor.
// @Tags         employee
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateEmployeeRequest  true  "ID y campos a modificar"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /employee [put]
// @Router       /employee [patch]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.svc.Update(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrado lógico de empleado
// @Tags         employee
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Pasaporte"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employee/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "empleado eliminado correctamente"})
}
