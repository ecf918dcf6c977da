// Package validation valida los DTO de entrada con go-playground/validator.
//
// Las reglas de dominio (ID de pasaporte, rol, email) se registran como tags
// propios para que los DTO las declaren en sus struct tags:
//
//	ID string `json:"id" validate:"passport_id"`
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/employee-api/internal/application/dto"
	"github.com/jhoicas/employee-api/internal/domain"
	"github.com/jhoicas/employee-api/internal/domain/employee"
)

// Tags propios registrados en el validador.
const (
	TagPassportID = "passport_id"
	TagRole       = "employee_role"
	TagEmail      = "employee_email"
	TagPage       = "current_page"
	TagPageSize   = "page_size"
)

// Error agrupa los errores por campo. Envuelve domain.ErrInvalidInput.
type Error struct {
	Fields []dto.FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Error)
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *Error) Unwrap() error {
	return domain.ErrInvalidInput
}

// validate instancia compartida; validator.Validate es seguro para uso concurrente.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Nombres de campo según el tag json o query (id, page_size...).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	mustRegister(v, TagPassportID, employee.ValidateID)
	mustRegister(v, TagRole, employee.ValidateRole)
	mustRegister(v, TagEmail, employee.ValidateEmail)
	mustRegisterInt(v, TagPage, employee.ValidateCurrentPage)
	mustRegisterInt(v, TagPageSize, employee.ValidatePageSize)
	return v
}

func mustRegister(v *validator.Validate, tag string, fn func(string) (string, error)) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, err := fn(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(fmt.Sprintf("validation: registrar %s: %v", tag, err))
	}
}

func mustRegisterInt(v *validator.Validate, tag string, fn func(int) error) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(int(fl.Field().Int())) == nil
	})
	if err != nil {
		panic(fmt.Sprintf("validation: registrar %s: %v", tag, err))
	}
}

// Struct valida s y devuelve *Error con el detalle por campo.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	out := &Error{Fields: make([]dto.FieldError, 0, len(validationErrors))}
	for _, fe := range validationErrors {
		out.Fields = append(out.Fields, dto.FieldError{
			Field: fe.Field(),
			Error: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case TagPassportID:
		return "debe tener el formato NNNN-NNNNNN"
	case TagRole:
		return fmt.Sprintf("debe ser <%s> o <%s>", employee.RoleAdmin, employee.RoleWorker)
	case TagEmail:
		return "formato de email inválido"
	case TagPage:
		return fmt.Sprintf("debe ser al menos %d", employee.DefaultPage)
	case TagPageSize:
		return fmt.Sprintf("debe estar entre 1 y %d", employee.MaxPageSize)
	case "required":
		return "es requerido"
	case "min":
		return fmt.Sprintf("debe ser al menos %s", fe.Param())
	case "max":
		return fmt.Sprintf("no debe superar %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
		}
		return fe.Tag()
	}
}
