package entity

// Employee representa el registro de un empleado.
// ID sigue el formato de pasaporte NNNN-NNNNNN y es la clave primaria.
// IsActive = false marca el borrado lógico: el registro se conserva pero no se lee.
type Employee struct {
	ID           string
	Role         string
	Email        string
	Experience   int    // años de antigüedad
	DeletionDate string // texto libre
	IsActive     bool
}
