package dogs

import (
	"errors"
	"fmt"
)

const (
	MinAge = 0
	MaxAge = 20
)

var (
	ErrInvalidAge = errors.New("invalid dog age")
)

// ValidationError describe un valor fuera de rango. Envuelve ErrInvalidAge.
type ValidationError struct {
	Field string
	Value int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Dog age must be between %d and %d.", MinAge, MaxAge)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidAge }

// ValidateAge verifica que la edad esté en [MinAge, MaxAge] (ambos inclusive).
// No se usa en las rutas de lectura; sólo filtra datos que entran al store
// (p.ej. fixtures del store en memoria).
func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return &ValidationError{Field: "age", Value: age}
	}
	return nil
}
