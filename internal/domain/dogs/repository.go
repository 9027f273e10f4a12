package dogs

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("dog not found")
)

// Repository devuelve perros ya unidos con su raza.
// Un perro sin raza existente no aparece en ningún resultado.
type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	GetByID(ctx context.Context, id int64) (Dog, error)
}
