package dogs

import "strings"

// Status es el estado de adopción de un perro.
// @Enum available, pending, adopted
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

// ParseStatus acepta tanto el valor ("available") como el nombre simbólico
// ("AVAILABLE"), que es lo que guardan las columnas enum tipo SQLAlchemy.
// Valores desconocidos se conservan tal cual.
func ParseStatus(raw string) Status {
	v := strings.TrimSpace(raw)
	switch strings.ToLower(v) {
	case string(StatusAvailable):
		return StatusAvailable
	case string(StatusPending):
		return StatusPending
	case string(StatusAdopted):
		return StatusAdopted
	default:
		return Status(v)
	}
}

// Name devuelve el nombre simbólico que ve el cliente (AVAILABLE, PENDING, ADOPTED).
func (s Status) Name() string {
	return strings.ToUpper(string(s))
}

// Summary es la proyección usada en el listado: perro + nombre de su raza.
type Summary struct {
	ID    int64
	Name  string
	Breed string
}

// Dog es un perro ya unido (join) con su raza.
type Dog struct {
	ID      int64
	Name    string
	BreedID int64
	Breed   string // breed.name

	Age         int
	Description string
	Gender      string
	Status      Status
}
