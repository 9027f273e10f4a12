package breeds

// Breed es dato de referencia: la API no lo crea ni lo modifica.
type Breed struct {
	ID   int64
	Name string
}
