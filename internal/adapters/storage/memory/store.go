package memory

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"dogshelter/internal/domain/breeds"
	"dogshelter/internal/domain/dogs"
)

var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrInvalidDog  = errors.New("invalid dog")
)

// DogRecord es la fila "dog" tal como se guarda (sin join).
type DogRecord struct {
	ID          int64
	Name        string
	BreedID     int64
	Age         int
	Description string
	Gender      string
	Status      dogs.Status
}

// Store guarda ambas tablas juntas para poder resolver el join.
// Conserva el orden de inserción, que es el orden de los listados.
type Store struct {
	mu sync.RWMutex

	breeds    []breeds.Breed
	breedByID map[int64]int // id -> índice en breeds

	dogs    []DogRecord
	dogByID map[int64]int
}

func NewStore() *Store {
	return &Store{
		breedByID: make(map[int64]int),
		dogByID:   make(map[int64]int),
	}
}

func (s *Store) PutBreed(b breeds.Breed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.breedByID[b.ID]; exists {
		return fmt.Errorf("breed %d: %w", b.ID, ErrDuplicateID)
	}
	s.breedByID[b.ID] = len(s.breeds)
	s.breeds = append(s.breeds, b)
	return nil
}

// PutDog no exige que la raza exista: un perro huérfano simplemente no sale en
// los joins, igual que en SQL. La edad sí se valida.
func (s *Store) PutDog(d DogRecord) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("dog %d: name required: %w", d.ID, ErrInvalidDog)
	}
	if err := dogs.ValidateAge(d.Age); err != nil {
		return fmt.Errorf("dog %d: %w", d.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.dogByID[d.ID]; exists {
		return fmt.Errorf("dog %d: %w", d.ID, ErrDuplicateID)
	}
	s.dogByID[d.ID] = len(s.dogs)
	s.dogs = append(s.dogs, d)
	return nil
}
