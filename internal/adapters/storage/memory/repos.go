package memory

import (
	"context"

	"dogshelter/internal/domain/breeds"
	"dogshelter/internal/domain/dogs"
)

type dogRepo struct {
	s *Store
}

func NewDogRepo(s *Store) dogs.Repository {
	return &dogRepo{s: s}
}

func (r *dogRepo) List(ctx context.Context) ([]dogs.Summary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]dogs.Summary, 0, len(r.s.dogs))
	for _, d := range r.s.dogs {
		i, ok := r.s.breedByID[d.BreedID]
		if !ok {
			continue
		}
		out = append(out, dogs.Summary{
			ID:    d.ID,
			Name:  d.Name,
			Breed: r.s.breeds[i].Name,
		})
	}
	return out, nil
}

func (r *dogRepo) GetByID(ctx context.Context, id int64) (dogs.Dog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	di, ok := r.s.dogByID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	d := r.s.dogs[di]

	bi, ok := r.s.breedByID[d.BreedID]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}

	return dogs.Dog{
		ID:          d.ID,
		Name:        d.Name,
		BreedID:     d.BreedID,
		Breed:       r.s.breeds[bi].Name,
		Age:         d.Age,
		Description: d.Description,
		Gender:      d.Gender,
		Status:      d.Status,
	}, nil
}

type breedRepo struct {
	s *Store
}

func NewBreedRepo(s *Store) breeds.Repository {
	return &breedRepo{s: s}
}

func (r *breedRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]breeds.Breed, len(r.s.breeds))
	copy(out, r.s.breeds)
	return out, nil
}
