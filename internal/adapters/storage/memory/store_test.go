package memory

import (
	"context"
	"errors"
	"testing"

	"dogshelter/internal/domain/breeds"
	"dogshelter/internal/domain/dogs"
)

func TestStore_JoinSkipsDanglingBreed(t *testing.T) {
	s := NewStore()
	mustPutBreed(t, s, breeds.Breed{ID: 1, Name: "Beagle"})
	mustPutDog(t, s, DogRecord{ID: 10, Name: "Rex", BreedID: 1, Age: 4, Status: dogs.StatusAvailable})
	mustPutDog(t, s, DogRecord{ID: 11, Name: "Orphan", BreedID: 99, Age: 2, Status: dogs.StatusPending})
	mustPutDog(t, s, DogRecord{ID: 12, Name: "Ada", BreedID: 1, Age: 0, Status: dogs.StatusAdopted})

	repo := NewDogRepo(s)
	ctx := context.Background()

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].ID != 10 || items[1].ID != 12 {
		t.Fatalf("expected [10 12] in insertion order, got %#v", items)
	}
	if items[0].Breed != "Beagle" {
		t.Fatalf("expected joined breed name, got %q", items[0].Breed)
	}

	if _, err := repo.GetByID(ctx, 11); !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for dangling breed, got %v", err)
	}
	if _, err := repo.GetByID(ctx, 404); !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}

	d, err := repo.GetByID(ctx, 12)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if d.Breed != "Beagle" || d.Status != dogs.StatusAdopted {
		t.Fatalf("unexpected dog: %#v", d)
	}
}

func TestStore_PutDog_ValidatesAge(t *testing.T) {
	s := NewStore()

	for _, age := range []int{-1, 21} {
		err := s.PutDog(DogRecord{ID: int64(100 + age), Name: "X", BreedID: 1, Age: age})
		if !errors.Is(err, dogs.ErrInvalidAge) {
			t.Fatalf("age %d: expected ErrInvalidAge, got %v", age, err)
		}
	}
	for _, age := range []int{0, 20} {
		if err := s.PutDog(DogRecord{ID: int64(200 + age), Name: "Y", BreedID: 1, Age: age}); err != nil {
			t.Fatalf("age %d: unexpected error %v", age, err)
		}
	}
}

func TestStore_RejectsDuplicatesAndBlankNames(t *testing.T) {
	s := NewStore()
	mustPutBreed(t, s, breeds.Breed{ID: 1, Name: "Beagle"})

	if err := s.PutBreed(breeds.Breed{ID: 1, Name: "Again"}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID for breed, got %v", err)
	}

	mustPutDog(t, s, DogRecord{ID: 1, Name: "Rex", BreedID: 1})
	if err := s.PutDog(DogRecord{ID: 1, Name: "Rex", BreedID: 1}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID for dog, got %v", err)
	}
	if err := s.PutDog(DogRecord{ID: 2, Name: "  ", BreedID: 1}); !errors.Is(err, ErrInvalidDog) {
		t.Fatalf("expected ErrInvalidDog, got %v", err)
	}
}

func TestBreedRepo_ListReturnsCopy(t *testing.T) {
	s := NewStore()
	mustPutBreed(t, s, breeds.Breed{ID: 1, Name: "Beagle"})

	items, _ := NewBreedRepo(s).List(context.Background())
	items[0].Name = "mutated"

	again, _ := NewBreedRepo(s).List(context.Background())
	if again[0].Name != "Beagle" {
		t.Fatalf("store was mutated through the returned slice")
	}
}

func TestLoadFixture(t *testing.T) {
	s, err := LoadFixture("testdata/fixture.yaml")
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	d, err := NewDogRepo(s).GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if d.Name != "Luna" || d.Breed != "Beagle" || d.Age != 7 || d.Status != dogs.StatusPending {
		t.Fatalf("unexpected dog from fixture: %#v", d)
	}

	items, _ := NewBreedRepo(s).List(context.Background())
	if len(items) != 2 {
		t.Fatalf("expected 2 breeds, got %d", len(items))
	}
}

func TestLoadFixture_RejectsOutOfRangeAge(t *testing.T) {
	if _, err := LoadFixture("testdata/bad_age.yaml"); !errors.Is(err, dogs.ErrInvalidAge) {
		t.Fatalf("expected ErrInvalidAge, got %v", err)
	}
}

func TestLoadFixture_MissingFile(t *testing.T) {
	if _, err := LoadFixture("testdata/nope.yaml"); err == nil {
		t.Fatalf("expected error for missing fixture")
	}
}

func mustPutBreed(t *testing.T, s *Store, b breeds.Breed) {
	t.Helper()
	if err := s.PutBreed(b); err != nil {
		t.Fatalf("PutBreed: %v", err)
	}
}

func mustPutDog(t *testing.T, s *Store, d DogRecord) {
	t.Helper()
	if err := s.PutDog(d); err != nil {
		t.Fatalf("PutDog: %v", err)
	}
}
