package memory

import (
	"fmt"

	"dogshelter/internal/domain/breeds"
	"dogshelter/internal/domain/dogs"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type fixture struct {
	Breeds []fixtureBreed `koanf:"breeds"`
	Dogs   []fixtureDog   `koanf:"dogs"`
}

type fixtureBreed struct {
	ID   int64  `koanf:"id"`
	Name string `koanf:"name"`
}

type fixtureDog struct {
	ID          int64  `koanf:"id"`
	Name        string `koanf:"name"`
	BreedID     int64  `koanf:"breed_id"`
	Age         int    `koanf:"age"`
	Description string `koanf:"description"`
	Gender      string `koanf:"gender"`
	Status      string `koanf:"status"`
}

// LoadFixture arma un Store desde un YAML con las listas "breeds" y "dogs".
// Cualquier perro inválido (edad fuera de rango, id repetido) aborta la carga.
func LoadFixture(path string) (*Store, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load fixture %s: %w", path, err)
	}

	var fx fixture
	if err := k.UnmarshalWithConf("", &fx, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}

	s := NewStore()
	for _, b := range fx.Breeds {
		if err := s.PutBreed(breeds.Breed{ID: b.ID, Name: b.Name}); err != nil {
			return nil, fmt.Errorf("fixture %s: %w", path, err)
		}
	}
	for _, d := range fx.Dogs {
		if err := s.PutDog(DogRecord{
			ID:          d.ID,
			Name:        d.Name,
			BreedID:     d.BreedID,
			Age:         d.Age,
			Description: d.Description,
			Gender:      d.Gender,
			Status:      dogs.ParseStatus(d.Status),
		}); err != nil {
			return nil, fmt.Errorf("fixture %s: %w", path, err)
		}
	}
	return s, nil
}
