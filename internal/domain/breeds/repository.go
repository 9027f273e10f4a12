package breeds

import "context"

type Repository interface {
	List(ctx context.Context) ([]Breed, error)
}
