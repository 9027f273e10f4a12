package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"dogshelter/internal/domain/breeds"
)

type BreedsRepo struct {
	db *sql.DB
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

func (r *BreedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM breed`)
	if err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		var b breeds.Breed
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan breed: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
