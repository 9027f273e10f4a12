package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dogshelter/internal/domain/dogs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

func (r *DogsRepo) List(ctx context.Context) ([]dogs.Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.id, d.name, b.name
		FROM dog d
		JOIN breed b ON d.breed_id = b.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	defer rows.Close()

	out := make([]dogs.Summary, 0)
	for rows.Next() {
		var s dogs.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.Breed); err != nil {
			return nil, fmt.Errorf("scan dog: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *DogsRepo) GetByID(ctx context.Context, id int64) (dogs.Dog, error) {
	// status puede ser un tipo ENUM de Postgres; ::text lo deja como string.
	row := r.db.QueryRowContext(ctx, `
		SELECT
			d.id, d.name, d.breed_id, b.name,
			d.age, d.description, d.gender, d.status::text
		FROM dog d
		JOIN breed b ON d.breed_id = b.id
		WHERE d.id = $1
	`, id)

	var (
		d           dogs.Dog
		age         sql.NullInt64
		description sql.NullString
		gender      sql.NullString
		status      sql.NullString
	)
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.BreedID,
		&d.Breed,
		&age,
		&description,
		&gender,
		&status,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, fmt.Errorf("get dog %d: %w", id, err)
	}

	d.Age = int(age.Int64)
	d.Description = description.String
	d.Gender = gender.String
	d.Status = dogs.ParseStatus(status.String)

	return d, nil
}
