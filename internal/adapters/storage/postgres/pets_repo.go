package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-memorial/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `id, owner_id, name, death_date, favorite1, favorite2, favorite3, image_url, created_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	f1, f2, f3 := favoriteColumns(p.Favorites)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.OwnerID,
		p.Name,
		p.DeathDate,
		f1,
		f2,
		f3,
		p.ImageURL,
		p.CreatedAt,
	)
	if isUniqueViolation(err) {
		return pets.ErrAlreadyExists
	}
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	return scanPet(row)
}

func (r *PetsRepo) GetByOwnerAndName(ctx context.Context, ownerID, name string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_id = $1 AND name = $2
	`, ownerID, name)

	return scanPet(row)
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM pets WHERE id = $1)
	`, id).Scan(&exists)
	return exists, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var f1, f2, f3 sql.NullString

	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.DeathDate,
		&f1,
		&f2,
		&f3,
		&p.ImageURL,
		&p.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	p.Favorites = make([]string, 0, pets.MaxFavorites)
	for _, f := range []sql.NullString{f1, f2, f3} {
		if f.Valid && f.String != "" {
			p.Favorites = append(p.Favorites, f.String)
		}
	}

	return p, nil
}

func favoriteColumns(favorites []string) (sql.NullString, sql.NullString, sql.NullString) {
	cols := [3]sql.NullString{}
	for i, f := range favorites {
		if i >= len(cols) {
			break
		}
		cols[i] = sql.NullString{String: f, Valid: true}
	}
	return cols[0], cols[1], cols[2]
}
