package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-memorial/internal/domain/comments"
)

type CommentsRepo struct {
	db *sql.DB
}

func NewCommentsRepo(db *sql.DB) *CommentsRepo {
	return &CommentsRepo{db: db}
}

func (r *CommentsRepo) Create(ctx context.Context, c comments.Comment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO comments (id, pet_id, owner_id, body, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		c.ID,
		c.PetID,
		c.OwnerID,
		c.Text,
		c.CreatedAt,
	)
	return err
}

func (r *CommentsRepo) GetByID(ctx context.Context, id string) (comments.Comment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return comments.Comment{}, comments.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, owner_id, body, created_at
		FROM comments
		WHERE id = $1
	`, id)

	var c comments.Comment
	if err := row.Scan(&c.ID, &c.PetID, &c.OwnerID, &c.Text, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return comments.Comment{}, comments.ErrNotFound
		}
		return comments.Comment{}, err
	}
	return c, nil
}

func (r *CommentsRepo) ListByPet(ctx context.Context, petID string) ([]comments.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, owner_id, body, created_at
		FROM comments
		WHERE pet_id = $1
		ORDER BY created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]comments.Comment, 0)
	for rows.Next() {
		var c comments.Comment
		if err := rows.Scan(&c.ID, &c.PetID, &c.OwnerID, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
