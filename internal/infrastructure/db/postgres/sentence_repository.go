package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cartences/cartences-api/internal/core/domain"
)

// SentenceRepository persists quotations in the sentences table.
type SentenceRepository struct {
	pool *pgxpool.Pool
}

func NewSentenceRepository(pool *pgxpool.Pool) *SentenceRepository {
	return &SentenceRepository{pool: pool}
}

func (r *SentenceRepository) Insert(ctx context.Context, s *domain.Sentence) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO sentences (uuid, content, category, from_source, from_author, created_at, length)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, s.UUID, s.Content, s.Category, s.FromSource, s.FromAuthor, s.CreatedAt, s.Length)
	if err := row.Scan(&s.ID); err != nil {
		return fmt.Errorf("insert sentence: %w", err)
	}
	return nil
}

func (r *SentenceRepository) Random(ctx context.Context) (*domain.Sentence, error) {
	var s domain.Sentence
	row := r.pool.QueryRow(ctx, `
		SELECT id, uuid, content, category, from_source, from_author, created_at, length
		FROM sentences
		ORDER BY random()
		LIMIT 1
	`)
	if err := row.Scan(&s.ID, &s.UUID, &s.Content, &s.Category, &s.FromSource, &s.FromAuthor, &s.CreatedAt, &s.Length); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSentenceNotFound
		}
		return nil, fmt.Errorf("random sentence: %w", err)
	}
	return &s, nil
}
