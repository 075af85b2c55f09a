package ports

import (
	"context"

	"github.com/cartences/cartences-api/internal/core/domain"
)

// SentenceRepository defines the interface for sentence persistence.
type SentenceRepository interface {
	Insert(ctx context.Context, sentence *domain.Sentence) error
	Random(ctx context.Context) (*domain.Sentence, error)
}
