package ports

import (
	"context"

	"github.com/cartences/cartences-api/internal/core/domain"
)

// CreateSentenceInput carries the caller-supplied fields of a new sentence.
// UUID, creation time and length are assigned by the service.
type CreateSentenceInput struct {
	Content    string
	Category   *string
	FromSource *string
	FromAuthor *string
}

type SentenceService interface {
	Create(ctx context.Context, input CreateSentenceInput) (*domain.Sentence, error)
	Random(ctx context.Context) (*domain.Sentence, error)
}
