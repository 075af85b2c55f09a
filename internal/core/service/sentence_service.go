package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/cartences/cartences-api/internal/core/domain"
	"github.com/cartences/cartences-api/internal/core/ports"
)

// SentenceService implements quotation storage and the random pick.
type SentenceService struct {
	repo ports.SentenceRepository
}

func NewSentenceService(repo ports.SentenceRepository) *SentenceService {
	return &SentenceService{repo: repo}
}

// Create stores a new sentence. The UUID is assigned server-side and the
// length is the rune count of the content, not its byte length.
func (s *SentenceService) Create(ctx context.Context, input ports.CreateSentenceInput) (*domain.Sentence, error) {
	sentence := &domain.Sentence{
		UUID:       uuid.NewString(),
		Content:    input.Content,
		Category:   input.Category,
		FromSource: input.FromSource,
		FromAuthor: input.FromAuthor,
		CreatedAt:  time.Now().UTC(),
		Length:     utf8.RuneCountInString(input.Content),
	}
	if err := s.repo.Insert(ctx, sentence); err != nil {
		return nil, err
	}
	return sentence, nil
}

// Random returns one uniformly random sentence, or ErrSentenceNotFound when
// the table is empty.
func (s *SentenceService) Random(ctx context.Context) (*domain.Sentence, error) {
	return s.repo.Random(ctx)
}
