package domain

import (
	"errors"
	"time"
)

var ErrSentenceNotFound = errors.New("sentence not found")

// Sentence is a stored quotation. Category, FromSource and FromAuthor are
// nullable columns and therefore pointers.
type Sentence struct {
	ID         int64     `json:"id"`
	UUID       string    `json:"uuid"`
	Content    string    `json:"content"`
	Category   *string   `json:"category"`
	FromSource *string   `json:"from_source"`
	FromAuthor *string   `json:"from_author"`
	CreatedAt  time.Time `json:"created_at"`
	Length     int       `json:"length"`
}
