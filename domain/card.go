package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardFrontEmpty is returned when a card's front text is empty.
	ErrCardFrontEmpty = errors.New("card front cannot be empty")

	// ErrCardBackEmpty is returned when a card's back text is empty.
	ErrCardBackEmpty = errors.New("card back cannot be empty")
)

// Card represents a single flashcard: the front text shown first, the back
// text shown as the answer, and optional tag metadata.
//
// Cards have identity-based equality: all scheduling state is keyed by the
// *Card pointer, so two cards carrying identical text are distinct entities
// unless they are the same instance. Cards are immutable once created; the
// scheduling core never mutates or destroys them.
type Card struct {
	ID        uuid.UUID `json:"id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCard creates a new Card with the given front text, back text, and
// optional tags. It generates a new UUID for the card ID and sets the
// creation timestamp. Returns an error if validation fails.
func NewCard(front, back string, tags ...string) (*Card, error) {
	card := &Card{
		ID:        uuid.New(),
		Front:     front,
		Back:      back,
		Tags:      append([]string(nil), tags...),
		CreatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.Front == "" {
		return ErrCardFrontEmpty
	}

	if c.Back == "" {
		return ErrCardBackEmpty
	}

	return nil
}
