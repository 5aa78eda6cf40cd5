package domain

import "time"

// Difficulty represents the recall outcome of a single card review.
type Difficulty string

// Possible difficulty values, from total failure to effortless recall.
const (
	DifficultyWrong Difficulty = "wrong"
	DifficultyHard  Difficulty = "hard"
	DifficultyEasy  Difficulty = "easy"
)

// Valid reports whether the difficulty is one of the recognized values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyWrong, DifficultyHard, DifficultyEasy:
		return true
	default:
		return false
	}
}

// String returns the difficulty as a plain string.
func (d Difficulty) String() string {
	return string(d)
}

// ParseDifficulty converts a string into a Difficulty.
// Returns ErrInvalidDifficulty if the string is not a recognized value.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", ErrInvalidDifficulty
	}
	return d, nil
}

// ReviewRecord is a single entry in the review history log: which card was
// reviewed, how the recall went, and when. The log itself is append-only
// and owned by the caller; the scheduling core only reads it.
type ReviewRecord struct {
	Card       *Card      `json:"card"`
	Difficulty Difficulty `json:"difficulty"`
	ReviewedAt time.Time  `json:"reviewed_at"`
}

// NewReviewRecord creates a review record for the given card and outcome,
// stamped with the current time. Returns an error if the card is nil or
// the difficulty is not recognized.
func NewReviewRecord(card *Card, difficulty Difficulty) (*ReviewRecord, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	if !difficulty.Valid() {
		return nil, ErrInvalidDifficulty
	}

	return &ReviewRecord{
		Card:       card,
		Difficulty: difficulty,
		ReviewedAt: time.Now().UTC(),
	}, nil
}
