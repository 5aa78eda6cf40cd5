package leitner

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/leitner/domain"
)

// Common errors
var (
	ErrNegativeDay      = errors.New("day must be at least 0")
	ErrMalformedBuckets = errors.New("malformed bucket map")
)

// Service defines the interface for scheduler operations. It wraps the
// pure scheduling functions with precondition checks, so malformed inputs
// surface as errors to the caller instead of silently producing wrong
// answers, and applies the configured Params.
type Service interface {
	// DueCards returns the set of cards due for review on the given day
	// (0-based).
	DueCards(m BucketMap, day int) (CardSet, error)

	// SubmitReview moves a card to its new bucket based on the recall
	// difficulty and returns the updated bucket map. The input map is
	// never mutated. Reviewing a card that is not tracked in any bucket
	// is a no-op, not an error.
	SubmitReview(m BucketMap, card *domain.Card, difficulty domain.Difficulty) (BucketMap, error)

	// CardHint returns a partial-reveal hint for the card's front text.
	CardHint(card *domain.Card) (string, error)

	// Report aggregates bucket occupancy and review history into a
	// Progress summary.
	Report(m BucketMap, history []domain.ReviewRecord) (*Progress, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
	logger *slog.Logger
}

// NewDefaultService creates a new scheduler service with default
// parameters, logging through slog.Default().
func NewDefaultService() Service {
	return NewServiceWithParams(NewDefaultParams(), nil)
}

// NewServiceWithParams creates a new scheduler service with custom
// parameters. A nil params falls back to the defaults; a nil logger falls
// back to slog.Default().
func NewServiceWithParams(params *Params, logger *slog.Logger) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &defaultService{
		params: params,
		logger: logger.With(slog.String("component", "leitner_service")),
	}
}

// DueCards implements the Service interface for due-set selection.
func (s *defaultService) DueCards(m BucketMap, day int) (CardSet, error) {
	if day < 0 {
		return nil, ErrNegativeDay
	}

	if err := validateBuckets(m); err != nil {
		return nil, err
	}

	due := Practice(ToBucketSets(m), day)

	s.logger.Debug("selected due cards",
		slog.Int("day", day),
		slog.Int("due_count", len(due)))

	return due, nil
}

// SubmitReview implements the Service interface for bucket transitions.
func (s *defaultService) SubmitReview(
	m BucketMap,
	card *domain.Card,
	difficulty domain.Difficulty,
) (BucketMap, error) {
	if card == nil {
		return nil, domain.ErrNilCard
	}

	if !difficulty.Valid() {
		return nil, domain.ErrInvalidDifficulty
	}

	if err := validateBuckets(m); err != nil {
		return nil, err
	}

	next := Update(m, card, difficulty)

	// Apply the promotion ceiling when one is configured.
	if s.params.MaxBucket > 0 {
		if bucket, ok := next.BucketOf(card); ok && bucket > s.params.MaxBucket {
			next = relocate(next, card, bucket, s.params.MaxBucket)
		}
	}

	bucket, tracked := next.BucketOf(card)
	if !tracked {
		s.logger.Debug("review for untracked card ignored",
			slog.String("card_id", card.ID.String()))
	} else {
		s.logger.Debug("card reviewed",
			slog.String("card_id", card.ID.String()),
			slog.String("difficulty", difficulty.String()),
			slog.Int("bucket", bucket))
	}

	return next, nil
}

// CardHint implements the Service interface for hint generation.
func (s *defaultService) CardHint(card *domain.Card) (string, error) {
	if card == nil {
		return "", domain.ErrNilCard
	}

	return Hint(card, s.params.HintMask), nil
}

// Report implements the Service interface for progress analysis.
func (s *defaultService) Report(m BucketMap, history []domain.ReviewRecord) (*Progress, error) {
	if err := validateBuckets(m); err != nil {
		return nil, err
	}

	return ComputeProgress(m, history, s.params.HardestCardLimit), nil
}

// validateBuckets checks the structural invariants of a sparse bucket map:
// no negative bucket numbers, no stored empty sets, and no card present in
// more than one bucket. Violations wrap ErrMalformedBuckets.
func validateBuckets(m BucketMap) error {
	seen := make(map[*domain.Card]int)

	for bucket, set := range m {
		if bucket < 0 {
			return fmt.Errorf("%w: negative bucket number %d", ErrMalformedBuckets, bucket)
		}

		if len(set) == 0 {
			return fmt.Errorf("%w: bucket %d stores an empty set", ErrMalformedBuckets, bucket)
		}

		for card := range set {
			if other, dup := seen[card]; dup {
				return fmt.Errorf(
					"%w: card %s present in buckets %d and %d",
					ErrMalformedBuckets, card.ID, other, bucket,
				)
			}
			seen[card] = bucket
		}
	}

	return nil
}
