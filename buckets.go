package leitner

import (
	"github.com/phrazzld/leitner/domain"
)

// CardSet is a set of flashcards keyed by identity: two cards with
// identical text are distinct members unless they are the same instance.
type CardSet map[*domain.Card]struct{}

// NewCardSet creates a set containing the given cards. Nil cards are
// skipped.
func NewCardSet(cards ...*domain.Card) CardSet {
	set := make(CardSet, len(cards))
	for _, card := range cards {
		if card != nil {
			set[card] = struct{}{}
		}
	}
	return set
}

// Add inserts a card into the set.
func (s CardSet) Add(card *domain.Card) {
	s[card] = struct{}{}
}

// Contains reports whether the card is a member of the set.
func (s CardSet) Contains(card *domain.Card) bool {
	_, ok := s[card]
	return ok
}

// Clone returns an independent shallow copy of the set. The cards
// themselves are shared; they are immutable.
func (s CardSet) Clone() CardSet {
	clone := make(CardSet, len(s))
	for card := range s {
		clone[card] = struct{}{}
	}
	return clone
}

// Cards returns the members of the set as a slice, in no particular order.
func (s CardSet) Cards() []*domain.Card {
	cards := make([]*domain.Card, 0, len(s))
	for card := range s {
		cards = append(cards, card)
	}
	return cards
}

// BucketMap is the sparse representation of bucket state: a mapping from
// bucket number to the set of cards currently in that bucket. A
// well-formed map stores only non-empty sets (empty buckets are deleted,
// not stored) and holds each card in at most one bucket.
type BucketMap map[int]CardSet

// BucketOf returns the bucket number currently holding the card, found by
// membership scan. The second return value is false if the card is not
// tracked in any bucket.
func (m BucketMap) BucketOf(card *domain.Card) (int, bool) {
	for bucket, set := range m {
		if set.Contains(card) {
			return bucket, true
		}
	}
	return 0, false
}

// clone returns a new top-level map sharing the original per-bucket sets.
// Callers that change a set's membership must swap in a Clone of it first.
func (m BucketMap) clone() BucketMap {
	next := make(BucketMap, len(m)+1)
	for bucket, set := range m {
		next[bucket] = set
	}
	return next
}

// ToBucketSets converts the sparse representation into the dense one: a
// slice of card sets indexed by bucket number, covering every bucket from
// 0 up to the highest populated bucket with no gaps. An empty map yields a
// zero-length slice, not a single empty bucket.
//
// Every set in the result is an independent copy, so the returned slice
// is fully isolated from the source map: mutating one never affects the
// other.
func ToBucketSets(m BucketMap) []CardSet {
	if len(m) == 0 {
		return nil
	}

	highest := 0
	for bucket := range m {
		if bucket > highest {
			highest = bucket
		}
	}

	sets := make([]CardSet, highest+1)
	for i := range sets {
		sets[i] = make(CardSet)
	}
	for bucket, cards := range m {
		sets[bucket] = cards.Clone()
	}

	return sets
}

// BucketRange returns the lowest and highest indices of the dense
// representation that hold a non-empty set. The third return value is
// false when the slice is empty or every set in it is empty, in which case
// there is no range to report.
func BucketRange(buckets []CardSet) (minBucket, maxBucket int, ok bool) {
	for i, set := range buckets {
		if len(set) == 0 {
			continue
		}
		if !ok {
			minBucket = i
			ok = true
		}
		maxBucket = i
	}
	return minBucket, maxBucket, ok
}
