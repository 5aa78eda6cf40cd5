package leitner

import (
	"github.com/phrazzld/leitner/domain"
)

// Practice selects the set of cards due for review on the given day.
//
// Days are counted from 0 (the first day of use). For day d, bucket i is
// due when (d+1) is divisible by 2^i: bucket 0 every day, bucket 1 every
// 2nd day, bucket 2 every 4th day, doubling per level so that
// better-retained material is reviewed exponentially less often. The
// result is the union of all cards in every due bucket.
//
// The returned set is freshly allocated and never aliases the input sets.
// An empty or all-empty slice yields an empty due set for any day.
func Practice(buckets []CardSet, day int) CardSet {
	due := make(CardSet)

	n := day + 1
	interval := 1
	for _, set := range buckets {
		// Buckets with an interval longer than the day count can never
		// divide it, so the scan stops early. The doubling then cannot
		// overflow for deep bucket slices either.
		if interval > n {
			break
		}
		if n%interval == 0 {
			for card := range set {
				due[card] = struct{}{}
			}
		}
		interval *= 2
	}

	return due
}

// Update moves a card to its new bucket after a review and returns the
// resulting bucket map. The destination depends on the recall difficulty:
//
//   - Easy: one bucket up from the current one
//   - Hard: one bucket down, floored at 0
//   - Wrong: back to bucket 0
//
// Update follows a copy-on-write discipline: it builds a fresh top-level
// map, clones only the two sets whose membership changes, and shares every
// other set with the input. The caller's map and its nested sets are never
// mutated. If the source bucket becomes empty its key is deleted, so the
// result never stores an empty set.
//
// A card not present in any bucket is not an error: the result is a
// structurally-equal copy of the input. An unrecognized difficulty is
// treated the same way.
func Update(m BucketMap, card *domain.Card, difficulty domain.Difficulty) BucketMap {
	current, found := m.BucketOf(card)
	if !found || !difficulty.Valid() {
		return m.clone()
	}

	return relocate(m, card, current, destinationBucket(current, difficulty))
}

// destinationBucket computes the bucket a card moves to after a review of
// the given difficulty, starting from its current bucket.
func destinationBucket(current int, difficulty domain.Difficulty) int {
	switch difficulty {
	case domain.DifficultyEasy:
		return current + 1
	case domain.DifficultyHard:
		if current <= 0 {
			return 0
		}
		return current - 1
	default: // DifficultyWrong
		return 0
	}
}

// relocate moves a card from one bucket to another, cloning only the sets
// whose membership changes and sharing the rest with the input map.
func relocate(m BucketMap, card *domain.Card, from, to int) BucketMap {
	next := m.clone()

	source := m[from].Clone()
	delete(source, card)
	if len(source) == 0 {
		delete(next, from)
	} else {
		next[from] = source
	}

	destination, ok := next[to]
	if ok {
		destination = destination.Clone()
	} else {
		destination = make(CardSet, 1)
	}
	destination.Add(card)
	next[to] = destination

	return next
}
