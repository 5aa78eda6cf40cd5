package leitner

import (
	"testing"

	"github.com/phrazzld/leitner/domain"
)

func TestPractice(t *testing.T) {
	t.Parallel()

	a := mustCard(t, "a", "1")
	b := mustCard(t, "b", "2")
	c := mustCard(t, "c", "3")

	// {0: {a}, 1: {b}, 2: {c}}
	buckets := []CardSet{NewCardSet(a), NewCardSet(b), NewCardSet(c)}

	testCases := []struct {
		name     string
		buckets  []CardSet
		day      int
		expected []*domain.Card
	}{
		{
			name:     "day 0 selects bucket 0 only",
			buckets:  buckets,
			day:      0,
			expected: []*domain.Card{a},
		},
		{
			name:     "day 1 selects buckets 0 and 1",
			buckets:  buckets,
			day:      1,
			expected: []*domain.Card{a, b},
		},
		{
			name:     "day 2 selects bucket 0 only",
			buckets:  buckets,
			day:      2,
			expected: []*domain.Card{a},
		},
		{
			name:     "day 3 selects every bucket",
			buckets:  buckets,
			day:      3,
			expected: []*domain.Card{a, b, c},
		},
		{
			name:     "day 5 selects buckets 0 and 1",
			buckets:  buckets,
			day:      5,
			expected: []*domain.Card{a, b},
		},
		{
			name:     "day 7 selects every bucket again",
			buckets:  buckets,
			day:      7,
			expected: []*domain.Card{a, b, c},
		},
		{
			name:     "empty slice yields empty due set",
			buckets:  nil,
			day:      0,
			expected: nil,
		},
		{
			name:     "all-empty slice yields empty due set",
			buckets:  []CardSet{{}, {}, {}},
			day:      3,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			due := Practice(tc.buckets, tc.day)

			if len(due) != len(tc.expected) {
				t.Fatalf("Expected %d due cards, got %d", len(tc.expected), len(due))
			}

			for _, card := range tc.expected {
				if !due.Contains(card) {
					t.Errorf("Expected due set to contain card %q", card.Front)
				}
			}
		})
	}
}

func TestPracticeResultDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	a := mustCard(t, "a", "1")
	buckets := []CardSet{NewCardSet(a)}

	due := Practice(buckets, 0)
	due.Add(mustCard(t, "b", "2"))

	if len(buckets[0]) != 1 {
		t.Errorf("Expected input bucket to keep 1 card, got %d", len(buckets[0]))
	}
}

func TestUpdateEasy(t *testing.T) {
	t.Parallel()

	x := mustCard(t, "x", "1")
	buckets := BucketMap{1: NewCardSet(x)}
	saved := cloneBuckets(buckets)

	next := Update(buckets, x, domain.DifficultyEasy)

	assertBucketsEqual(t, BucketMap{2: NewCardSet(x)}, next)
	assertBucketsEqual(t, saved, buckets)
}

func TestUpdateHard(t *testing.T) {
	t.Parallel()

	x := mustCard(t, "x", "1")

	// Moving down deletes the emptied source bucket.
	next := Update(BucketMap{3: NewCardSet(x)}, x, domain.DifficultyHard)
	assertBucketsEqual(t, BucketMap{2: NewCardSet(x)}, next)
	if _, present := next[3]; present {
		t.Error("Expected emptied bucket 3 to be deleted")
	}

	// Hard at bucket 0 stays at 0.
	next = Update(BucketMap{0: NewCardSet(x)}, x, domain.DifficultyHard)
	assertBucketsEqual(t, BucketMap{0: NewCardSet(x)}, next)
}

func TestUpdateWrong(t *testing.T) {
	t.Parallel()

	x := mustCard(t, "x", "1")
	y := mustCard(t, "y", "2")

	next := Update(BucketMap{0: NewCardSet(y), 4: NewCardSet(x)}, x, domain.DifficultyWrong)

	assertBucketsEqual(t, BucketMap{0: NewCardSet(x, y)}, next)
}

func TestUpdateUnknownCardIsNoOp(t *testing.T) {
	t.Parallel()

	x := mustCard(t, "x", "1")
	stranger := mustCard(t, "s", "2")
	buckets := BucketMap{1: NewCardSet(x)}
	saved := cloneBuckets(buckets)

	next := Update(buckets, stranger, domain.DifficultyEasy)

	assertBucketsEqual(t, saved, next)
	assertBucketsEqual(t, saved, buckets)
}

func TestUpdateInvalidDifficultyIsNoOp(t *testing.T) {
	t.Parallel()

	x := mustCard(t, "x", "1")
	buckets := BucketMap{1: NewCardSet(x)}
	saved := cloneBuckets(buckets)

	next := Update(buckets, x, domain.Difficulty("medium"))

	assertBucketsEqual(t, saved, next)
	assertBucketsEqual(t, saved, buckets)
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	x := mustCard(t, "x", "1")
	y := mustCard(t, "y", "2")
	z := mustCard(t, "z", "3")
	buckets := BucketMap{
		0: NewCardSet(x, y),
		1: NewCardSet(z),
	}
	saved := cloneBuckets(buckets)

	next := Update(buckets, x, domain.DifficultyEasy)

	// The original map and all of its nested sets are untouched.
	assertBucketsEqual(t, saved, buckets)

	assertBucketsEqual(t, BucketMap{
		0: NewCardSet(y),
		1: NewCardSet(x, z),
	}, next)

	// Untouched buckets are shared between input and result; successive
	// updates must keep cloning the sets they change.
	afterSecond := Update(next, z, domain.DifficultyWrong)
	assertBucketsEqual(t, BucketMap{
		0: NewCardSet(y),
		1: NewCardSet(x, z),
	}, next)
	assertBucketsEqual(t, BucketMap{
		0: NewCardSet(y, z),
		1: NewCardSet(x),
	}, afterSecond)
}

func TestUpdateMergesIntoExistingDestination(t *testing.T) {
	t.Parallel()

	x := mustCard(t, "x", "1")
	y := mustCard(t, "y", "2")
	buckets := BucketMap{
		1: NewCardSet(x),
		2: NewCardSet(y),
	}

	next := Update(buckets, x, domain.DifficultyEasy)

	assertBucketsEqual(t, BucketMap{2: NewCardSet(x, y)}, next)
}
