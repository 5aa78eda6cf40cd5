package leitner

import (
	"sort"

	"github.com/phrazzld/leitner/domain"
)

// Progress summarizes the learner's state: how many cards are tracked,
// how they are distributed across buckets, how often reviews succeed, and
// which cards are missed most.
type Progress struct {
	// TotalCards is the number of cards across all buckets.
	TotalCards int `json:"total_cards"`

	// CardsByBucket maps each populated bucket number to its card count.
	CardsByBucket map[int]int `json:"cards_by_bucket"`

	// SuccessRate is the fraction of history entries not judged Wrong,
	// over all entries. It is 0 when the history is empty.
	SuccessRate float64 `json:"success_rate"`

	// HardestCards lists the cards most frequently judged Wrong, in
	// descending wrong-count order with ties broken by the order the
	// cards were first missed. Cards never judged Wrong are not listed.
	HardestCards []*domain.Card `json:"hardest_cards"`
}

// ComputeProgress aggregates bucket occupancy and review history into a
// Progress report. Both inputs are read-only; nothing is mutated. The
// HardestCards list is capped at limit entries; a non-positive limit falls
// back to DefaultHardestCardLimit.
func ComputeProgress(m BucketMap, history []domain.ReviewRecord, limit int) *Progress {
	if limit <= 0 {
		limit = DefaultHardestCardLimit
	}

	report := &Progress{
		CardsByBucket: make(map[int]int, len(m)),
	}
	for bucket, set := range m {
		report.CardsByBucket[bucket] = len(set)
		report.TotalCards += len(set)
	}

	if len(history) > 0 {
		successes := 0
		for _, record := range history {
			if record.Difficulty != domain.DifficultyWrong {
				successes++
			}
		}
		report.SuccessRate = float64(successes) / float64(len(history))
	}

	// Count misses per card, remembering the order cards were first
	// missed so ties sort deterministically.
	wrongCounts := make(map[*domain.Card]int)
	missed := make([]*domain.Card, 0)
	for _, record := range history {
		if record.Card == nil || record.Difficulty != domain.DifficultyWrong {
			continue
		}
		if _, seen := wrongCounts[record.Card]; !seen {
			missed = append(missed, record.Card)
		}
		wrongCounts[record.Card]++
	}

	sort.SliceStable(missed, func(i, j int) bool {
		return wrongCounts[missed[i]] > wrongCounts[missed[j]]
	})
	if len(missed) > limit {
		missed = missed[:limit]
	}
	report.HardestCards = missed

	return report
}
