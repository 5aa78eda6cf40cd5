package leitner

import (
	"github.com/phrazzld/leitner/domain"
)

// Hint derives a partial-reveal hint from a card's front text: the first
// half of the runes (rounded up) are shown verbatim and each remaining
// rune is replaced by the mask rune. The hint always has the same rune
// count as the front text; an empty front yields an empty string, and a
// single-rune front is fully revealed. A nil card also yields an empty
// string.
func Hint(card *domain.Card, mask rune) string {
	if card == nil {
		return ""
	}

	runes := []rune(card.Front)
	n := len(runes)
	if n == 0 {
		return ""
	}

	revealed := (n + 1) / 2
	hint := make([]rune, n)
	copy(hint, runes[:revealed])
	for i := revealed; i < n; i++ {
		hint[i] = mask
	}

	return string(hint)
}
