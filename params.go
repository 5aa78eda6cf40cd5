package leitner

// Default values for the tunable scheduling parameters.
const (
	// DefaultHardestCardLimit caps the HardestCards list in a Progress
	// report.
	DefaultHardestCardLimit = 3

	// DefaultHintMask is the rune substituted for hidden characters in a
	// hint.
	DefaultHintMask = '_'
)

// Params defines all configurable parameters for the scheduler.
type Params struct {
	// MaxBucket is the promotion ceiling: a card reviewed as Easy never
	// moves above this bucket. 0 means promotion is unlimited.
	MaxBucket int

	// HardestCardLimit caps the HardestCards list in Progress reports.
	HardestCardLimit int

	// HintMask is the rune substituted for each hidden character when
	// generating hints.
	HintMask rune
}

// ParamsConfig allows overriding the default parameters when creating a
// new Params instance. Zero values keep the corresponding default.
type ParamsConfig struct {
	MaxBucket        int
	HardestCardLimit int
	HintMask         rune
}

// NewDefaultParams creates a new Params instance with default values:
// unlimited promotion, three hardest cards, underscore mask.
func NewDefaultParams() *Params {
	return &Params{
		MaxBucket:        0,
		HardestCardLimit: DefaultHardestCardLimit,
		HintMask:         DefaultHintMask,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MaxBucket > 0 {
		params.MaxBucket = config.MaxBucket
	}
	if config.HardestCardLimit > 0 {
		params.HardestCardLimit = config.HardestCardLimit
	}
	if config.HintMask != 0 {
		params.HintMask = config.HintMask
	}

	return params
}
