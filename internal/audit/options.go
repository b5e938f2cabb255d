package audit

// Options configures the auditor behavior.
type Options struct {
	// DetectPatterns runs the whole-graph pattern detectors when true.
	DetectPatterns bool
	// SuggestionThreshold is the node count at which missing-pattern
	// suggestions start to fire (small diagrams get no architecture tips).
	SuggestionThreshold int
}

// DefaultOptions returns default auditor options.
func DefaultOptions() Options {
	return Options{
		DetectPatterns:      true,
		SuggestionThreshold: 4,
	}
}
