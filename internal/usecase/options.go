package usecase

// SearchOptions contains optional parameters for an itinerary search.
type SearchOptions struct {
	// MaxStops, when set, tightens the stop ceiling derived from the
	// route classification. Values above the classified ceiling are
	// ignored. Used by callers that want a tighter bound (e.g.,
	// direct-only searches).
	MaxStops *int
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{MaxStops: nil}
}
