package catalog

// Formatted error messages
const (
	ErrMsgItemIDFmt = "item %q: %w"
)
