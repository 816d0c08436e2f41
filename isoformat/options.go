package isoformat

// Options holds configuration for a resolution.
type Options struct {
	// Extended selects the extended format with '-' and ':' separators.
	// When false the basic format without separators is used.
	Extended bool
	// StrictISO rejects layouts outside ISO 8601, such as year plus
	// day-of-month, or a time appended to a reduced precision date.
	StrictISO bool
}

// DefaultOptions returns extended, strict ISO 8601 resolution.
func DefaultOptions() Options {
	return Options{
		Extended:  true,
		StrictISO: true,
	}
}
