package srfmt

// PrettyOpts configures pretty-printing of a structured module.
type PrettyOpts struct {
	Color bool
	// Width caps the display width of entry point names, 0 means unlimited.
	Width int
}
