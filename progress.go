package docent

// ProgressFunc receives human-readable status lines.
type ProgressFunc func(line string)

// ProgressReporter produces status lines while a long-running call is
// outstanding. The lines are cosmetic; they say nothing about how far the
// remote work has actually progressed.
type ProgressReporter interface {
	// Begin starts emitting lines for label to emit until the handle is ended.
	// emit must not call End on the returned handle.
	Begin(label string, emit ProgressFunc) ProgressHandle
}

// ProgressHandle controls an active progress sequence.
type ProgressHandle interface {
	// End stops emission. It is safe to call more than once. Once End
	// returns, emit is never called again for this handle.
	End()
}
