package trace

// DefaultWindow is how many leading samples each figure keeps. Longer traces overplot into an
// unreadable smear, so later samples are dropped rather than decimated.
const DefaultWindow = 500

// Window returns a trace holding the first min(Len, limit) samples of t in their original order.
// The result remembers the length of the loaded file, so callers can tell that samples were cut.
func Window(t *Trace, limit int) *Trace {
	if limit < 0 {
		limit = 0
	}
	if limit > len(t.rows) {
		limit = len(t.rows)
	}
	return &Trace{
		Path:      t.Path,
		channels:  t.channels,
		index:     t.index,
		rows:      t.rows[:limit:limit],
		sourceLen: t.sourceLen,
	}
}
