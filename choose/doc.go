// Package choose provides a blocking option picker for the console.
//
// Choose renders an arrow-key list on a terminal and falls back to a plain
// line prompt (backed by the ask package) when stdin is not a TTY:
//
//	flavor, err := choose.Choose("Pick a flavor", "vanilla", "chocolate")
//	if errors.Is(err, ask.ErrCanceled) {
//		// user backed out
//	}
package choose
