package sqlward

// StreamResult is a lazy, ordered, finite, non-restartable sequence of
// rows, rendered as a Go 1.23 range-over-func iterator. Fields become
// known after the first row arrives; per spec, the row-description event
// never fires before consumption begins and doesn't fire at all on a
// syntax error, so a caller that ranges over a failed stream observes
// exactly one (Row{}, err) pair and nothing else.
type StreamResult func(yield func(Row, error) bool)
