package rope

// Limits bounds leaf grapheme counts. No leaf ever holds more than Max
// graphemes. The bulk builder and InsertAtGraphemeIndex produce non-root
// leaves of at least Min graphemes; RemoveBetweenGraphemeIndices and
// SplitAtGraphemeIndex can leave a non-root leaf below Min, and nothing
// restores that lower bound afterwards beyond the sibling-leaf merge in
// rebalance. The root may be smaller than Min when the whole document is
// small.
type Limits struct {
	Min int
	Max int
}

// MinNodeSize and MaxNodeSize are the default leaf bounds.
const (
	MinNodeSize = 64
	MaxNodeSize = 128
)

// DefaultLimits returns the default leaf bounds (64, 128).
func DefaultLimits() Limits {
	return Limits{Min: MinNodeSize, Max: MaxNodeSize}
}

// Valid reports whether l can back the balanced-chunk bulk builder:
// Max must be at least twice Min, matching the default constants
// (MaxNodeSize = 2 x MinNodeSize), since the builder's even-split
// guarantees that every chunk stays >= Min only under that
// relation. Exported so callers assembling Limits from outside sources
// (pkg/ropeconfig, for instance) can validate against the same rule
// this package enforces internally, rather than re-deriving it.
func (l Limits) Valid() bool {
	return l.Min > 0 && l.Max >= 2*l.Min
}
