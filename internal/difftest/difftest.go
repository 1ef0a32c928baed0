// Package difftest gives the property-based rope tests a readable failure
// message when two long strings diverge. A raw %q dump of two 100,000-rune
// strings is useless for finding the one wrong grapheme; a diff is not.
package difftest

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RequireTextEqual fails t with a readable diff between want and got if
// they differ, rather than dumping both strings in full.
func RequireTextEqual(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	t.Fatalf("text mismatch:\n%s", dmp.DiffPrettyText(diffs))
}
