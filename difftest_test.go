package cyan

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// assertDumpEqual compares two Dump()-style strings and, on mismatch,
// fails the test with a unified diff instead of dumping both strings in
// full — mirroring how the teacher repository's golden-file test suite
// (tests/) reports fixture mismatches.
func assertDumpEqual(t *testing.T, want, got, context string) {
	t.Helper()
	if want == got {
		return
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		text = "(failed to render diff: " + err.Error() + ")"
	}
	t.Fatalf("%s: dump mismatch:\n%s", context, text)
}
