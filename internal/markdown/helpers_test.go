package markdown

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// assertHTML fails with a unified diff, one tag per line, when got and
// want differ.
func assertHTML(t *testing.T, got, want string) {
	t.Helper()

	if got == want {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(splitTags(want)),
		B:        difflib.SplitLines(splitTags(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("computing diff: %v", err)
	}
	t.Errorf("HTML mismatch:\n got: %q\nwant: %q\n%s", got, want, diff)
}

func splitTags(s string) string {
	return strings.ReplaceAll(s, "><", ">\n<") + "\n"
}

func assertFragments(t *testing.T, got, want []Fragment) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d fragments %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fragment %d = %v, want %v", i, got[i], want[i])
		}
	}
}
