package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"bptree/bptree"

	"github.com/fatih/color"
)

func init() {
	// keep command output assertable
	color.NoColor = true
}

// run feeds the shell a script of commands and returns everything it printed.
func run(t *testing.T, tr *bptree.Tree[string], script string) string {
	t.Helper()
	var out bytes.Buffer
	c := NewCli(bufio.NewScanner(strings.NewReader(script)), tr, &out)
	c.Start()
	return out.String()
}

func newTree() *bptree.Tree[string] {
	return bptree.New[string](bptree.DefaultMaxKeys, strings.Compare)
}

func TestInsertSearchDelete(t *testing.T) {
	tr := newTree()
	out := run(t, tr, "INSERT apple\nSEARCH apple\nDELETE apple\nSEARCH apple\nEXIT\n")

	if tr.Search("apple") || tr.Len() != 0 {
		t.Fatal("tree not empty after delete")
	}
	for _, want := range []string{
		`Inserted "apple" (1 keys)`,
		`Found "apple"`,
		`Deleted "apple" (0 keys)`,
		`Not found: "apple"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDeleteAbsentKeyReportsNotFound(t *testing.T) {
	tr := newTree()
	out := run(t, tr, "DELETE ghost\nEXIT\n")

	if !strings.Contains(out, `Not found: "ghost"`) {
		t.Fatalf("output missing not-found status:\n%s", out)
	}
}

func TestScanListsKeysInOrder(t *testing.T) {
	tr := newTree()
	out := run(t, tr, "INSERT b\nINSERT a\nINSERT c\nSCAN\nEXIT\n")

	scanIdx := strings.Index(out, "3 keys")
	if scanIdx < 0 {
		t.Fatalf("scan footer missing:\n%s", out)
	}
	a, b, c := strings.LastIndex(out[:scanIdx], "a\n"), strings.LastIndex(out[:scanIdx], "b\n"), strings.LastIndex(out[:scanIdx], "c\n")
	if a < 0 || b < 0 || c < 0 || !(a < b && b < c) {
		t.Fatalf("scan output not in ascending order:\n%s", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	tr := newTree()
	out := run(t, tr, "FROBNICATE\nEXIT\n")

	if !strings.Contains(out, `Unknown command "frobnicate"`) {
		t.Fatalf("output missing unknown-command report:\n%s", out)
	}
}

func TestUsageOnMissingArgument(t *testing.T) {
	tr := newTree()
	out := run(t, tr, "INSERT\nSEARCH\nDELETE\nEXIT\n")

	for _, want := range []string{"Usage: INSERT <key>", "Usage: SEARCH <key>", "Usage: DELETE <key>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExitStopsLoopWithoutTouchingIndex(t *testing.T) {
	tr := newTree()
	out := run(t, tr, "INSERT a\nEXIT\nINSERT b\n")

	if tr.Len() != 1 {
		t.Fatalf("Len() = %d, commands after EXIT should not run", tr.Len())
	}
	if strings.Contains(out, `Inserted "b"`) {
		t.Fatalf("command after EXIT was processed:\n%s", out)
	}
}

func TestShowRendersTree(t *testing.T) {
	tr := newTree()
	out := run(t, tr, "INSERT 1\nINSERT 2\nINSERT 3\nINSERT 4\nINSERT 5\nSHOW\nEXIT\n")

	if !strings.Contains(out, "level 0") || !strings.Contains(out, "level 1") {
		t.Fatalf("SHOW output missing levels:\n%s", out)
	}
}

func TestBlankLineReprompts(t *testing.T) {
	tr := newTree()
	out := run(t, tr, "\n\nEXIT\n")

	if got := strings.Count(out, "> "); got != 3 {
		t.Fatalf("prompt printed %d times, want 3", got)
	}
}
