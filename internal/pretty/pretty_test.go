package pretty_test

import (
	"os"
	"testing"

	"github.com/sinclairtarget/pretty-date/internal/pretty"
)

func TestPaint(t *testing.T) {
	t.Cleanup(func() { pretty.SetColorEnabled(true) })

	pretty.SetColorEnabled(true)
	got := pretty.Paint(pretty.Green(), "just now")
	if got != "\x1b[32mjust now\x1b[0m" {
		t.Errorf("expected green text, got %q", got)
	}

	pretty.SetColorEnabled(false)
	got = pretty.Paint(pretty.Green(), "just now")
	if got != "just now" {
		t.Errorf("expected plain text with color disabled, got %q", got)
	}
}

func TestUseColor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if !pretty.UseColor("always", f) {
		t.Error("expected always to use color")
	}

	if pretty.UseColor("never", f) {
		t.Error("expected never to not use color")
	}

	if pretty.UseColor("auto", f) {
		t.Error("expected auto to not use color for a regular file")
	}
}
