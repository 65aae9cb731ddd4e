package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/pretty-date/internal/config"
	"github.com/sinclairtarget/pretty-date/internal/format"
	"github.com/sinclairtarget/pretty-date/internal/stamp"
)

const testNow = 1700000000

var testArgs = []string{"disk=1699999995", "load=1699996400", "1699913600"}

func testOpts(t *testing.T) reportOpts {
	t.Helper()

	opts, err := mergeOpts(
		config.Default(),
		"1700000000",
		0,
		"never",
		nil,
		time.Now(),
	)
	if err != nil {
		t.Fatalf("mergeOpts() returned error: %v", err)
	}

	return opts
}

func TestTable(t *testing.T) {
	var out bytes.Buffer
	err := table(nil, &out, testArgs, testOpts(t), false, false, 0)
	if err != nil {
		t.Fatalf("table() returned error: %v", err)
	}

	expected := strings.TrimLeft(`
┌──────────────────────────────────────────────────────────┐
│Label                          When                  Epoch│
├──────────────────────────────────────────────────────────┤
│disk                           just now         1699999995│
│load                           1 hour ago       1699996400│
│#3                             yesterday        1699913600│
└──────────────────────────────────────────────────────────┘
`, "\n")
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("table output is wrong:\n%s", diff)
	}
}

func TestTableLimit(t *testing.T) {
	var out bytes.Buffer
	err := table(nil, &out, testArgs, testOpts(t), false, false, 1)
	if err != nil {
		t.Fatalf("table() returned error: %v", err)
	}

	expected := strings.TrimLeft(`
┌──────────────────────────────────────────────────────────┐
│Label                          When                  Epoch│
├──────────────────────────────────────────────────────────┤
│disk                           just now         1699999995│
│...2 more...                                              │
└──────────────────────────────────────────────────────────┘
`, "\n")
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("table output is wrong:\n%s", diff)
	}
}

func TestTableEmpty(t *testing.T) {
	var out bytes.Buffer
	err := table(strings.NewReader("# nothing\n"), &out, nil, testOpts(t), false, false, 0)
	if err != nil {
		t.Fatalf("table() returned error: %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("expected no output for no stamps, got:\n%s", out.String())
	}
}

func TestTableCsv(t *testing.T) {
	var out bytes.Buffer
	err := table(nil, &out, testArgs, testOpts(t), true, true, 0)
	if err != nil {
		t.Fatalf("table() returned error: %v", err)
	}

	expected := strings.TrimLeft(`
label,epoch,time,when
disk,1699999995,2023-11-14T22:13:15Z,just now
load,1699996400,2023-11-14T21:13:20Z,1 hour ago
,1699913600,2023-11-13T22:13:20Z,yesterday
`, "\n")
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("csv output is wrong:\n%s", diff)
	}
}

func TestTableFromReader(t *testing.T) {
	input := "load 1699996400\ndisk 1699999995\n"

	opts := testOpts(t)
	opts.labels = []string{"disk"}

	var out bytes.Buffer
	err := table(strings.NewReader(input), &out, nil, opts, true, false, 0)
	if err != nil {
		t.Fatalf("table() returned error: %v", err)
	}

	expected := "label,epoch,time,when\ndisk,1699999995,2023-11-14T22:13:15Z,just now\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("csv output is wrong:\n%s", diff)
	}
}

func TestTableInvalidInput(t *testing.T) {
	var out bytes.Buffer
	err := table(strings.NewReader("disk later\n"), &out, nil, testOpts(t), false, false, 0)
	if err == nil {
		t.Fatal("expected error for invalid timestamp")
	}

	if !errors.Is(err, stamp.ErrInvalidTimestamp) {
		t.Errorf("expected ErrInvalidTimestamp, got: %v", err)
	}

	if !strings.HasPrefix(err.Error(), "error running \"table\"") {
		t.Errorf("expected error to name subcommand, got: %v", err)
	}
}

func TestAgo(t *testing.T) {
	var out bytes.Buffer
	err := ago(nil, &out, testArgs, testOpts(t))
	if err != nil {
		t.Fatalf("ago() returned error: %v", err)
	}

	expected := "just now\n1 hour ago\nyesterday\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("ago output is wrong:\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	var out bytes.Buffer
	err := parse(nil, &out, testArgs[:2], testOpts(t))
	if err != nil {
		t.Fatalf("parse() returned error: %v", err)
	}

	expected := "1: disk 1699999995\n2: load 1699996400\n2 stamps\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("parse output is wrong:\n%s", diff)
	}
}

func TestMergeOpts(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := &config.Config{JustNow: 30 * time.Second, Color: config.ColorAlways}

	opts, err := mergeOpts(c, "", 0, "", nil, start)
	if err != nil {
		t.Fatalf("mergeOpts() returned error: %v", err)
	}

	if !opts.now.Equal(start) {
		t.Errorf("expected now to be program start, got %v", opts.now)
	}

	if opts.relative.JustNow != 30*time.Second {
		t.Errorf("expected config window of 30s, got %s", opts.relative.JustNow)
	}

	if !opts.color {
		t.Error("expected color from config to be enabled")
	}

	opts, err = mergeOpts(c, "1700000000", time.Minute, "never", nil, start)
	if err != nil {
		t.Fatalf("mergeOpts() returned error: %v", err)
	}

	if !opts.now.Equal(format.Unix(testNow)) {
		t.Errorf("expected -now to pin reference time, got %v", opts.now)
	}

	if opts.relative.JustNow != time.Minute {
		t.Errorf("expected flag window of 1m, got %s", opts.relative.JustNow)
	}

	if opts.color {
		t.Error("expected -color never to disable color")
	}
}

func TestMergeOptsInvalid(t *testing.T) {
	start := time.Now()

	tests := []struct {
		name    string
		now     string
		justNow time.Duration
		color   string
	}{
		{"bad now", "yesterday", 0, ""},
		{"negative window", "", -time.Second, ""},
		{"bad color", "", 0, "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mergeOpts(config.Default(), tt.now, tt.justNow, tt.color, nil, start)
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
