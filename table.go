package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sinclairtarget/pretty-date/internal/format"
	"github.com/sinclairtarget/pretty-date/internal/pretty"
	"github.com/sinclairtarget/pretty-date/internal/stamp"
)

const colwidth = 60
const whenWidth = 15
const epochWidth = 11

// The "table" subcommand describes each timestamp relative to now in a table
// printed to w.
func table(
	r io.Reader,
	w io.Writer,
	args []string,
	opts reportOpts,
	useCsv bool,
	sortByAge bool,
	limit int,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"table\": %w", err)
		}
	}()

	logger().Debug(
		"called table()",
		"args",
		args,
		"now",
		opts.now,
		"justNow",
		opts.relative.JustNow,
		"labels",
		opts.labels,
		"useCsv",
		useCsv,
		"sortByAge",
		sortByAge,
		"limit",
		limit,
	)

	stamps, err := readStamps(r, args, opts.labels)
	if err != nil {
		return err
	}

	if sortByAge {
		stamp.SortByAge(stamps)
	}

	numFilteredOut := 0
	if limit > 0 && limit < len(stamps) {
		numFilteredOut = len(stamps) - limit
		stamps = stamps[:limit]
	}

	if useCsv {
		return writeCsv(w, stamps, opts)
	}

	pretty.SetColorEnabled(opts.color)
	writeTable(w, stamps, opts, numFilteredOut)
	return nil
}

func label(s stamp.Stamp) string {
	if s.Label == "" {
		return fmt.Sprintf("#%d", s.Line)
	}

	return s.Label
}

func toRecord(s stamp.Stamp, opts reportOpts) []string {
	return []string{
		s.Label,
		strconv.FormatInt(s.Epoch, 10),
		format.Timestamp(s.Epoch),
		opts.relative.RelativeTime(opts.now, format.Unix(s.Epoch)),
	}
}

func writeCsv(w io.Writer, stamps []stamp.Stamp, opts reportOpts) error {
	cw := csv.NewWriter(w)

	columnHeaders := []string{"label", "epoch", "time", "when"}
	if err := cw.Write(columnHeaders); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, s := range stamps {
		if err := cw.Write(toRecord(s, opts)); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("error flushing CSV writer: %w", err)
	}

	return nil
}

// Picks a color for the "When" column.
func whenColor(s stamp.Stamp, opts reportOpts) string {
	then := format.Unix(s.Epoch)
	switch {
	case then.After(opts.now):
		return pretty.Dim()
	case opts.relative.IsJustNow(opts.now, then):
		return pretty.Green()
	case opts.relative.IsLongAgo(opts.now, then):
		return pretty.Red()
	default:
		return ""
	}
}

func writeTable(
	w io.Writer,
	stamps []stamp.Stamp,
	opts reportOpts,
	numFilteredOut int,
) {
	if len(stamps) == 0 {
		return
	}

	labelWidth := colwidth - whenWidth - epochWidth - 4

	var build strings.Builder
	for _ = range colwidth - 2 {
		build.WriteRune('─')
	}
	rule := build.String()

	// -- Write header --
	fmt.Fprintf(w, "┌%s┐\n", rule)
	fmt.Fprintf(
		w,
		"│%-*s %-*s %*s│\n",
		labelWidth,
		"Label",
		whenWidth,
		"When",
		epochWidth,
		"Epoch",
	)
	fmt.Fprintf(w, "├%s┤\n", rule)

	// -- Write table rows --
	for _, s := range stamps {
		when := fmt.Sprintf(
			"%-*s",
			whenWidth,
			opts.relative.RelativeTime(opts.now, format.Unix(s.Epoch)),
		)

		fmt.Fprintf(
			w,
			"│%-*s %s %*d│\n",
			labelWidth,
			format.Abbrev(label(s), labelWidth),
			pretty.Paint(whenColor(s, opts), when),
			epochWidth,
			s.Epoch,
		)
	}

	if numFilteredOut > 0 {
		msg := fmt.Sprintf("...%s more...", format.Number(numFilteredOut))
		fmt.Fprintf(w, "│%-*s│\n", colwidth-2, msg)
	}

	fmt.Fprintf(w, "└%s┘\n", rule)
}
