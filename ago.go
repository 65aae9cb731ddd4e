package main

import (
	"fmt"
	"io"

	"github.com/sinclairtarget/pretty-date/internal/format"
)

// The "ago" subcommand prints one relative description per timestamp and
// nothing else.
func ago(r io.Reader, w io.Writer, args []string, opts reportOpts) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"ago\": %w", err)
		}
	}()

	logger().Debug("called ago()", "args", args, "now", opts.now)

	stamps, err := readStamps(r, args, opts.labels)
	if err != nil {
		return err
	}

	for _, s := range stamps {
		fmt.Fprintln(w, opts.relative.RelativeTime(opts.now, format.Unix(s.Epoch)))
	}

	return nil
}
