package main

import (
	"fmt"
	"io"
)

// Just prints out a simple representation of the stamps read from input for
// debugging.
func parse(r io.Reader, w io.Writer, args []string, opts reportOpts) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"parse\": %w", err)
		}
	}()

	logger().Debug("called parse()", "args", args)

	stamps, err := readStamps(r, args, opts.labels)
	if err != nil {
		return err
	}

	for _, s := range stamps {
		fmt.Fprintf(w, "%s\n", s)
	}

	fmt.Fprintf(w, "%d stamps\n", len(stamps))
	return nil
}
