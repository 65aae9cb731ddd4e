// Helpers for the standard library flag package.
package flagutils

import (
	"fmt"
	"strings"
)

// A flag.Value that collects every occurrence of a repeated flag.
type SliceFlag []string

func (f *SliceFlag) String() string {
	if f == nil {
		return ""
	}

	return strings.Join(*f, ",")
}

func (f *SliceFlag) Set(value string) error {
	if value == "" {
		return fmt.Errorf("value cannot be empty")
	}

	*f = append(*f, value)
	return nil
}
