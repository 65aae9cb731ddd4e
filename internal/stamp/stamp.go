// Parsing of labelled epoch timestamps.
package stamp

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// An epoch timestamp read from input.
type Stamp struct {
	Label string
	Epoch int64
	Line  int // 1-based line number or argument position
}

func (s Stamp) String() string {
	if s.Label == "" {
		return fmt.Sprintf("%d: %d", s.Line, s.Epoch)
	}

	return fmt.Sprintf("%d: %s %d", s.Line, s.Label, s.Epoch)
}

func parseEpoch(field string, line int) (int64, error) {
	epoch, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf(
			"%w \"%s\" on line %d: %w",
			ErrInvalidTimestamp,
			field,
			line,
			err,
		)
	}

	return epoch, nil
}

// Parses a single line of the form "EPOCH" or "LABEL EPOCH".
//
// The label may itself contain whitespace; the epoch is always the last field.
func parseLine(text string, lineNo int) (Stamp, error) {
	text = strings.TrimSpace(text)

	i := strings.LastIndexAny(text, " \t")
	if i < 0 {
		epoch, err := parseEpoch(text, lineNo)
		if err != nil {
			return Stamp{}, err
		}

		return Stamp{Epoch: epoch, Line: lineNo}, nil
	}

	epoch, err := parseEpoch(text[i+1:], lineNo)
	if err != nil {
		return Stamp{}, err
	}

	return Stamp{
		Label: strings.TrimSpace(text[:i]),
		Epoch: epoch,
		Line:  lineNo,
	}, nil
}

// Returns an iterator over the stamps read from r, one per line.
//
// Blank lines and lines starting with "#" are skipped. Iteration stops after
// the first error.
func Parse(r io.Reader) iter.Seq2[Stamp, error] {
	return func(yield func(Stamp, error) bool) {
		scanner := bufio.NewScanner(r)
		lineNo := 0

		for scanner.Scan() {
			lineNo += 1

			text := strings.TrimSpace(scanner.Text())
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}

			s, err := parseLine(text, lineNo)
			if err != nil {
				yield(Stamp{}, err)
				return
			}

			if !yield(s, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(Stamp{}, fmt.Errorf("error reading input: %w", err))
		}
	}
}

// Parses stamps given as command-line arguments, each "EPOCH" or
// "LABEL=EPOCH".
func FromArgs(args []string) ([]Stamp, error) {
	stamps := make([]Stamp, 0, len(args))

	for i, arg := range args {
		var s Stamp
		var err error

		label, value, found := strings.Cut(arg, "=")
		if found {
			s.Epoch, err = parseEpoch(strings.TrimSpace(value), i+1)
			s.Label = strings.TrimSpace(label)
		} else {
			s.Epoch, err = parseEpoch(strings.TrimSpace(arg), i+1)
		}
		if err != nil {
			return nil, err
		}

		s.Line = i + 1
		stamps = append(stamps, s)
	}

	return stamps, nil
}

// Collects all stamps from the iterator, or returns the first error.
func Collect(seq iter.Seq2[Stamp, error]) ([]Stamp, error) {
	stamps := []Stamp{}
	for s, err := range seq {
		if err != nil {
			return nil, err
		}

		stamps = append(stamps, s)
	}

	return stamps, nil
}

// Keeps only the stamps with one of the given labels. With no labels, all
// stamps are kept.
func Filter(stamps []Stamp, labels []string) []Stamp {
	if len(labels) == 0 {
		return stamps
	}

	return slices.DeleteFunc(slices.Clone(stamps), func(s Stamp) bool {
		return !slices.Contains(labels, s.Label)
	})
}

// Sorts stamps so the most recent comes first. Ties keep input order.
func SortByAge(stamps []Stamp) {
	slices.SortStableFunc(stamps, func(a, b Stamp) int {
		return cmp.Compare(b.Epoch, a.Epoch)
	})
}
