package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sinclairtarget/pretty-date/internal/config"
	"github.com/sinclairtarget/pretty-date/internal/flagutils"
	"github.com/sinclairtarget/pretty-date/internal/format"
	"github.com/sinclairtarget/pretty-date/internal/pretty"
	"github.com/sinclairtarget/pretty-date/internal/stamp"
)

// Flags shared by every subcommand that reports on timestamps.
type reportFlags struct {
	now        *string
	justNow    *time.Duration
	configPath *string
	color      *string
	labels     flagutils.SliceFlag
}

func addReportFlags(set *flag.FlagSet) *reportFlags {
	flags := reportFlags{
		now: set.String("now", "", strings.TrimSpace(`
Describe timestamps relative to this epoch instead of the current time
		`)),
		justNow: set.Duration("just-now", 0, strings.TrimSpace(`
Timestamps more recent than this are "just now" (default from config, or 10s)
		`)),
		configPath: set.String("config", "", "Path to config file"),
		color:      set.String("color", "", "When to use color: auto, always or never"),
	}

	set.Var(&flags.labels, "label", strings.TrimSpace(`
Only report timestamps with this label. Can be specified multiple times
	`))

	return &flags
}

// Everything a subcommand needs to describe timestamps, after merging the
// config file and flags.
type reportOpts struct {
	now      time.Time
	relative format.RelativeOpts
	labels   []string
	color    bool
}

func (f *reportFlags) resolve() (reportOpts, error) {
	c, err := config.Load(*f.configPath)
	if err != nil {
		return reportOpts{}, fmt.Errorf("could not load config: %w", err)
	}

	return mergeOpts(c, *f.now, *f.justNow, *f.color, f.labels, progStart)
}

// Flag values override config values. An empty or zero flag means unset.
func mergeOpts(
	c *config.Config,
	nowFlag string,
	justNow time.Duration,
	colorFlag string,
	labels []string,
	start time.Time,
) (reportOpts, error) {
	opts := reportOpts{
		now:      start,
		relative: format.RelativeOpts{JustNow: c.JustNow},
		labels:   labels,
	}

	if nowFlag != "" {
		epoch, err := strconv.ParseInt(nowFlag, 10, 64)
		if err != nil {
			return reportOpts{}, fmt.Errorf(
				"-now flag must be an epoch timestamp: %w",
				err,
			)
		}

		opts.now = format.Unix(epoch)
	}

	if justNow < 0 {
		return reportOpts{}, fmt.Errorf(
			"-just-now flag must not be negative, got %s",
			justNow,
		)
	} else if justNow > 0 {
		opts.relative.JustNow = justNow
	}

	mode := c.Color
	if colorFlag != "" {
		mode = config.ColorMode(colorFlag)
		if err := mode.Validate(); err != nil {
			return reportOpts{}, fmt.Errorf("bad -color flag: %w", err)
		}
	}
	opts.color = pretty.UseColor(string(mode), os.Stdout)

	return opts, nil
}

// Reads stamps from args if there are any, otherwise from r.
func readStamps(r io.Reader, args []string, labels []string) ([]stamp.Stamp, error) {
	var stamps []stamp.Stamp
	var err error

	if len(args) > 0 {
		stamps, err = stamp.FromArgs(args)
	} else {
		stamps, err = stamp.Collect(stamp.Parse(r))
	}
	if err != nil {
		return nil, fmt.Errorf("could not read timestamps: %w", err)
	}

	logger().Debug("read stamps", "count", len(stamps), "fromArgs", len(args) > 0)
	return stamp.Filter(stamps, labels), nil
}
