package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

var Commit = "unknown"
var Version = "unknown"

var progStart time.Time

type command struct {
	flagSet     *flag.FlagSet
	run         func(args []string) error
	description string
}

// Main examines the args and delegates to the specified subcommand.
//
// If no subcommand was specified, we default to the "table" subcommand.
func main() {
	subcommands := map[string]command{ // Available subcommands
		"ago":   agoCmd(),
		"parse": parseCmd(),
		"table": tableCmd(),
	}

	// --- Handle top-level flags ---
	mainFlagSet := flag.NewFlagSet("pretty-date", flag.ExitOnError)

	versionFlag := mainFlagSet.Bool("version", false, "Print version and exit")
	verboseFlag := mainFlagSet.Bool("v", false, "Enables debug logging")

	mainFlagSet.Usage = func() {
		fmt.Println("Usage: pretty-date [-v] [subcommand] [subcommand options...] [timestamps...]")
		fmt.Println("pretty-date describes epoch timestamps relative to now")

		fmt.Println()
		fmt.Println("Top-level options:")
		mainFlagSet.PrintDefaults()

		fmt.Println()
		fmt.Println("Subcommands:")

		helpSubcommands := []string{"table", "ago"}
		for _, name := range helpSubcommands {
			cmd := subcommands[name]

			fmt.Printf("  %s\n", name)
			fmt.Printf("\t%s\n", cmd.description)
		}
	}

	// Look for the index of the first arg not intended as a top-level flag.
	// We handle this manually so that specifying the default subcommand is
	// optional even when providing subcommand flags.
	subcmdIndex := 1
loop:
	for subcmdIndex < len(os.Args) {
		switch os.Args[subcmdIndex] {
		case "-version", "--version", "-v", "--v", "-h", "--help":
			subcmdIndex += 1
		default:
			break loop
		}
	}

	mainFlagSet.Parse(os.Args[1:subcmdIndex])

	if *versionFlag {
		fmt.Printf("%s %s\n", Version, Commit)
		return
	}

	if *verboseFlag {
		configureLogging(slog.LevelDebug)
		logger().Debug("log level set to DEBUG")
	} else {
		configureLogging(slog.LevelInfo)
	}

	args := os.Args[subcmdIndex:]

	// --- Handle subcommands ---
	cmd := subcommands["table"] // Default to "table"
	if len(args) > 0 {
		first := args[0]
		if subcommand, ok := subcommands[first]; ok {
			cmd = subcommand
			args = args[1:]
		}
	}

	cmd.flagSet.Parse(args)
	subargs := cmd.flagSet.Args()

	progStart = time.Now()
	if err := cmd.run(subargs); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// -v- Subcommand definitions --------------------------------------------------

func tableCmd() command {
	flagSet := flag.NewFlagSet("pretty-date table", flag.ExitOnError)

	useCsv := flagSet.Bool("csv", false, "Output as csv")
	sortByAge := flagSet.Bool("s", false, "Sort by age, most recent first")
	limit := flagSet.Int("n", 0, "Limit rows in table (set to 0 for no limit)")

	reportFlags := addReportFlags(flagSet)

	description := "Print out a table describing each timestamp"

	flagSet.Usage = func() {
		fmt.Println(strings.TrimSpace(`
Usage: pretty-date table [options...] [[label=]epoch...]
		`))
		fmt.Println(description)
		fmt.Println()
		flagSet.PrintDefaults()
	}

	return command{
		flagSet:     flagSet,
		description: description,
		run: func(args []string) error {
			if *limit < 0 {
				return errors.New("-n flag must be a positive integer")
			}

			opts, err := reportFlags.resolve()
			if err != nil {
				return err
			}

			return table(
				os.Stdin,
				os.Stdout,
				args,
				opts,
				*useCsv,
				*sortByAge,
				*limit,
			)
		},
	}
}

func agoCmd() command {
	flagSet := flag.NewFlagSet("pretty-date ago", flag.ExitOnError)

	reportFlags := addReportFlags(flagSet)

	description := "Print only the relative description of each timestamp"

	flagSet.Usage = func() {
		fmt.Println(strings.TrimSpace(`
Usage: pretty-date ago [options...] [[label=]epoch...]
		`))
		fmt.Println(description)
		fmt.Println()
		flagSet.PrintDefaults()
	}

	return command{
		flagSet:     flagSet,
		description: description,
		run: func(args []string) error {
			opts, err := reportFlags.resolve()
			if err != nil {
				return err
			}

			return ago(os.Stdin, os.Stdout, args, opts)
		},
	}
}

func parseCmd() command {
	flagSet := flag.NewFlagSet("pretty-date parse", flag.ExitOnError)

	reportFlags := addReportFlags(flagSet)

	return command{
		flagSet: flagSet,
		run: func(args []string) error {
			opts, err := reportFlags.resolve()
			if err != nil {
				return err
			}

			return parse(os.Stdin, os.Stdout, args, opts)
		},
	}
}

// -^---------------------------------------------------------------------------

func configureLogging(level slog.Level) {
	handler := slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{
			Level: level,
		},
	)
	logger := slog.New(handler)
	slog.SetDefault(logger)
}
