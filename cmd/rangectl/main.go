package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/henderiw/ranges/pkg/rangectl"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var version = "(devel)"

// logLevel parses name, with verbose forcing debug output.
func logLevel(name string, verbose bool) (slog.Level, error) {
	if verbose {
		return slog.LevelDebug, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, cli.Exit(fmt.Sprintf("invalid log level %q: %v", name, err), 1)
	}
	return level, nil
}

// newLogger writes to stderr, colouring the output only for a terminal.
func newLogger(level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
}

// rangeArgs fails a command unless it got exactly n ranges.
func rangeArgs(n int) cli.BeforeFunc {
	return func(cCtx *cli.Context) error {
		if cCtx.NArg() != n {
			return cli.Exit(fmt.Sprintf("%s expects %d ranges, got %d", cCtx.Command.Name, n, cCtx.NArg()), 1)
		}
		return nil
	}
}

const negativeNote = "Ranges starting with a minus, such as -10-10, go after --: rangectl relate -- -10-10 0-5."

func main() {
	var verbose bool
	var level, kind string

	cli.VersionFlag.(*cli.BoolFlag).Aliases = []string{"V"}
	app := &cli.App{
		Name:                   "rangectl",
		Usage:                  "Half-open range calculator",
		Description:            negativeNote,
		Version:                version,
		Suggest:                true,
		UseShortOptionHandling: true,
		EnableBashCompletion:   true,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "verbose output, same as --log-level debug",
				Destination: &verbose,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level, one of debug, info, warn, error",
				EnvVars:     []string{"RANGECTL_LOG_LEVEL"},
				Value:       "info",
				Destination: &level,
			},
			&cli.StringFlag{
				Name:        "kind",
				Aliases:     []string{"k"},
				Usage:       fmt.Sprintf("range kind, one of %v", rangectl.Kinds),
				EnvVars:     []string{"RANGECTL_KIND"},
				Value:       rangectl.KindInt,
				Destination: &kind,
				Action: func(_ *cli.Context, v string) error {
					if !slices.Contains(rangectl.Kinds, v) {
						return cli.Exit(fmt.Sprintf("unknown kind %q, want one of %v", v, rangectl.Kinds), 1)
					}
					return nil
				},
			},
		},
		Before: func(_ *cli.Context) error {
			l, err := logLevel(level, verbose)
			if err != nil {
				return err
			}
			slog.SetDefault(newLogger(l))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:        "relate",
				Usage:       "Show how two ranges relate",
				ArgsUsage:   "[--] <range> <range>",
				Description: negativeNote,
				Before:      rangeArgs(2),
				Action: func(cCtx *cli.Context) error {
					return rangectl.Relate(os.Stdout, kind, cCtx.Args().Get(0), cCtx.Args().Get(1))
				},
			},
			{
				Name:        "punch",
				Usage:       "Remove a range from another",
				ArgsUsage:   "[--] <range> <punch>",
				Description: negativeNote,
				Before:      rangeArgs(2),
				Action: func(cCtx *cli.Context) error {
					return rangectl.Punch(os.Stdout, kind, cCtx.Args().Get(0), cCtx.Args().Get(1))
				},
			},
			{
				Name:        "merge",
				Usage:       "Coalesce meeting and overlapping ranges",
				ArgsUsage:   "[--] <range>...",
				Description: negativeNote,
				Action: func(cCtx *cli.Context) error {
					return rangectl.Merge(os.Stdout, kind, cCtx.Args().Slice())
				},
			},
			{
				Name:        "gaps",
				Usage:       "Show the parts of a range the other ranges leave uncovered",
				ArgsUsage:   "[--] <within> <range>...",
				Description: negativeNote,
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() < 1 {
						return cli.Exit("gaps expects the range to search within", 1)
					}
					return rangectl.Gaps(os.Stdout, kind, cCtx.Args().First(), cCtx.Args().Tail())
				},
			},
			{
				Name:      "prefixes",
				Usage:     "Decompose an address range into prefixes",
				ArgsUsage: "<range>",
				Before:    rangeArgs(1),
				Action: func(cCtx *cli.Context) error {
					return rangectl.Prefixes(os.Stdout, cCtx.Args().Get(0))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Failed", "err", err.Error())
		os.Exit(1)
	}
}
