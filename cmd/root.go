package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Nao-Mk2/usedlog/internal/logging"
	"github.com/Nao-Mk2/usedlog/internal/render"
	"github.com/Nao-Mk2/usedlog/internal/store"
	"github.com/Nao-Mk2/usedlog/internal/tracker"
	"github.com/Nao-Mk2/usedlog/internal/util"
	"github.com/spf13/cobra"
)

// ErrUnknownCommand is returned when no known verb was given. Usage has
// already been printed when it is returned.
var ErrUnknownCommand = errors.New("unknown command")

const usageText = `
  Usage: usedlog [command] ...

  Commands:
  - help                 outputs this message
  - summary              renders a table of your used items sorted by last used date
  - used <items...>      stores usage of items in db
                         (items after -- are taken literally)

  Flags:
  --filter <jmespath>    only show entries matching the expression (summary, used)
  -v, --verbose          log debug details to stderr
`

func init() {
	cobra.EnableCaseInsensitive = true
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

func printHint(w io.Writer) {
	fmt.Fprintln(w, "\n> Huh?")
	printUsage(w)
}

// Deps are the collaborators the command tree runs against.
type Deps struct {
	Config *Config
	Stdout io.Writer
	Now    func() time.Time
}

// NewRootCommand builds the command tree for args (without the program name).
func NewRootCommand(deps Deps, args []string) *cobra.Command {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	opts := &Options{}
	logStore := store.NewFile(deps.Config.DBPath)
	aggregator := tracker.NewAggregator(logStore)
	recorder := tracker.NewRecorder(logStore, deps.Stdout)

	printSummary := func() error {
		entries, err := aggregator.Summarize()
		if err != nil {
			return err
		}
		entries, err = util.FilterEntries(entries, opts.Filter)
		if err != nil {
			return err
		}
		return render.Table(deps.Stdout, entries)
	}

	root := &cobra.Command{
		Use:           "usedlog",
		Short:         "Track when you last used things",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			logging.Setup(opts.Verbose)
			slog.Debug("config resolved", "db", deps.Config.DBPath)
			if CountFlagOccurrences(args, "--filter") > 1 {
				return errors.New("--filter specified multiple times")
			}
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			printHint(deps.Stdout)
			return ErrUnknownCommand
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		printHint(deps.Stdout)
		return fmt.Errorf("%w: %v", ErrUnknownCommand, err)
	})
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug details to stderr")
	root.SetHelpFunc(func(*cobra.Command, []string) { printUsage(deps.Stdout) })
	root.SetHelpCommand(&cobra.Command{
		Use:   "help",
		Short: "Print usage",
		Args:  cobra.ArbitraryArgs,
		Run: func(*cobra.Command, []string) {
			printUsage(deps.Stdout)
		},
	})

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Render a table of used items sorted by last used date",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return printSummary()
		},
	}
	summaryCmd.Flags().StringVar(&opts.Filter, "filter", "", "JMESPath expression selecting entries")

	var used UsedArgs
	usedCmd := &cobra.Command{
		Use:   "used <items...>",
		Short: "Store usage of items in db",
		// Items may start with a dash, so flags are split out by ParseUsedArgs.
		DisableFlagParsing: true,
		Args: func(_ *cobra.Command, args []string) error {
			var err error
			if used, err = ParseUsedArgs(args); err != nil {
				return err
			}
			opts.Verbose = opts.Verbose || used.Verbose
			opts.Filter = used.Filter
			if len(used.Items) == 0 && !used.Help {
				return errors.New("used requires at least one item")
			}
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			if used.Help {
				printUsage(deps.Stdout)
				return nil
			}
			if err := recorder.Record(used.Items, deps.Now()); err != nil {
				return err
			}
			return printSummary()
		},
	}

	root.AddCommand(summaryCmd, usedCmd)
	root.SetArgs(args)
	root.SetOut(deps.Stdout)
	return root
}
