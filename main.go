package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sinclairtarget/magit-stats/internal/config"
	"github.com/sinclairtarget/magit-stats/internal/git"
	"github.com/sinclairtarget/magit-stats/internal/git/cmd"
	"github.com/sinclairtarget/magit-stats/internal/output"
	"github.com/sinclairtarget/magit-stats/internal/pretty"
	"github.com/sinclairtarget/magit-stats/internal/report"
	"github.com/sinclairtarget/magit-stats/internal/subcommands"
)

var Commit = "unknown"
var Version = "unknown"

var progStart time.Time

var errFormatFlags = errors.New(
	"only one of --json, --yaml, --text and --html can be given",
)

// Flags shared by every subcommand.
type logFlags struct {
	config    string
	verbose   bool
	all       bool
	noMailmap bool
	since     string
	until     string
	timezone  string
	authors   []string
	nauthors  []string
}

type outputFlags struct {
	json   bool
	yaml   bool
	text   bool
	html   bool
	stdout bool
	name   string
	minify bool
	open   bool
}

func main() {
	progStart = time.Now()

	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", pretty.Red("[magit-stats]"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var lf logFlags
	var of outputFlags

	rootCmd := &cobra.Command{
		Use:   "magit-stats [flags] [revisions...] [[--] paths...]",
		Short: "Generate statistics from the commit log of a git repository",
		Long: strings.TrimSpace(`
magit-stats reads the commit log of the git repository in the current
directory and reports commit counts per author, per hour of the day and per
day of the week, along with the dates of the first and last commits.

The report is written to magit-stats.html by default.`),
		Version:       fmt.Sprintf("%s %s", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if lf.verbose {
				configureLogging(slog.LevelDebug)
				logger().Debug("log level set to DEBUG")
			} else {
				configureLogging(slog.LevelInfo)
			}
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runReport(c, withDash(c, args), lf, of)
		},
	}

	rootCmd.SetVersionTemplate("{{ .Version }}\n")

	addLogFlags(rootCmd, &lf)

	flags := rootCmd.Flags()
	flags.BoolVar(&of.json, "json", false, "Write the report as JSON")
	flags.BoolVar(&of.yaml, "yaml", false, "Write the report as YAML")
	flags.BoolVar(&of.text, "text", false, "Write the report as plain text")
	flags.BoolVar(&of.html, "html", false, "Write the report as an HTML page (default)")
	flags.BoolVar(&of.stdout, "stdout", false, strings.TrimSpace(`
Print the report instead of writing a file. Also writes a file when --name is given
	`))
	flags.StringVar(&of.name, "name", "", strings.TrimSpace(`
Base name of the report file (default "magit-stats")
	`))
	flags.BoolVar(&of.minify, "minify", false, "Minify JSON and HTML output")
	flags.BoolVar(&of.open, "open", false, "Open the written report file")

	rootCmd.AddCommand(dumpCmd(&lf))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// -v- Subcommand definitions --------------------------------------------------

func dumpCmd(lf *logFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump [revisions...] [[--] paths...]",
		Short: "Print each commit as read from git log",
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfig(lf.config)
			if err != nil {
				return err
			}

			applyLogFlags(c, cfg, *lf)

			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			revs, paths, err := git.ParseArgs(withDash(c, args))
			if err != nil {
				return fmt.Errorf("could not parse args: %w", err)
			}

			return subcommands.Dump(
				os.Stdout,
				revs,
				paths,
				logFilters(cfg),
				cfg.Log.Mailmap,
				loc,
			)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "magit-stats %s (commit: %s)\n", Version, Commit)
		},
	}
}

// -^---------------------------------------------------------------------------

func runReport(
	c *cobra.Command,
	args []string,
	lf logFlags,
	of outputFlags,
) error {
	if !isOnlyOne(of.json, of.yaml, of.text, of.html) {
		return errFormatFlags
	}

	cfg, err := loadConfig(lf.config)
	if err != nil {
		return err
	}

	applyLogFlags(c, cfg, lf)
	applyOutputFlags(c, cfg, of)

	err = cfg.Validate()
	if err != nil {
		return err
	}

	format, err := cfg.ReportFormat()
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	_, err = git.GetRoot()
	if err != nil {
		return err
	}

	revs, paths, err := git.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("could not parse args: %w", err)
	}

	sink := output.Sink{Open: cfg.Open}
	if cfg.Stdout {
		sink.Stdout = os.Stdout
	}
	if !cfg.Stdout || cfg.Name != "" {
		sink.Path = output.FileName(cfg.Name, format.Extension())
	}

	if sink.Path == "" {
		pretty.UseColorFor(os.Stdout)
	} else {
		pretty.SetColorEnabled(false)
	}

	path, err := subcommands.Report(subcommands.ReportOpts{
		Revs:      revs,
		Pathspecs: paths,
		Filters:   logFilters(cfg),
		Mailmap:   cfg.Log.Mailmap,
		Location:  loc,
		Format:    format,
		Minify:    cfg.Minify,
		Sink:      sink,
	})
	if err != nil {
		return err
	}

	if path != "" {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", path)
	}

	logger().Debug(
		"finished",
		"duration_ms",
		time.Since(progStart).Milliseconds(),
	)
	return nil
}

// Config is read from the repository root, falling back to the home
// directory. Outside a repository only the home directory is searched.
func loadConfig(path string) (*config.Config, error) {
	searchDirs := []string{}

	root, err := git.GetRoot()
	if err == nil {
		searchDirs = append(searchDirs, root)
	} else {
		logger().Debug("not searching repository for config", "err", err)
	}

	home, err := os.UserHomeDir()
	if err == nil {
		searchDirs = append(searchDirs, home)
	}

	return config.Load(path, searchDirs)
}

func addLogFlags(c *cobra.Command, lf *logFlags) {
	flags := c.PersistentFlags()
	flags.StringVar(&lf.config, "config", "", strings.TrimSpace(`
Path to a config file (default .magit-stats.yaml in the repository or home directory)
	`))
	flags.BoolVarP(&lf.verbose, "verbose", "v", false, "Enables debug logging")
	flags.BoolVar(&lf.all, "all", false, "Read commits reachable from any ref")
	flags.BoolVar(&lf.noMailmap, "no-mailmap", false, "Ignore .mailmap when reading author names and emails")
	flags.StringVar(&lf.since, "since", "", strings.TrimSpace(`
Only count commits after the given date. See git-commit(1) for valid date formats
	`))
	flags.StringVar(&lf.until, "until", "", strings.TrimSpace(`
Only count commits before the given date. See git-commit(1) for valid date formats
	`))
	flags.StringVar(&lf.timezone, "timezone", "", strings.TrimSpace(`
Time zone to bucket commits in: "local", "utc" or an IANA name (default "local")
	`))
	flags.StringArrayVar(&lf.authors, "author", nil, strings.TrimSpace(`
Only count commits by these authors. Can be specified multiple times
	`))
	flags.StringArrayVar(&lf.nauthors, "nauthor", nil, strings.TrimSpace(`
Exclude commits by these authors. Can be specified multiple times
	`))
}

// Flags given on the command line win over the config file and environment.
func applyLogFlags(c *cobra.Command, cfg *config.Config, lf logFlags) {
	flags := c.Flags()

	if flags.Changed("all") {
		cfg.Log.All = lf.all
	}
	if flags.Changed("no-mailmap") {
		cfg.Log.Mailmap = !lf.noMailmap
	}
	if flags.Changed("since") {
		cfg.Log.Since = lf.since
	}
	if flags.Changed("until") {
		cfg.Log.Until = lf.until
	}
	if flags.Changed("timezone") {
		cfg.Timezone = lf.timezone
	}
	if flags.Changed("author") {
		cfg.Log.Authors = lf.authors
	}
	if flags.Changed("nauthor") {
		cfg.Log.NotAuthors = lf.nauthors
	}
}

func applyOutputFlags(c *cobra.Command, cfg *config.Config, of outputFlags) {
	flags := c.Flags()

	switch {
	case of.json:
		cfg.Format = report.JSON.String()
	case of.yaml:
		cfg.Format = report.YAML.String()
	case of.text:
		cfg.Format = report.Text.String()
	case of.html:
		cfg.Format = report.HTML.String()
	}

	if flags.Changed("stdout") {
		cfg.Stdout = of.stdout
	}
	if flags.Changed("name") {
		cfg.Name = of.name
	}
	if flags.Changed("minify") {
		cfg.Minify = of.minify
	}
	if flags.Changed("open") {
		cfg.Open = of.open
	}
}

func logFilters(cfg *config.Config) cmd.LogFilters {
	return cmd.LogFilters{
		Since:    cfg.Log.Since,
		Until:    cfg.Log.Until,
		Authors:  cfg.Log.Authors,
		Nauthors: cfg.Log.NotAuthors,
		All:      cfg.Log.All,
	}
}

// Cobra drops the "--" separator; put it back so git rev-parse can tell
// revisions from paths.
func withDash(c *cobra.Command, args []string) []string {
	dash := c.ArgsLenAtDash()
	if dash < 0 {
		return args
	}

	withSep := make([]string, 0, len(args)+1)
	withSep = append(withSep, args[:dash]...)
	withSep = append(withSep, "--")
	withSep = append(withSep, args[dash:]...)
	return withSep
}

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

// Used to check mutual exclusion.
func isOnlyOne(flags ...bool) bool {
	var foundOne bool
	for _, f := range flags {
		if f {
			if foundOne {
				return false
			}

			foundOne = true
		}
	}

	return true
}
