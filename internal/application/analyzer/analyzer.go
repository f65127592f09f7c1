package analyzer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/es-debug/nginx-json-stats/internal/domain"
	"github.com/es-debug/nginx-json-stats/internal/parser"
	"github.com/es-debug/nginx-json-stats/internal/report"
	"github.com/es-debug/nginx-json-stats/internal/stats"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute runs the command line against os.Args.
func Execute() error {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command with args and prints any failure to stderr.
func Run(args []string, stdout, stderr io.Writer) error {
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)

		return err
	}

	return nil
}

// NewCommand builds the root command. The summary goes to stdout, logs to
// stderr. Errors are returned, not printed.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "nginxstats <log file>",
		Short:         "summarise response sizes and statuses of a JSON access log",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		// No flags at all, "-h" included; every argument is a path.
		DisableFlagParsing: true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd.ErrOrStderr())

		return Start(cmd.Context(), NewConfig(args[0]), cmd.OutOrStdout(), logger)
	}

	return cmd
}

// Start loads the log at cfg.Path, computes its summary and writes it to
// out as text.
func Start(ctx context.Context, cfg Config, out io.Writer, logger *log.Entry) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger = logger.WithField("path", cfg.Path)
	logger.Debug("loading log")

	records, err := parser.NewLoader(cfg.Workers).LoadFile(ctx, cfg.Path)
	if err != nil {
		logger.WithError(err).Debug("load failed")

		return NewErrReadLog(err)
	}

	logger.WithField("records", len(records)).Debug("log loaded")

	summary := stats.Compute(records)
	warnUndefined(logger, summary)

	if err := report.WriteText(out, summary); err != nil {
		return errors.Wrap(err, "report.WriteText()")
	}

	return nil
}

func warnUndefined(logger *log.Entry, summary domain.LogSummary) {
	groups := []struct {
		name  string
		stats domain.SizeStats
	}{
		{"all", summary.All},
		{"successful", summary.Successful},
		{"failed", summary.Failed},
	}

	for _, group := range groups {
		if !group.stats.Defined() {
			logger.WithField("group", group.name).Warn("no requests in group; size statistics are undefined")
		}
	}
}
