package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/philipp01105/asynclog/handler/consolehandler"
	"github.com/philipp01105/asynclog/logger"
)

type options struct {
	dir       string
	prefix    string
	maxSizeMB int
	minLevel  string
	level     string
	color     string
	stats     bool
}

func newRootCmd() *cobra.Command {
	def := logger.DefaultConfig()
	opts := options{
		dir:       def.Directory,
		prefix:    def.FilePrefix,
		maxSizeMB: def.MaxFileSizeMB,
		minLevel:  "info",
		level:     "info",
		color:     "auto",
	}

	cmd := &cobra.Command{
		Use:   "asynclog",
		Short: "Pipe stdin lines into a rotating log",
		Long: "asynclog logs every line read from stdin at a fixed level. Lines go to stdout, " +
			"colored by level, and to {dir}/{prefix}.log, which is archived as " +
			"{prefix}_{yyyyMMdd_HHmmss}.log once it exceeds --max-size-mb.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVar(&opts.dir, "dir", opts.dir, "log directory")
	f.StringVar(&opts.prefix, "prefix", opts.prefix, "log file prefix")
	f.IntVar(&opts.maxSizeMB, "max-size-mb", opts.maxSizeMB, "rotate the active file once it exceeds this size")
	f.StringVar(&opts.minLevel, "min-level", opts.minLevel, "drop entries below this level (debug, info, warning, error)")
	f.StringVar(&opts.level, "level", opts.level, "level every stdin line is logged at")
	f.StringVar(&opts.color, "color", opts.color, "console colors: auto, always or never")
	f.BoolVar(&opts.stats, "stats", false, "print pipeline counters to stderr on exit")
	return cmd
}

func run(ctx context.Context, opts options, in io.Reader, out, errOut io.Writer) error {
	diag := clog.NewWithOptions(errOut, clog.Options{
		ReportTimestamp: true,
		Prefix:          "asynclog",
	})

	minLevel, err := logger.ParseLevel(opts.minLevel)
	if err != nil {
		return fmt.Errorf("--min-level: %w", err)
	}
	level, err := logger.ParseLevel(opts.level)
	if err != nil {
		return fmt.Errorf("--level: %w", err)
	}
	color, ok := consolehandler.ParseColorMode(opts.color)
	if !ok {
		return fmt.Errorf("--color: unknown mode %q", opts.color)
	}

	log, err := logger.NewBuilder().
		WithDirectory(opts.dir).
		WithFilePrefix(opts.prefix).
		WithMaxFileSizeMB(opts.maxSizeMB).
		WithLevel(minLevel).
		WithConsole(out).
		WithColor(color).
		WithErrorHandler(func(err error) {
			diag.Error("write failed", "err", err)
		}).
		Build()
	if err != nil {
		return err
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		const maxBuf = 1024 * 1024
		scanner.Buffer(make([]byte, 64*1024), maxBuf)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

loop:
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				break loop
			}
			log.Log(level, line)
		case <-ctx.Done():
			diag.Warn("interrupted, draining queued lines")
			break loop
		}
	}

	shutdownErr := log.Shutdown()
	if opts.stats {
		s := log.Stats()
		diag.Info("done",
			"queued", s.Queued,
			"written", s.File.ProcessedTotal,
			"failed", s.File.FailedTotal+s.Console.FailedTotal,
			"rotated", s.File.RotatedTotal,
		)
	}

	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	default:
	}
	return shutdownErr
}
