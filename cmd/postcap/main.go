package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/postcap"
	pcgoquery "github.com/fwojciec/postcap/goquery"
	pchttp "github.com/fwojciec/postcap/http"
	pcrod "github.com/fwojciec/postcap/rod"
	pcslog "github.com/fwojciec/postcap/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run parses the command line and executes the selected command.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := stdlog.New(stdlog.NewTextHandler(stderr, &stdlog.HandlerOptions{
		Level: stdlog.LevelWarn,
	}))

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: pcslog.NewLoggingExtractor(pcgoquery.NewExtractor(), logger),
		NewFetcher: func() (postcap.Fetcher, error) {
			fetcher, err := pcrod.NewFetcher()
			if err != nil {
				return nil, err
			}
			return pcslog.NewLoggingFetcher(fetcher, logger), nil
		},
		NewReporter: func(endpoint string) postcap.Reporter {
			return pcslog.NewLoggingReporter(
				pchttp.NewReporter(endpoint, pchttp.WithRateLimit(1)),
				logger,
			)
		},
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("postcap"),
		kong.Description("Extract structured records from social media post markup"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'postcap --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run()
}
