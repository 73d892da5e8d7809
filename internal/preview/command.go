package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/0tsuro/SparkCar/common/logger"
	"github.com/0tsuro/SparkCar/core/config"
	"github.com/0tsuro/SparkCar/internal/comparison"
	"github.com/0tsuro/SparkCar/internal/site"
)

type options struct {
	noAutoplay bool
	interval   time.Duration
	logFile    string
}

// NewRootCommand creates the sparkcar-preview command.
func NewRootCommand() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "sparkcar-preview",
		Short: "Preview the before/after comparison slider in the terminal",
		Long: `Renders the SparkCar before/after slider with the same interaction model as
the website: drag the handle with the mouse, use the arrow keys to change
slide, and let autoplay advance every few seconds.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noAutoplay, "no-autoplay", false, "disable automatic slide advance")
	cmd.Flags().DurationVar(&opts.interval, "interval", comparison.AutoplayInterval, "autoplay interval")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write debug logs to this file")

	return cmd
}

func run(ctx context.Context, opts options) error {
	if opts.interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", opts.interval)
	}

	cfg, err := config.Load(config.ServiceTypePreview)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := setupLogging(cfg, opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	slides := site.DefaultSlideSet()
	ctrl, err := comparison.NewController(slides)
	if err != nil {
		return fmt.Errorf("create controller: %w", err)
	}

	loopOpts := []comparison.Option{
		comparison.WithInterval(opts.interval),
		comparison.WithLogger(slog.Default()),
	}
	if opts.noAutoplay {
		loopOpts = append(loopOpts, comparison.WithoutAutoplay())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := comparison.NewLoop(ctrl, loopOpts...)
	loopErr := make(chan error, 1)
	go func() { loopErr <- loop.Run(ctx) }()

	p := tea.NewProgram(NewModel(ctx, cancel, loop, slides), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, runErr := p.Run()

	cancel()
	if err := <-loopErr; err != nil && !errors.Is(err, context.Canceled) {
		slog.ErrorContext(ctx, "comparison loop failed", "error", err)
	}

	if runErr != nil {
		return fmt.Errorf("run preview: %w", runErr)
	}
	return nil
}

// setupLogging keeps logs off the terminal while the TUI owns it.
func setupLogging(cfg config.Config, path string) (func(), error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level := slog.LevelDebug
	if cfg.IsProduction() {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(logger.NewTraceHandler(handler)).With("component", "sparkcar.preview"))

	return func() { _ = f.Close() }, nil
}
