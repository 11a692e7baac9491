package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bottlebuddy/internal/config"
	"bottlebuddy/internal/finder/remote"
	"bottlebuddy/internal/logging"
	"bottlebuddy/internal/service"
	"bottlebuddy/internal/tui"
)

// app carries what PersistentPreRunE resolved to the subcommands.
type app struct {
	cfgPath string
	backend string
	verbose bool

	cfg    *config.AppConfig
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "bottlebuddy",
		Short: "Find wines by picking descriptors",
		Long: `Bottle Buddy lets you pick wine descriptors such as "dry", "oak" or
"tropical" and asks the search backend for matching wines.

Run without arguments to start the interactive interface.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/bottlebuddy/config.yaml if not provided)")
	root.PersistentFlags().StringVar(&a.backend, "backend", "", "Search backend base URL (overrides config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging")

	root.AddCommand(newFindCmd(a), newGlossaryCmd())
	return root
}

func (a *app) setup() error {
	_ = godotenv.Load()

	var err error
	if a.cfgPath == "" {
		a.cfg, _, err = config.LoadDefault()
	} else {
		a.cfg, err = config.Load(a.cfgPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.backend != "" {
		a.cfg.Backend.URL = a.backend
	}

	a.logger, err = logging.New(a.cfg.Log, a.verbose)
	if err != nil {
		return err
	}
	a.logger.Debug("config loaded", zap.String("backend", a.cfg.Backend.URL), zap.Duration("timeout", a.cfg.Backend.Timeout()))
	return nil
}

func (a *app) searchService() *service.SearchServiceImpl {
	client := remote.NewClient(remote.Config{
		BaseURL: a.cfg.Backend.URL,
		Timeout: a.cfg.Backend.Timeout(),
		Logger:  a.logger.Named("remote"),
	})
	return service.NewSearchService(client, a.logger.Named("search"))
}

func (a *app) runInteractive(ctx context.Context) error {
	a.logger.Info("starting", zap.String("backend", a.cfg.Backend.URL))
	m := tui.New(ctx, a.searchService(), a.logger.Named("tui"))
	defer m.Close()
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	a.logger.Info("stopped")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
