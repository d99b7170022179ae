package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"opsdeck/internal/config"
	"opsdeck/internal/eventbus"
	"opsdeck/internal/logging"
	"opsdeck/internal/prefs"
	"opsdeck/internal/registry"
	"opsdeck/internal/router"
	"opsdeck/internal/ui"
)

var (
	flagConfig string
	flagPrefs  string
	flagLog    string
	flagTheme  string
	flagTenant string
	flagDebug  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "opsdeck",
		Short: "Terminal admin console with a command palette",
		Long: `opsdeck is a multi-portal admin console for the terminal.

Portals (billing, deployments, observability, settings) live in the
sidebar; Ctrl+K opens a command palette over all navigation items and
quick actions. Navigation and actions come from a TOML config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to config file (default: user config dir)")
	rootCmd.Flags().StringVar(&flagPrefs, "prefs", "", "path to prefs file (default: "+prefs.DefaultFileName+" in the home dir)")
	rootCmd.Flags().StringVar(&flagLog, "log", "", "path to log file (default: "+logging.DefaultFileName+")")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "start with this theme (dark or light)")
	rootCmd.Flags().StringVar(&flagTenant, "tenant", "", "start with this tenant selected")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logPath := flagLog
	if logPath == "" {
		logPath = logging.DefaultFileName
	}
	logger, err := logging.New(logPath, flagDebug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	bus := eventbus.New(logger)

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := loadConfig(configSvc, logger)
	if err != nil {
		return err
	}

	if flagTheme != "" {
		if !containsTheme(flagTheme) {
			return fmt.Errorf("unknown theme %q%s", flagTheme, config.Suggest(flagTheme, config.KnownThemes))
		}
		cfg.UISettings.Theme = flagTheme
	}

	store := prefs.NewFileStore(prefsPath())
	p, err := store.Load()
	if err != nil {
		logger.Warn("failed to load prefs, starting fresh", zap.Error(err))
		p = prefs.Prefs{}
	}
	if flagTheme != "" {
		// An explicit flag wins over whatever was persisted
		p.Theme = flagTheme
	}
	if flagTenant != "" {
		p.TenantID = flagTenant
	}

	reg := registry.New(cfg, logger)
	rtr := router.New(bus, logger)

	model := ui.NewModel(cfg, reg, rtr, store, bus, logger, logPath, p)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	model.SetProgram(program)

	// Forward bus events into the program loop. The UI only ever reacts to
	// messages, never to bus callbacks directly.
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			logger.Warn("event channel full, dropping event",
				zap.String("type", string(e.Type())))
		}
	}
	for _, et := range []eventbus.EventType{
		eventbus.EventNavigationRequested,
		eventbus.EventError,
	} {
		bus.Subscribe(et, forward)
	}
	go func() {
		for event := range eventChan {
			program.Send(ui.EventMsg{Event: event})
		}
	}()

	logger.Info("starting opsdeck",
		zap.String("log", logPath),
		zap.Int("navigation", len(cfg.Navigation)),
		zap.Int("actions", len(cfg.Actions)))

	if _, err := program.Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		return err
	}

	close(eventChan)
	logger.Info("opsdeck exited")
	return nil
}

// loadConfig loads the config from the flag path or the default location,
// falling back to the built-in defaults when no file exists.
func loadConfig(svc config.ConfigService, logger *zap.Logger) (*config.Config, error) {
	if flagConfig != "" {
		cfg, err := svc.LoadFromPath(flagConfig)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded config", zap.String("path", flagConfig))
		return cfg, nil
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// prefsPath puts prefs in the home directory unless overridden.
func prefsPath() string {
	if flagPrefs != "" {
		return flagPrefs
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return prefs.DefaultFileName
	}
	return filepath.Join(home, prefs.DefaultFileName)
}

func containsTheme(theme string) bool {
	for _, t := range config.KnownThemes {
		if t == theme {
			return true
		}
	}
	return false
}
