package cmd

import (
	"context"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/dock/internal/app"
	"github.com/zhubert/dock/internal/config"
	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/store"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	storeKind             string
	storePath             string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "dock",
	Short: "Resizable panel layout for the terminal",
	Long: `Dock is a terminal editor shell with a resizable layout: a catalog column of
stacked sections on the left, a preview canvas in the middle and a collapsible
inspector on the right. Drag the grips with the mouse or focus them with tab and
use the arrow keys. Panel sizes persist between runs.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.dock/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Layout store: file, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&storePath, "store-path", "", "Layout store path (default under the config directory)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("dock %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("dock %s\n", version)
}

// loadConfig reads the config file and applies the command line overrides.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if storeKind != "" {
		cfg.SetStoreKind(storeKind)
	}
	if storePath != "" {
		cfg.SetStorePath(storePath)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openedStore is the layout store selected by the config.
type openedStore struct {
	adapter *store.Adapter
	// file is set for the file backend so it can be watched.
	file   *store.FileBackend
	closer io.Closer
}

func (s *openedStore) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// openStore opens the backend named by cfg. Failures are reported through
// the logger like every other storage failure.
func openStore(cfg *config.Config) (*openedStore, error) {
	opt := store.WithReporter(store.LogReporter)

	switch cfg.StoreKind() {
	case config.StoreMemory:
		return &openedStore{adapter: store.New(store.NewMemoryBackend(), opt)}, nil

	case config.StoreSQLite:
		db, err := store.OpenSQLite(cfg.StorePath())
		if err != nil {
			return nil, err
		}
		return &openedStore{adapter: store.New(db, opt), closer: db}, nil

	default:
		fb := store.NewFileBackend(cfg.StorePath())
		return &openedStore{adapter: store.New(fb, opt), file: fb}, nil
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()
	log := logger.ComponentLogger("cmd")

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("error opening layout store: %w", err)
	}
	defer st.Close()

	// Create and run the app
	m := app.New(app.Options{Config: cfg, Store: st.adapter})
	defer m.Close()
	p := tea.NewProgram(m)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if st.file != nil && cfg.WatchStore() {
		go func() {
			err := st.file.Watch(ctx, func() { p.Send(app.LayoutChangedMsg{}) })
			if err != nil {
				log.Warn("Layout watcher stopped", "error", err)
			}
		}()
	}

	log.Info("Starting dock", "version", version, "store", cfg.StoreKind(), "path", cfg.StorePath())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
