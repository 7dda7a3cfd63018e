package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/tipsfortoday/internal/catalog"
	"github.com/fakeyudi/tipsfortoday/internal/config"
	"github.com/fakeyudi/tipsfortoday/internal/logs"
	"github.com/fakeyudi/tipsfortoday/internal/selector"
	"github.com/fakeyudi/tipsfortoday/internal/session"
	"github.com/fakeyudi/tipsfortoday/internal/tui"
)

// cfg holds the merged configuration, populated in PersistentPreRunE.
var cfg config.Config

var (
	logger     logs.Logger
	logFile    *os.File
	store      session.SessionStore
	tipCatalog *catalog.Catalog
	tipPicker  *selector.Selector
)

var (
	storeFlag string
	seedFlag  int64
)

// newCatalog supplies the catalog at startup. Replaced in tests.
var newCatalog = func() (*catalog.Catalog, error) {
	return catalog.Builtin(), nil
}

// now is the clock used for session bookkeeping. Replaced in tests.
var now = time.Now

var rootCmd = &cobra.Command{
	Use:          "tips",
	Short:        "Tips for Today: funny advice that accidentally teaches you Python",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load and merge config files.
		global, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("loading global config: %w", err)
		}
		project, err := config.LoadProject()
		if err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		cfg = config.ApplyEnv(config.Merge(global, project))

		// Flags win over files and environment.
		if storeFlag != "" {
			cfg.Store = storeFlag
		}
		if seedFlag != 0 {
			cfg.Seed = seedFlag
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if err := openLogger(); err != nil {
			return err
		}

		// An empty catalog cannot produce an index; refuse to start.
		tipCatalog, err = newCatalog()
		if err != nil {
			return fmt.Errorf("loading tips: %w", err)
		}
		tipPicker, err = selector.New(tipCatalog.Size(), selector.NewSource(cfg.Seed))
		if err != nil {
			return err
		}

		store, err = openStore(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("opening session store: %w", err)
		}
		logger.DebugContext(cmd.Context(), "startup", "store", cfg.Store, "tips", tipCatalog.Size())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd()) {
			return runTUI(cmd.Context())
		}
		return showTip(cmd, false, cfg.DefaultFormat)
	},
}

func openLogger() error {
	dir, err := session.DataDir()
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}
	f, err := logs.OpenFile(dir)
	if err != nil {
		return err
	}
	logFile = f
	logger = logs.New(logs.Options{
		Level:   cfg.LogLevel,
		Writer:  f,
		Journal: cfg.LogJournal,
	})
	return nil
}

func closeLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func runTUI(ctx context.Context) error {
	s, started, err := session.Resume(ctx, store, cfg.TTL(), now())
	if err != nil {
		return err
	}
	logSession(ctx, s, started)
	return tui.Run(ctx, tui.Options{
		Catalog:  tipCatalog,
		Selector: tipPicker,
		Store:    store,
		Session:  s,
		Logger:   logger,
		Now:      now,
	})
}

func logSession(ctx context.Context, s *session.Session, started bool) {
	if started {
		logger.InfoContext(ctx, "session started", "session", s.ID)
		return
	}
	logger.DebugContext(ctx, "session resumed", "session", s.ID, "age", now().Sub(s.StartTime).Round(time.Second))
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// GetConfig returns the merged configuration for use by subcommands.
func GetConfig() config.Config {
	return cfg
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "session store: disk, memory or dynamodb (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "random seed for tip selection (0 = clock)")
	cobra.OnFinalize(closeLogger)
}
