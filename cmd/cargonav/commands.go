package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/glabrego/cargonav/internal/app"
	"github.com/glabrego/cargonav/internal/config"
	"github.com/glabrego/cargonav/internal/content"
	"github.com/glabrego/cargonav/internal/logging"
	"github.com/glabrego/cargonav/internal/navbar"
	"github.com/glabrego/cargonav/internal/render/richtext"
	"github.com/glabrego/cargonav/internal/storage"
	"github.com/glabrego/cargonav/internal/tracking"
	"github.com/glabrego/cargonav/internal/tui"
	"github.com/glabrego/cargonav/internal/tui/platform"
)

const openTimeout = 15 * time.Second

type deps struct {
	openURL func(string) error
	copyURL func(string) error
	runTUI  func(*app.App, *tui.URLQueue) error
}

func defaultDeps() deps {
	return deps{
		openURL: platform.OpenURLInBrowser,
		copyURL: platform.CopyURLToClipboard,
		runTUI: func(a *app.App, queue *tui.URLQueue) error {
			program := tea.NewProgram(tui.NewModel(a, queue), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}
}

type flags struct {
	store string
	db    string
	log   string
}

func newRootCmd(d deps) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "cargonav",
		Short:         "Browse the Afgan Cargo site and track UPS packages from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			queue := &tui.URLQueue{}
			return withApp(cmd.Context(), f, queue, func(a *app.App) error {
				if err := d.runTUI(a, queue); err != nil {
					return fmt.Errorf("tui error: %w", err)
				}
				return nil
			})
		},
	}
	cmd.PersistentFlags().StringVar(&f.store, "store", "", "history backend: sqlite, file or memory (env CARGONAV_STORE)")
	cmd.PersistentFlags().StringVar(&f.db, "db", "", "history database path (env CARGONAV_DB_PATH)")
	cmd.PersistentFlags().StringVar(&f.log, "log", "", "log file path (env CARGONAV_LOG_PATH)")

	cmd.AddCommand(newTrackCmd(d, &f), newHistoryCmd(&f), newAboutCmd())
	return cmd
}

func newTrackCmd(d deps, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "track <tracking-number>",
		Short: "Validate a tracking number, record it and open its tracking page.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queue := &tui.URLQueue{}
			return withApp(cmd.Context(), *f, queue, func(a *app.App) error {
				if _, err := a.Search.Submit(args[0]); err != nil {
					return errors.New(tracking.Message(err))
				}
				for _, url := range queue.Drain() {
					fmt.Fprintln(cmd.OutOrStdout(), url)
					if err := d.openURL(url); err == nil {
						continue
					}
					if err := d.copyURL(url); err != nil {
						return fmt.Errorf("could not open URL or copy to clipboard: %s", url)
					}
					fmt.Fprintln(cmd.ErrOrStderr(), "Could not open browser, tracking link copied to clipboard")
				}
				return nil
			})
		},
	}
}

func newHistoryCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or edit the recent tracking searches.",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print recent searches, most recent first.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd.Context(), *f, nil, func(a *app.App) error {
					entries := a.History.Entries()
					if len(entries) == 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "No recent searches found.")
						return nil
					}
					for _, q := range entries {
						fmt.Fprintln(cmd.OutOrStdout(), q)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rm <tracking-number>",
			Short: "Remove one recent search.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd.Context(), *f, nil, func(a *app.App) error {
					a.Search.DeleteHistoryEntry(tracking.Query(args[0]))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every recent search.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd.Context(), *f, nil, func(a *app.App) error {
					a.Search.ClearHistory()
					return nil
				})
			},
		},
	)
	return cmd
}

func newAboutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Print the about section as plain text.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site, err := content.Default()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n\n", site.Brand, site.About.Heading)
			fmt.Fprintln(out, richtext.PlainText(site.About.Body))
			for _, h := range site.About.Highlights {
				fmt.Fprintf(out, "\n%s\n  %s\n", h.Title, h.Description)
			}
			return nil
		},
	}
}

func loadConfig(f flags) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}
	if f.store != "" {
		cfg.Store = f.store
	}
	if f.db != "" {
		cfg.DBPath = f.db
	}
	if f.log != "" {
		cfg.LogPath = f.log
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

// withApp opens the configured store, runs fn and closes everything again.
// A nil opener is fine for commands that never submit a search.
func withApp(ctx context.Context, f flags, opener navbar.URLOpener, fn func(*app.App) error) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogPath, cfg.Debug)
	if err != nil {
		return fmt.Errorf("logger init error: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if ctx == nil {
		ctx = context.Background()
	}
	openCtx, cancel := context.WithTimeout(ctx, openTimeout)
	defer cancel()

	a, err := app.Open(openCtx, cfg, logger, opener)
	if err != nil {
		if cfg.Store == storage.BackendSQLite {
			return fmt.Errorf("%w. Verify CARGONAV_DB_PATH is writable: %s", err, cfg.DBPath)
		}
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("store close failed", zap.Error(err))
		}
	}()
	return fn(a)
}
