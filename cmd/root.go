package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"quickshow-cli/config"
	"quickshow-cli/service"
	"quickshow-cli/tui"
)

const appName = "quickshow"

var (
	apiURLFlag string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "QuickShow in your terminal",
	Long:  `Browse the movies now showing, pick a date and showtime, and choose up to 5 seats.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(tui.Options{})
	},
	SilenceUsage: true,
}

func Execute(version, commit string) {
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "show API base URL (defaults to the built-in catalog)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write debug logs to debug.log")
	rootCmd.AddCommand(seatsCmd, newVersionCmd(version, commit))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appEnv is everything a command needs once flags and the environment are
// resolved.
type appEnv struct {
	cfg    config.Config
	source service.Source
	logger *slog.Logger
	close  func()
}

func setup() (appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return appEnv{}, err
	}
	if apiURLFlag != "" {
		cfg.APIURL = strings.TrimRight(strings.TrimSpace(apiURLFlag), "/")
	}
	if debugFlag {
		cfg.Debug = true
	}
	if err := cfg.Finalize(); err != nil {
		return appEnv{}, err
	}

	rt := appEnv{cfg: cfg, close: func() {}}
	rt.logger = slog.New(slog.DiscardHandler)
	if cfg.Debug {
		f, err := tea.LogToFile("debug.log", appName)
		if err != nil {
			return appEnv{}, fmt.Errorf("open debug log: %w", err)
		}
		rt.logger = newLogger(f)
		rt.close = func() { _ = f.Close() }
	}

	if cfg.UseFixtures() {
		src, err := service.NewFixtureSource()
		if err != nil {
			rt.close()
			return appEnv{}, err
		}
		rt.source = src
		rt.logger.Debug("using built-in catalog")
	} else {
		client := service.NewClient(cfg.APIURL, &http.Client{Timeout: cfg.RequestTimeout}, service.WithLogger(rt.logger))
		rt.source = service.NewCachedSource(client, cfg.CacheTTL, rt.logger)
		rt.logger.Debug("using show API", "url", cfg.APIURL, "cache_ttl", cfg.CacheTTL)
	}
	return rt, nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func runTUI(opts tui.Options) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	opts.Source = rt.source
	opts.Logger = rt.logger
	opts.Location = rt.cfg.Location
	opts.ToastDuration = rt.cfg.ToastDuration
	opts.RequestTimeout = rt.cfg.RequestTimeout

	if _, err := tea.NewProgram(tui.New(opts), tea.WithAltScreen()).Run(); err != nil {
		rt.logger.Error("program exited", "err", err)
		return err
	}
	return nil
}
