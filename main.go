package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundfeed/internal/app"
	"github.com/llehouerou/soundfeed/internal/config"
	"github.com/llehouerou/soundfeed/internal/errmsg"
	"github.com/llehouerou/soundfeed/internal/icons"
	"github.com/llehouerou/soundfeed/internal/mpris"
	"github.com/llehouerou/soundfeed/internal/playback"
	"github.com/llehouerou/soundfeed/internal/player"
	"github.com/llehouerou/soundfeed/internal/posts"
	"github.com/llehouerou/soundfeed/internal/state"
	"github.com/llehouerou/soundfeed/internal/stderr"
	"github.com/llehouerou/soundfeed/internal/views"
)

const usage = `usage:
  soundfeed               browse the feed configured in config.toml
  soundfeed play FILE...  play local audio files
`

var errNoAPI = errors.New("no api.base_url configured; set it in config.toml or use 'soundfeed play FILE...'")

func main() {
	if err := run(os.Args[1:]); err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpInitialize, err) + "\n")
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help" || args[0] == "help") {
		fmt.Print(usage)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	icons.Init(cfg.Icons)

	// The TUI owns the terminal; audio backend noise goes to the log.
	if err := stderr.Start(slog.Default()); err != nil {
		slog.Warn("stderr capture unavailable", "error", err)
	}
	defer stderr.Stop()

	opts := app.Options{Config: cfg}
	switch {
	case len(args) > 0 && args[0] == "play":
		if len(args) < 2 {
			fmt.Print(usage)
			return errors.New("play needs at least one file")
		}
		local, err := posts.NewLocal(args[1:])
		if err != nil {
			return err
		}
		opts.Source = local
		opts.Offline = true

	case len(args) > 0:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", args[0])

	case cfg.HasAPIConfig():
		store, err := state.Open()
		if err != nil {
			return fmt.Errorf("open state: %w", err)
		}
		defer store.Close()

		clientID, err := store.ClientID()
		if err != nil {
			return fmt.Errorf("client id: %w", err)
		}

		api := cfg.GetAPIConfig()
		client := posts.NewClient(api.BaseURL, api.Token, api.Timeout)
		opts.Source = client
		opts.Views = views.New(store, client, cfg.GetViewsConfig().Cooldown)
		opts.ClientID = clientID

	default:
		return errNoAPI
	}

	pb := cfg.GetPlaybackConfig()
	svc := playback.New(player.New(), playback.Config{
		PollInterval:    pb.PollInterval,
		DurationEpsilon: pb.DurationEpsilon,
		SeekSettle:      pb.SeekSettle,
		Logger:          slog.Default(),
	})
	defer svc.Close()
	// Config treats 0 as unset; an explicit 0 volume is honored here.
	svc.SetVolumeLevel(pb.Volume)
	opts.Playback = svc

	if cfg.MPRIS {
		adapter, err := mpris.New(svc)
		if err != nil {
			slog.Warn("mpris unavailable", "error", err)
		} else {
			defer adapter.Close()
		}
	}

	slog.Info("starting", "offline", opts.Offline, "api", cfg.API.BaseURL)

	p := tea.NewProgram(app.New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// setupLogging sends the default logger to the log file at the configured level.
func setupLogging(cfg *config.Config) (*os.File, error) {
	path, err := config.LogPath()
	if err != nil {
		return nil, fmt.Errorf("log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(h))
	return f, nil
}
