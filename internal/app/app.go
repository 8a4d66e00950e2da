package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/smsshield/internal/classify"
	"github.com/five82/smsshield/internal/config"
	"github.com/five82/smsshield/internal/prefs"
	"github.com/five82/smsshield/internal/state"
	"github.com/five82/smsshield/internal/ui"
)

// Options configure the SMS Shield application.
type Options struct {
	Config    config.Config
	Logger    *slog.Logger
	PrefsPath string // empty uses default ~/.config/smsshield/prefs.toml
	UserAgent string // empty uses the client default
}

// Run boots the SMS Shield TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	logger := loggerOrDiscard(opts.Logger)

	client, err := newClient(opts)
	if err != nil {
		return fmt.Errorf("init classifier client: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	controller := state.NewController(client, logger)
	health := &state.Health{}

	// First check runs immediately and doubles as the startup preflight.
	StartPoller(ctx, health, client, defaultPollInterval, logger)

	logger.Info("starting ui", "endpoint", client.Endpoint(), "theme", userPrefs.Theme, "layout", userPrefs.Layout)
	return ui.Run(ctx, ui.Options{
		Controller: controller,
		Health:     health,
		Logger:     logger,
		Endpoint:   client.Endpoint(),
		ThemeName:  userPrefs.Theme,
		Layout:     userPrefs.Layout,
		PrefsPath:  prefsPath,
	})
}

// Classify runs one classification of text outside the TUI. Blank text
// returns state.ErrEmptyInput without contacting the backend.
func Classify(ctx context.Context, opts Options, text string) (state.Outcome, error) {
	client, err := newClient(opts)
	if err != nil {
		return state.Outcome{}, fmt.Errorf("init classifier client: %w", err)
	}
	controller := state.NewController(client, loggerOrDiscard(opts.Logger))
	return controller.Submit(ctx, text)
}

// CheckHealth pings the backend origin once.
func CheckHealth(ctx context.Context, opts Options) (string, error) {
	client, err := newClient(opts)
	if err != nil {
		return "", fmt.Errorf("init classifier client: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return client.Endpoint(), client.Ping(pingCtx)
}

func newClient(opts Options) (*classify.Client, error) {
	clientOpts := []classify.Option{classify.WithTimeout(opts.Config.Timeout)}
	if opts.UserAgent != "" {
		clientOpts = append(clientOpts, classify.WithUserAgent(opts.UserAgent))
	}
	return classify.NewClient(opts.Config.Endpoint, clientOpts...)
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
