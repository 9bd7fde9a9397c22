package app

import (
	"context"
	"fmt"

	"gazetteer/internal/config"
	"gazetteer/internal/countries"
	"gazetteer/internal/listview"
	"gazetteer/internal/logging"
	"gazetteer/internal/prefs"
	"gazetteer/internal/state"
	"gazetteer/internal/ui"
)

// Options configure the gazetteer application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/gazetteer/prefs.toml
	BaseURL    string // overrides the config file when set
	LogLevel   string // overrides the config file when set
}

// Run boots the gazetteer TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	log := logging.New(cfg.LogLevel, nil)

	client, err := countries.NewClient(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("init countries client: %w", err)
	}

	pageSize := cfg.PageSize
	if userPrefs.PageSize != 0 {
		pageSize = userPrefs.PageSize
	}

	store := &state.Store{}
	controller := listview.New(client, store, log, pageSize)

	uiOpts := ui.Options{
		Context:    ctx,
		Controller: controller,
		Store:      store,
		BaseURL:    cfg.BaseURL,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
