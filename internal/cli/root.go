package cli

import (
	"github.com/spf13/cobra"

	"gazetteer/internal/app"
)

// NewRootCmd builds the gazetteer command tree.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		prefsPath  string
		baseURL    string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:   "gazetteer",
		Short: "Browse a countries collection in the terminal",
		Long: `Gazetteer is a terminal browser for a countries collection endpoint.

It shows one page of countries at a time and keeps the page, page size,
filter, and sort in step with the endpoint: every change fetches a fresh
page rather than slicing rows locally.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: configPath,
				PrefsPath:  prefsPath,
				BaseURL:    baseURL,
				LogLevel:   logLevel,
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/gazetteer/config.toml)")
	rootCmd.Flags().StringVar(&prefsPath, "prefs", "", "preferences file path (default ~/.config/gazetteer/prefs.toml)")
	rootCmd.Flags().StringVar(&baseURL, "server", "", "countries endpoint base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(newServeCmd(&logLevel))

	return rootCmd
}
