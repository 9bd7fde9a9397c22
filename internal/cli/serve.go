package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"gazetteer/internal/logging"
	"gazetteer/internal/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(logLevel *string) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local countries endpoint with sample data",
		Long: `Serve runs a small countries endpoint backed by a built-in dataset.

It implements the same contract the browser expects: offset/limit paging,
one filter field, sortField/sortDirection, and an X-Total-Count header
carrying the filtered total.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if logLevel != nil && *logLevel != "" {
				level = *logLevel
			}
			log := logging.New(level, nil)

			handler := server.NewHandler(nil, log)
			srv := &http.Server{
				Addr:              listen,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", listen).Msg("countries endpoint listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:8790", "address to listen on")

	return cmd
}
