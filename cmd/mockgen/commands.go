package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/migudevelop/openapi-mock-generator/internal/api"
	"github.com/migudevelop/openapi-mock-generator/internal/app"
	"github.com/migudevelop/openapi-mock-generator/internal/fake"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newGenerateCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate mock files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sink, err := f.logger(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			cfg, err := f.load(cmd, sink)
			if err != nil {
				return err
			}

			_, err = app.New(cfg, app.WithLogger(sink)).Generate()
			return err
		},
	}
}

func newServeCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Generate mocks in memory and serve them over HTTP",
		Long: `Generate mocks in memory and serve them over HTTP.
The server runs until interrupted (Ctrl+C).

  GET /healthz
  GET /                 schema names with record counts
  GET /{schema}         all records of a schema
  GET /{schema}/{id}    one record by id`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sink, err := f.logger(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			cfg, err := f.load(cmd, sink)
			if err != nil {
				return err
			}

			cache, err := app.New(cfg, app.WithLogger(sink)).Run()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := api.NewRouter(cache, api.WithLogger(sink))
			server := api.NewServer(cfg.Port, router, sink)

			errChan := make(chan error, 1)
			go func() {
				errChan <- server.Start()
			}()

			select {
			case err := <-errChan:
				if err != nil {
					sink.Error(fmt.Sprintf("Server error: %v", err))
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Stop(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
				sink.Error(fmt.Sprintf("Error shutting down server: %v", err))
				return err
			}

			sink.Success("Mock server stopped")
			return <-errChan
		},
	}
}

func newFakesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fakes",
		Short: "List the names accepted by the x-faker schema extension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range fake.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
