package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/prdhouse/prdhouse/internal/api"
	"github.com/prdhouse/prdhouse/internal/app"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the localhost HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		application, err := app.New(cfg)
		if err != nil {
			return err
		}
		server := api.NewServer(cfg, application)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			log.Info("shutting down", "signal", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Stop(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port override for the API server")
	rootCmd.AddCommand(serveCmd)
}
