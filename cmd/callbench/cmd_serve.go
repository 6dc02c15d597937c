package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"callbench/internal/config"
	"callbench/internal/store"
	"callbench/internal/webserver"
)

var servePort int

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook server that collects call transcripts",
		Long: `Run the webhook server.

The voice platform posts call events to /webhook/vapi; end-of-call
reports are normalized and written to the transcripts directory. Run
this in one terminal and "callbench run" in another, with the server
reachable at WEBHOOK_BASE_URL.`,
		Args: cobra.NoArgs,
		RunE: serveCommandE,
	}

	cmd.Flags().IntVar(&servePort, "port", 0, "Listen port (default: WEBHOOK_PORT or 8765)")

	return cmd
}

func serveCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	env := config.LoadEnv()

	port := cfg.Server.Port
	if env.WebhookPort != 0 {
		port = env.WebhookPort
	}
	if servePort != 0 {
		port = servePort
	}

	srv := webserver.NewServer(webserver.Config{
		Port:        port,
		Transcripts: store.NewTranscriptStore(cfg.Paths.Transcripts),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	fmt.Fprintln(cmd.OutOrStdout(), "shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
