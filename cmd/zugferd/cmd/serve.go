package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/zugferd/internal/logger"
	"github.com/rezonia/zugferd/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server that renders invoice descriptors.

The API provides endpoints for:
  - POST /api/v1/invoices/xml   - JSON descriptor in, CII XML out
  - GET  /health                - Health check

Flags override the [server] section of the configuration.

Examples:
  # Start server on the configured address
  zugferd serve

  # Start on a custom port
  zugferd serve --address :9090

  # Start in debug mode
  zugferd serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 30*time.Second, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	config := &server.Config{
		Address:      cfg.Server.Address,
		MaxBodySize:  cfg.Server.MaxBodySize,
		Indent:       cfg.Output.Indent,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Debug:        cfg.Server.Debug,
	}

	flags := cmd.Flags()
	if flags.Changed("address") {
		config.Address = serverAddr
	}
	if flags.Changed("debug") {
		config.Debug = serverDebug
	}
	if flags.Changed("read-timeout") {
		config.ReadTimeout = readTimeout
	}
	if flags.Changed("write-timeout") {
		config.WriteTimeout = writeTimeout
	}

	srv := server.NewServer(config)
	log := logger.WithComponent("serve")

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("Shutting down server")
		os.Exit(0)
	}()

	return srv.Run()
}
