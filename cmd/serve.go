package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/loom-sh/loom/core"
	"github.com/loom-sh/loom/core/logger"
)

// serveCmd exposes the REPL over SSH.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the REPL over SSH on the configured port.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		events := logger.Nop()
		if logFd, err := configuration.OpenAppLog(); err == nil {
			defer logFd.Close()
			events = logger.NewJSONLines(logFd)
		}

		server, err := core.NewServer(configuration, events)
		if err != nil {
			return err
		}

		go func() {
			log.Printf("Serving SSH on port %d", configuration.SSH.Port)
			if err := server.ListenAndServe(); err != nil {
				log.Fatal(err)
			}
		}()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigs
		log.Printf("Got signal %q, terminating...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server shutdown failed: %s", err)
		}
		log.Print("Server exited")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
