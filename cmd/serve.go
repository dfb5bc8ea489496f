package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/denguerisk/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the risk form in a local browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		booster, err := loadModel(cfg.ModelPath)
		if err != nil {
			return fmt.Errorf("model unavailable: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx, cfg, server.New(booster, cfg.Threshold))
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides DENGUE_ADDR and PORT)")
}
