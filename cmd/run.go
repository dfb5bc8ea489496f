package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/denguerisk/internal/app"
	"github.com/abhisek/denguerisk/internal/form"
)

// runApp loads the model and launches the terminal form.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	booster, err := loadModel(cfg.ModelPath)
	if err != nil {
		return fmt.Errorf("model unavailable: %w", err)
	}

	return app.Run(app.Options{
		Context:   cmd.Context(),
		Reducer:   form.NewReducer(booster),
		Threshold: cfg.Threshold,
	})
}
