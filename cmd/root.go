package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/denguerisk/internal/config"
	"github.com/abhisek/denguerisk/internal/features"
	"github.com/abhisek/denguerisk/internal/model"
	"github.com/abhisek/denguerisk/internal/risk"
)

var rootCmd = &cobra.Command{
	Use:   "denguerisk",
	Short: "Dengue severity risk form",
	Long:  "denguerisk scores a dengue patient with a trained XGBoost model and flags high severity risk against an adjustable threshold.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("model", "", "Path to the XGBoost JSON model (overrides DENGUE_MODEL_PATH)")
	rootCmd.PersistentFlags().Float64("threshold", -1, "Decision threshold in [0,1] (overrides DENGUE_THRESHOLD)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig builds the config from the environment, then applies
// --model and --threshold (highest priority).
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("model"); p != "" {
		cfg.ModelPath = p
	}
	if cmd.Flags().Changed("threshold") {
		v, _ := cmd.Flags().GetFloat64("threshold")
		t, err := risk.NewThreshold(v)
		if err != nil {
			return config.Config{}, fmt.Errorf("--threshold: %w", err)
		}
		cfg.Threshold = t
	}
	return cfg, cfg.Validate()
}

// loadModel loads the artifact once at startup. Failure is fatal to the
// command; a column contract that differs from the form is only a warning
// since every prediction checks it again.
func loadModel(path string) (*model.Booster, error) {
	b, err := model.Load(path)
	if err != nil {
		return nil, err
	}
	warnContract(os.Stderr, b)
	return b, nil
}

// warnContract flags an artifact whose columns differ from the form's.
// Artifacts without feature names are checked by count.
func warnContract(w io.Writer, p model.Predictor) {
	if err := model.CheckContract(p, features.Columns()); err != nil {
		fmt.Fprintln(w, "warning: model", p.ModelID(), "does not match the form columns; predictions will fail:", err)
	}
}
