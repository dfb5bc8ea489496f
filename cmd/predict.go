package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/denguerisk/internal/features"
	"github.com/abhisek/denguerisk/internal/form"
)

// predictOutput is printed by the predict command.
type predictOutput struct {
	PredictionID string             `json:"predictionId"`
	Model        string             `json:"model"`
	Probability  float64            `json:"probability"`
	Threshold    float64            `json:"threshold"`
	Decision     string             `json:"decision"`
	Message      string             `json:"message"`
	Features     map[string]float64 `json:"features,omitempty"`
}

var predictCmd = &cobra.Command{
	Use:   "predict [observation.json]",
	Short: "Score one patient observation read from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		raw, err := readObservation(cmd, args)
		if err != nil {
			return err
		}
		o, err := features.DecodeInput(raw)
		if err != nil {
			return fmt.Errorf("invalid observation: %w", err)
		}

		booster, err := loadModel(cfg.ModelPath)
		if err != nil {
			return fmt.Errorf("model unavailable: %w", err)
		}

		outcome, err := form.NewReducer(booster).Predict(cmd.Context(), o, cfg.Threshold)
		if err != nil {
			return err
		}

		out := predictOutput{
			PredictionID: uuid.NewString(),
			Model:        booster.ModelID(),
			Probability:  outcome.Probability,
			Threshold:    float64(outcome.Threshold),
			Decision:     outcome.Decision.String(),
			Message:      outcome.Message(),
		}
		if withFeatures, _ := cmd.Flags().GetBool("features"); withFeatures {
			out.Features = features.Encode(o).Named()
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	predictCmd.Flags().Bool("features", false, "Include the encoded feature row in the output")
}

func readObservation(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read observation: %w", err)
	}
	return data, nil
}
