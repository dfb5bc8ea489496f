// Package config resolves runtime settings from defaults, a .env file and
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/denguerisk/internal/model"
	"github.com/abhisek/denguerisk/internal/risk"
)

// Config holds all runtime settings.
type Config struct {
	// ModelPath is the trained XGBoost JSON artifact.
	ModelPath string

	// Threshold is the initial decision threshold.
	Threshold risk.Threshold

	// Addr is the listen address of the web form. Loopback by default: the
	// form is meant for a single local user.
	Addr string

	// GinMode is passed to gin.SetMode.
	GinMode string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ModelPath: model.DefaultArtifactPath,
		Threshold: risk.DefaultThreshold,
		Addr:      "127.0.0.1:8501",
		GinMode:   "release",
	}
}

// FromEnv loads .env (if present) and builds a Config from environment
// variables, falling back to defaults for unset values.
//
//	DENGUE_MODEL_PATH   model artifact path
//	DENGUE_THRESHOLD    initial threshold in [0,1]
//	DENGUE_ADDR         web form listen address
//	PORT                shorthand for DENGUE_ADDR=127.0.0.1:$PORT
//	GIN_MODE            debug | release | test
func FromEnv() (Config, error) {
	// Missing .env is normal.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if p := os.Getenv("DENGUE_MODEL_PATH"); p != "" {
		cfg.ModelPath = p
	}
	if s := os.Getenv("DENGUE_THRESHOLD"); s != "" {
		t, err := risk.ParseThreshold(s)
		if err != nil {
			return Config{}, fmt.Errorf("DENGUE_THRESHOLD: %w", err)
		}
		cfg.Threshold = t
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = "127.0.0.1:" + port
	}
	if a := os.Getenv("DENGUE_ADDR"); a != "" {
		cfg.Addr = a
	}
	if m := os.Getenv("GIN_MODE"); m != "" {
		cfg.GinMode = strings.ToLower(m)
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings that cannot be fixed later.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ModelPath) == "" {
		return fmt.Errorf("model path is required")
	}
	if _, err := risk.NewThreshold(float64(c.Threshold)); err != nil {
		return err
	}
	if c.Addr == "" {
		return fmt.Errorf("listen address is required")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown GIN_MODE %q", c.GinMode)
	}
	return nil
}
