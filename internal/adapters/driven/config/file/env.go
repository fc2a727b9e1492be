package file

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings that may be overridden from the environment.
// Unset variables leave the zero value (nil for pointers) so callers can
// tell "not set" from "set to false".
type Env struct {
	ConfigDir       string `env:"AROMA_CONFIG_DIR"`
	DataDir         string `env:"AROMA_DATA_DIR"`
	Strict          *bool  `env:"AROMA_STRICT"`
	MetricsTextfile string `env:"AROMA_METRICS_TEXTFILE"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
