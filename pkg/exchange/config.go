package exchange

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config tunes validation bounds and the search.
type Config struct {
	MinParticipants int   `mapstructure:"min_participants"`
	MaxParticipants int   `mapstructure:"max_participants"`
	Seed            int64 `mapstructure:"seed"`      // Seed of the per-call random source when none is given; 0 seeds from the clock
	MaxSteps        int   `mapstructure:"max_steps"` // Candidate evaluations allowed per search; 0 means unlimited
	Precheck        bool  `mapstructure:"precheck"`  // Reject configurations without a perfect matching before searching

	Logger *slog.Logger `mapstructure:"-"`
}

func DefaultConfig() Config {
	return Config{
		MinParticipants: 3,
		MaxParticipants: 50,
		Precheck:        true,
	}
}

func (config Config) logger() *slog.Logger {
	if config.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return config.Logger
}

// ConfigFromYaml reads a YAML file on top of DefaultConfig; keys missing from the file keep their default
func ConfigFromYaml(file string) (Config, error) {
	config := DefaultConfig()

	bytes, err := os.ReadFile(file)
	if err != nil {
		return config, err
	}

	var configYaml map[string]any
	if err := yaml.Unmarshal(bytes, &configYaml); err != nil {
		return config, fmt.Errorf("cannot parse config file: %w", err)
	}

	if err := mapstructure.Decode(configYaml, &config); err != nil {
		return config, fmt.Errorf("cannot decode config file: %w", err)
	}
	return config, nil
}
