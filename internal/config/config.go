package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	LogLevel  string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string   `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	Terminal  Terminal `yaml:"terminal"`
}

type Terminal struct {
	Prompt    string `yaml:"prompt" env:"TERMINAL_PROMPT" env-default:"> "`
	EmptyCell string `yaml:"empty-cell" env:"TERMINAL_EMPTY_CELL" env-default:"-"`
	Output    string `yaml:"output" env:"TERMINAL_OUTPUT" env-default:"text"`
}

var ErrUnknownOutput = errors.New("unknown terminal output")

// MustLoad - load all configurations in config.yml file.
// Without the file the configuration is read from the environment and defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := config.Terminal.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Terminal) Validate() error {
	switch that.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, that.Output)
	}
}
