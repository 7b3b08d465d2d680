package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config drives the self-play experiment runner.
type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Games     int    `yaml:"games" env:"GAMES" env-default:"10"`
	Seed      uint64 `yaml:"seed" env:"SEED" env-default:"1"`
	OutputDir string `yaml:"output-dir" env:"OUTPUT_DIR" env-default:"results"`
	Agent1    string `yaml:"agent1" env:"AGENT1" env-default:"hard"`
	Agent2    string `yaml:"agent2" env:"AGENT2" env-default:"medium"`
}

// MustLoad reads configuration from the yaml file at path, falling back to
// environment variables alone when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if err := cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from environment: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
