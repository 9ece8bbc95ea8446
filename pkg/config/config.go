package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Roster rules
	SalaryCap int `mapstructure:"SALARY_CAP"`
	MinTeams  int `mapstructure:"MIN_TEAMS"`

	// Search
	NumLineups    int           `mapstructure:"NUM_LINEUPS"`
	RunDuration   time.Duration `mapstructure:"RUN_DURATION"`
	MaxRetries    int           `mapstructure:"MAX_RETRIES"`
	MutationDraws int           `mapstructure:"MUTATION_DRAWS"`
	RandomSeed    int64         `mapstructure:"RANDOM_SEED"`

	// Files
	SalariesPath string `mapstructure:"SALARIES_PATH"`
	OutputDir    string `mapstructure:"OUTPUT_DIR"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("SALARY_CAP", 50000)
	viper.SetDefault("MIN_TEAMS", 3)
	viper.SetDefault("NUM_LINEUPS", 150)
	viper.SetDefault("RUN_DURATION", "60s")
	viper.SetDefault("MAX_RETRIES", 1000)
	viper.SetDefault("MUTATION_DRAWS", 1)
	viper.SetDefault("RANDOM_SEED", 0) // 0 = seed from wall clock
	viper.SetDefault("SALARIES_PATH", "DKSalaries.csv")
	viper.SetDefault("OUTPUT_DIR", ".")

	viper.AutomaticEnv()

	// Missing .env is fine, environment and defaults still apply
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SalaryCap <= 0 {
		return fmt.Errorf("SALARY_CAP must be positive, got %d", c.SalaryCap)
	}
	if c.MinTeams < 1 {
		return fmt.Errorf("MIN_TEAMS must be at least 1, got %d", c.MinTeams)
	}
	if c.NumLineups <= 0 {
		return fmt.Errorf("NUM_LINEUPS must be positive, got %d", c.NumLineups)
	}
	if c.RunDuration < 0 {
		return fmt.Errorf("RUN_DURATION must not be negative, got %s", c.RunDuration)
	}
	if c.MaxRetries <= 0 {
		return fmt.Errorf("MAX_RETRIES must be positive, got %d", c.MaxRetries)
	}
	if c.MutationDraws < 1 {
		return fmt.Errorf("MUTATION_DRAWS must be at least 1, got %d", c.MutationDraws)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
