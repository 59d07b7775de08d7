package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	maxWalkDepth = 25
)

// Config represents the sqldom configuration from sqldom.yaml.
type Config struct {
	Dialect string `mapstructure:"dialect" json:"dialect"`
	Owner   string `mapstructure:"owner" json:"owner"`
	Schema  string `mapstructure:"schema" json:"schema"`
	Output  string `mapstructure:"output" json:"output"`

	Generate GenerateConfig `mapstructure:"generate" json:"generate"`
}

// GenerateConfig holds statement generation settings.
type GenerateConfig struct {
	SoftDelete bool   `mapstructure:"soft_delete" json:"soft_delete"`
	Procedures bool   `mapstructure:"procedures" json:"procedures"`
	KeyColumn  string `mapstructure:"key_column" json:"key_column"`
	NoLock     bool   `mapstructure:"no_lock" json:"no_lock"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("SQLDOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dialect", "mssql")
	v.SetDefault("owner", "dbo")
	v.SetDefault("schema", "schema.yaml")
	v.SetDefault("output", "")

	v.SetDefault("generate.soft_delete", false)
	v.SetDefault("generate.procedures", true)
	v.SetDefault("generate.key_column", "id")
	v.SetDefault("generate.no_lock", false)
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for sqldom.yaml or sqldom.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range []string{"sqldom.yaml", "sqldom.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Stop at the repository root
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}
