package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names understood by Load.
const (
	FlagConfig   = "config"
	FlagDataDir  = "data-dir"
	FlagLogLevel = "log-level"
)

// EnvPrefix is prepended to every environment variable, e.g.
// CLASSROOM_STORAGE_DATA_DIR.
const EnvPrefix = "CLASSROOM"

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	FlagDataDir:  "storage.data_dir",
	FlagLogLevel: "log.level",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "path to a config file (yaml, json or toml)")
	fs.String(FlagDataDir, "", "directory holding the data files")
	fs.String(FlagLogLevel, "", "log level: debug, info, warn or error")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("log.level", "warn")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.default_admin_id", "ADMIN001")
	v.SetDefault("auth.default_admin_password", "admin123")
	v.SetDefault("auth.default_admin_name", "System Administrator")
}

// Load configuration from flags, environment variables and optionally a
// config file. Precedence, highest first: flags that were set, environment
// variables, config file, defaults. flags may be nil.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := ""
	if flags != nil {
		if f := flags.Lookup(FlagConfig); f != nil {
			configFile = f.Value.String()
		}
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("classroom")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
