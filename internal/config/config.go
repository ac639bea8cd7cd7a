package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth" validate:"required"`
}

// StorageConfig locates the flat files holding persisted state.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains password hashing settings and the account created
// when no users exist yet.
type AuthConfig struct {
	BcryptCost           int    `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
	DefaultAdminID       string `mapstructure:"default_admin_id" validate:"required"`
	DefaultAdminPassword string `mapstructure:"default_admin_password" validate:"required,min=3"`
	DefaultAdminName     string `mapstructure:"default_admin_name" validate:"required"`
}
