package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lazervel/cryptor/errors"
)

// Environment variables checked for the application secret, in order.
var DefaultEnvVars = []string{"CRYPTOR_KEY", "APP_KEY"}

// EnvCipherVar names the environment variable holding the default cipher.
const EnvCipherVar = "CRYPTOR_CIPHER"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// ResolveOptions holds overrides for secret resolution.
type ResolveOptions struct {
	FileSystem FileSystem
	Value      string   // Explicit secret value (highest priority)
	EnvVars    []string // Environment variable names to check
	EnvFile    string   // .env file path (optional)
	ConfigFile string   // YAML config file path (optional)
}

// ResolveOption is a functional option for secret resolution.
type ResolveOption func(*ResolveOptions)

// WithValue supplies an explicit secret, bypassing environment lookup.
func WithValue(value string) ResolveOption {
	return func(o *ResolveOptions) { o.Value = value }
}

// WithEnvVar sets the environment variable name checked for the secret.
func WithEnvVar(name string) ResolveOption {
	return func(o *ResolveOptions) { o.EnvVars = []string{name} }
}

// WithEnvFile sets an explicit .env file path to load before lookup.
func WithEnvFile(path string) ResolveOption {
	return func(o *ResolveOptions) { o.EnvFile = path }
}

// WithConfigFile sets an explicit YAML config file path.
func WithConfigFile(path string) ResolveOption {
	return func(o *ResolveOptions) { o.ConfigFile = path }
}

// WithFileSystem sets a custom filesystem for resolution.
func WithFileSystem(fs FileSystem) ResolveOption {
	return func(o *ResolveOptions) { o.FileSystem = fs }
}

func applyOptions(opts []ResolveOption) *ResolveOptions {
	o := &ResolveOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.FileSystem == nil {
		o.FileSystem = &RealFileSystem{}
	}
	if len(o.EnvVars) == 0 {
		o.EnvVars = DefaultEnvVars
	}
	return o
}

// ResolveSecret resolves the application secret in priority order:
// explicit value, environment variables (after loading any .env file),
// then the `key` entry of a YAML config file. Returns a MissingKey error
// when nothing resolves to a non-empty value.
func ResolveSecret(opts ...ResolveOption) (string, error) {
	o := applyOptions(opts)

	if o.Value != "" {
		return o.Value, nil
	}

	loadEnvFile(o)

	for _, name := range o.EnvVars {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}

	if o.ConfigFile != "" && o.FileSystem.Exists(o.ConfigFile) {
		v := viper.New()
		v.SetConfigFile(o.ConfigFile)
		if err := v.ReadInConfig(); err == nil {
			if key := v.GetString("key"); key != "" {
				return key, nil
			}
		}
	}

	return "", errors.MissingKey()
}

// Load resolves the secret and cipher into a validated Config.
func Load(opts ...ResolveOption) (*Config, error) {
	o := applyOptions(opts)

	key, err := ResolveSecret(opts...)
	if err != nil {
		return nil, err
	}

	cfg := &Config{Key: key, Cipher: os.Getenv(EnvCipherVar)}

	if cfg.Cipher == "" && o.ConfigFile != "" && o.FileSystem.Exists(o.ConfigFile) {
		v := viper.New()
		v.SetConfigFile(o.ConfigFile)
		if err := v.ReadInConfig(); err == nil {
			cfg.Cipher = v.GetString("cipher")
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile loads the explicit .env file, or ./.env when present.
func loadEnvFile(o *ResolveOptions) {
	if o.EnvFile != "" {
		if o.FileSystem.Exists(o.EnvFile) {
			_ = o.FileSystem.LoadEnv(o.EnvFile)
		}
		return
	}
	if o.FileSystem.Exists(".env") {
		_ = o.FileSystem.LoadEnv(".env")
	}
}
