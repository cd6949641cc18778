package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Justype/sge2slurm/internal/scheduler"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigFilename is the name of the config file
const ConfigFilename = "config"

// ConfigType is the type of config file (yaml, json, toml)
const ConfigType = "yaml"

// EnvPrefix is prepended to every environment variable (SGE2SLURM_SHELL, ...)
const EnvPrefix = "SGE2SLURM"

const appDirName = "sge2slurm"

// Config keys
const (
	KeyShell   = "shell"
	KeyQuiet   = "quiet"
	KeyNoColor = "no_color"
	KeyDebug   = "debug"
)

// Keys lists every config key in display order
func Keys() []string {
	return []string{KeyShell, KeyQuiet, KeyNoColor, KeyDebug}
}

// InitViper initializes Viper with proper search paths and defaults
// Priority (highest to lowest):
// 1. Command-line flags (bound with BindFlags)
// 2. Environment variables (SGE2SLURM_*)
// 3. User config file (~/.config/sge2slurm/config.yaml)
// 4. System config file (/etc/sge2slurm/config.yaml)
// 5. Defaults
func InitViper() error {
	viper.SetConfigName(ConfigFilename)
	viper.SetConfigType(ConfigType)

	// User config (highest priority)
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(userConfigDir, appDirName))
	}

	// Home directory fallback
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, "."+appDirName))
	}

	// System-wide config (lower priority)
	viper.AddConfigPath(filepath.Join("/etc", appDirName))

	// Current directory
	viper.AddConfigPath(".")

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	setDefaults()

	// Read config file (non-fatal if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// setDefaults sets default values for all config keys
func setDefaults() {
	viper.SetDefault(KeyShell, scheduler.DefaultInterpreter)
	viper.SetDefault(KeyQuiet, false)
	viper.SetDefault(KeyNoColor, false)
	viper.SetDefault(KeyDebug, false)
}

// BindFlags binds every flag in fs whose name matches a config key.
// Dashes in flag names map to underscores ("no-color" -> "no_color").
func BindFlags(fs *pflag.FlagSet) error {
	known := make(map[string]bool)
	for _, key := range Keys() {
		known[key] = true
	}

	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !known[key] || bindErr != nil {
			return
		}
		if err := viper.BindPFlag(key, f); err != nil {
			bindErr = fmt.Errorf("failed to bind flag --%s: %w", f.Name, err)
		}
	})
	return bindErr
}

// GetUserConfigPath returns the path to the user config file
func GetUserConfigPath() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "."+appDirName, ConfigFilename+"."+ConfigType), nil
	}

	return filepath.Join(userConfigDir, appDirName, ConfigFilename+"."+ConfigType), nil
}

// SaveConfig saves current Viper config to the user config file and returns its path
func SaveConfig() (string, error) {
	configPath, err := GetUserConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}

// Settings is the effective value of every config key, in file layout
type Settings struct {
	Shell   string `yaml:"shell"`
	Quiet   bool   `yaml:"quiet"`
	NoColor bool   `yaml:"no_color"`
	Debug   bool   `yaml:"debug"`
}

// CurrentSettings reads the effective settings from Viper
func CurrentSettings() Settings {
	return Settings{
		Shell:   viper.GetString(KeyShell),
		Quiet:   viper.GetBool(KeyQuiet),
		NoColor: viper.GetBool(KeyNoColor),
		Debug:   viper.GetBool(KeyDebug),
	}
}

// LoadFromViper loads config from Viper into Global struct
func LoadFromViper() {
	if shell := viper.GetString(KeyShell); shell != "" {
		Global.Shell = shell
	}
	Global.Quiet = viper.GetBool(KeyQuiet)
	Global.NoColor = viper.GetBool(KeyNoColor)
	Global.Debug = viper.GetBool(KeyDebug)
}
