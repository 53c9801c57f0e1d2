package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"exifstamp/internal/infra/stamp"
)

const (
	EnvPrefix      = "EXIFSTAMP"
	configBaseName = ".exifstamp"

	KeyDryRun      = "dry-run"
	KeyVerbose     = "verbose"
	KeyStrict      = "strict"
	KeyTUI         = "tui"
	KeyWriter      = "writer"
	KeySetFilePath = "setfile-path"
	KeyConfig      = "config"
)

type Config struct {
	DryRun      bool   `yaml:"dry-run"`
	Verbose     bool   `yaml:"verbose"`
	Strict      bool   `yaml:"strict"`
	TUI         bool   `yaml:"tui"`
	Writer      string `yaml:"writer"`
	SetFilePath string `yaml:"setfile-path"`
	// ConfigFile is the file the values were read from, if any.
	ConfigFile string `yaml:"-"`
}

// BindFlags registers every configuration flag on flags.
func BindFlags(flags *pflag.FlagSet) {
	flags.BoolP(KeyDryRun, "n", false, "report what would change without touching the file")
	flags.BoolP(KeyVerbose, "v", false, "verbose output")
	flags.Bool(KeyStrict, false, "exit non-zero when any step fails")
	flags.Bool(KeyTUI, false, "run the interactive terminal UI")
	flags.String(KeyWriter, stamp.KindAuto, "timestamp writer: auto, setfile or native")
	flags.String(KeySetFilePath, stamp.DefaultSetFilePath, "path to the SetFile utility")
	flags.String(KeyConfig, "", "config file (default ~/.exifstamp.yaml)")
}

// Load resolves configuration from flags, EXIFSTAMP_* environment variables,
// the config file and defaults, in that order of precedence.
func Load(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyWriter, stamp.KindAuto)
	v.SetDefault(KeySetFilePath, stamp.DefaultSetFilePath)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, err
		}
	}

	if err := readConfigFile(v); err != nil {
		return Config{}, err
	}

	cfg := Config{
		DryRun:      v.GetBool(KeyDryRun),
		Verbose:     v.GetBool(KeyVerbose),
		Strict:      v.GetBool(KeyStrict),
		TUI:         v.GetBool(KeyTUI),
		Writer:      strings.ToLower(strings.TrimSpace(v.GetString(KeyWriter))),
		SetFilePath: strings.TrimSpace(v.GetString(KeySetFilePath)),
		ConfigFile:  v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Writer {
	case stamp.KindAuto, stamp.KindSetFile, stamp.KindNative:
	default:
		return fmt.Errorf("invalid writer %q, use auto, setfile or native", c.Writer)
	}
	if c.SetFilePath == "" {
		return errors.New("setfile-path must not be empty")
	}
	return nil
}

func readConfigFile(v *viper.Viper) error {
	if explicit := v.GetString(KeyConfig); explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", explicit, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	path := filepath.Join(home, configBaseName+".yaml")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}
