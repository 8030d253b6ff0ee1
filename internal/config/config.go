package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/macchiato/internal/logging"
)

// FileName is the config file looked up in the working directory and the
// user config directory.
const FileName = ".macchiato.yaml"

// ErrInvalid marks configuration that parsed but cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigPath string
	NoColor    bool
	Debug      bool
	Table      bool

	// Flags to track if they were explicitly set by the user
	NoColorSet bool
	DebugSet   bool
	TableSet   bool
}

// AppConfig is the content of .macchiato.yaml.
type AppConfig struct {
	NoColor    *bool    `yaml:"no_color,omitempty"`
	Debug      bool     `yaml:"debug"`
	Table      bool     `yaml:"table"`
	TableWidth int      `yaml:"table_width"`
	Suites     []string `yaml:"suites,omitempty"`
}

// DefaultTableWidth bounds group names in the breakdown table.
const DefaultTableWidth = 40

// LoadConfig reads the config file. An explicit path must exist; otherwise
// the local file, then the user config dir file, is used if present.
// It returns the config and the path it came from ("" for defaults).
func LoadConfig(explicitPath string) (*AppConfig, string, error) {
	appCfg := &AppConfig{TableWidth: DefaultTableWidth}

	path := explicitPath
	if path == "" {
		path = getConfigPath()
	}
	if path == "" {
		logging.Debug("config", "no %s found, using defaults", FileName)
		return appCfg, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, appCfg); err != nil {
		return nil, "", fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if appCfg.TableWidth == 0 {
		appCfg.TableWidth = DefaultTableWidth
	}
	logging.Debug("config", "loaded config from %s", path)
	return appCfg, path, nil
}

// getConfigPath checks the working directory first, then the user config dir.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		logging.Debug("config", "user config dir unavailable: %v", err)
		return ""
	}
	userPath := filepath.Join(configHome, "macchiato", FileName)
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
