package config

import (
	"fmt"
	"os"
	"strconv"
)

// ResolvedConfig is the final configuration after applying all priority rules.
type ResolvedConfig struct {
	UseColor   bool
	Debug      bool
	Table      bool
	TableWidth int
	Suites     []string

	// Resolution metadata (for debugging)
	ConfigPath  string // "" when no file was read
	ColorSource string // "cli", "env", "file", "terminal"
	DebugSource string // "cli", "env", "file", "default"
	TableSource string // "cli", "file", "default"
}

// ResolveConfig merges flags, environment, file and defaults. isTTY is the
// terminal state of the report's destination and decides the color default.
func ResolveConfig(cliFlags CliFlags, isTTY bool) (*ResolvedConfig, error) {
	path := cliFlags.ConfigPath
	if path == "" {
		path = os.Getenv("MACCHIATO_CONFIG")
	}
	appCfg, loadedFrom, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		UseColor:    isTTY,
		Debug:       appCfg.Debug,
		Table:       appCfg.Table,
		TableWidth:  appCfg.TableWidth,
		Suites:      appCfg.Suites,
		ConfigPath:  loadedFrom,
		ColorSource: "terminal",
		DebugSource: "default",
		TableSource: "default",
	}
	if appCfg.NoColor != nil {
		resolved.UseColor = !*appCfg.NoColor
		resolved.ColorSource = "file"
	}
	if appCfg.Debug {
		resolved.DebugSource = "file"
	}
	if appCfg.Table {
		resolved.TableSource = "file"
	}

	// NoColor: CLI > ENV > file > terminal
	if cliFlags.NoColorSet {
		resolved.UseColor = !cliFlags.NoColor
		resolved.ColorSource = "cli"
	} else if envNoColor := envNoColor(); envNoColor != nil {
		resolved.UseColor = !*envNoColor
		resolved.ColorSource = "env"
	}

	// Debug: CLI > ENV > file > default
	if cliFlags.DebugSet {
		resolved.Debug = cliFlags.Debug
		resolved.DebugSource = "cli"
	} else if os.Getenv("MACCHIATO_DEBUG") != "" {
		resolved.Debug = true
		resolved.DebugSource = "env"
	}

	// Table: CLI > file > default
	if cliFlags.TableSet {
		resolved.Table = cliFlags.Table
		resolved.TableSource = "cli"
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

// envNoColor reads MACCHIATO_NO_COLOR as a boolean, then falls back to the
// NO_COLOR convention where any non-empty value disables color.
// Returns nil when neither applies.
func envNoColor() *bool {
	if b := getEnvBool("MACCHIATO_NO_COLOR"); b != nil {
		return b
	}
	if os.Getenv("NO_COLOR") != "" {
		noColor := true
		return &noColor
	}
	return nil
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set to a parseable value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

func validateResolvedConfig(cfg *ResolvedConfig) error {
	if cfg.TableWidth < 4 {
		return fmt.Errorf("%w: table_width must be at least 4, got %d", ErrInvalid, cfg.TableWidth)
	}
	for i, name := range cfg.Suites {
		if name == "" {
			return fmt.Errorf("%w: suites[%d] is empty", ErrInvalid, i)
		}
	}
	return nil
}
