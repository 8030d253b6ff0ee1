// Package config handles configuration loading and merging for macchiato.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--no-color, --debug, --table, --config)
//  2. Environment variables (MACCHIATO_NO_COLOR, NO_COLOR, MACCHIATO_DEBUG, MACCHIATO_CONFIG)
//  3. YAML config file (.macchiato.yaml in the working directory or
//     <user config dir>/macchiato/.macchiato.yaml)
//  4. Hardcoded defaults
//
// # Color
//
// Color defaults to on when stdout is a terminal. Any no_color source that
// is set wins over the terminal default.
//
// # Environment Variables
//
//   - MACCHIATO_NO_COLOR: boolean; "true" or "1" disables colors, "false"
//     or "0" enables them
//   - NO_COLOR: any non-empty value disables colors
//   - MACCHIATO_DEBUG: any non-empty value enables debug logging
//   - MACCHIATO_CONFIG: path to a config file
package config
