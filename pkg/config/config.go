/*
Package config manages the TOML config for HangServe.

Values are layered: built-in defaults, then the config file (created with
defaults when missing, partially recovered when malformed), then HANGSERVE_*
environment variables. Command line flags are applied last by the caller.

	[solver]
	wildcard = "."
	top_letters = 10
	enforce_multiplicity = false
	fold_case = false

	[lists]
	dir = "lists"
	default = ""
	watch = true

	[ui]
	page_size = 10

	[server]
	max_page_size = 100
*/
package config

import (
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/bastiangx/hangserve/internal/utils"
	"github.com/bastiangx/hangserve/pkg/session"
	"github.com/bastiangx/hangserve/pkg/solver"
	"github.com/charmbracelet/log"
)

// FileName is the config file name inside the config dir.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Solver SolverConfig `toml:"solver" yaml:"solver" json:"solver"`
	Lists  ListsConfig  `toml:"lists" yaml:"lists" json:"lists"`
	UI     UIConfig     `toml:"ui" yaml:"ui" json:"ui"`
	Server ServerConfig `toml:"server" yaml:"server" json:"server"`
}

// SolverConfig has the matching options.
type SolverConfig struct {
	Wildcard            string `toml:"wildcard" yaml:"wildcard" json:"wildcard" env:"WILDCARD"`
	TopLetters          int    `toml:"top_letters" yaml:"top_letters" json:"top_letters" env:"TOP_LETTERS"`
	EnforceMultiplicity bool   `toml:"enforce_multiplicity" yaml:"enforce_multiplicity" json:"enforce_multiplicity" env:"ENFORCE_MULTIPLICITY"`
	FoldCase            bool   `toml:"fold_case" yaml:"fold_case" json:"fold_case" env:"FOLD_CASE"`
}

// ListsConfig says where word lists live.
type ListsConfig struct {
	Dir     string `toml:"dir" yaml:"dir" json:"dir" env:"LISTS_DIR"`
	Default string `toml:"default" yaml:"default" json:"default" env:"DEFAULT_LIST"`
	Watch   bool   `toml:"watch" yaml:"watch" json:"watch" env:"WATCH_LISTS"`
}

// UIConfig holds front end options.
type UIConfig struct {
	PageSize int `toml:"page_size" yaml:"page_size" json:"page_size" env:"PAGE_SIZE"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxPageSize int `toml:"max_page_size" yaml:"max_page_size" json:"max_page_size" env:"MAX_PAGE_SIZE"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Wildcard:   string(solver.DefaultWildcard),
			TopLetters: solver.DefaultTopLetters,
		},
		Lists: ListsConfig{
			Dir:   "lists",
			Watch: true,
		},
		UI: UIConfig{
			PageSize: solver.DefaultPageSize,
		},
		Server: ServerConfig{
			MaxPageSize: 100,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. $XDG_CONFIG_HOME/hangserve or ~/.config/hangserve
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primary := filepath.Join(homeDir, ".config", utils.AppDirName)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		primary = filepath.Join(xdg, utils.AppDirName)
	}
	if result := utils.CheckDirStatus(primary); result.Writable {
		return primary, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, FileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/hangserve/config.toml
// 3. Builtin defaults
// Environment overrides are applied to whichever source won.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	config, path := loadFileWithPriority(customConfigPath)
	if err := ApplyEnv(config); err != nil {
		return nil, path, err
	}
	config.Normalize()
	return config, path, nil
}

func loadFileWithPriority(customConfigPath string) (*Config, string) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), ""
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using built-in defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every well-typed key of a file that failed to decode
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(raw, "solver"); ok {
		extractSolverConfig(section, &config.Solver)
	}
	if section, ok := utils.ExtractSection(raw, "lists"); ok {
		extractListsConfig(section, &config.Lists)
	}
	if section, ok := utils.ExtractSection(raw, "ui"); ok {
		if val, ok := utils.ExtractInt64(section, "page_size"); ok {
			config.UI.PageSize = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "server"); ok {
		if val, ok := utils.ExtractInt64(section, "max_page_size"); ok {
			config.Server.MaxPageSize = val
		}
	}
	return config, nil
}

func extractSolverConfig(data map[string]any, sc *SolverConfig) {
	if val, ok := utils.ExtractString(data, "wildcard"); ok {
		sc.Wildcard = val
	}
	if val, ok := utils.ExtractInt64(data, "top_letters"); ok {
		sc.TopLetters = val
	}
	if val, ok := utils.ExtractBool(data, "enforce_multiplicity"); ok {
		sc.EnforceMultiplicity = val
	}
	if val, ok := utils.ExtractBool(data, "fold_case"); ok {
		sc.FoldCase = val
	}
}

func extractListsConfig(data map[string]any, lc *ListsConfig) {
	if val, ok := utils.ExtractString(data, "dir"); ok {
		lc.Dir = val
	}
	if val, ok := utils.ExtractString(data, "default"); ok {
		lc.Default = val
	}
	if val, ok := utils.ExtractBool(data, "watch"); ok {
		lc.Watch = val
	}
}

// Normalize replaces out of range values with defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if utf8.RuneCountInString(c.Solver.Wildcard) != 1 || isLetterRune(c.Solver.Wildcard) {
		log.Warnf("Invalid wildcard %q, using %q", c.Solver.Wildcard, def.Solver.Wildcard)
		c.Solver.Wildcard = def.Solver.Wildcard
	}
	if c.Solver.TopLetters <= 0 {
		c.Solver.TopLetters = def.Solver.TopLetters
	}
	if c.UI.PageSize <= 0 {
		c.UI.PageSize = def.UI.PageSize
	}
	if c.Server.MaxPageSize <= 0 {
		c.Server.MaxPageSize = def.Server.MaxPageSize
	}
	if c.Lists.Dir == "" {
		c.Lists.Dir = def.Lists.Dir
	}
}

func isLetterRune(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}

// WildcardRune returns the configured wildcard marker.
func (c *Config) WildcardRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Solver.Wildcard)
	if r == utf8.RuneError {
		return solver.DefaultWildcard
	}
	return r
}

// SolverOptions maps the solver section onto solver.Options.
func (c *Config) SolverOptions() solver.Options {
	opts := solver.DefaultOptions()
	opts.TopLetters = c.Solver.TopLetters
	opts.FoldCase = c.Solver.FoldCase
	if c.Solver.EnforceMultiplicity {
		opts.Multiplicity = solver.MultiplicityExact
	}
	return opts
}

// SessionOptions returns the options every front end builds its session with.
func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Solver:   c.SolverOptions(),
		Wildcard: c.WildcardRune(),
		PageSize: c.UI.PageSize,
	}
}

// RebuildConfigFile force creates a new config.toml at path, or at the
// default path when path is empty.
func RebuildConfigFile(path string) (string, error) {
	if path == "" {
		var err error
		if path, err = GetDefaultConfigPath(); err != nil {
			return "", err
		}
	}
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return "", err
	}
	return path, SaveConfig(DefaultConfig(), path)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
