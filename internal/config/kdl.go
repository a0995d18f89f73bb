package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	kdl "github.com/sblinch/kdl-go"
)

const (
	ProjectConfigFile = ".boredom-mcp.kdl"
	UserConfigDir     = "boredom-mcp"
	UserConfigFile    = "config.kdl"
)

// KDLConfig is the raw KDL structure for unmarshaling.
type KDLConfig struct {
	Timeout   string              `kdl:"timeout"`
	Providers []KDLProviderConfig `kdl:"provider,multiple"`
}

// KDLProviderConfig represents a provider node in KDL.
type KDLProviderConfig struct {
	Name    string `kdl:",arg"`
	URL     string `kdl:"url"`
	Timeout string `kdl:"timeout"`
}

// UserConfigPath returns the path to the user config file.
func UserConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, UserConfigDir, UserConfigFile)
}

// ProjectConfigPath returns the path to the project config file.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFile)
}

// ConfigPaths returns all config file paths that Load consults.
func ConfigPaths(projectDir string) map[string]string {
	return map[string]string{
		"user":    UserConfigPath(),
		"project": ProjectConfigPath(projectDir),
	}
}

// LoadUserConfig loads configuration from the user config file.
func LoadUserConfig() (*Config, error) {
	path := UserConfigPath()
	if path == "" {
		return NewConfig(), nil
	}
	return loadConfigFile(path, SourceUser)
}

// LoadProjectConfig loads configuration from the project config file.
func LoadProjectConfig(dir string) (*Config, error) {
	return loadConfigFile(ProjectConfigPath(dir), SourceProject)
}

func loadConfigFile(path string, source Source) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg, err := ParseKDLConfig(string(data), source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseKDLConfig parses KDL configuration data.
func ParseKDLConfig(data string, source Source) (*Config, error) {
	var kdlCfg KDLConfig
	if err := kdl.Unmarshal([]byte(data), &kdlCfg); err != nil {
		return nil, err
	}

	cfg := NewConfig()

	timeout, err := parseTimeout(kdlCfg.Timeout)
	if err != nil {
		return nil, err
	}
	cfg.Timeout = timeout

	for _, p := range kdlCfg.Providers {
		if !isKnownProvider(p.Name) {
			return nil, &UnknownProviderError{Name: p.Name}
		}
		timeout, err := parseTimeout(p.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", p.Name, err)
		}
		cfg.Providers[p.Name] = ProviderConfig{
			Name:    p.Name,
			URL:     p.URL,
			Timeout: timeout,
			Source:  source,
		}
	}

	return cfg, nil
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid timeout %q: must be positive", s)
	}
	return d, nil
}

// Format renders cfg back into KDL, providers sorted by name.
func Format(cfg *Config) string {
	var b strings.Builder

	if cfg.Timeout > 0 {
		fmt.Fprintf(&b, "timeout %q\n\n", cfg.Timeout.String())
	}

	names := make([]string, 0, len(cfg.Providers))
	for name := range cfg.Providers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := cfg.Providers[name]
		fmt.Fprintf(&b, "provider %q {\n", name)
		if p.URL != "" {
			fmt.Fprintf(&b, "    url %q\n", p.URL)
		}
		if p.Timeout > 0 {
			fmt.Fprintf(&b, "    timeout %q\n", p.Timeout.String())
		}
		b.WriteString("}\n\n")
	}

	return b.String()
}
