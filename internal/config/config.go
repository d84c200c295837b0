package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the working directory, then under the
// user config directory.
const ConfigFileName = ".snipcheck.yaml"

// Constants for default values.
const (
	DefaultVersion = "v1"
	DefaultFormat  = "auto"
	DefaultTheme   = "default"
)

// FileConfig represents the settings stored in .snipcheck.yaml.
type FileConfig struct {
	DocsRoot        string   `yaml:"docs_root,omitempty"`
	Version         string   `yaml:"version,omitempty"`
	Language        string   `yaml:"language,omitempty"`
	KnownFailures   bool     `yaml:"known_failures"`
	DLLPath         string   `yaml:"dll_path,omitempty"`
	JavaCoreVersion string   `yaml:"java_core_version,omitempty"`
	JavaLibVersion  string   `yaml:"java_lib_version,omitempty"`
	Concurrency     int      `yaml:"concurrency,omitempty"`
	Format          string   `yaml:"format,omitempty"`
	Theme           string   `yaml:"theme,omitempty"`
	Overlay         string   `yaml:"overlay,omitempty"`
	Include         []string `yaml:"include,omitempty"`
	Exclude         []string `yaml:"exclude,omitempty"`
	Debug           bool     `yaml:"debug"`

	// path the values were read from; empty when no file was found.
	path string
}

// Path returns the file the configuration was read from, or "" for defaults.
func (c *FileConfig) Path() string { return c.path }

// LoadConfig loads .snipcheck.yaml. A missing file yields the defaults; a
// file that exists but cannot be read or parsed is an error.
func LoadConfig() (*FileConfig, error) {
	cfg := &FileConfig{
		Version: DefaultVersion,
		Format:  DefaultFormat,
		Theme:   DefaultTheme,
	}

	configPath := getConfigPath()
	if configPath == "" {
		return cfg, nil
	}
	return loadFile(configPath, cfg)
}

func loadFile(configPath string, base *FileConfig) (*FileConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	var fromFile FileConfig
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}

	cfg := *base
	if fromFile.DocsRoot != "" {
		// relative roots are relative to the file, not the working directory
		cfg.DocsRoot = fromFile.DocsRoot
		if !filepath.IsAbs(cfg.DocsRoot) {
			cfg.DocsRoot = filepath.Join(filepath.Dir(configPath), cfg.DocsRoot)
		}
	}
	if fromFile.Version != "" {
		cfg.Version = fromFile.Version
	}
	if fromFile.Language != "" {
		cfg.Language = fromFile.Language
	}
	cfg.KnownFailures = fromFile.KnownFailures
	if fromFile.DLLPath != "" {
		cfg.DLLPath = fromFile.DLLPath
	}
	if fromFile.JavaCoreVersion != "" {
		cfg.JavaCoreVersion = fromFile.JavaCoreVersion
	}
	if fromFile.JavaLibVersion != "" {
		cfg.JavaLibVersion = fromFile.JavaLibVersion
	}
	if fromFile.Concurrency > 0 {
		cfg.Concurrency = fromFile.Concurrency
	}
	if fromFile.Format != "" {
		cfg.Format = fromFile.Format
	}
	if fromFile.Theme != "" {
		cfg.Theme = fromFile.Theme
	}
	if fromFile.Overlay != "" {
		cfg.Overlay = fromFile.Overlay
	}
	if len(fromFile.Include) > 0 {
		cfg.Include = fromFile.Include
	}
	if len(fromFile.Exclude) > 0 {
		cfg.Exclude = fromFile.Exclude
	}
	cfg.Debug = fromFile.Debug
	cfg.path = configPath

	debugf("[DEBUG LoadConfig] Loaded config from %s\n", configPath)
	return &cfg, nil
}

// getConfigPath tries to find the .snipcheck.yaml configuration file.
// It checks local directory first, then XDG UserConfigDir (if valid).
func getConfigPath() string {
	if _, err := os.Stat(ConfigFileName); err == nil {
		if debugEnabled() {
			absLocalPath, _ := filepath.Abs(ConfigFileName)
			debugf("[DEBUG getConfigPath] Using local config file: %s\n", absLocalPath)
		}
		return ConfigFileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config dir is not usable for an XDG path.
	if err == nil && configHome != "" && configHome != "/" {
		xdgPath := filepath.Join(configHome, "snipcheck", ConfigFileName)
		if _, errStat := os.Stat(xdgPath); errStat == nil {
			debugf("[DEBUG getConfigPath] Using XDG config file: %s\n", xdgPath)
			return xdgPath
		}
		debugf("[DEBUG getConfigPath] XDG config file not found at: %s\n", xdgPath)
	} else {
		debugf("[DEBUG getConfigPath] UserConfigDir error or unsuitable path. Error: %v, Path: '%s'\n", err, configHome)
	}

	debugf("[DEBUG getConfigPath] No config file found. Will use default settings.\n")
	return ""
}

// debugEnabled reports whether SNIPCHECK_DEBUG asks for config tracing. The
// logger is not configured yet while the config is loading, so tracing goes
// straight to stderr.
func debugEnabled() bool {
	return os.Getenv(EnvDebug) != ""
}

func debugf(format string, args ...any) {
	if debugEnabled() {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
