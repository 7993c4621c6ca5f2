package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "TEXTKIT_CONFIG"

// DefaultDelimiters are the tokenizer delimiters used when none are configured
const DefaultDelimiters = ",; \t\n"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Text    TextConfig    `toml:"text" yaml:"text"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
	Client  ClientConfig  `toml:"client" yaml:"client"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// TextConfig holds the defaults applied when a request leaves a tokenizer
// or case option unset
type TextConfig struct {
	Delimiters        string `toml:"delimiters" yaml:"delimiters"`
	TrimTokens        *bool  `toml:"trim_tokens" yaml:"trim_tokens"`
	IgnoreEmptyTokens *bool  `toml:"ignore_empty_tokens" yaml:"ignore_empty_tokens"`
	CaseRule          string `toml:"case_rule" yaml:"case_rule"`
}

// ShouldTrimTokens returns the trim default, true when unset
func (t TextConfig) ShouldTrimTokens() bool {
	return t.TrimTokens == nil || *t.TrimTokens
}

// ShouldIgnoreEmptyTokens returns the ignore-empty default, true when unset
func (t TextConfig) ShouldIgnoreEmptyTokens() bool {
	return t.IgnoreEmptyTokens == nil || *t.IgnoreEmptyTokens
}

// Rule returns the configured case rule, CaseUnicode when unset or invalid
func (t TextConfig) Rule() stringx.CaseRule {
	rule, err := stringx.ParseCaseRule(t.CaseRule)
	if err != nil {
		return stringx.CaseUnicode
	}
	return rule
}

// ServerConfig holds the textkitd gRPC server settings
type ServerConfig struct {
	Host              string   `toml:"host" yaml:"host"`
	Port              int      `toml:"port" yaml:"port"`
	EnableReflection  bool     `toml:"enable_reflection" yaml:"enable_reflection"`
	KeepaliveInterval Duration `toml:"keepalive_interval" yaml:"keepalive_interval"`
	KeepaliveTimeout  Duration `toml:"keepalive_timeout" yaml:"keepalive_timeout"`
	ShutdownTimeout   Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// ClientConfig holds settings for CLI calls against a running daemon
type ClientConfig struct {
	Address string   `toml:"address" yaml:"address"`
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns the configuration used when no file is present.
// Environment overrides apply as they do for loaded files.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.ConfigError("Load", mdwerror.CodeMissingConfig, err,
			fmt.Sprintf("config file not found: %s", path))
	}
	if err != nil {
		return nil, errors.ConfigError("Load", mdwerror.CodeConfigError, err,
			fmt.Sprintf("failed to read config: %s", path))
	}

	cfg, err := Parse(content, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes content in the format named by ext (".toml", ".yaml",
// ".yml"), applies defaults and environment overrides, and validates.
func Parse(content []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(content)).Decode(&cfg); err != nil {
			return nil, errors.ConfigError("Parse", mdwerror.CodeInvalidConfig, err, "failed to parse TOML config")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, errors.ConfigError("Parse", mdwerror.CodeInvalidConfig, err, "failed to parse YAML config")
		}
	default:
		return nil, errors.ConfigError("Parse", mdwerror.CodeInvalidConfig, nil,
			fmt.Sprintf("unsupported config format: %q", ext))
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the TEXTKIT_CONFIG environment variable
// or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, errors.ConfigError("LoadFromEnv", mdwerror.CodeMissingConfig, nil,
			"no config file found, set "+EnvConfigPath+" or create configs/textkit.toml")
	}

	return Load(path)
}

// LoadOrDefault is LoadFromEnv falling back to the built-in defaults when
// TEXTKIT_CONFIG is unset and no default file exists. The defaults are
// validated after the environment overrides, like a loaded file.
func LoadOrDefault() (*Config, error) {
	cfg, err := LoadFromEnv()
	if os.Getenv(EnvConfigPath) != "" || !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		return cfg, err
	}

	cfg = Default()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths lists the locations LoadFromEnv tries in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/textkit.toml",
		"./textkit.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "textkit", "textkit.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "textkit"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "json"
	}

	// Text
	if c.Text.Delimiters == "" {
		c.Text.Delimiters = DefaultDelimiters
	}
	if c.Text.CaseRule == "" {
		c.Text.CaseRule = stringx.CaseUnicode.String()
	}

	// Server
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 9310
	}
	if c.Server.KeepaliveInterval.Duration == 0 {
		c.Server.KeepaliveInterval.Duration = 30 * time.Second
	}
	if c.Server.KeepaliveTimeout.Duration == 0 {
		c.Server.KeepaliveTimeout.Duration = 10 * time.Second
	}
	if c.Server.ShutdownTimeout.Duration == 0 {
		c.Server.ShutdownTimeout.Duration = 30 * time.Second
	}

	// Client
	if c.Client.Address == "" {
		c.Client.Address = "localhost:9310"
	}
	if c.Client.Timeout.Duration == 0 {
		c.Client.Timeout.Duration = 5 * time.Second
	}
}

// applyEnvOverrides applies TEXTKIT_* environment variables
func (c *Config) applyEnvOverrides() {
	if host := os.Getenv("TEXTKIT_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("TEXTKIT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if level := os.Getenv("TEXTKIT_LOG_LEVEL"); level != "" {
		c.General.LogLevel = level
	}
	if addr := os.Getenv("TEXTKIT_ADDR"); addr != "" {
		c.Client.Address = addr
	}
}

// Validate checks ranges and parsable names
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return invalid("server.port", c.Server.Port, "port must be between 1 and 65535")
	}
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err.Error())
	}
	if _, err := stringx.ParseCaseRule(c.Text.CaseRule); err != nil {
		return invalid("text.case_rule", c.Text.CaseRule, `case rule must be "unicode" or "ascii"`)
	}
	if c.Client.Timeout.Duration < 0 {
		return invalid("client.timeout", c.Client.Timeout.String(), "timeout must not be negative")
	}
	return nil
}

func invalid(key string, value interface{}, message string) *mdwerror.Error {
	return errors.ConfigError("Validate", mdwerror.CodeInvalidConfig, nil,
		fmt.Sprintf("invalid %s: %s", key, message)).
		WithDetail("key", key).
		WithDetail("value", value)
}

// ServerAddress returns the host:port the server listens on
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
