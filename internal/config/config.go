package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Web holds the settings of the embedded HTTP front end. WebPath
// overrides the bundled location of the compiled frontend; when empty
// the server falls back to its default web root.
type Web struct {
	Host        string `yaml:"host" mapstructure:"host" default:"0.0.0.0"`
	Port        int    `yaml:"port" mapstructure:"port" default:"8000"`
	WebPath     string `yaml:"web_path" mapstructure:"web_path"`
	CORSEnabled bool   `yaml:"cors_enabled" mapstructure:"cors_enabled"`
}

// Configuration is the full repeaterd configuration, loaded once at
// startup and treated as read-only by the server for its lifetime.
type Configuration struct {
	NodeName  string `yaml:"node_name" mapstructure:"node_name" default:"Repeater"`
	PublicKey string `yaml:"public_key" mapstructure:"public_key"`
	LogLevel  string `yaml:"log_level" mapstructure:"log_level" default:"info"`
	LogFormat string `yaml:"log_format" mapstructure:"log_format" default:"console"`
	Web       Web    `yaml:"web" mapstructure:"web"`
}

// Load reads the YAML configuration at path. A missing file is not an
// error: defaults apply and the daemon runs with its built-in settings.
func Load(path string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply config defaults: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values before the daemon starts.
func (c *Configuration) Validate() error {
	if c.Web.Port < 0 || c.Web.Port > 65535 {
		return fmt.Errorf("web.port %d out of range 0-65535", c.Web.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log_format %q", c.LogFormat)
	}
	return nil
}

// Save writes the configuration back to path as YAML. Used by the API
// when the web section is changed from the UI.
func Save(cfg *Configuration, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Addr returns the host:port the web server binds to.
func (w Web) Addr() string {
	return fmt.Sprintf("%s:%d", w.Host, w.Port)
}
