package config

import (
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Config is the server configuration. Values come from the defaults below,
// then the YAML file at CONFIG_FILE, then environment variables named after
// the upper-cased koanf keys (e.g. SERVER_PORT).
type Config struct {
	CartCountURL              string        `koanf:"cart_count_url"`
	CartTimeout               time.Duration `koanf:"cart_timeout"`
	DatabaseBusyTimeout       time.Duration `koanf:"database_busy_timeout"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseFilePath          string        `koanf:"database_file_path" required:"true"`
	DatabaseMaxRetries        int           `koanf:"database_max_retries"`
	Environment               string        `koanf:"environment"`
	ExportFilePrefix          string        `koanf:"export_file_prefix"`
	HooksFile                 string        `koanf:"hooks_file"`
	JWTSecret                 string        `koanf:"jwt_secret" required:"true"`
	OptionKey                 string        `koanf:"option_key"`
	PresetsFile               string        `koanf:"presets_file"`
	ServerHost                string        `koanf:"server_host"`
	ServerPort                int           `koanf:"server_port"`
}

const (
	configFileENV     = "CONFIG_FILE"
	defaultConfigFile = "/config/config.yaml"
	environmentENV    = "ENVIRONMENT"
)

func defaultConfig() *Config {
	return &Config{
		CartTimeout:               2 * time.Second,
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		DatabaseMaxRetries:        5,
		ExportFilePrefix:          "bottom-nav",
		OptionKey:                 "bottom_nav_settings",
		ServerHost:                "0.0.0.0",
		ServerPort:                3689,
	}
}

func New() (*Config, error) {
	cfg := defaultConfig()
	if os.Getenv(environmentENV) == "development" {
		loadDevelopmentConfig(cfg)
	}

	k := koanf.New(".")

	path := os.Getenv(configFileENV)
	if path == "" {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "accessing config %s", path)
	}

	known := keys()
	err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if !known[key] {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "loading env overrides")
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewForTest returns a configuration backed by an in-memory database.
func NewForTest() *Config {
	cfg := defaultConfig()
	cfg.DatabaseFilePath = ":memory:"
	cfg.DatabaseConnectRetryCount = 1
	cfg.DatabaseConnectRetryDelay = 0
	cfg.JWTSecret = "test-secret"
	cfg.ServerHost = "127.0.0.1"
	return cfg
}

// IsTest reports whether the test-only routes should be served.
func (cfg *Config) IsTest() bool {
	return cfg.Environment == "test"
}

func (cfg *Config) validate() error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Tag.Get("required") != "true" {
			continue
		}
		if v.Field(i).IsZero() {
			key := f.Tag.Get("koanf")
			return errors.Errorf("missing required config: %s (%s)", strings.ToUpper(key), key)
		}
	}
	return nil
}

// keys returns every koanf key Config understands.
func keys() map[string]bool {
	t := reflect.TypeOf(Config{})
	known := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		known[t.Field(i).Tag.Get("koanf")] = true
	}
	return known
}
