// Config loading for the dietlog CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/dietlog/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "DIETLOG"

	cfgKeyBackend      = "backend"
	cfgKeyDataDir      = "data_dir"
	cfgKeyLogLevel     = "log.level"
	cfgKeyLogstashURL  = "log.logstash.url"
	cfgKeyElasticURL   = "log.elastic.url"
	cfgKeyElasticIndex = "log.elastic.index"
	cfgKeyServerPort   = "server.port"
	cfgKeyUserName     = "user.name"

	defaultBackend    = types.BackendSQLite
	defaultLogLevel   = "warn"
	defaultServerPort = 8080
)

// settings is the typed view of config.yaml.
type settings struct {
	backend      string
	dataDir      string
	logLevel     string
	logstashURL  string
	elasticURL   string
	elasticIndex string
	port         int
	user         string
}

// configFile is the structure written to config.yaml.
type configFile struct {
	Backend string       `yaml:"backend"`
	DataDir string       `yaml:"data_dir,omitempty"`
	Log     logConfig    `yaml:"log"`
	Server  serverConfig `yaml:"server"`
	User    userConfig   `yaml:"user"`
}

type logConfig struct {
	Level string `yaml:"level"`
}

type serverConfig struct {
	Port int `yaml:"port"`
}

type userConfig struct {
	Name string `yaml:"name,omitempty"`
}

// loadConfig reads config.yaml from configDir using Viper, writing a default
// file on first run. Keys can be overridden by DIETLOG_* environment
// variables, with dots replaced by underscores (DIETLOG_LOG_LEVEL).
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), defaultBackend, ""); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogstashURL, "")
	v.SetDefault(cfgKeyElasticURL, "")
	v.SetDefault(cfgKeyElasticIndex, "")
	v.SetDefault(cfgKeyServerPort, defaultServerPort)
	v.SetDefault(cfgKeyUserName, "")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func settingsFrom(v *viper.Viper) settings {
	return settings{
		backend:      v.GetString(cfgKeyBackend),
		dataDir:      v.GetString(cfgKeyDataDir),
		logLevel:     v.GetString(cfgKeyLogLevel),
		logstashURL:  v.GetString(cfgKeyLogstashURL),
		elasticURL:   v.GetString(cfgKeyElasticURL),
		elasticIndex: v.GetString(cfgKeyElasticIndex),
		port:         v.GetInt(cfgKeyServerPort),
		user:         v.GetString(cfgKeyUserName),
	}
}

// writeConfigIfMissing creates config.yaml with the given backend and data
// directory. An existing file is left untouched.
func writeConfigIfMissing(path, backend, dataDir string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cf := configFile{
		Backend: backend,
		DataDir: dataDir,
		Log:     logConfig{Level: defaultLogLevel},
		Server:  serverConfig{Port: defaultServerPort},
	}

	data, err := yaml.Marshal(&cf)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
