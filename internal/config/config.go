package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	dirName  = ".t3-cua-tools"
	fileName = "config"
	fileType = "yaml"
	// EnvPrefix namespaces environment overrides, e.g. T3CUA_EDITOR.
	EnvPrefix = "T3CUA"
)

// Config represents user settings stored on disk.
type Config struct {
	Editor    string `mapstructure:"editor"`
	Open      bool   `mapstructure:"open"`
	UIPackage string `mapstructure:"ui_package"`
	Force     bool   `mapstructure:"force"`
	JSONLogs  bool   `mapstructure:"json_logs"`
	Verbose   int    `mapstructure:"verbose"`
}

// Keys lists every setting accepted by Set, with its default.
var Keys = map[string]any{
	"editor":     "",
	"open":       true,
	"ui_package": "@my/ui",
	"force":      false,
	"json_logs":  false,
	"verbose":    0,
}

// ErrUnknownKey is returned by Set for keys outside Keys.
var ErrUnknownKey = errors.New("unknown config key")

// Store wraps one viper instance bound to a config file.
type Store struct {
	v    *viper.Viper
	fs   afero.Fs
	path string
}

// DefaultPath returns ~/.t3-cua-tools/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not find home directory")
	}
	return filepath.Join(homeDir, dirName, fileName+"."+fileType), nil
}

// Load reads path (or the default path when empty) plus T3CUA_* environment
// variables. A missing file yields defaults.
func Load(fsys afero.Fs, path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for k, def := range Keys {
		v.SetDefault(k, def)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}
	return &Store{v: v, fs: fsys, path: path}, nil
}

// Path is the config file backing the store.
func (s *Store) Path() string { return s.path }

// Config decodes the current settings.
func (s *Store) Config() (Config, error) {
	var cfg Config
	if err := s.v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}
	return cfg, nil
}

// Get returns a setting as text and whether the key is known.
func (s *Store) Get(key string) (string, bool) {
	if _, ok := Keys[key]; !ok {
		return "", false
	}
	return s.v.GetString(key), true
}

// Set stores a known key and writes the config file.
func (s *Store) Set(key, value string) error {
	if _, ok := Keys[key]; !ok {
		return errors.WithHintf(errors.Wrapf(ErrUnknownKey, "%q", key), "known keys: %v", SortedKeys())
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	s.v.Set(key, value)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// SortedKeys returns the known keys in alphabetical order.
func SortedKeys() []string {
	keys := make([]string, 0, len(Keys))
	for k := range Keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
