// Package config loads the per-user dl-translate configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// FileName is the configuration file looked up in the user config directory.
const FileName = "dl-translate.toml"

// ErrConfigDirUnavailable is returned when the platform user configuration
// directory cannot be determined.
var ErrConfigDirUnavailable = errors.New("cannot get config file directory")

type Config struct {
	AuthKey  string `mapstructure:"auth_key"`
	Endpoint string `mapstructure:"endpoint"`
}

// ReadError reports a config file that could not be opened or read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot open config file %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports a config file that is not valid TOML or lacks a required key.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid config file %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DefaultPath returns <user config dir>/dl-translate.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "", ErrConfigDirUnavailable
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads and parses the file at path. The file is read on every call.
func Load(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(contents)); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	// Viper folds key case; TOML keys are case-sensitive, so presence is
	// checked against the document as written.
	var raw map[string]any
	if err := toml.Unmarshal(contents, &raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	authKey, err := stringKey(raw, "auth_key", true)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	endpoint, err := stringKey(raw, "endpoint", false)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &Config{AuthKey: authKey, Endpoint: endpoint}, nil
}

// stringKey returns the string value of key, spelled exactly. The value is
// type-checked rather than coerced, as viper's typed getters would.
func stringKey(raw map[string]any, key string, required bool) (string, error) {
	value, ok := raw[key]
	if !ok {
		if required {
			return "", fmt.Errorf("missing field %s", key)
		}
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %s: expected a string, got %T", key, value)
	}
	return s, nil
}
