// Package yaml loads docsearch configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/docsearch"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "docsearch.yaml"

// LoadConfig reads the config at path and fills unset fields with defaults.
// A missing file yields the default configuration. Unknown keys are rejected.
func LoadConfig(path string) (*docsearch.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return docsearch.DefaultConfig(), nil
		}
		return nil, docsearch.WrapError(docsearch.EINVALID, err, "read config %s", path)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, docsearch.WrapError(docsearch.EINVALID, err, "parse config %s", path)
	}
	return cfg, nil
}

// ParseConfig decodes YAML data into a Config with defaults applied.
func ParseConfig(data []byte) (*docsearch.Config, error) {
	var cfg docsearch.Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// DefaultPath returns ./docsearch.yaml when it exists, otherwise
// ~/.config/docsearch/config.yaml.
func DefaultPath() string {
	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, ".config", "docsearch", "config.yaml")
}
