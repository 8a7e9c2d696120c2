package config

import (
	"bytes"
	"io"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.viam.com/carplan/logging"
)

// Read reads a config from the given file. Environment variables such as ${TURNING_RADIUS} are
// substituted before the file is parsed.
func Read(filePath string, logger logging.Logger) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return FromReader(filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a config from the given reader and specifies
// where, if applicable, the file the reader originated from.
// Fields left out of the file keep their defaults.
func FromReader(originalPath string, r io.Reader, logger logging.Logger) (*Config, error) {
	cfg := NewDefault()
	cfg.ConfigFilePath = originalPath

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode config from yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Debugw("read config", "path", originalPath, "model", cfg.Vehicle.Model, "queries", len(cfg.Queries))
	}
	return cfg, nil
}

// Write encodes the config as yaml.
func Write(w io.Writer, cfg *Config) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	return encoder.Close()
}
