// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BiBongNet/alloy-ui/base/errors"
	"github.com/BiBongNet/alloy-ui/colors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported config file formats.
type Formats int32

const (
	// TOML is the default format.
	TOML Formats = iota

	YAML
)

// ErrUnknownFormat is returned for config files with an unknown extension.
var ErrUnknownFormat = errors.New("unknown config format")

// FormatFromPath returns the format for the extension of the given file.
func FormatFromPath(path string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("config.FormatFromPath: %w: %q", ErrUnknownFormat, path)
}

// Default returns a new config with all of the default values.
func Default() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		panic("config.Default: " + err.Error())
	}
	return cfg
}

// Open reads the config file at the given path, with the format
// determined by its extension, on top of the default values,
// and validates it.
func Open(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Open: %w", err)
	}
	cfg, err := Read(b, format)
	if err != nil {
		return nil, fmt.Errorf("config.Open: %s: %w", path, err)
	}
	return cfg, nil
}

// Read reads the given config data in the given format on top
// of the default values, and validates it.
func Read(b []byte, format Formats) (*Config, error) {
	cfg := Default()
	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config.Read: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write returns the given config encoded in the given format.
func Write(cfg *Config, format Formats) ([]byte, error) {
	if format == YAML {
		return yaml.Marshal(cfg)
	}
	return toml.Marshal(cfg)
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		errors.Must(v.RegisterValidation("hexalpha", func(fl validator.FieldLevel) bool {
			return colors.ValidHexAlpha(fl.Field().String())
		}))
		validate = v
	})
	return validate
}

// Validate checks that the config values are in range.
func (cfg *Config) Validate() error {
	if err := validatorInstance().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config.Validate: field %s failed %q validation (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config.Validate: %w", err)
	}
	return nil
}
