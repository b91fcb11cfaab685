// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	partitalog "github.com/valesdev/partita/utils/log"
	"github.com/valesdev/partita/views/view"
)

// Format is the syntax of a config file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatOf picks the format from a file extension. Anything that is not
// .yaml or .yml is read as TOML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads options from path. A missing file yields Default() with
// environment overrides applied.
func Load(path string) (*Options, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			partitalog.L().Debugw("config file not found, using defaults", "path", path)
			cfg := Default()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f, FormatOf(path))
}

// LoadFromReader decodes options over Default() and applies environment
// overrides.
func LoadFromReader(r io.Reader, format Format) (*Options, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml config: %w", err)
		}
	default:
		if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode toml config: %w", err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Options) {
	if v := os.Getenv("PARTITA_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v, ok := os.LookupEnv("PARTITA_DIALOG_OK"); ok {
		cfg.Dialog.OK = Text(v)
	}
	if v, ok := os.LookupEnv("PARTITA_DIALOG_YES"); ok {
		cfg.Dialog.Yes = Text(v)
	}
	if v, ok := os.LookupEnv("PARTITA_DIALOG_NO"); ok {
		cfg.Dialog.No = Text(v)
	}
	if v := os.Getenv("PARTITA_TOAST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Toast.Timeout = Duration{d}
		} else {
			partitalog.L().Warnw("ignoring PARTITA_TOAST_TIMEOUT", "value", v, "error", err)
		}
	}
	if v := os.Getenv("PARTITA_LOADING_COMPONENT"); v != "" {
		cfg.Loading.Component = &view.Descriptor{Name: v}
	}
	if v := os.Getenv("PARTITA_PTR_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Ptr.Threshold = n
		} else {
			partitalog.L().Warnw("ignoring PARTITA_PTR_THRESHOLD", "value", v, "error", err)
		}
	}
}
