// RomShelf Core
// Copyright (c) 2025 The RomShelf Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of RomShelf Core.
//
// RomShelf Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RomShelf Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RomShelf Core.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	AppName       = "romshelf"
	AppVersion    = "0.1.0"
	CfgEnv        = "ROMSHELF_CFG"
	CfgFile       = "config.toml"
	LogFile       = "core.log"
)

// Convention identifiers accepted in the naming.conventions list, in the
// default priority order. TOSEC goes first as the most structured format,
// GoodTools last as the legacy one.
const (
	ConventionTOSEC     = "tosec"
	ConventionNoIntro   = "no-intro"
	ConventionGoodTools = "goodtools"
)

type Values struct {
	Naming       Naming `toml:"naming,omitempty"`
	Output       Output `toml:"output,omitempty"`
	ConfigSchema int    `toml:"config_schema"`
	DebugLogging bool   `toml:"debug_logging"`
}

// Naming controls parser registry construction.
type Naming struct {
	// DefaultPlatform is an optional platform hint applied when the caller
	// supplies none.
	DefaultPlatform string `toml:"default_platform,omitempty" validate:"omitempty,platform"`
	// Conventions lists enabled conventions in priority order: the first
	// convention claiming a filename wins.
	Conventions []string `toml:"conventions,omitempty,multiline" validate:"dive,oneof=goodtools no-intro tosec"`
}

type Output struct {
	Pretty bool `toml:"pretty"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Naming: Naming{
		Conventions: []string{
			ConventionTOSEC,
			ConventionNoIntro,
			ConventionGoodTools,
		},
	},
}

// cloneValues copies slice-typed fields so a loaded config never writes
// through to the caller's defaults. toml.Unmarshal decodes lists into an
// existing backing array in place, which would otherwise alias BaseDefaults.
func cloneValues(vals Values) Values {
	vals.Naming.Conventions = append([]string(nil), vals.Naming.Conventions...)
	return vals
}

type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       sync.RWMutex
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     cloneValues(defaults),
		defaults: cloneValues(defaults),
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	if _, err := os.Stat(c.cfgPath); err != nil {
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	// This ensures fields not present in the file retain their default values.
	newVals := cloneValues(c.defaults)
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	if err := Validate(&newVals); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.vals = newVals

	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	// set current schema version
	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(c.cfgPath, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Instance) Path() string {
	return c.cfgPath
}

// Conventions returns the enabled conventions in priority order.
func (c *Instance) Conventions() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	conventions := make([]string, len(c.vals.Naming.Conventions))
	copy(conventions, c.vals.Naming.Conventions)
	return conventions
}

// DefaultPlatform returns the configured platform hint, "" when unset.
func (c *Instance) DefaultPlatform() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Naming.DefaultPlatform
}

func (c *Instance) PrettyOutput() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Output.Pretty
}

func (c *Instance) SetPrettyOutput(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Output.Pretty = enabled
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
