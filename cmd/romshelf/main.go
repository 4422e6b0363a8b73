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

// romshelf reads ROM filenames from its arguments, or stdin when none are
// given, and prints one JSON metadata record per filename.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/RomShelfProject/romshelf-core/pkg/config"
	"github.com/RomShelfProject/romshelf-core/pkg/helpers"
	"github.com/RomShelfProject/romshelf-core/pkg/naming"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	platform := flag.String(
		"platform",
		"",
		"platform hint for parser selection",
	)
	pretty := flag.Bool(
		"pretty",
		false,
		"indent JSON output",
	)
	debug := flag.Bool(
		"debug",
		false,
		"enable debug logging",
	)
	version := flag.Bool(
		"version",
		false,
		"print version and exit",
	)
	flag.Parse()

	if *version {
		_, _ = fmt.Printf("RomShelf v%s\n", config.AppVersion)
		return nil
	}

	if err := helpers.InitLogging(helpers.LogDir(), nil); err != nil {
		return fmt.Errorf("error initializing logging: %w", err)
	}

	cfg, err := config.NewConfig(helpers.ConfigDir(), config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	cfg.SetDebugLogging(cfg.DebugLogging() || *debug)
	if *pretty {
		cfg.SetPrettyOutput(true)
	}

	hint := *platform
	if hint == "" {
		hint = cfg.DefaultPlatform()
	}
	if hint != "" && !naming.KnownPlatform(hint) {
		return fmt.Errorf("unknown platform: %s", hint)
	}

	registry, err := buildRegistry(cfg.Conventions(), hint)
	if err != nil {
		return err
	}

	filenames := flag.Args()
	if len(filenames) == 0 {
		filenames, err = readLines(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
	}

	out := bufio.NewWriter(os.Stdout)
	defer func() { _ = out.Flush() }()

	for _, filename := range filenames {
		if err := emit(out, registry, filename, hint, cfg.PrettyOutput()); err != nil {
			return err
		}
	}

	return nil
}

// buildRegistry registers a parser per enabled convention, in config order.
func buildRegistry(conventions []string, platform string) (*naming.Registry, error) {
	registry := naming.NewRegistry()
	for _, convention := range conventions {
		switch convention {
		case config.ConventionGoodTools:
			registry.Register(naming.NewGoodTools(platform))
		case config.ConventionNoIntro:
			registry.Register(naming.NewNoIntro(platform))
		case config.ConventionTOSEC:
			registry.Register(naming.NewTOSEC(platform))
		default:
			return nil, fmt.Errorf("unknown convention: %s", convention)
		}
	}
	return registry, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	return lines, nil
}

func emit(w io.Writer, registry *naming.Registry, filename, hint string, pretty bool) error {
	result, ok := registry.Parse(filename, hint)
	if !ok {
		log.Debug().Str("filename", filename).Msg("falling back to verbatim filename")
		result = map[string]any{"clean_name": filename}
	}
	result["filename"] = filename
	result["matched"] = ok

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("error writing result: %w", err)
	}
	return nil
}
