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
	"fmt"

	"github.com/RomShelfProject/romshelf-core/pkg/naming"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Custom validator for platform hints, backed by the engine's platform set.
	_ = v.RegisterValidation("platform", validatePlatform)

	return v
}

// Validate checks config values against their struct tags.
func Validate(vals *Values) error {
	if err := validate.Struct(vals); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func validatePlatform(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return naming.KnownPlatform(val)
}
