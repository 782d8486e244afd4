// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
)

const DefaultConfigPath = "~/.config/whitespace-ls/config.json"

// LoadFile reads settings from a JSON file.
//
// A missing file at DefaultConfigPath is not an error,
// defaults are returned instead.
func LoadFile(path string) (*DecodedSettings, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	fullPath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultConfigPath {
			return DecodeSettings(nil)
		}
		return nil, err
	}

	var input map[string]interface{}
	err = json.Unmarshal(b, &input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fullPath, err)
	}

	return DecodeSettings(input)
}
