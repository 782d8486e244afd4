// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CommandArgs holds workspace/executeCommand arguments by lowercased key
type CommandArgs map[string]interface{}

func (c CommandArgs) GetString(variable string) (string, bool) {
	vRaw, ok := c[variable]
	if !ok {
		return "", false
	}
	v, ok := vRaw.(string)
	if !ok {
		return "", false
	}
	return v, true
}

func (c CommandArgs) GetBool(variable string) (bool, bool) {
	vRaw, ok := c[variable]
	if !ok {
		return false, false
	}
	v, ok := vRaw.(bool)
	if !ok {
		return false, false
	}
	return v, true
}

// ParseCommandArgs accepts arguments either as "key=value" strings
// or as JSON objects, e.g. ["uri=file:///a.txt"] or [{"uri": "file:///a.txt"}]
func ParseCommandArgs(arguments []json.RawMessage) CommandArgs {
	args := make(CommandArgs)
	for _, rawArg := range arguments {
		var obj map[string]interface{}
		if err := json.Unmarshal(rawArg, &obj); err == nil {
			for k, v := range obj {
				args[strings.ToLower(k)] = v
			}
			continue
		}

		var arg string
		if err := json.Unmarshal(rawArg, &arg); err != nil || arg == "" {
			continue
		}

		pair := strings.SplitN(arg, "=", 2)
		if len(pair) != 2 {
			continue
		}

		variable := strings.ToLower(pair[0])
		value := pair[1]
		if b, err := strconv.ParseBool(value); err == nil {
			args[variable] = b
			continue
		}
		args[variable] = value
	}
	return args
}
