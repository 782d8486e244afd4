// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"
	"encoding/json"
)

func Initialized(ctx context.Context, params json.RawMessage) error {
	return nil
}
