// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package context

import "fmt"

// MissingContextErr is returned when a value expected to be set
// by the command starting the server is not in the context
type MissingContextErr struct {
	CtxKey *contextKey
}

func (e *MissingContextErr) Error() string {
	return fmt.Sprintf("%s not found in context", e.CtxKey)
}
