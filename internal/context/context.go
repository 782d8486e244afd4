// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package context

import (
	"context"

	"github.com/hashicorp/whitespace-ls/internal/settings"
)

type contextKey struct {
	Name string
}

func (k *contextKey) String() string {
	return k.Name
}

var (
	ctxLsVersion    = &contextKey{"language server version"}
	ctxBaseSettings = &contextKey{"base settings"}
)

func missingContextErr(ctxKey *contextKey) *MissingContextErr {
	return &MissingContextErr{ctxKey}
}

func WithLanguageServerVersion(ctx context.Context, version string) context.Context {
	return context.WithValue(ctx, ctxLsVersion, version)
}

func LanguageServerVersion(ctx context.Context) (string, bool) {
	version, ok := ctx.Value(ctxLsVersion).(string)
	if !ok {
		return "", false
	}
	return version, true
}

// WithBaseSettings attaches settings loaded at startup (e.g. from
// a config file). Client-provided settings are layered on top of these.
func WithBaseSettings(ctx context.Context, s *settings.Settings) context.Context {
	return context.WithValue(ctx, ctxBaseSettings, s)
}

func BaseSettings(ctx context.Context) (*settings.Settings, error) {
	s, ok := ctx.Value(ctxBaseSettings).(*settings.Settings)
	if !ok {
		return nil, missingContextErr(ctxBaseSettings)
	}
	return s, nil
}
