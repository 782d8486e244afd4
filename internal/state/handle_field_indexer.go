// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package state

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/hashicorp/whitespace-ls/internal/document"
)

type HandleFieldIndexer struct {
	Field string
}

func (s *HandleFieldIndexer) FromObject(obj interface{}) (bool, []byte, error) {
	v := reflect.ValueOf(obj)
	v = reflect.Indirect(v) // Dereference the pointer if any

	fv := v.FieldByName(s.Field)
	if !fv.IsValid() {
		return false, nil,
			fmt.Errorf("field '%s' for %#v is invalid", s.Field, obj)
	}

	dh, ok := fv.Interface().(document.Handle)
	if !ok {
		return false, nil,
			fmt.Errorf("field '%s' for %#v is not a Handle", s.Field, obj)
	}

	val := dh.URI
	if val == "" {
		return false, nil, nil
	}

	// Add the null character as a terminator
	val += "\x00"

	return true, []byte(val), nil
}

func (s *HandleFieldIndexer) FromArgs(args ...interface{}) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("must provide only a single argument")
	}
	arg, ok := args[0].(document.Handle)
	if !ok {
		return nil, fmt.Errorf("argument must be a Handle: %#v", args[0])
	}

	val := arg.URI
	// Add the null character as a terminator
	val += "\x00"

	return []byte(val), nil
}

func (s *HandleFieldIndexer) PrefixFromArgs(args ...interface{}) ([]byte, error) {
	idx, err := s.FromArgs(args...)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(idx, []byte("\x00")), nil
}
