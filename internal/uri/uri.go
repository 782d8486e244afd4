// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package uri

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"unicode"
)

// FromPath creates a URI from OS-specific path per RFC 8089 "file" URI Scheme
func FromPath(rawPath string) string {
	path := filepath.ToSlash(filepath.Clean(rawPath))

	if isWindowsDriveVolume(filepath.VolumeName(rawPath)) {
		// Per RFC 8089 (Appendix F. Collected Nonstandard Rules)
		// paths with drive-letters (such as C:) are prepended
		// with an additional slash.
		path = "/" + path
	}

	u := &url.URL{
		Scheme: "file",
		Path:   path,
	}

	return u.String()
}

// PathFromURI extracts OS-specific path from an RFC 8089 "file" URI Scheme
func PathFromURI(rawUri string) (string, error) {
	u, err := parseUri(rawUri)
	if err != nil {
		return "", err
	}

	p := u.Path
	if len(p) > 2 && p[0] == '/' && isWindowsDriveVolume(p[1:3]) {
		p = p[1:]
	}

	return filepath.Clean(filepath.FromSlash(p)), nil
}

// Normalize returns the URI re-escaped in a uniform way,
// so that the same file is always represented by the same string.
//
// URIs which are not valid file URIs are returned unchanged.
func Normalize(rawUri string) string {
	u, err := parseUri(rawUri)
	if err != nil {
		return rawUri
	}
	return u.String()
}

// IsURIValid checks whether uri is a valid URI per RFC 8089
func IsURIValid(uri string) bool {
	_, err := parseUri(uri)
	return err == nil
}

func isWindowsDriveVolume(path string) bool {
	if len(path) < 2 {
		return false
	}
	return unicode.IsLetter(rune(path[0])) && path[1] == ':'
}

func parseUri(rawUri string) (*url.URL, error) {
	u, err := url.ParseRequestURI(rawUri)
	if err != nil {
		return nil, err
	}

	if u.Scheme != "file" {
		return nil, fmt.Errorf("unexpected scheme %q in URI %q",
			u.Scheme, rawUri)
	}

	u.Path = strings.TrimSuffix(u.Path, "/")

	// Some clients escape ASCII characters such as colon.
	// Resetting RawPath makes String() re-escape the unescaped Path.
	u.RawPath = ""

	return u, nil
}
