// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"path/filepath"
	"strings"
)

const PlainTextScope = "text.plain"

var scopesByExtension = map[string]string{
	".c":        "source.c",
	".cpp":      "source.cpp",
	".css":      "source.css",
	".go":       "source.go",
	".h":        "source.c",
	".hcl":      "source.hcl",
	".html":     "text.html.basic",
	".java":     "source.java",
	".js":       "source.js",
	".json":     "source.json",
	".jsx":      "source.js.jsx",
	".markdown": "source.gfm",
	".md":       "source.gfm",
	".py":       "source.python",
	".rb":       "source.ruby",
	".rs":       "source.rust",
	".sh":       "source.shell",
	".tf":       "source.terraform",
	".toml":     "source.toml",
	".ts":       "source.ts",
	".tsx":      "source.tsx",
	".txt":      PlainTextScope,
	".yaml":     "source.yaml",
	".yml":      "source.yaml",
}

var scopesByName = map[string]string{
	"Dockerfile":  "source.dockerfile",
	"GNUmakefile": "source.makefile",
	"Makefile":    "source.makefile",
}

// ScopeForFilename guesses the scope of a file from its name
func ScopeForFilename(name string) string {
	base := filepath.Base(name)
	if scope, ok := scopesByName[base]; ok {
		return scope
	}
	if scope, ok := scopesByExtension[strings.ToLower(filepath.Ext(base))]; ok {
		return scope
	}
	return PlainTextScope
}

// ScopeForLanguageID maps an LSP language identifier to a scope
func ScopeForLanguageID(languageID, filename string) string {
	switch languageID {
	case "markdown":
		return "source.gfm"
	case "plaintext", "":
		return ScopeForFilename(filename)
	case "javascriptreact":
		return "source.js.jsx"
	case "typescript":
		return "source.ts"
	case "shellscript":
		return "source.shell"
	}
	return "source." + languageID
}
