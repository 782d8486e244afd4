package settings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
)

type WhitespaceOptions struct {
	RemoveTrailingWhitespace        bool `mapstructure:"removeTrailingWhitespace"`
	IgnoreWhitespaceOnCurrentLine   bool `mapstructure:"ignoreWhitespaceOnCurrentLine"`
	IgnoreWhitespaceOnlyLines       bool `mapstructure:"ignoreWhitespaceOnlyLines"`
	IgnoreCommentOnlyLines          bool `mapstructure:"ignoreCommentOnlyLines"`
	EnsureSingleTrailingNewline     bool `mapstructure:"ensureSingleTrailingNewline"`
	KeepMarkdownLineBreakWhitespace bool `mapstructure:"keepMarkdownLineBreakWhitespace"`

	// CommentMarkers is the set of characters a comment-only line
	// may consist of
	CommentMarkers string `mapstructure:"commentMarkers"`

	// MarkdownScopes lists scopes where Markdown line breaks
	// are recognized
	MarkdownScopes []string `mapstructure:"markdownScopes"`
}

func (o WhitespaceOptions) Validate() error {
	if strings.ContainsAny(o.CommentMarkers, " \t\r\n") {
		return fmt.Errorf("comment markers must not contain whitespace, %q given", o.CommentMarkers)
	}
	for _, scope := range o.MarkdownScopes {
		if scope == "" {
			return fmt.Errorf("expected non-empty scope name")
		}
	}
	return nil
}

type EditorOptions struct {
	TabLength int `mapstructure:"tabLength"`
}

func (o EditorOptions) Validate() error {
	if o.TabLength < 1 {
		return fmt.Errorf("expected positive tab length, %d given", o.TabLength)
	}
	return nil
}

// Options represent settings resolved for a particular scope
type Options struct {
	Whitespace WhitespaceOptions
	Editor     EditorOptions
}

func DefaultOptions() *Options {
	return &Options{
		Whitespace: WhitespaceOptions{
			RemoveTrailingWhitespace:        true,
			IgnoreWhitespaceOnCurrentLine:   true,
			IgnoreWhitespaceOnlyLines:       false,
			IgnoreCommentOnlyLines:          false,
			EnsureSingleTrailingNewline:     true,
			KeepMarkdownLineBreakWhitespace: true,
			CommentMarkers:                  "#*/",
			MarkdownScopes:                  []string{"source.gfm", "markdown"},
		},
		Editor: EditorOptions{
			TabLength: 2,
		},
	}
}

func (o *Options) Copy() *Options {
	newOpts := *o
	if o.Whitespace.MarkdownScopes != nil {
		newOpts.Whitespace.MarkdownScopes = make([]string, len(o.Whitespace.MarkdownScopes))
		copy(newOpts.Whitespace.MarkdownScopes, o.Whitespace.MarkdownScopes)
	}
	return &newOpts
}

// IsMarkdownScope returns true if scope is one of MarkdownScopes
// or is nested under one of them
func (o *Options) IsMarkdownScope(scope string) bool {
	for _, ms := range o.Whitespace.MarkdownScopes {
		if scope == ms || strings.HasPrefix(scope, ms+".") {
			return true
		}
	}
	return false
}

type layer struct {
	Whitespace map[string]interface{} `mapstructure:"whitespace"`
	Editor     map[string]interface{} `mapstructure:"editor"`
}

type rawSettings struct {
	Whitespace map[string]interface{} `mapstructure:"whitespace"`
	Editor     map[string]interface{} `mapstructure:"editor"`
	Scopes     map[string]layer       `mapstructure:"scopes"`
}

// Settings hold the global and scope-specific layers
// of user configuration
type Settings struct {
	global layer
	scopes map[string]layer
}

type DecodedSettings struct {
	Settings   *Settings
	UnusedKeys []string

	// Warnings describe values which were ignored
	// in favour of the value from a lower layer
	Warnings error
}

// DecodeSettings decodes user configuration.
//
// Only a structurally invalid input (e.g. a non-object) results
// in an error. Individual malformed values are reported as Warnings.
func DecodeSettings(input interface{}) (*DecodedSettings, error) {
	var md mapstructure.Metadata
	var raw rawSettings

	config := &mapstructure.DecoderConfig{
		Metadata: &md,
		Result:   &raw,
	}
	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		panic(err)
	}

	if err := decoder.Decode(input); err != nil {
		return nil, err
	}

	s := &Settings{
		global: layer{
			Whitespace: raw.Whitespace,
			Editor:     raw.Editor,
		},
		scopes: raw.Scopes,
	}

	unused := md.Unused
	var warnings *multierror.Error

	u, err := applyLayer(DefaultOptions(), "", s.global)
	unused = append(unused, u...)
	if err != nil {
		warnings = multierror.Append(warnings, err)
	}
	for _, scope := range sortedKeys(s.scopes) {
		u, err := applyLayer(DefaultOptions(), "scopes."+scope+".", s.scopes[scope])
		unused = append(unused, u...)
		if err != nil {
			warnings = multierror.Append(warnings, err)
		}
	}
	sort.Strings(unused)

	return &DecodedSettings{
		Settings:   s,
		UnusedKeys: unused,
		Warnings:   warnings.ErrorOrNil(),
	}, nil
}

// ForScope resolves options for the given scope by applying
// defaults, global settings and then settings of each dotted
// prefix of the scope, e.g. "source", "source.js", "source.js.jsx".
func (s *Settings) ForScope(scope string) *Options {
	opts := DefaultOptions()
	if s == nil {
		return opts
	}

	applyLayer(opts, "", s.global)

	if scope == "" {
		return opts
	}
	parts := strings.Split(scope, ".")
	for i := range parts {
		prefix := strings.Join(parts[:i+1], ".")
		if l, ok := s.scopes[prefix]; ok {
			applyLayer(opts, "scopes."+prefix+".", l)
		}
	}

	return opts
}

func applyLayer(opts *Options, keyPrefix string, l layer) ([]string, error) {
	var errs *multierror.Error

	ws, unused, err := decodeKeys(keyPrefix+"whitespace", opts.Whitespace, l.Whitespace, WhitespaceOptions.Validate)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	opts.Whitespace = ws

	ed, u, err := decodeKeys(keyPrefix+"editor", opts.Editor, l.Editor, EditorOptions.Validate)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	opts.Editor = ed

	return append(unused, u...), errs.ErrorOrNil()
}

// decodeKeys decodes each key of raw separately on top of current,
// so that a malformed value only falls back to the value of
// that particular key.
func decodeKeys[T any](section string, current T, raw map[string]interface{}, validate func(T) error) (T, []string, error) {
	var errs *multierror.Error
	unused := make([]string, 0)

	for _, key := range sortedKeys(raw) {
		candidate := current

		var md mapstructure.Metadata
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Metadata:         &md,
			Result:           &candidate,
			WeaklyTypedInput: true,
			ZeroFields:       true,
		})
		if err != nil {
			panic(err)
		}

		err = decoder.Decode(map[string]interface{}{key: raw[key]})
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s.%s: %w", section, key, err))
			continue
		}
		if len(md.Unused) > 0 {
			unused = append(unused, section+"."+key)
			continue
		}
		err = validate(candidate)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s.%s: %w", section, key, err))
			continue
		}

		current = candidate
	}

	return current, unused, errs.ErrorOrNil()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
