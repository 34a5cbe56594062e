// Copyright 2025 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ir defines the typed semantic representation of parsed directives
// and the conversion from the raw syntactic form. A DirectiveIR owns all of
// its strings and is immutable after construction, so it outlives the input
// buffer and is safe to share across goroutines.
package ir

import (
	"errors"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ouankou/roup/lexer"
)

// Language and Dialect are shared with the lexical layer; the aliases let
// IR consumers stay within this package.
type (
	Language = lexer.Language
	Dialect  = lexer.Dialect
)

const (
	LanguageC       = lexer.LanguageC
	LanguageCxx     = lexer.LanguageCxx
	LanguageFortran = lexer.LanguageFortran

	DialectOpenMP  = lexer.DialectOpenMP
	DialectOpenACC = lexer.DialectOpenACC
)

// SourceLocation is the position of a directive in the original source,
// carried for downstream diagnostics. Line and Column are 1-based.
type SourceLocation struct {
	Line, Column, Offset int
}

// StartLocation is the location of a directive that starts its buffer.
func StartLocation() SourceLocation {
	return SourceLocation{Line: 1, Column: 1}
}

// LocationFromCursor converts a lexer cursor into a SourceLocation.
func LocationFromCursor(c lexer.Cursor) SourceLocation {
	return SourceLocation{Line: c.Line, Column: c.Column, Offset: c.Offset}
}

// RenderMode selects how much of the directive the pretty-printer emits.
type RenderMode int

const (
	// RenderFull is the faithful semantic rendering.
	RenderFull RenderMode = iota
	// RenderPlain elides user variables but keeps clause keywords,
	// operators, modifiers and control expressions.
	RenderPlain
	// RenderTemplate additionally elides the expressions of control
	// clauses such as collapse or the schedule chunk.
	RenderTemplate
)

// NormalizationMode selects the optional post-parse clause rewriting.
type NormalizationMode int

const (
	// NormalizationDisabled preserves clause order and repetition exactly.
	NormalizationDisabled NormalizationMode = iota
	// NormalizationMergeLists merges repeated list clauses with identical
	// modifiers by concatenating their variable lists in source order.
	NormalizationMergeLists
	// NormalizationCanonicalize additionally sorts variable lists and
	// stabilises clause order by a fixed clause-kind order.
	NormalizationCanonicalize
)

func (m *NormalizationMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "disabled":
		*m = NormalizationDisabled
	case "merge", "merge_lists":
		*m = NormalizationMergeLists
	case "canonicalize", "canonicalise":
		*m = NormalizationCanonicalize
	default:
		return errors.New("unknown normalization mode " + string(text))
	}
	return nil
}

// Config controls IR conversion. The zero value disables everything; use
// DefaultConfig for the usual settings.
type Config struct {
	Normalization NormalizationMode `toml:"normalization"`
	// ParseExpressions enables the best-effort expression mini-parser.
	// Expressions that fail to parse are kept as raw text either way.
	ParseExpressions bool `toml:"parse_expressions"`
	// Strict makes unknown clause names a conversion error instead of an
	// Unknown clause value.
	Strict bool `toml:"strict"`
	// WarnUnderscoreSpelling makes roup.Parse enable the parser's warning
	// for underscore-spelled multi-word OpenACC directives. Convert itself
	// does not read it; it only copies the warnings the parser recorded.
	WarnUnderscoreSpelling bool `toml:"warn_underscore_spelling"`
}

// DefaultConfig returns the configuration used by the package-level entry
// points: expression parsing on, normalization off, lenient clauses.
func DefaultConfig() *Config {
	return &Config{ParseExpressions: true}
}

// LoadConfig reads a Config from a TOML file.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}
	return config, nil
}
