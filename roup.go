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

// Package roup is a unified parser and intermediate representation for
// directive-based parallel-programming annotations: OpenMP (#pragma omp,
// !$omp) and OpenACC (#pragma acc, !$acc).
//
// The pipeline has two stages. The parser package recognises the sentinel,
// the directive name and the clause list, producing a raw directive that
// borrows from the input. The ir package promotes it to a typed, owned
// DirectiveIR with structured clause data, and renders it back to text in
// either C/C++ or Fortran spelling. This package composes the two stages
// into one-call entry points.
//
// Parsing is pure and stateless: no I/O, no shared mutable state, safe to
// call concurrently from any number of goroutines.
package roup

import (
	"fmt"

	"github.com/ouankou/roup/ir"
	"github.com/ouankou/roup/parser"
)

// Option configures a Parse call.
type Option func(*options)

type options struct {
	parserOpts []parser.Option
	config     *ir.Config
	language   ir.Language
	hasLang    bool
}

// WithDialect restricts parsing to one dialect.
func WithDialect(dialect ir.Dialect) Option {
	return func(o *options) { o.parserOpts = append(o.parserOpts, parser.WithDialect(dialect)) }
}

// WithLanguage declares the language of the surrounding translation unit.
func WithLanguage(language ir.Language) Option {
	return func(o *options) {
		o.parserOpts = append(o.parserOpts, parser.WithLanguage(language))
		o.language = language
		o.hasLang = true
	}
}

// WithConfig supplies an IR conversion configuration (normalization mode,
// strictness, expression parsing).
func WithConfig(config *ir.Config) Option {
	return func(o *options) { o.config = config }
}

// Parse parses one directive line and converts it to IR in a single call.
func Parse(input string, opts ...Option) (*ir.DirectiveIR, error) {
	o := &options{config: ir.DefaultConfig()}
	for _, opt := range opts {
		opt(o)
	}
	if o.config.WarnUnderscoreSpelling {
		o.parserOpts = append(o.parserOpts, parser.WithUnderscoreWarnings())
	}

	_, directive, err := parser.New(o.parserOpts...).Parse(input)
	if err != nil {
		return nil, err
	}
	language := directive.Language
	if o.hasLang && language != ir.LanguageFortran {
		language = o.language
	}
	return ir.Convert(directive, ir.LocationFromCursor(directive.Location), language, o.config)
}

// Render emits a directive IR in the given mode and target language.
func Render(d *ir.DirectiveIR, mode ir.RenderMode, language ir.Language) string {
	return d.Render(mode, language)
}

// ConvertDirectiveLanguage rewrites a directive from one language spelling
// to another: parse in the source language, render in the target. Only
// C<->Fortran and C<->C++ translations are supported; the dialect never
// changes.
func ConvertDirectiveLanguage(input string, source, target ir.Language) (string, error) {
	if !translationSupported(source, target) {
		return "", fmt.Errorf("unsupported translation from %s to %s", source, target)
	}

	_, directive, err := parser.New(parser.WithLanguage(source)).Parse(input)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s directive: %w", source, err)
	}
	if directive.Language != source {
		return "", fmt.Errorf("failed to parse: input is %s, not %s", directive.Language, source)
	}

	converted, err := ir.Convert(directive, ir.LocationFromCursor(directive.Location), source, ir.DefaultConfig())
	if err != nil {
		return "", err
	}
	return converted.ToStringInLanguage(target), nil
}

func translationSupported(source, target ir.Language) bool {
	if source == target {
		return true
	}
	switch {
	case source == ir.LanguageFortran && target == ir.LanguageCxx,
		source == ir.LanguageCxx && target == ir.LanguageFortran:
		return false
	default:
		return true
	}
}
