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

package parser

import (
	"strings"

	"github.com/ouankou/roup/internal/collections"
	"github.com/ouankou/roup/lexer"
)

// DirectiveKind is the stable numeric tag of a recognised directive. The
// values are a wire-level contract with downstream tooling: OpenMP tags start
// at 0, OpenACC tags at AccDirectiveBase, so a tag alone identifies the
// dialect.
type DirectiveKind int32

// AccDirectiveBase is the fixed offset of OpenACC directive tags. It must
// never change.
const AccDirectiveBase DirectiveKind = 10000

// Dialect reports which catalogue the kind belongs to.
func (k DirectiveKind) Dialect() lexer.Dialect {
	if k >= AccDirectiveBase {
		return lexer.DialectOpenACC
	}
	return lexer.DialectOpenMP
}

type (
	// DirectiveSpec is one entry of the closed directive catalogue.
	DirectiveSpec struct {
		Kind DirectiveKind
		// Canonical C-family spelling: lowercase name tokens separated by
		// single spaces (or an underscore where that is the official
		// spelling, as in OpenACC host_data).
		Name string
		// NoClauses marks directives that do not accept a clause list.
		NoClauses bool
		// TakesArgument marks directives followed by a parenthesised
		// argument rather than (or before) clauses, e.g. critical(name),
		// flush(list) or the OpenACC cache(list) construct.
		TakesArgument bool
	}

	registry struct {
		dialect  lexer.Dialect
		specs    []DirectiveSpec
		byKey    map[string]*DirectiveSpec // normalized C spelling
		byForKey map[string]*DirectiveSpec // normalized Fortran spelling
		prefixes map[lexer.Language]collections.Set[string]
		clauses  map[string]*ClauseSpec
		ordered  []ClauseSpec
	}
)

// Spelling returns the canonical spelling of the directive in the given
// language: Fortran replaces the `for` token with `do`.
func (s *DirectiveSpec) Spelling(language lexer.Language) string {
	if language == lexer.LanguageFortran {
		return fortranSpelling(s.Name)
	}
	return s.Name
}

func fortranSpelling(name string) string {
	words := strings.Split(name, " ")
	for i, w := range words {
		if w == "for" {
			words[i] = "do"
		}
	}
	return strings.Join(words, " ")
}

// normalizeKey maps a spelling to the internal lookup key: lowercase with
// underscores treated as word separators, so `enter data` and `enter_data`
// share a key.
func normalizeKey(name string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '_' || r == '\t'
	}), " ")
}

func newRegistry(dialect lexer.Dialect, specs []DirectiveSpec, clauses []ClauseSpec) *registry {
	r := &registry{
		dialect:  dialect,
		specs:    specs,
		byKey:    make(map[string]*DirectiveSpec, len(specs)),
		byForKey: make(map[string]*DirectiveSpec, len(specs)),
		prefixes: map[lexer.Language]collections.Set[string]{
			lexer.LanguageC:       make(collections.Set[string]),
			lexer.LanguageFortran: make(collections.Set[string]),
		},
		clauses: make(map[string]*ClauseSpec, len(clauses)),
		ordered: clauses,
	}
	for i := range specs {
		spec := &specs[i]
		r.byKey[normalizeKey(spec.Name)] = spec
		r.byForKey[normalizeKey(fortranSpelling(spec.Name))] = spec
		addPrefixes(r.prefixes[lexer.LanguageC], normalizeKey(spec.Name))
		addPrefixes(r.prefixes[lexer.LanguageFortran], normalizeKey(fortranSpelling(spec.Name)))
	}
	for i := range clauses {
		r.clauses[clauses[i].Name] = &clauses[i]
	}
	return r
}

// addPrefixes records every strict token prefix of key, so the matcher can
// tell whether accumulating one more token may still reach a registered name.
func addPrefixes(set collections.Set[string], key string) {
	words := strings.Split(key, " ")
	for i := 1; i < len(words); i++ {
		set.Add(strings.Join(words[:i], " "))
	}
}

func (r *registry) names(language lexer.Language) map[string]*DirectiveSpec {
	if language == lexer.LanguageFortran {
		return r.byForKey
	}
	return r.byKey
}

func (r *registry) prefixSet(language lexer.Language) collections.Set[string] {
	if language == lexer.LanguageFortran {
		return r.prefixes[lexer.LanguageFortran]
	}
	return r.prefixes[lexer.LanguageC]
}

var registries = map[lexer.Dialect]*registry{}

func init() {
	registries[lexer.DialectOpenMP] = newRegistry(lexer.DialectOpenMP, openMPDirectives, openMPClauses)
	registries[lexer.DialectOpenACC] = newRegistry(lexer.DialectOpenACC, openACCDirectives, openACCClauses)
}

func registryFor(dialect lexer.Dialect) *registry { return registries[dialect] }

// LookupDirective resolves a directive name (in either language spelling,
// space- or underscore-separated) to its catalogue entry.
func LookupDirective(dialect lexer.Dialect, name string) (*DirectiveSpec, bool) {
	r := registryFor(dialect)
	key := normalizeKey(name)
	if spec, ok := r.byKey[key]; ok {
		return spec, true
	}
	spec, ok := r.byForKey[key]
	return spec, ok
}

// LookupKind resolves a numeric directive tag back to its catalogue entry.
func LookupKind(kind DirectiveKind) (*DirectiveSpec, bool) {
	r := registryFor(kind.Dialect())
	for i := range r.specs {
		if r.specs[i].Kind == kind {
			return &r.specs[i], true
		}
	}
	return nil, false
}

// LookupClause resolves a clause name in the dialect's clause catalogue.
func LookupClause(dialect lexer.Dialect, name string) (*ClauseSpec, bool) {
	spec, ok := registryFor(dialect).clauses[name]
	return spec, ok
}

// Directives returns the dialect's directive catalogue in tag order.
func Directives(dialect lexer.Dialect) []DirectiveSpec {
	return registryFor(dialect).specs
}

// Clauses returns the dialect's clause catalogue.
func Clauses(dialect lexer.Dialect) []ClauseSpec {
	return registryFor(dialect).ordered
}

type directiveMatch struct {
	spec        *DirectiveSpec
	rest        string
	endPair     bool
	underscored bool
	consumed    int
}

// matchDirective consumes the directive name from input (positioned at the
// first name token) using greedy longest-match over the registry. A leading
// `end` token switches to end-pair mode: the remaining tokens are matched as
// a normal directive and the result is tagged as its end pair.
func (r *registry) matchDirective(input string, language lexer.Language) (directiveMatch, error) {
	match := directiveMatch{}
	rest := input

	tok, after := lexer.Identifier(rest)
	if tok == "" {
		return match, lexer.ErrExpectedIdentifier
	}
	if normalizeToken(tok, language) == "end" {
		match.endPair = true
		skipped, _, err := lexer.SkipSpaceAndComments(after)
		if err != nil {
			return match, err
		}
		rest = skipped
		tok, after = lexer.Identifier(rest)
		if tok == "" {
			return match, lexer.ErrExpectedIdentifier
		}
	}

	names := r.names(language)
	prefixes := r.prefixSet(language)

	key := normalizeToken(tok, language)
	match.underscored = strings.ContainsRune(tok, '_') && strings.ContainsRune(key, ' ')
	if spec, ok := names[key]; ok {
		match.spec = spec
		match.rest = after
	}

	for prefixes.Contains(key) || match.spec != nil {
		skipped, _, err := lexer.SkipSpaceAndComments(after)
		if err != nil {
			break
		}
		tok, tokRest := lexer.Identifier(skipped)
		if tok == "" {
			break
		}
		candidate := key + " " + normalizeToken(tok, language)
		spec, isName := names[candidate]
		if !isName && !prefixes.Contains(candidate) {
			break
		}
		key = candidate
		after = tokRest
		if strings.ContainsRune(tok, '_') {
			match.underscored = true
		}
		if isName {
			match.spec = spec
			match.rest = after
		}
	}

	if match.spec == nil {
		return match, ErrUnknownDirective
	}
	match.consumed = len(input) - len(match.rest)
	return match, nil
}

func normalizeToken(tok string, language lexer.Language) string {
	if !language.CaseSensitive() {
		tok = strings.ToLower(tok)
	}
	return strings.ReplaceAll(tok, "_", " ")
}
