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

// Package parser implements the syntactic stage of the directive pipeline.
// It recognises the directive sentinel, consumes the directive name by
// greedy longest-match over the closed directive catalogue (including
// combined constructs such as `target teams distribute parallel for simd`)
// and collects the clause list as raw, uninterpreted clauses.
//
// The parser is deliberately shallow: clause bodies are captured verbatim
// (balanced parentheses, string literals and comments are honoured) and
// interpreted later by the ir package. The syntactic stage copies no text:
// every captured string is a slice of the (possibly continuation-collapsed)
// input buffer.
package parser

import (
	"fmt"
	"strings"

	"github.com/ouankou/roup/lexer"
)

// Parser parses one directive line at a time. The zero value accepts both
// dialects and treats C-family input as C; use the options to restrict the
// dialect, upgrade the language to C++ or enable underscore-spelling
// warnings. A Parser is immutable after construction and safe for
// concurrent use.
type Parser struct {
	dialect        lexer.Dialect
	restrict       bool
	language       lexer.Language
	warnUnderscore bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithDialect restricts the parser to a single dialect; input carrying the
// other sentinel is rejected.
func WithDialect(dialect lexer.Dialect) Option {
	return func(p *Parser) {
		p.dialect = dialect
		p.restrict = true
	}
}

// WithLanguage sets the language of the surrounding translation unit. Only
// the C/C++ distinction matters here: the sentinel cannot tell them apart.
func WithLanguage(language lexer.Language) Option {
	return func(p *Parser) { p.language = language }
}

// WithUnderscoreWarnings makes the parser record a warning when a multi-word
// OpenACC directive is spelled with underscores (`enter_data`).
func WithUnderscoreWarnings() Option {
	return func(p *Parser) { p.warnUnderscore = true }
}

// New returns a Parser accepting both dialects, configured by opts.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OpenMP returns a parser restricted to OpenMP input.
func OpenMP() *Parser { return New(WithDialect(lexer.DialectOpenMP)) }

// OpenACC returns a parser restricted to OpenACC input.
func OpenACC() *Parser { return New(WithDialect(lexer.DialectOpenACC)) }

// Parse parses a single directive line. It returns the unconsumed input
// (anything after the logical directive line) and the raw directive. The
// returned directive borrows from the input; convert it to IR before the
// buffer goes away.
func (p *Parser) Parse(input string) (string, *Directive, error) {
	collapsed := lexer.CollapseContinuations(input)

	language, dialect, rest, err := lexer.Classify(collapsed)
	if err != nil {
		return collapsed, nil, errorAt(0, err, "")
	}
	if p.restrict && dialect != p.dialect {
		return collapsed, nil, errorAt(0, ErrWrongDialect, dialect.String())
	}
	if language == lexer.LanguageC && p.language == lexer.LanguageCxx {
		language = lexer.LanguageCxx
	}

	offset := func(remaining string) int { return len(collapsed) - len(remaining) }

	rest, _, err = lexer.SkipSpaceAndComments(rest)
	if err != nil {
		return collapsed, nil, errorAt(offset(rest), err, "")
	}
	location := lexer.CursorInit.AdvancedBy(collapsed[:offset(rest)])

	r := registryFor(dialect)
	match, err := r.matchDirective(rest, language)
	if err != nil {
		return collapsed, nil, errorAt(offset(rest), err, firstWord(rest))
	}
	rest = match.rest

	d := &Directive{
		Name:     match.spec.Spelling(language),
		Location: location,
		Language: language,
		Dialect:  dialect,
		EndPair:  match.endPair,
	}
	if match.underscored && p.warnUnderscore && dialect == lexer.DialectOpenACC {
		d.Warnings = append(d.Warnings, Warning{
			Offset:  offset(rest) - match.consumed,
			Message: fmt.Sprintf("directive %q spelled with underscores", d.Name),
		})
	}

	if match.spec.TakesArgument {
		rest, err = p.parseArgument(d, rest, offset)
		if err != nil {
			return collapsed, nil, err
		}
	}

	for {
		skipped, consumed, err := lexer.SkipSpaceAndComments(rest)
		if err != nil {
			return collapsed, nil, errorAt(offset(rest), err, "")
		}
		if lexer.AtLineEnd(skipped) {
			rest = skipped
			break
		}
		if consumed == 0 && (len(d.Clauses) > 0 || d.Argument != "") {
			return collapsed, nil, errorAt(offset(skipped), ErrExpectedWhitespace, firstWord(skipped))
		}
		rest = skipped

		clause, remaining, err := p.parseClause(d, rest, offset)
		if err != nil {
			return collapsed, nil, err
		}
		if match.spec.NoClauses {
			return collapsed, nil, errorAt(offset(rest), ErrUnexpectedClauses, clause.Name)
		}
		d.Clauses = append(d.Clauses, clause)
		rest = remaining
	}

	return rest, d, nil
}

// parseArgument consumes the optional parenthesised directive argument of
// forms like critical(name) or cache(list).
func (p *Parser) parseArgument(d *Directive, rest string, offset func(string) int) (string, error) {
	skipped, _, err := lexer.SkipSpaceAndComments(rest)
	if err != nil {
		return rest, errorAt(offset(rest), err, "")
	}
	if len(skipped) == 0 || skipped[0] != '(' {
		return rest, nil
	}
	body, remaining, err := lexer.BalancedBody(skipped)
	if err != nil {
		return rest, errorAt(offset(skipped), err, "")
	}
	d.Argument = body
	return remaining, nil
}

// parseClause reads one clause: its name, then the body according to the
// catalogued rule. Unknown clause names are accepted under the default rule
// (balanced parenthesised body when one follows, bare otherwise) and become
// untyped clauses downstream.
func (p *Parser) parseClause(d *Directive, rest string, offset func(string) int) (Clause, string, error) {
	name, after := lexer.Identifier(rest)
	if name == "" {
		return Clause{}, rest, errorAt(offset(rest), lexer.ErrExpectedIdentifier, firstWord(rest))
	}
	if !d.Language.CaseSensitive() {
		name = strings.ToLower(name)
	}

	spec, known := LookupClause(d.Dialect, name)
	rule := RuleFlexible
	if known {
		rule = spec.Rule
	}

	switch rule {
	case RuleCustom:
		remaining, body, err := spec.Custom(name, after)
		if err != nil {
			return Clause{}, rest, errorAt(offset(after), err, name)
		}
		return Clause{Name: name, Body: body}, remaining, nil

	case RuleBare:
		return Clause{Name: name, Body: Bare{}}, after, nil

	case RuleParenthesized:
		if len(after) == 0 || after[0] != '(' {
			return Clause{}, rest, errorAt(offset(after), ErrExpectedClauseBody, name)
		}
		body, remaining, err := lexer.BalancedBody(after)
		if err != nil {
			return Clause{}, rest, errorAt(offset(after), err, name)
		}
		return Clause{Name: name, Body: Parenthesized{Text: body}}, remaining, nil

	default: // RuleFlexible, RuleUnsupported and unknown clauses
		if len(after) > 0 && after[0] == '(' {
			body, remaining, err := lexer.BalancedBody(after)
			if err != nil {
				return Clause{}, rest, errorAt(offset(after), err, name)
			}
			return Clause{Name: name, Body: Parenthesized{Text: body}}, remaining, nil
		}
		return Clause{Name: name, Body: Bare{}}, after, nil
	}
}

func firstWord(s string) string {
	if i := strings.IndexAny(s, " \t\n"); i >= 0 {
		return s[:i]
	}
	return s
}
