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
	"fmt"
	"strings"

	"github.com/ouankou/roup/lexer"
)

type (
	// Directive is the raw, syntactic form of a parsed directive line. Its
	// strings are slices of the (possibly continuation-collapsed) input; it
	// must not outlive the input buffer. Semantic interpretation happens in
	// the ir package.
	Directive struct {
		// Canonical directive name in the spelling of the source language,
		// e.g. "parallel for" or "parallel do". For end-pair forms this is
		// the name of the paired opening directive.
		Name string
		// Argument is the parenthesised directive argument of forms like
		// critical(name) or the OpenACC cache(list); empty when absent.
		Argument string
		Clauses  []Clause
		Location lexer.Cursor
		Language lexer.Language
		Dialect  lexer.Dialect
		// EndPair marks "end <name>" forms (Fortran, OpenACC, and the
		// OpenMP "end declare target" family).
		EndPair  bool
		Warnings []Warning
	}

	// Clause is a raw clause: a name plus the body in one of the ClauseBody
	// shapes.
	Clause struct {
		Name string
		Body ClauseBody
	}

	// ClauseBody is the raw body of a clause. Bare clauses have no body,
	// Parenthesized bodies keep their text verbatim, and ReductionBody is
	// the one eagerly structured form (its text is still retained for
	// round-tripping).
	ClauseBody interface {
		fmt.Stringer
		isClauseBody()
	}

	// Bare marks a clause without a parenthesised body, e.g. `nowait`.
	Bare struct{}

	// Parenthesized holds the verbatim text between the clause parentheses.
	Parenthesized struct {
		Text string
	}

	// ReductionBody is the structured raw form of a reduction clause whose
	// body is `operator : variable-list` with an operator from the fixed
	// set. Bodies with modifiers or user-defined identifiers stay
	// Parenthesized and are interpreted during IR conversion.
	ReductionBody struct {
		Text      string
		Operator  ReductionOperator
		Variables []string
	}
)

func (Bare) isClauseBody()          {}
func (Parenthesized) isClauseBody() {}
func (ReductionBody) isClauseBody() {}

func (Bare) String() string            { return "" }
func (b Parenthesized) String() string { return b.Text }
func (b ReductionBody) String() string { return b.Text }

func (c Clause) String() string {
	if _, bare := c.Body.(Bare); bare {
		return c.Name
	}
	return fmt.Sprintf("%s(%s)", c.Name, c.Body)
}

// SentinelFor returns the directive sentinel for the given language and
// dialect, e.g. "#pragma omp" or "!$acc".
func SentinelFor(language lexer.Language, dialect lexer.Dialect) string {
	word := "omp"
	if dialect == lexer.DialectOpenACC {
		word = "acc"
	}
	if language == lexer.LanguageFortran {
		return "!$" + word
	}
	return "#pragma " + word
}

// PragmaString renders the raw directive back to its textual form in the
// source language, with single spaces between tokens. Clause bodies are
// reproduced verbatim.
func (d *Directive) PragmaString() string {
	var sb strings.Builder
	sb.WriteString(SentinelFor(d.Language, d.Dialect))
	sb.WriteByte(' ')
	if d.EndPair {
		sb.WriteString("end ")
	}
	sb.WriteString(d.Name)
	if d.Argument != "" {
		sb.WriteByte('(')
		sb.WriteString(d.Argument)
		sb.WriteByte(')')
	}
	for _, clause := range d.Clauses {
		sb.WriteByte(' ')
		sb.WriteString(clause.String())
	}
	return sb.String()
}
