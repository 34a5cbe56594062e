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

package ir

import (
	"github.com/ouankou/roup/parser"
)

// DirectiveKind re-exports the stable numeric directive tag of the parser
// catalogue; see parser.DirectiveParallel and friends for the values.
type DirectiveKind = parser.DirectiveKind

type (
	// DirectiveIR is the owned, typed form of a parsed directive. It is
	// immutable after construction; build variants with DirectiveBuilder.
	DirectiveIR struct {
		Kind DirectiveKind
		// Argument is the parenthesised directive argument of forms like
		// critical(name); empty when absent.
		Argument string
		Clauses  []ClauseData
		Location SourceLocation
		Language Language
		Dialect  Dialect
		// End is present exactly when the directive is an `end <name>`
		// pair; Kind then identifies the paired opening directive as well.
		End      *EndDirective
		Warnings []parser.Warning
	}

	// EndDirective is the metadata of an end-pair form.
	EndDirective struct {
		PairedKind DirectiveKind
	}
)

// IsEndPair reports whether this is an `end <name>` form.
func (d *DirectiveIR) IsEndPair() bool { return d.End != nil }

// EndPairedKind returns the kind of the paired opening directive, or -1 when
// the directive is not an end pair.
func (d *DirectiveIR) EndPairedKind() DirectiveKind {
	if d.End == nil {
		return -1
	}
	return d.End.PairedKind
}

// Name returns the canonical C-family spelling of the directive name.
func (d *DirectiveIR) Name() string {
	if spec, ok := parser.LookupKind(d.Kind); ok {
		return spec.Name
	}
	return ""
}

// Clause returns the first clause with the given keyword, or nil.
func (d *DirectiveIR) Clause(keyword string) ClauseData {
	for _, clause := range d.Clauses {
		if clause.Keyword() == keyword {
			return clause
		}
	}
	return nil
}

// HasClause reports whether a clause with the given keyword is present.
func (d *DirectiveIR) HasClause(keyword string) bool { return d.Clause(keyword) != nil }

// DirectiveBuilder constructs DirectiveIR values programmatically, for
// consumers that synthesise directives instead of parsing them.
type DirectiveBuilder struct {
	kind     DirectiveKind
	argument string
	clauses  []ClauseData
}

// NewDirective starts a builder for the given directive kind.
func NewDirective(kind DirectiveKind) *DirectiveBuilder {
	return &DirectiveBuilder{kind: kind}
}

// WithArgument sets the parenthesised directive argument.
func (b *DirectiveBuilder) WithArgument(argument string) *DirectiveBuilder {
	b.argument = argument
	return b
}

// WithClause appends one clause.
func (b *DirectiveBuilder) WithClause(clause ClauseData) *DirectiveBuilder {
	b.clauses = append(b.clauses, clause)
	return b
}

// Build finalises the directive. The builder can be reused; the built value
// owns a copy of the clause list.
func (b *DirectiveBuilder) Build(location SourceLocation, language Language) *DirectiveIR {
	clauses := make([]ClauseData, len(b.clauses))
	copy(clauses, b.clauses)
	return &DirectiveIR{
		Kind:     b.kind,
		Argument: b.argument,
		Clauses:  clauses,
		Location: location,
		Language: language,
		Dialect:  b.kind.Dialect(),
	}
}
