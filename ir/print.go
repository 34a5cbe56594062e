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
	"strings"

	"github.com/ouankou/roup/parser"
)

// Render emits the directive in the requested mode and target language:
// sentinel, directive name in the target spelling, then the clauses in
// their recorded order separated by single spaces. There is no trailing
// whitespace and no line break.
func (d *DirectiveIR) Render(mode RenderMode, language Language) string {
	var sb strings.Builder
	sb.WriteString(parser.SentinelFor(language, d.Dialect))
	sb.WriteByte(' ')
	if d.End != nil {
		sb.WriteString("end ")
	}
	if spec, ok := parser.LookupKind(d.Kind); ok {
		sb.WriteString(spec.Spelling(language))
	}
	if d.Argument != "" {
		sb.WriteByte('(')
		if mode == RenderFull {
			sb.WriteString(d.Argument)
		}
		sb.WriteByte(')')
	}
	for _, clause := range d.Clauses {
		sb.WriteByte(' ')
		sb.WriteString(clause.Render(mode, language))
	}
	return sb.String()
}

// String renders the directive faithfully in its source language.
func (d *DirectiveIR) String() string { return d.Render(RenderFull, d.Language) }

// ToStringInLanguage renders the directive faithfully in another language
// spelling (`for` becomes `do` for Fortran, sentinels switch accordingly).
func (d *DirectiveIR) ToStringInLanguage(language Language) string {
	return d.Render(RenderFull, language)
}

// PlainString renders the directive with user variables elided.
func (d *DirectiveIR) PlainString() string { return d.Render(RenderPlain, d.Language) }

// TemplateString renders the directive with user variables and control
// expressions elided.
func (d *DirectiveIR) TemplateString() string { return d.Render(RenderTemplate, d.Language) }
