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

	"github.com/ouankou/roup/lexer"
)

type (
	// Variable is one entry of a clause variable list: an identifier with
	// optional array sections, e.g. `arr[0:N]` or `mat[i][0:n:2]`. The
	// verbatim clause text is always kept in Raw so the printer can
	// reproduce the input; Name and Sections are the parsed view when the
	// entry follows the identifier-plus-sections shape. Nested expressions
	// such as `(f(a), g(b))` stay as a single raw pseudo-variable.
	Variable struct {
		Name     string
		Sections []ArraySection
		Raw      string
	}

	// ArraySection is one `[lower : length [: stride]]` subscript. Absent
	// components are nil.
	ArraySection struct {
		Lower, Length, Stride *Expression
	}
)

func (v Variable) String() string { return v.Raw }

// HasSections reports whether the variable carries at least one array
// section.
func (v Variable) HasSections() bool { return len(v.Sections) > 0 }

// ParseVariable interprets one variable-list entry. The original text is
// preserved verbatim; structure is extracted best-effort.
func ParseVariable(text string, config *Config) Variable {
	v := Variable{Raw: strings.Clone(strings.TrimSpace(text))}

	name, rest := lexer.Identifier(v.Raw)
	if name == "" {
		return v
	}
	sections := []ArraySection{}
	for len(rest) > 0 && rest[0] == '[' {
		body, after, err := lexer.BalancedDelim(rest, '[', ']')
		if err != nil {
			return v
		}
		sections = append(sections, parseArraySection(body, config))
		rest = after
	}
	if rest != "" {
		// member accesses and other shapes stay raw-only
		return v
	}
	v.Name = name
	v.Sections = sections
	return v
}

func parseArraySection(body string, config *Config) ArraySection {
	parts := lexer.SplitTopLevel(body, ':')
	section := ArraySection{}
	component := func(index int) *Expression {
		if index >= len(parts) || strings.TrimSpace(parts[index]) == "" {
			return nil
		}
		expr := MakeExpression(parts[index], config)
		return &expr
	}
	section.Lower = component(0)
	section.Length = component(1)
	section.Stride = component(2)
	return section
}

// ParseVariableList splits a clause body on top-level commas and interprets
// each entry as a Variable. Empty entries are dropped.
func ParseVariableList(body string, config *Config) []Variable {
	items := []Variable{}
	for _, part := range lexer.SplitTopLevel(body, ',') {
		if strings.TrimSpace(part) == "" {
			continue
		}
		items = append(items, ParseVariable(part, config))
	}
	return items
}
