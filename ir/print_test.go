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
	"regexp"
	"strings"
	"testing"

	"github.com/ouankou/roup/parser"
	"github.com/stretchr/testify/assert"
)

func TestPlainStringElidesUserSymbols(t *testing.T) {
	ir := convert(t, "#pragma omp target data map(tofrom: a[0:ARRAY_SIZE], num_teams) map(to: b[0:ARRAY_SIZE])", nil)
	assert.Equal(t, "#pragma omp target data map(tofrom: ) map(to: )", ir.PlainString())
}

func TestTemplateStringElidesControlExpressions(t *testing.T) {
	ir := convert(t, "#pragma omp for schedule(static,64) collapse(2) reduction(*: sum)", nil)
	assert.Equal(t, "#pragma omp for schedule(static, ) collapse() reduction(*: )", ir.TemplateString())
}

func TestPlainStringKeepsControlExpressions(t *testing.T) {
	ir := convert(t, "#pragma omp for schedule(static,64) collapse(2)", nil)
	assert.Equal(t, "#pragma omp for schedule(static, 64) collapse(2)", ir.PlainString())
}

func TestFortranTemplateUsesFortranSentinel(t *testing.T) {
	directive := NewDirective(parser.DirectiveTarget).Build(StartLocation(), LanguageFortran)
	assert.True(t, strings.HasPrefix(directive.TemplateString(), "!$omp "),
		"Fortran directives must use the !$omp sentinel in template output")
}

func TestFullRenderingIsCanonical(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{
			input:    "#pragma omp parallel for private(i) reduction(+:sum) schedule(static,64)",
			expected: "#pragma omp parallel for private(i) reduction(+: sum) schedule(static, 64)",
		},
		{
			input:    "#pragma omp target   data /* c */ map(tofrom:a[0:N])",
			expected: "#pragma omp target data map(tofrom: a[0:N])",
		},
		{
			input:    "#pragma omp for ordered nowait",
			expected: "#pragma omp for ordered nowait",
		},
		{
			input:    "#pragma acc enter_data copyin(a)",
			expected: "#pragma acc enter data copyin(a)",
		},
	}

	for _, tc := range testCases {
		ir := convert(t, tc.input, nil)
		assert.Equal(t, tc.expected, ir.String(), "input: %q", tc.input)
	}
}

func TestRenderParseStability(t *testing.T) {
	// parse . render . parse is a fixed point
	inputs := []string{
		"#pragma omp parallel for private(i) reduction(+: sum) schedule(static, 64)",
		"#pragma omp target data map(tofrom: a[0:N], x) map(to: b[0:N])",
		"#pragma omp task depend(iterator(it=0:n), in: a[it]) priority(3)",
		"!$omp parallel do private(i, j)",
		"#pragma acc parallel loop gang vector reduction(+: sum)",
	}

	for _, input := range inputs {
		first := convert(t, input, nil)
		second := convert(t, first.String(), nil)
		assert.Equal(t, first.Kind, second.Kind, "input: %q", input)
		assert.Equal(t, first.String(), second.String(), "input: %q", input)
		assert.Equal(t, first.Clauses, second.Clauses, "input: %q", input)
	}
}

var identifierPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

func TestPlainStringContainsOnlyKeywords(t *testing.T) {
	keywords := map[string]bool{
		"pragma": true, "omp": true, "acc": true,
		"target": true, "data": true, "parallel": true, "for": true, "do": true, "task": true,
		"map": true, "tofrom": true, "to": true, "from": true, "alloc": true,
		"reduction": true, "private": true, "shared": true, "schedule": true,
		"static": true, "dynamic": true, "guided": true, "min": true, "max": true,
		"depend": true, "in": true, "out": true, "inout": true, "nowait": true,
	}

	inputs := []string{
		"#pragma omp target data map(tofrom: a[0:N]) map(to: b[0:N])",
		"#pragma omp parallel for private(user_sym) shared(other) reduction(max: m) nowait",
		"#pragma omp task depend(in: buffer)",
	}

	for _, input := range inputs {
		plain := convert(t, input, nil).PlainString()
		for _, word := range identifierPattern.FindAllString(plain, -1) {
			assert.True(t, keywords[word], "unexpected identifier %q in plain output %q", word, plain)
		}
	}
}
