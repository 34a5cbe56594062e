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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsesSimpleExpressions(t *testing.T) {
	testCases := []struct {
		input    string
		expected ExprNode
	}{
		{input: "64", expected: IntLit(64)},
		{input: "0x40", expected: IntLit(64)},
		{input: "1.5", expected: FloatLit(1.5)},
		{input: "n", expected: Ident("n")},
		{input: "true", expected: BoolLit(true)},
		{input: "n + 1", expected: Binary{Op: "+", L: Ident("n"), R: IntLit(1)}},
		{input: "n*2 + 1", expected: Binary{Op: "+", L: Binary{Op: "*", L: Ident("n"), R: IntLit(2)}, R: IntLit(1)}},
		{input: "-n", expected: Unary{Op: "-", X: Ident("n")}},
		{input: "!flag && ready", expected: Binary{Op: "&&", L: Unary{Op: "!", X: Ident("flag")}, R: Ident("ready")}},
		{input: "(n + 1)", expected: Paren{X: Binary{Op: "+", L: Ident("n"), R: IntLit(1)}}},
		{input: "omp_get_num_threads()", expected: Call{Name: "omp_get_num_threads"}},
		{input: "f(a, b + 1)", expected: Call{Name: "f", Args: []ExprNode{Ident("a"), Binary{Op: "+", L: Ident("b"), R: IntLit(1)}}}},
		{input: "size / 2 >= limit", expected: Binary{Op: ">=", L: Binary{Op: "/", L: Ident("size"), R: IntLit(2)}, R: Ident("limit")}},
	}

	for _, tc := range testCases {
		expr := MakeExpression(tc.input, DefaultConfig())
		assert.Equal(t, tc.expected, expr.AST, "input: %q", tc.input)
		assert.True(t, expr.IsParsed(), "input: %q", tc.input)
	}
}

func TestUnparsableExpressionsDegradeGracefully(t *testing.T) {
	testCases := []string{
		"a ? b : c",
		"x.field",
		"arr[0]",
		".true.",
		"a +",
		"",
	}

	for _, input := range testCases {
		expr := MakeExpression(input, DefaultConfig())
		assert.False(t, expr.IsParsed(), "input: %q", input)
		assert.Equal(t, input, expr.Raw, "raw text must be preserved for input: %q", input)
	}
}

func TestExpressionParsingCanBeDisabled(t *testing.T) {
	config := DefaultConfig()
	config.ParseExpressions = false
	expr := MakeExpression("n + 1", config)
	assert.False(t, expr.IsParsed())
	assert.Equal(t, "n + 1", expr.Raw)
}

func TestExpressionRawTextIsTrimmed(t *testing.T) {
	expr := MakeExpression("  64 ", DefaultConfig())
	assert.Equal(t, "64", expr.Raw)
	assert.Equal(t, IntLit(64), expr.AST)
}

func TestExprNodeStrings(t *testing.T) {
	node := Binary{Op: "+", L: Binary{Op: "*", L: Ident("n"), R: IntLit(2)}, R: Call{Name: "f", Args: []ExprNode{Ident("x")}}}
	assert.Equal(t, "n * 2 + f(x)", node.String())
	assert.Equal(t, "(n + 1)", Paren{X: Binary{Op: "+", L: Ident("n"), R: IntLit(1)}}.String())
	assert.Equal(t, "-n", Unary{Op: "-", X: Ident("n")}.String())
}
