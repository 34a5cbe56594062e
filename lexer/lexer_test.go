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

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		input            string
		expectedLanguage Language
		expectedDialect  Dialect
		expectedRest     string
		expectedError    error
	}{
		{
			input:            "#pragma omp parallel",
			expectedLanguage: LanguageC,
			expectedDialect:  DialectOpenMP,
			expectedRest:     " parallel",
		},
		{
			input:            "#pragma acc kernels",
			expectedLanguage: LanguageC,
			expectedDialect:  DialectOpenACC,
			expectedRest:     " kernels",
		},
		{
			input:            "#  pragma omp for",
			expectedLanguage: LanguageC,
			expectedDialect:  DialectOpenMP,
			expectedRest:     " for",
		},
		{
			input:            "!$omp parallel do",
			expectedLanguage: LanguageFortran,
			expectedDialect:  DialectOpenMP,
			expectedRest:     " parallel do",
		},
		{
			input:            "!$OMP PARALLEL DO",
			expectedLanguage: LanguageFortran,
			expectedDialect:  DialectOpenMP,
			expectedRest:     " PARALLEL DO",
		},
		{
			input:            "  !$acc loop",
			expectedLanguage: LanguageFortran,
			expectedDialect:  DialectOpenACC,
			expectedRest:     " loop",
		},
		{
			input:         "not a pragma",
			expectedError: ErrNoPrefix,
		},
		{
			input:         "#pragma once",
			expectedError: ErrNoPrefix,
		},
	}

	for _, tc := range testCases {
		language, dialect, rest, err := Classify(tc.input)
		assert.ErrorIs(t, err, tc.expectedError, "unexpected error for input: %q", tc.input)
		if tc.expectedError != nil {
			continue
		}
		assert.Equal(t, tc.expectedLanguage, language, "unexpected language for input: %q", tc.input)
		assert.Equal(t, tc.expectedDialect, dialect, "unexpected dialect for input: %q", tc.input)
		assert.Equal(t, tc.expectedRest, rest, "unexpected rest for input: %q", tc.input)
	}
}

func TestCollapseContinuations(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{
			input:    "parallel \\\n    for schedule(static)",
			expected: "parallel for schedule(static)",
		},
		{
			input:    "parallel\\\n    for\\\n    private(i)",
			expected: "parallel for private(i)",
		},
		{
			input:    "#pragma omp parallel",
			expected: "#pragma omp parallel",
		},
		{
			input:    "!$omp parallel do &\n!$omp & private(i)",
			expected: "!$omp parallel do private(i)",
		},
		{
			input:    "!$omp target &\n    & map(to: a)",
			expected: "!$omp target map(to: a)",
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, CollapseContinuations(tc.input), "input: %q", tc.input)
	}
}

func TestSkipSpaceAndComments(t *testing.T) {
	testCases := []struct {
		input         string
		expectedRest  string
		expectedError error
	}{
		{input: "   private(i)", expectedRest: "private(i)"},
		{input: "/* c */ private(a)", expectedRest: "private(a)"},
		{input: "\t/* one */ /* two */nowait", expectedRest: "nowait"},
		{input: "// eol\nrest", expectedRest: "\nrest"},
		{input: "// eol comment only", expectedRest: ""},
		{input: "/* never closed", expectedError: ErrUnterminatedComment},
		{input: "private(i)", expectedRest: "private(i)"},
	}

	for _, tc := range testCases {
		rest, _, err := SkipSpaceAndComments(tc.input)
		assert.ErrorIs(t, err, tc.expectedError, "input: %q", tc.input)
		if tc.expectedError == nil {
			assert.Equal(t, tc.expectedRest, rest, "input: %q", tc.input)
		}
	}
}

func TestCursorAdvancedBy(t *testing.T) {
	cursor := CursorInit.AdvancedBy("#pragma omp")
	assert.Equal(t, Cursor{Line: 1, Column: 12, Offset: 11}, cursor)

	cursor = cursor.AdvancedBy(" parallel\nfor")
	assert.Equal(t, Cursor{Line: 2, Column: 4, Offset: 24}, cursor)
}
