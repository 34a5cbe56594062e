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

package roup

import (
	"testing"

	"github.com/ouankou/roup/ir"
	"github.com/ouankou/roup/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParallelForScenario(t *testing.T) {
	directive, err := Parse("#pragma omp parallel for private(i) reduction(+: sum) schedule(static, 64)")
	require.NoError(t, err)

	assert.Equal(t, parser.DirectiveParallelFor, directive.Kind)
	require.Len(t, directive.Clauses, 3)

	private := directive.Clauses[0].(ir.Private)
	assert.Equal(t, "i", private.Items[0].Name)

	reduction := directive.Clauses[1].(ir.Reduction)
	assert.Equal(t, parser.ReductionAdd, reduction.Operator)
	assert.Equal(t, "sum", reduction.Items[0].Name)

	schedule := directive.Clauses[2].(ir.Schedule)
	assert.Equal(t, ir.ScheduleStatic, schedule.Kind)
	assert.Equal(t, "64", schedule.Chunk.Raw)
}

func TestConvertsCToFortran(t *testing.T) {
	output, err := ConvertDirectiveLanguage("#pragma omp parallel for private(i, j)",
		ir.LanguageC, ir.LanguageFortran)
	require.NoError(t, err)
	assert.Equal(t, "!$omp parallel do private(i, j)", output)
}

func TestConvertsFortranToC(t *testing.T) {
	output, err := ConvertDirectiveLanguage("!$OMP TARGET TEAMS DISTRIBUTE PARALLEL DO",
		ir.LanguageFortran, ir.LanguageC)
	require.NoError(t, err)
	assert.Equal(t, "#pragma omp target teams distribute parallel for", output)
}

func TestConvertsForWithNowaitClause(t *testing.T) {
	output, err := ConvertDirectiveLanguage("#pragma omp for nowait", ir.LanguageC, ir.LanguageFortran)
	require.NoError(t, err)
	assert.Equal(t, "!$omp do nowait", output)
}

func TestConvertsCombinedConstructsToFortran(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{
			input:    "#pragma omp parallel for private(i) schedule(static, 4)",
			expected: "!$omp parallel do private(i) schedule(static, 4)",
		},
		{
			input:    "#pragma omp target teams distribute parallel for simd collapse(2)",
			expected: "!$omp target teams distribute parallel do simd collapse(2)",
		},
		{
			input:    "#pragma omp distribute parallel for",
			expected: "!$omp distribute parallel do",
		},
	}

	for _, tc := range testCases {
		output, err := ConvertDirectiveLanguage(tc.input, ir.LanguageC, ir.LanguageFortran)
		require.NoError(t, err, "input: %q", tc.input)
		assert.Equal(t, tc.expected, output, "input: %q", tc.input)
	}
}

func TestRejectsInvalidDirectives(t *testing.T) {
	_, err := ConvertDirectiveLanguage("not a pragma", ir.LanguageC, ir.LanguageFortran)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRejectsUnsupportedTranslationPairs(t *testing.T) {
	_, err := ConvertDirectiveLanguage("#pragma omp parallel", ir.LanguageCxx, ir.LanguageFortran)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported translation")

	_, err = ConvertDirectiveLanguage("!$omp parallel", ir.LanguageFortran, ir.LanguageCxx)
	require.Error(t, err)
}

func TestParseWithNormalizationMergesSharedClauses(t *testing.T) {
	config := ir.DefaultConfig()
	config.Normalization = ir.NormalizationMergeLists

	directive, err := Parse("#pragma omp parallel shared(a) shared(b)", WithConfig(config))
	require.NoError(t, err)
	require.Len(t, directive.Clauses, 1)
	shared := directive.Clauses[0].(ir.Shared)
	require.Len(t, shared.Items, 2)
}

func TestParseAccEndPairScenario(t *testing.T) {
	directive, err := Parse("#pragma acc end parallel")
	require.NoError(t, err)
	assert.True(t, directive.IsEndPair())
	assert.Equal(t, ir.DirectiveKind(10000), directive.EndPairedKind())
}

func TestParseWithCommentsScenario(t *testing.T) {
	directive, err := Parse("#pragma omp parallel /* c */ private(a) // eol\n")
	require.NoError(t, err)
	assert.Equal(t, parser.DirectiveParallel, directive.Kind)
	require.Len(t, directive.Clauses, 1)
	private := directive.Clauses[0].(ir.Private)
	assert.Equal(t, "a", private.Items[0].Name)
}

func TestPlainRenderScenario(t *testing.T) {
	directive, err := Parse("#pragma omp target data map(tofrom: a[0:N], x) map(to: b[0:N])")
	require.NoError(t, err)
	assert.Equal(t, "#pragma omp target data map(tofrom: ) map(to: )",
		Render(directive, ir.RenderPlain, ir.LanguageC))
}

func TestRoundTripIsCanonicalising(t *testing.T) {
	// parse . render . parse is a fixed point over a spread of inputs
	inputs := []string{
		"#pragma omp parallel for private(i) reduction(+: sum) schedule(static, 64)",
		"#pragma omp for reduction(max:(f(a), g(b))) private(i)",
		"#pragma omp target if(device) device(0) map(tofrom: array[0:N]) nowait",
		"#pragma omp taskloop simd grainsize(4) num_tasks(16) reduction(max: max_val) shared(out)",
		"#pragma acc parallel loop gang vector_length(128) reduction(+: sum)",
		"#pragma acc data copyin(a[0:n]) copyout(b[0:n]) async(2)",
		"!$omp parallel do private(i, j) schedule(dynamic, 8)",
	}

	for _, input := range inputs {
		first, err := Parse(input)
		require.NoError(t, err, "input: %q", input)
		rendered := first.String()
		second, err := Parse(rendered)
		require.NoError(t, err, "rendered: %q", rendered)
		assert.Equal(t, rendered, second.String(), "input: %q", input)
		assert.Equal(t, first.Kind, second.Kind, "input: %q", input)
		assert.Equal(t, first.Clauses, second.Clauses, "input: %q", input)
	}
}
