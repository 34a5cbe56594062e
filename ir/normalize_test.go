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
	"github.com/stretchr/testify/require"
)

func withNormalization(mode NormalizationMode) *Config {
	config := DefaultConfig()
	config.Normalization = mode
	return config
}

func TestNormalizationDisabledKeepsDuplicateShared(t *testing.T) {
	ir := convert(t, "#pragma omp parallel shared(a) shared(b)", withNormalization(NormalizationDisabled))

	require.Len(t, ir.Clauses, 2)
	_, ok := ir.Clauses[0].(Shared)
	assert.True(t, ok)
	_, ok = ir.Clauses[1].(Shared)
	assert.True(t, ok)
}

func TestNormalizationMergeConcatenatesSharedLists(t *testing.T) {
	ir := convert(t, "#pragma omp parallel shared(a) shared(b)", withNormalization(NormalizationMergeLists))

	require.Len(t, ir.Clauses, 1)
	shared, ok := ir.Clauses[0].(Shared)
	require.True(t, ok)
	require.Len(t, shared.Items, 2)
	assert.Equal(t, "a", shared.Items[0].String())
	assert.Equal(t, "b", shared.Items[1].String())
}

func TestNormalizationMergeRespectsModifiers(t *testing.T) {
	// same kind, different map types: must not merge
	ir := convert(t, "#pragma omp target map(to: a) map(from: b) map(to: c)", withNormalization(NormalizationMergeLists))

	require.Len(t, ir.Clauses, 2)
	first := ir.Clauses[0].(Map)
	assert.Equal(t, MapTo, first.Type)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "a", first.Items[0].String())
	assert.Equal(t, "c", first.Items[1].String())

	second := ir.Clauses[1].(Map)
	assert.Equal(t, MapFrom, second.Type)
}

func TestNormalizationMergeKeepsReductionOperatorsApart(t *testing.T) {
	ir := convert(t, "#pragma omp parallel reduction(+: a) reduction(*: b) reduction(+: c)",
		withNormalization(NormalizationMergeLists))

	require.Len(t, ir.Clauses, 2)
	add := ir.Clauses[0].(Reduction)
	require.Len(t, add.Items, 2)
	mul := ir.Clauses[1].(Reduction)
	require.Len(t, mul.Items, 1)
}

func TestNormalizationMergePreservesVariableMultiset(t *testing.T) {
	input := "#pragma omp parallel shared(a, b) private(x) shared(c) private(y, z)"
	disabled := convert(t, input, withNormalization(NormalizationDisabled))
	merged := convert(t, input, withNormalization(NormalizationMergeLists))

	count := func(ir *DirectiveIR) int {
		total := 0
		for _, clause := range ir.Clauses {
			total += len(clauseItems(clause))
		}
		return total
	}
	assert.Equal(t, count(disabled), count(merged))
	assert.Less(t, len(merged.Clauses), len(disabled.Clauses))
}

func TestCanonicalizeSortsItemsAndClauses(t *testing.T) {
	ir := convert(t, "#pragma omp parallel shared(c, a) private(z, x) shared(b) if(n)",
		withNormalization(NormalizationCanonicalize))

	require.Len(t, ir.Clauses, 3)
	// fixed clause order puts if before private before shared
	_, ok := ir.Clauses[0].(If)
	require.True(t, ok)
	private := ir.Clauses[1].(Private)
	assert.Equal(t, []string{"x", "z"}, []string{private.Items[0].Raw, private.Items[1].Raw})
	shared := ir.Clauses[2].(Shared)
	assert.Equal(t, []string{"a", "b", "c"},
		[]string{shared.Items[0].Raw, shared.Items[1].Raw, shared.Items[2].Raw})
}

func TestCanonicalizeResolvesRepeatedNonListClausesLastWins(t *testing.T) {
	ir := convert(t, "#pragma omp for collapse(2) collapse(3)", withNormalization(NormalizationCanonicalize))

	require.Len(t, ir.Clauses, 1)
	collapse := ir.Clauses[0].(Collapse)
	assert.Equal(t, "3", collapse.Count.Raw)
	require.Len(t, ir.Warnings, 1)
	assert.Contains(t, ir.Warnings[0].Message, "repeated collapse")
}
