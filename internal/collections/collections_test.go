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

package collections

import (
	"slices"
	"testing"
)

func TestMapSlice(t *testing.T) {
	input := []int{1, 2, 3}
	expected := []string{"1", "2", "3"}

	result := MapSlice(input, func(i int) string {
		return string(rune('0' + i))
	})

	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("MapSlice failed at index %d: expected %v, got %v", i, expected[i], result[i])
		}
	}
}

func TestFilterSlice(t *testing.T) {
	input := []int{1, 2, 3, 4}
	expected := []int{2, 4}

	result := FilterSlice(input, func(i int) bool {
		return i%2 == 0
	})

	if len(result) != len(expected) {
		t.Fatalf("Filter length mismatch: expected %d, got %d", len(expected), len(result))
	}

	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("Filter failed at index %d: expected %d, got %d", i, expected[i], result[i])
		}
	}
}

func TestSet(t *testing.T) {
	set := SetOf("parallel", "for")

	if !set.Contains("parallel") {
		t.Error("expected set to contain \"parallel\"")
	}
	if set.Contains("simd") {
		t.Error("did not expect set to contain \"simd\"")
	}

	set.Add("simd")
	if !set.Contains("simd") {
		t.Error("expected set to contain \"simd\" after Add")
	}

	values := set.Values()
	slices.Sort(values)
	if !slices.Equal(values, []string{"for", "parallel", "simd"}) {
		t.Errorf("unexpected set values: %v", values)
	}
}

func TestToSetEliminatesDuplicates(t *testing.T) {
	set := ToSet([]int{1, 1, 2, 2, 3})
	if len(set) != 3 {
		t.Errorf("expected 3 distinct elements, got %d", len(set))
	}
}
