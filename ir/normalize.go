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
	"fmt"
	"sort"
	"strings"

	"github.com/ouankou/roup/parser"
)

// mergeSignature returns a key identifying clauses that may be merged: same
// kind and same modifiers. The second result is false for clauses that are
// not variable-list clauses.
func mergeSignature(clause ClauseData) (string, bool) {
	switch c := clause.(type) {
	case Private, Firstprivate, Shared, Copyin, Copyprivate,
		Copy, Copyout, Create, Delete, Present, NoCreate, Deviceptr, Attach, Detach, UseDevice:
		return clause.Keyword(), true
	case Lastprivate:
		return "lastprivate|" + c.Modifier, true
	case VarList:
		return "varlist|" + c.Clause, true
	case Map:
		return fmt.Sprintf("map|%s|%s", strings.Join(c.Modifiers, ","), c.Type), true
	case Reduction:
		modifiers := make([]string, len(c.Modifiers))
		for i, modifier := range c.Modifiers {
			modifiers[i] = modifier.String()
		}
		return fmt.Sprintf("%s|%s|%s|%s", c.Clause, strings.Join(modifiers, ","), c.Operator, c.UserIdentifier), true
	default:
		return "", false
	}
}

func clauseItems(clause ClauseData) []Variable {
	switch c := clause.(type) {
	case Private:
		return c.Items
	case Firstprivate:
		return c.Items
	case Lastprivate:
		return c.Items
	case Shared:
		return c.Items
	case Copyin:
		return c.Items
	case Copyprivate:
		return c.Items
	case Copy:
		return c.Items
	case Copyout:
		return c.Items
	case Create:
		return c.Items
	case Delete:
		return c.Items
	case Present:
		return c.Items
	case NoCreate:
		return c.Items
	case Deviceptr:
		return c.Items
	case Attach:
		return c.Items
	case Detach:
		return c.Items
	case UseDevice:
		return c.Items
	case VarList:
		return c.Items
	case Map:
		return c.Items
	case Reduction:
		return c.Items
	default:
		return nil
	}
}

func withItems(clause ClauseData, items []Variable) ClauseData {
	switch c := clause.(type) {
	case Private:
		c.Items = items
		return c
	case Firstprivate:
		c.Items = items
		return c
	case Lastprivate:
		c.Items = items
		return c
	case Shared:
		c.Items = items
		return c
	case Copyin:
		c.Items = items
		return c
	case Copyprivate:
		c.Items = items
		return c
	case Copy:
		c.Items = items
		return c
	case Copyout:
		c.Items = items
		return c
	case Create:
		c.Items = items
		return c
	case Delete:
		c.Items = items
		return c
	case Present:
		c.Items = items
		return c
	case NoCreate:
		c.Items = items
		return c
	case Deviceptr:
		c.Items = items
		return c
	case Attach:
		c.Items = items
		return c
	case Detach:
		c.Items = items
		return c
	case UseDevice:
		c.Items = items
		return c
	case VarList:
		c.Items = items
		return c
	case Map:
		c.Items = items
		return c
	case Reduction:
		c.Items = items
		return c
	default:
		return clause
	}
}

// normalize applies the configured clause rewriting. MergeLists concatenates
// the variable lists of repeated clauses with identical signatures, in
// source order. Canonicalize additionally sorts variable lists by textual
// form, resolves repeated non-list clauses last-wins (recording a warning),
// and stabilises clause order by a fixed clause-kind order.
func normalize(clauses []ClauseData, mode NormalizationMode, warnings *[]parser.Warning) []ClauseData {
	if mode == NormalizationDisabled || len(clauses) < 2 {
		if mode == NormalizationCanonicalize {
			return canonicalize(clauses, warnings)
		}
		return clauses
	}

	merged := make([]ClauseData, 0, len(clauses))
	position := map[string]int{}
	for _, clause := range clauses {
		signature, mergeable := mergeSignature(clause)
		if !mergeable {
			merged = append(merged, clause)
			continue
		}
		if at, seen := position[signature]; seen {
			combined := append(append([]Variable{}, clauseItems(merged[at])...), clauseItems(clause)...)
			merged[at] = withItems(merged[at], combined)
			continue
		}
		position[signature] = len(merged)
		merged = append(merged, clause)
	}

	if mode == NormalizationCanonicalize {
		return canonicalize(merged, warnings)
	}
	return merged
}

func canonicalize(clauses []ClauseData, warnings *[]parser.Warning) []ClauseData {
	// repeated non-list clauses: last one wins
	kept := make([]ClauseData, 0, len(clauses))
	lastByKeyword := map[string]int{}
	for _, clause := range clauses {
		if _, mergeable := mergeSignature(clause); mergeable {
			kept = append(kept, clause)
			continue
		}
		if at, seen := lastByKeyword[clause.Keyword()]; seen {
			*warnings = append(*warnings, parser.Warning{
				Message: fmt.Sprintf("repeated %s clause, keeping the last occurrence", clause.Keyword()),
			})
			kept[at] = clause
			continue
		}
		lastByKeyword[clause.Keyword()] = len(kept)
		kept = append(kept, clause)
	}

	for i, clause := range kept {
		items := clauseItems(clause)
		if len(items) < 2 {
			continue
		}
		sorted := append([]Variable{}, items...)
		sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Raw < sorted[b].Raw })
		kept[i] = withItems(clause, sorted)
	}

	sort.SliceStable(kept, func(a, b int) bool {
		return clauseRank(kept[a]) < clauseRank(kept[b])
	})
	return kept
}

// clauseOrder is the fixed clause-kind total order used by Canonicalize.
// Unlisted keywords sort after listed ones, by the first letter of their
// name; unlisted keywords sharing a first letter keep their relative order.
var clauseOrder = map[string]int{
	"if": 0, "final": 1, "num_threads": 2, "num_teams": 3, "thread_limit": 4,
	"default": 5, "private": 6, "firstprivate": 7, "lastprivate": 8, "shared": 9,
	"copy": 10, "copyin": 11, "copyout": 12, "copyprivate": 13, "create": 14,
	"delete": 15, "present": 16, "no_create": 17, "deviceptr": 18, "attach": 19,
	"detach": 20, "use_device": 21, "reduction": 22, "in_reduction": 23,
	"task_reduction": 24, "map": 25, "to": 26, "from": 27, "linear": 28,
	"aligned": 29, "schedule": 30, "dist_schedule": 31, "collapse": 32,
	"ordered": 33, "depend": 34, "device": 35, "safelen": 36, "simdlen": 37,
	"grainsize": 38, "num_tasks": 39, "priority": 40, "nowait": 41, "untied": 42,
	"mergeable": 43, "nogroup": 44,
}

func clauseRank(clause ClauseData) int {
	if rank, ok := clauseOrder[clause.Keyword()]; ok {
		return rank
	}
	rank := len(clauseOrder)
	if keyword := clause.Keyword(); keyword != "" {
		rank += int(keyword[0])
	}
	return rank
}
