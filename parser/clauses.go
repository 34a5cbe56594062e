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

package parser

import (
	"strings"

	"github.com/ouankou/roup/internal/collections"
	"github.com/ouankou/roup/lexer"
)

type (
	// ClauseRule selects how the syntactic parser consumes a clause body.
	ClauseRule int

	// CustomClauseParser consumes a non-uniform clause body starting right
	// after the clause name and returns the remaining input plus the raw
	// body.
	CustomClauseParser func(clauseName, input string) (rest string, body ClauseBody, err error)

	// ClauseSpec is one entry of the closed clause catalogue.
	ClauseSpec struct {
		Name   string
		Rule   ClauseRule
		Custom CustomClauseParser
	}
)

const (
	// RuleBare accepts no parenthesised body.
	RuleBare ClauseRule = iota
	// RuleParenthesized requires a parenthesised body, captured verbatim.
	RuleParenthesized
	// RuleFlexible accepts either form.
	RuleFlexible
	// RuleCustom dispatches to the registered CustomClauseParser.
	RuleCustom
	// RuleUnsupported is catalogued for round-trip completeness only; the
	// clause is consumed under the default rule and stays untyped in the IR.
	RuleUnsupported
)

// ReductionOperator is the operator slot of a reduction clause. Anything
// outside the fixed set is a user-defined identifier (ReductionCustom).
type ReductionOperator int

const (
	ReductionAdd ReductionOperator = iota
	ReductionSub
	ReductionMul
	ReductionBitAnd
	ReductionBitOr
	ReductionBitXor
	ReductionLogicalAnd
	ReductionLogicalOr
	ReductionMin
	ReductionMax
	ReductionFortranAnd
	ReductionFortranOr
	ReductionFortranEqv
	ReductionFortranNeqv
	ReductionIand
	ReductionIor
	ReductionIeor
	ReductionCustom
)

var reductionOperatorNames = map[ReductionOperator]string{
	ReductionAdd:         "+",
	ReductionSub:         "-",
	ReductionMul:         "*",
	ReductionBitAnd:      "&",
	ReductionBitOr:       "|",
	ReductionBitXor:      "^",
	ReductionLogicalAnd:  "&&",
	ReductionLogicalOr:   "||",
	ReductionMin:         "min",
	ReductionMax:         "max",
	ReductionFortranAnd:  ".and.",
	ReductionFortranOr:   ".or.",
	ReductionFortranEqv:  ".eqv.",
	ReductionFortranNeqv: ".neqv.",
	ReductionIand:        "iand",
	ReductionIor:         "ior",
	ReductionIeor:        "ieor",
}

var reductionOperatorsByName = func() map[string]ReductionOperator {
	byName := make(map[string]ReductionOperator, len(reductionOperatorNames))
	for op, name := range reductionOperatorNames {
		byName[name] = op
	}
	return byName
}()

func (op ReductionOperator) String() string {
	if name, ok := reductionOperatorNames[op]; ok {
		return name
	}
	return "?"
}

// LookupReductionOperator resolves the operator slot of a reduction clause
// body. Word-form operators (min, iand, .and., ...) match case-insensitively.
func LookupReductionOperator(token string) (ReductionOperator, bool) {
	if op, ok := reductionOperatorsByName[token]; ok {
		return op, true
	}
	op, ok := reductionOperatorsByName[strings.ToLower(token)]
	return op, ok
}

// parseReductionClause is the custom rule for reduction, in_reduction and
// task_reduction. Bodies of the plain `operator : variable-list` form with a
// fixed-set operator are structured eagerly; everything else (modifiers,
// user-defined identifiers) is kept verbatim for IR conversion.
func parseReductionClause(clauseName, input string) (string, ClauseBody, error) {
	skipped, _, err := lexer.SkipSpaceAndComments(input)
	if err != nil {
		return input, nil, err
	}
	body, rest, err := lexer.BalancedBody(skipped)
	if err != nil {
		return input, nil, err
	}

	if colon := lexer.IndexTopLevel(body, ':'); colon >= 0 {
		opToken := strings.TrimSpace(body[:colon])
		if op, ok := LookupReductionOperator(opToken); ok {
			variables := collections.MapSlice(lexer.SplitTopLevel(body[colon+1:], ','), strings.TrimSpace)
			return rest, ReductionBody{Text: body, Operator: op, Variables: variables}, nil
		}
	}
	return rest, Parenthesized{Text: body}, nil
}
