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

	"github.com/ouankou/roup/lexer"
	"github.com/ouankou/roup/parser"
)

// Convert promotes a raw directive to its typed IR. Every string the IR
// keeps is copied out of the raw directive, so the result outlives the
// input buffer.
func Convert(d *parser.Directive, location SourceLocation, language Language, config *Config) (*DirectiveIR, error) {
	if config == nil {
		config = DefaultConfig()
	}

	spec, ok := parser.LookupDirective(d.Dialect, d.Name)
	if !ok {
		return nil, conversionError(UnknownDirective, "%s", d.Name)
	}

	ir := &DirectiveIR{
		Kind:     spec.Kind,
		Argument: strings.Clone(d.Argument),
		Location: location,
		Language: language,
		Dialect:  d.Dialect,
		Warnings: append([]parser.Warning(nil), d.Warnings...),
	}
	if d.EndPair {
		ir.End = &EndDirective{PairedKind: spec.Kind}
	}

	for _, raw := range d.Clauses {
		clause, err := convertClause(raw, d.Dialect, config)
		if err != nil {
			return nil, err
		}
		ir.Clauses = append(ir.Clauses, clause)
	}

	ir.Clauses = normalize(ir.Clauses, config.Normalization, &ir.Warnings)
	return ir, nil
}

func convertClause(raw parser.Clause, dialect Dialect, config *Config) (ClauseData, error) {
	// the reduction custom rule may have structured the body already
	if reduction, ok := raw.Body.(parser.ReductionBody); ok {
		items := make([]Variable, 0, len(reduction.Variables))
		for _, text := range reduction.Variables {
			items = append(items, ParseVariable(text, config))
		}
		return Reduction{Clause: strings.Clone(raw.Name), Operator: reduction.Operator, Items: items}, nil
	}

	body, hasBody := "", false
	if parenthesized, ok := raw.Body.(parser.Parenthesized); ok {
		body, hasBody = strings.Clone(parenthesized.Text), true
	}

	spec, known := parser.LookupClause(dialect, raw.Name)
	if !known {
		if config.Strict {
			return nil, conversionError(UnknownClause, "%s", raw.Name)
		}
		return Unknown{Name: strings.Clone(raw.Name), Body: body, HasParens: hasBody}, nil
	}
	if spec.Rule == parser.RuleUnsupported {
		return Unknown{Name: strings.Clone(raw.Name), Body: body, HasParens: hasBody}, nil
	}

	if build, ok := buildersFor(dialect)[raw.Name]; ok {
		return build(raw.Name, body, hasBody, config)
	}
	// catalogued, no dedicated semantic builder: keep the body textual
	if hasBody {
		return Verbatim{Clause: strings.Clone(raw.Name), Body: body, HasParens: true}, nil
	}
	return Verbatim{Clause: strings.Clone(raw.Name)}, nil
}

type clauseBuilder func(name, body string, hasBody bool, config *Config) (ClauseData, error)

func buildersFor(dialect Dialect) map[string]clauseBuilder {
	if dialect == DialectOpenACC {
		return openACCBuilders
	}
	return openMPBuilders
}

func varItems(body string, config *Config) []Variable { return ParseVariableList(body, config) }

func expressionOf(body string, config *Config) Expression { return MakeExpression(body, config) }

var openMPBuilders = map[string]clauseBuilder{
	"private": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Private{Items: varItems(body, config)}, nil
	},
	"firstprivate": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Firstprivate{Items: varItems(body, config)}, nil
	},
	"lastprivate": buildLastprivate,
	"shared": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Shared{Items: varItems(body, config)}, nil
	},
	"copyin": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Copyin{Items: varItems(body, config)}, nil
	},
	"copyprivate": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Copyprivate{Items: varItems(body, config)}, nil
	},
	"default": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Default{Items: varItems(body, config)}, nil
	},
	"reduction":      buildReduction,
	"in_reduction":   buildReduction,
	"task_reduction": buildReduction,
	"schedule":       buildSchedule,
	"dist_schedule":  buildDistSchedule,
	"map":            buildMap,
	"depend":         buildDepend,
	"linear":         buildLinear,
	"if":             buildIf,
	"aligned":        buildAligned,
	"collapse": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Collapse{Count: expressionOf(body, config)}, nil
	},
	"ordered": func(_, body string, hasBody bool, config *Config) (ClauseData, error) {
		if !hasBody {
			return Ordered{}, nil
		}
		count := expressionOf(body, config)
		return Ordered{Count: &count}, nil
	},
	"priority": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Priority{Value: expressionOf(body, config)}, nil
	},
	"num_threads": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return NumThreads{Value: expressionOf(body, config)}, nil
	},
	"num_teams": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return NumTeams{Value: expressionOf(body, config)}, nil
	},
	"thread_limit": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return ThreadLimit{Value: expressionOf(body, config)}, nil
	},
	"device": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Device{Value: expressionOf(body, config)}, nil
	},
	"grainsize": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Grainsize{Value: expressionOf(body, config)}, nil
	},
	"num_tasks": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return NumTasks{Value: expressionOf(body, config)}, nil
	},
	"safelen": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Safelen{Value: expressionOf(body, config)}, nil
	},
	"simdlen": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Simdlen{Value: expressionOf(body, config)}, nil
	},
	"final":      buildExprClause,
	"hint":       buildExprClause,
	"filter":     buildExprClause,
	"allocator":  buildExprClause,
	"novariants": buildExprClause,
	"nocontext":  buildExprClause,
	"partial": func(name, body string, hasBody bool, config *Config) (ClauseData, error) {
		if !hasBody {
			return Flag{Clause: name}, nil
		}
		return buildExprClause(name, body, hasBody, config)
	},
	"detach":          buildVarListClause,
	"nontemporal":     buildVarListClause,
	"uses_allocators": buildVarListClause,
	"allocate":        buildVarListClause,
	"to":              buildVarListClause,
	"from":            buildVarListClause,
	"link":            buildVarListClause,
	"inclusive":       buildVarListClause,
	"exclusive":       buildVarListClause,
	"is_device_ptr":   buildVarListClause,
	"has_device_addr": buildVarListClause,
	"use_device_ptr":  buildVarListClause,
	"use_device_addr": buildVarListClause,
	"affinity":        buildVarListClause,
	"nowait": func(string, string, bool, *Config) (ClauseData, error) {
		return Nowait{}, nil
	},
	"untied": func(string, string, bool, *Config) (ClauseData, error) {
		return Untied{}, nil
	},
	"mergeable": func(string, string, bool, *Config) (ClauseData, error) {
		return Mergeable{}, nil
	},
	"inbranch": func(string, string, bool, *Config) (ClauseData, error) {
		return Inbranch{}, nil
	},
	"notinbranch": func(string, string, bool, *Config) (ClauseData, error) {
		return Notinbranch{}, nil
	},
}

var openACCBuilders = map[string]clauseBuilder{
	"copy": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Copy{Items: varItems(body, config)}, nil
	},
	"copyin": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Copyin{Items: varItems(body, config)}, nil
	},
	"copyout": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Copyout{Items: varItems(body, config)}, nil
	},
	"create": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Create{Items: varItems(body, config)}, nil
	},
	"delete": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Delete{Items: varItems(body, config)}, nil
	},
	"present": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Present{Items: varItems(body, config)}, nil
	},
	"no_create": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return NoCreate{Items: varItems(body, config)}, nil
	},
	"deviceptr": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Deviceptr{Items: varItems(body, config)}, nil
	},
	"attach": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Attach{Items: varItems(body, config)}, nil
	},
	"detach": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Detach{Items: varItems(body, config)}, nil
	},
	"use_device": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return UseDevice{Items: varItems(body, config)}, nil
	},
	"private": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Private{Items: varItems(body, config)}, nil
	},
	"firstprivate": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Firstprivate{Items: varItems(body, config)}, nil
	},
	"default": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Default{Items: varItems(body, config)}, nil
	},
	"reduction": buildReduction,
	"if":        buildIf,
	"collapse": func(_, body string, _ bool, config *Config) (ClauseData, error) {
		return Collapse{Count: expressionOf(body, config)}, nil
	},
	"num_gangs":       buildExprClause,
	"num_workers":     buildExprClause,
	"vector_length":   buildExprClause,
	"async":           buildFlexibleExpr,
	"wait":            buildFlexibleExpr,
	"device_resident": buildVarListClause,
	"host":            buildVarListClause,
	"device":          buildVarListClause,
	"link":            buildVarListClause,
}

// buildExprClause handles catalogued single-expression clauses without a
// dedicated variant.
func buildExprClause(name, body string, _ bool, config *Config) (ClauseData, error) {
	return ExprClause{Clause: strings.Clone(name), Value: expressionOf(body, config)}, nil
}

func buildFlexibleExpr(name, body string, hasBody bool, config *Config) (ClauseData, error) {
	if !hasBody {
		return Flag{Clause: strings.Clone(name)}, nil
	}
	return buildExprClause(name, body, hasBody, config)
}

func buildVarListClause(name, body string, _ bool, config *Config) (ClauseData, error) {
	return VarList{Clause: strings.Clone(name), Items: varItems(body, config)}, nil
}

func buildLastprivate(_, body string, _ bool, config *Config) (ClauseData, error) {
	clause := Lastprivate{}
	if colon := lexer.IndexTopLevel(body, ':'); colon >= 0 {
		modifier := strings.TrimSpace(body[:colon])
		if strings.EqualFold(modifier, "conditional") {
			clause.Modifier = strings.ToLower(modifier)
			body = body[colon+1:]
		}
	}
	clause.Items = varItems(body, config)
	return clause, nil
}

var reductionModifiersByName = map[string]ReductionModifier{
	"task":    ReductionModifierTask,
	"inscan":  ReductionModifierInscan,
	"default": ReductionModifierDefault,
}

// buildReduction interprets the full reduction grammar:
// `[ modifiers ',' ]* operator-or-identifier ':' variable-list`.
func buildReduction(name, body string, _ bool, config *Config) (ClauseData, error) {
	colon := lexer.IndexTopLevel(body, ':')
	if colon < 0 {
		return nil, conversionError(InvalidClauseSyntax, "%s(%s): missing ':'", name, body)
	}

	clause := Reduction{Clause: strings.Clone(name)}
	head := lexer.SplitTopLevel(body[:colon], ',')
	for _, part := range head[:len(head)-1] {
		modifier, ok := reductionModifiersByName[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, conversionError(InvalidClauseSyntax, "%s(%s): unknown modifier %q", name, body, strings.TrimSpace(part))
		}
		clause.Modifiers = append(clause.Modifiers, modifier)
	}

	opToken := strings.TrimSpace(head[len(head)-1])
	if opToken == "" {
		return nil, conversionError(InvalidClauseSyntax, "%s(%s): missing operator", name, body)
	}
	if op, ok := parser.LookupReductionOperator(opToken); ok {
		clause.Operator = op
	} else {
		clause.Operator = parser.ReductionCustom
		clause.UserIdentifier = strings.Clone(opToken)
	}
	clause.Items = varItems(body[colon+1:], config)
	return clause, nil
}

var scheduleKindsByName = map[string]ScheduleKind{
	"static":  ScheduleStatic,
	"dynamic": ScheduleDynamic,
	"guided":  ScheduleGuided,
	"auto":    ScheduleAuto,
	"runtime": ScheduleRuntime,
}

var scheduleModifiersByName = map[string]ScheduleModifier{
	"monotonic":    ScheduleModifierMonotonic,
	"nonmonotonic": ScheduleModifierNonmonotonic,
	"simd":         ScheduleModifierSimd,
}

// buildSchedule interprets `[ modifier-list : ] kind [ ',' chunk ]`.
func buildSchedule(name, body string, _ bool, config *Config) (ClauseData, error) {
	clause := Schedule{}
	rest := body
	if colon := lexer.IndexTopLevel(rest, ':'); colon >= 0 {
		for _, part := range lexer.SplitTopLevel(rest[:colon], ',') {
			modifier, ok := scheduleModifiersByName[strings.ToLower(strings.TrimSpace(part))]
			if !ok {
				return nil, conversionError(InvalidClauseSyntax, "%s(%s): unknown modifier %q", name, body, strings.TrimSpace(part))
			}
			clause.Modifiers = append(clause.Modifiers, modifier)
		}
		rest = rest[colon+1:]
	}

	parts := lexer.SplitTopLevel(rest, ',')
	kind, ok := scheduleKindsByName[strings.ToLower(strings.TrimSpace(parts[0]))]
	if !ok {
		return nil, conversionError(InvalidClauseSyntax, "%s(%s): unknown schedule kind %q", name, body, strings.TrimSpace(parts[0]))
	}
	clause.Kind = kind
	if len(parts) > 1 {
		chunk := expressionOf(strings.Join(parts[1:], ","), config)
		clause.Chunk = &chunk
	}
	return clause, nil
}

func buildDistSchedule(name, body string, _ bool, config *Config) (ClauseData, error) {
	parts := lexer.SplitTopLevel(body, ',')
	clause := DistSchedule{Kind: strings.ToLower(strings.TrimSpace(parts[0]))}
	if clause.Kind == "" {
		return nil, conversionError(InvalidClauseSyntax, "%s(%s): missing kind", name, body)
	}
	if len(parts) > 1 {
		chunk := expressionOf(strings.Join(parts[1:], ","), config)
		clause.Chunk = &chunk
	}
	return clause, nil
}

var mapTypesByName = map[string]MapType{
	"to":      MapTo,
	"from":    MapFrom,
	"tofrom":  MapToFrom,
	"alloc":   MapAlloc,
	"release": MapRelease,
	"delete":  MapDelete,
	"present": MapPresent,
}

// buildMap interprets `[ modifier-list : ] map-type : variable-list` and the
// short `variable-list` form that defaults to tofrom.
func buildMap(name, body string, _ bool, config *Config) (ClauseData, error) {
	segments := lexer.SplitTopLevel(body, ':')
	clause := Map{Type: MapToFrom}

	switch len(segments) {
	case 1:
		clause.Items = varItems(segments[0], config)
	case 2:
		// the map-type may be preceded by comma-separated modifiers, as in
		// map(always, to: x)
		head := lexer.SplitTopLevel(segments[0], ',')
		mapType, ok := mapTypesByName[strings.ToLower(strings.TrimSpace(head[len(head)-1]))]
		if !ok {
			return nil, conversionError(InvalidClauseSyntax, "%s(%s): unknown map type %q", name, body, strings.TrimSpace(head[len(head)-1]))
		}
		for _, part := range head[:len(head)-1] {
			clause.Modifiers = append(clause.Modifiers, strings.TrimSpace(part))
		}
		clause.Type = mapType
		clause.Items = varItems(segments[1], config)
	case 3:
		for _, part := range lexer.SplitTopLevel(segments[0], ',') {
			clause.Modifiers = append(clause.Modifiers, strings.TrimSpace(part))
		}
		mapType, ok := mapTypesByName[strings.ToLower(strings.TrimSpace(segments[1]))]
		if !ok {
			return nil, conversionError(InvalidClauseSyntax, "%s(%s): unknown map type %q", name, body, strings.TrimSpace(segments[1]))
		}
		clause.Type = mapType
		clause.Items = varItems(segments[2], config)
	default:
		return nil, conversionError(InvalidClauseSyntax, "%s(%s)", name, body)
	}
	return clause, nil
}

var dependKindsByName = map[string]DependKind{
	"in":            DependIn,
	"out":           DependOut,
	"inout":         DependInout,
	"mutexinoutset": DependMutexinoutset,
	"inoutset":      DependInoutset,
	"depobj":        DependDepobj,
	"source":        DependSource,
	"sink":          DependSink,
}

// buildDepend interprets `[ iterator(...) ',' ] kind [ ':' variable-list ]`.
func buildDepend(name, body string, _ bool, config *Config) (ClauseData, error) {
	clause := Depend{}
	rest := strings.TrimSpace(body)

	if strings.HasPrefix(rest, "iterator") {
		after := strings.TrimSpace(strings.TrimPrefix(rest, "iterator"))
		iterator, remaining, err := lexer.BalancedBody(after)
		if err != nil {
			return nil, conversionError(InvalidClauseSyntax, "%s(%s): malformed iterator", name, body)
		}
		clause.Iterator = strings.Clone(iterator)
		remaining = strings.TrimSpace(remaining)
		if !strings.HasPrefix(remaining, ",") {
			return nil, conversionError(InvalidClauseSyntax, "%s(%s): expected ',' after iterator", name, body)
		}
		rest = strings.TrimSpace(remaining[1:])
	}

	kindText, itemsText := rest, ""
	if colon := lexer.IndexTopLevel(rest, ':'); colon >= 0 {
		kindText, itemsText = rest[:colon], rest[colon+1:]
	}
	kind, ok := dependKindsByName[strings.ToLower(strings.TrimSpace(kindText))]
	if !ok {
		return nil, conversionError(InvalidClauseSyntax, "%s(%s): unknown dependence type %q", name, body, strings.TrimSpace(kindText))
	}
	clause.Kind = kind
	clause.Items = varItems(itemsText, config)
	return clause, nil
}

var linearModifiersByName = map[string]LinearModifier{
	"ref":  LinearRef,
	"val":  LinearVal,
	"uval": LinearUval,
}

// buildLinear interprets `[ ref|val|uval '(' list ')' | list ] [ ':' step ]`.
func buildLinear(name, body string, _ bool, config *Config) (ClauseData, error) {
	clause := Linear{}
	rest := strings.TrimSpace(body)

	word, after := lexer.Identifier(rest)
	if modifier, ok := linearModifiersByName[strings.ToLower(word)]; ok && strings.HasPrefix(after, "(") {
		inner, remaining, err := lexer.BalancedBody(after)
		if err != nil {
			return nil, conversionError(InvalidClauseSyntax, "%s(%s)", name, body)
		}
		clause.Modifier = modifier
		clause.Items = varItems(inner, config)
		rest = strings.TrimSpace(remaining)
		if rest == "" {
			return clause, nil
		}
		if !strings.HasPrefix(rest, ":") {
			return nil, conversionError(InvalidClauseSyntax, "%s(%s): expected ':' before step", name, body)
		}
		step := expressionOf(rest[1:], config)
		clause.Step = &step
		return clause, nil
	}

	itemsText := rest
	if colon := lexer.IndexTopLevel(rest, ':'); colon >= 0 {
		step := expressionOf(rest[colon+1:], config)
		clause.Step = &step
		itemsText = rest[:colon]
	}
	clause.Items = varItems(itemsText, config)
	return clause, nil
}

var directiveNameModifierRegex = regexp.MustCompile(`^[a-z][a-z_ ]*$`)

// buildIf interprets `[ directive-name-modifier ':' ] expression`. The
// colon only introduces a modifier when the text before it looks like a
// directive name; conditional expressions containing `?:` stay whole.
func buildIf(_, body string, _ bool, config *Config) (ClauseData, error) {
	clause := If{}
	rest := body
	if colon := lexer.IndexTopLevel(rest, ':'); colon >= 0 {
		modifier := strings.TrimSpace(rest[:colon])
		if directiveNameModifierRegex.MatchString(modifier) {
			clause.DirectiveNameModifier = strings.Clone(modifier)
			rest = rest[colon+1:]
		}
	}
	clause.Condition = expressionOf(rest, config)
	return clause, nil
}

func buildAligned(_, body string, _ bool, config *Config) (ClauseData, error) {
	clause := Aligned{}
	itemsText := body
	if colon := lexer.IndexTopLevel(body, ':'); colon >= 0 {
		alignment := expressionOf(body[colon+1:], config)
		clause.Alignment = &alignment
		itemsText = body[:colon]
	}
	clause.Items = varItems(itemsText, config)
	return clause, nil
}
