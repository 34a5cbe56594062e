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

	"github.com/ouankou/roup/internal/collections"
	"github.com/ouankou/roup/parser"
)

// ClauseData is the typed semantic form of one clause. The set of
// implementations is closed; consumers dispatch with type switches the same
// way they would match on a tagged union.
type ClauseData interface {
	// Keyword is the clause name as it appears in source.
	Keyword() string
	// Render emits the clause in the given mode and target language.
	Render(mode RenderMode, language Language) string
}

// renderItems joins a variable list for the given mode. Plain and template
// output elide user variables entirely, leaving `map(tofrom: )` rather than
// a row of empty slots.
func renderItems(items []Variable, mode RenderMode) string {
	if mode != RenderFull {
		return ""
	}
	return strings.Join(collections.MapSlice(items, Variable.String), ", ")
}

// renderExpr emits an expression operand: kept in full and plain output,
// elided in templates.
func renderExpr(expr Expression, mode RenderMode) string {
	if mode == RenderTemplate {
		return ""
	}
	return expr.Raw
}

func parenthesized(keyword, body string) string { return keyword + "(" + body + ")" }

// Data-sharing and data-movement clauses holding a plain variable list.
type (
	Private      struct{ Items []Variable }
	Firstprivate struct{ Items []Variable }
	Lastprivate  struct {
		// Modifier is the optional `conditional` prefix.
		Modifier string
		Items    []Variable
	}
	Shared      struct{ Items []Variable }
	Copyin      struct{ Items []Variable }
	Copyprivate struct{ Items []Variable }
	// Default is the default(...) data-sharing clause; its body (`none`,
	// `shared`, ...) is carried as a variable list for uniformity.
	Default struct{ Items []Variable }

	// OpenACC data clauses.
	Copy      struct{ Items []Variable }
	Copyout   struct{ Items []Variable }
	Create    struct{ Items []Variable }
	Delete    struct{ Items []Variable }
	Present   struct{ Items []Variable }
	NoCreate  struct{ Items []Variable }
	Deviceptr struct{ Items []Variable }
	Attach    struct{ Items []Variable }
	Detach    struct{ Items []Variable }
	UseDevice struct{ Items []Variable }

	// VarList is the generic variable-list clause for catalogued names
	// that need no dedicated variant (nontemporal, uses_allocators, ...).
	VarList struct {
		Clause string
		Items  []Variable
	}
)

func (c Private) Keyword() string      { return "private" }
func (c Firstprivate) Keyword() string { return "firstprivate" }
func (c Lastprivate) Keyword() string  { return "lastprivate" }
func (c Shared) Keyword() string       { return "shared" }
func (c Copyin) Keyword() string       { return "copyin" }
func (c Copyprivate) Keyword() string  { return "copyprivate" }
func (c Default) Keyword() string      { return "default" }
func (c Copy) Keyword() string         { return "copy" }
func (c Copyout) Keyword() string      { return "copyout" }
func (c Create) Keyword() string       { return "create" }
func (c Delete) Keyword() string       { return "delete" }
func (c Present) Keyword() string      { return "present" }
func (c NoCreate) Keyword() string     { return "no_create" }
func (c Deviceptr) Keyword() string    { return "deviceptr" }
func (c Attach) Keyword() string       { return "attach" }
func (c Detach) Keyword() string       { return "detach" }
func (c UseDevice) Keyword() string    { return "use_device" }
func (c VarList) Keyword() string      { return c.Clause }

func (c Private) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c Firstprivate) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c Lastprivate) Render(mode RenderMode, _ Language) string {
	body := renderItems(c.Items, mode)
	if c.Modifier != "" {
		body = c.Modifier + ": " + body
	}
	return parenthesized(c.Keyword(), body)
}
func (c Shared) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c Copyin) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c Copyprivate) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c Default) Render(_ RenderMode, _ Language) string {
	// the default kind is a keyword, never a user symbol
	return parenthesized(c.Keyword(), strings.Join(collections.MapSlice(c.Items, Variable.String), ", "))
}
func (c Copy) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c Copyout) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c Create) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c Delete) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c Present) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c NoCreate) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c Deviceptr) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c Attach) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c Detach) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c UseDevice) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderItems(c.Items, mode))
}
func (c VarList) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Clause, renderItems(c.Items, mode))
}

// ReductionModifier is one of the optional reduction clause modifiers.
type ReductionModifier int

const (
	ReductionModifierTask ReductionModifier = iota
	ReductionModifierInscan
	ReductionModifierDefault
)

func (m ReductionModifier) String() string {
	switch m {
	case ReductionModifierTask:
		return "task"
	case ReductionModifierInscan:
		return "inscan"
	default:
		return "default"
	}
}

// Reduction is the reduction family of clauses (reduction, in_reduction,
// task_reduction): an operator or user-defined identifier, optional
// modifiers and a variable list.
type Reduction struct {
	Clause         string
	Modifiers      []ReductionModifier
	Operator       parser.ReductionOperator
	UserIdentifier string
	Items          []Variable
}

func (c Reduction) Keyword() string { return c.Clause }

func (c Reduction) Render(mode RenderMode, _ Language) string {
	parts := make([]string, 0, len(c.Modifiers)+1)
	for _, modifier := range c.Modifiers {
		parts = append(parts, modifier.String())
	}
	if c.Operator == parser.ReductionCustom {
		parts = append(parts, c.UserIdentifier)
	} else {
		parts = append(parts, c.Operator.String())
	}
	return parenthesized(c.Clause, strings.Join(parts, ", ")+": "+renderItems(c.Items, mode))
}

// ScheduleKind is the loop schedule selector.
type ScheduleKind int

const (
	ScheduleStatic ScheduleKind = iota
	ScheduleDynamic
	ScheduleGuided
	ScheduleAuto
	ScheduleRuntime
)

func (k ScheduleKind) String() string {
	switch k {
	case ScheduleStatic:
		return "static"
	case ScheduleDynamic:
		return "dynamic"
	case ScheduleGuided:
		return "guided"
	case ScheduleAuto:
		return "auto"
	default:
		return "runtime"
	}
}

// ScheduleModifier is one of the optional schedule modifiers.
type ScheduleModifier int

const (
	ScheduleModifierMonotonic ScheduleModifier = iota
	ScheduleModifierNonmonotonic
	ScheduleModifierSimd
)

func (m ScheduleModifier) String() string {
	switch m {
	case ScheduleModifierMonotonic:
		return "monotonic"
	case ScheduleModifierNonmonotonic:
		return "nonmonotonic"
	default:
		return "simd"
	}
}

// Schedule is the schedule(...) clause.
type Schedule struct {
	Modifiers []ScheduleModifier
	Kind      ScheduleKind
	Chunk     *Expression
}

func (c Schedule) Keyword() string { return "schedule" }

func (c Schedule) Render(mode RenderMode, _ Language) string {
	var sb strings.Builder
	if len(c.Modifiers) > 0 {
		modifiers := make([]string, len(c.Modifiers))
		for i, modifier := range c.Modifiers {
			modifiers[i] = modifier.String()
		}
		sb.WriteString(strings.Join(modifiers, ", "))
		sb.WriteString(": ")
	}
	sb.WriteString(c.Kind.String())
	if c.Chunk != nil {
		sb.WriteString(", ")
		sb.WriteString(renderExpr(*c.Chunk, mode))
	}
	return parenthesized(c.Keyword(), sb.String())
}

// DistSchedule is the dist_schedule(...) clause; its only kind is static.
type DistSchedule struct {
	Kind  string
	Chunk *Expression
}

func (c DistSchedule) Keyword() string { return "dist_schedule" }

func (c DistSchedule) Render(mode RenderMode, _ Language) string {
	body := c.Kind
	if c.Chunk != nil {
		body += ", " + renderExpr(*c.Chunk, mode)
	}
	return parenthesized(c.Keyword(), body)
}

// MapType is the map clause map-type selector.
type MapType int

const (
	MapTo MapType = iota
	MapFrom
	MapToFrom
	MapAlloc
	MapRelease
	MapDelete
	MapPresent
)

func (t MapType) String() string {
	switch t {
	case MapTo:
		return "to"
	case MapFrom:
		return "from"
	case MapToFrom:
		return "tofrom"
	case MapAlloc:
		return "alloc"
	case MapRelease:
		return "release"
	case MapDelete:
		return "delete"
	default:
		return "present"
	}
}

// Map is the map(...) clause. A body without an explicit map-type defaults
// to tofrom.
type Map struct {
	Modifiers []string
	Type      MapType
	Items     []Variable
}

func (c Map) Keyword() string { return "map" }

func (c Map) Render(mode RenderMode, _ Language) string {
	parts := append(append([]string{}, c.Modifiers...), c.Type.String())
	return parenthesized(c.Keyword(), strings.Join(parts, ", ")+": "+renderItems(c.Items, mode))
}

// DependKind is the dependence type of a depend clause.
type DependKind int

const (
	DependIn DependKind = iota
	DependOut
	DependInout
	DependMutexinoutset
	DependInoutset
	DependDepobj
	DependSource
	DependSink
)

func (k DependKind) String() string {
	switch k {
	case DependIn:
		return "in"
	case DependOut:
		return "out"
	case DependInout:
		return "inout"
	case DependMutexinoutset:
		return "mutexinoutset"
	case DependInoutset:
		return "inoutset"
	case DependDepobj:
		return "depobj"
	case DependSource:
		return "source"
	default:
		return "sink"
	}
}

// Depend is the depend(...) clause, with the optional iterator(...) prefix
// kept as raw text.
type Depend struct {
	Iterator string
	Kind     DependKind
	Items    []Variable
}

func (c Depend) Keyword() string { return "depend" }

func (c Depend) Render(mode RenderMode, _ Language) string {
	var sb strings.Builder
	if c.Iterator != "" {
		sb.WriteString("iterator(")
		sb.WriteString(c.Iterator)
		sb.WriteString("), ")
	}
	sb.WriteString(c.Kind.String())
	if c.Kind == DependSource {
		return parenthesized(c.Keyword(), sb.String())
	}
	sb.WriteString(": ")
	sb.WriteString(renderItems(c.Items, mode))
	return parenthesized(c.Keyword(), sb.String())
}

// LinearModifier is the optional linear clause modifier.
type LinearModifier int

const (
	LinearNone LinearModifier = iota
	LinearRef
	LinearVal
	LinearUval
)

func (m LinearModifier) String() string {
	switch m {
	case LinearRef:
		return "ref"
	case LinearVal:
		return "val"
	case LinearUval:
		return "uval"
	default:
		return ""
	}
}

// Linear is the linear(...) clause.
type Linear struct {
	Modifier LinearModifier
	Items    []Variable
	Step     *Expression
}

func (c Linear) Keyword() string { return "linear" }

func (c Linear) Render(mode RenderMode, _ Language) string {
	items := renderItems(c.Items, mode)
	body := items
	if c.Modifier != LinearNone {
		body = c.Modifier.String() + "(" + items + ")"
	}
	if c.Step != nil {
		body += ": " + renderExpr(*c.Step, mode)
	}
	return parenthesized(c.Keyword(), body)
}

// If is the if(...) clause with its optional directive-name-modifier.
type If struct {
	DirectiveNameModifier string
	Condition             Expression
}

func (c If) Keyword() string { return "if" }

func (c If) Render(mode RenderMode, _ Language) string {
	body := renderExpr(c.Condition, mode)
	if c.DirectiveNameModifier != "" {
		body = c.DirectiveNameModifier + ": " + body
	}
	return parenthesized(c.Keyword(), body)
}

// Aligned is the aligned(...) clause.
type Aligned struct {
	Items     []Variable
	Alignment *Expression
}

func (c Aligned) Keyword() string { return "aligned" }

func (c Aligned) Render(mode RenderMode, _ Language) string {
	body := renderItems(c.Items, mode)
	if c.Alignment != nil {
		body += ": " + renderExpr(*c.Alignment, mode)
	}
	return parenthesized(c.Keyword(), body)
}

// Control clauses whose body is a single expression.
type (
	Collapse    struct{ Count Expression }
	Ordered     struct{ Count *Expression }
	Priority    struct{ Value Expression }
	NumThreads  struct{ Value Expression }
	NumTeams    struct{ Value Expression }
	ThreadLimit struct{ Value Expression }
	Device      struct{ Value Expression }
	Grainsize   struct{ Value Expression }
	NumTasks    struct{ Value Expression }
	Safelen     struct{ Value Expression }
	Simdlen     struct{ Value Expression }

	// ExprClause is the generic single-expression clause for catalogued
	// names that need no dedicated variant (final, hint, num_gangs, ...).
	ExprClause struct {
		Clause string
		Value  Expression
	}
)

func (c Collapse) Keyword() string    { return "collapse" }
func (c Ordered) Keyword() string     { return "ordered" }
func (c Priority) Keyword() string    { return "priority" }
func (c NumThreads) Keyword() string  { return "num_threads" }
func (c NumTeams) Keyword() string    { return "num_teams" }
func (c ThreadLimit) Keyword() string { return "thread_limit" }
func (c Device) Keyword() string      { return "device" }
func (c Grainsize) Keyword() string   { return "grainsize" }
func (c NumTasks) Keyword() string    { return "num_tasks" }
func (c Safelen) Keyword() string     { return "safelen" }
func (c Simdlen) Keyword() string     { return "simdlen" }
func (c ExprClause) Keyword() string  { return c.Clause }

func (c Collapse) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderExpr(c.Count, mode))
}
func (c Ordered) Render(mode RenderMode, _ Language) string {
	if c.Count == nil {
		return c.Keyword()
	}
	return parenthesized(c.Keyword(), renderExpr(*c.Count, mode))
}
func (c Priority) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderExpr(c.Value, mode))
}
func (c NumThreads) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderExpr(c.Value, mode))
}
func (c NumTeams) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderExpr(c.Value, mode))
}
func (c ThreadLimit) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderExpr(c.Value, mode))
}
func (c Device) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderExpr(c.Value, mode))
}
func (c Grainsize) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderExpr(c.Value, mode))
}
func (c NumTasks) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderExpr(c.Value, mode))
}
func (c Safelen) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderExpr(c.Value, mode))
}
func (c Simdlen) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Keyword(), renderExpr(c.Value, mode))
}
func (c ExprClause) Render(mode RenderMode, _ Language) string {
	return parenthesized(c.Clause, renderExpr(c.Value, mode))
}

// Bare clauses.
type (
	Nowait      struct{}
	Untied      struct{}
	Mergeable   struct{}
	Inbranch    struct{}
	Notinbranch struct{}

	// Flag is the generic bare clause for catalogued names without a
	// dedicated variant (seq, independent, nogroup, ...).
	Flag struct{ Clause string }
)

func (Nowait) Keyword() string      { return "nowait" }
func (Untied) Keyword() string      { return "untied" }
func (Mergeable) Keyword() string   { return "mergeable" }
func (Inbranch) Keyword() string    { return "inbranch" }
func (Notinbranch) Keyword() string { return "notinbranch" }
func (c Flag) Keyword() string      { return c.Clause }

func (c Nowait) Render(RenderMode, Language) string      { return c.Keyword() }
func (c Untied) Render(RenderMode, Language) string      { return c.Keyword() }
func (c Mergeable) Render(RenderMode, Language) string   { return c.Keyword() }
func (c Inbranch) Render(RenderMode, Language) string    { return c.Keyword() }
func (c Notinbranch) Render(RenderMode, Language) string { return c.Keyword() }
func (c Flag) Render(RenderMode, Language) string        { return c.Clause }

// Verbatim is a catalogued clause whose body the IR keeps textual
// (defaultmap, proc_bind, device_type, the flexible OpenACC gang family,
// ...). The body is reproduced in every mode: these bodies are made of
// keywords, not user symbols.
type Verbatim struct {
	Clause    string
	Body      string
	HasParens bool
}

func (c Verbatim) Keyword() string { return c.Clause }

func (c Verbatim) Render(RenderMode, Language) string {
	if !c.HasParens {
		return c.Clause
	}
	return parenthesized(c.Clause, c.Body)
}

// Unknown preserves a clause whose name is not in the catalogue. Nothing is
// ever lost: the body text round-trips verbatim.
type Unknown struct {
	Name      string
	Body      string
	HasParens bool
}

func (c Unknown) Keyword() string { return c.Name }

func (c Unknown) Render(RenderMode, Language) string {
	if !c.HasParens {
		return c.Name
	}
	return parenthesized(c.Name, c.Body)
}
