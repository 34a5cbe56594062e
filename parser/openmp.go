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

// OpenMP directive tags. The order of this block is frozen: the numeric
// values are exposed to downstream tooling through generated constant
// headers and must stay stable across releases.
const (
	DirectiveParallel DirectiveKind = iota
	DirectiveFor
	DirectiveSections
	DirectiveSection
	DirectiveSingle
	DirectiveMaster
	DirectiveMasked
	DirectiveCritical
	DirectiveBarrier
	DirectiveTaskwait
	DirectiveTaskgroup
	DirectiveAtomic
	DirectiveFlush
	DirectiveOrdered
	DirectiveCancel
	DirectiveCancellationPoint
	DirectiveThreadprivate
	DirectiveTask
	DirectiveTaskloop
	DirectiveTaskloopSimd
	DirectiveTaskyield
	DirectiveTarget
	DirectiveTargetData
	DirectiveTargetEnterData
	DirectiveTargetExitData
	DirectiveTargetUpdate
	DirectiveDeclareSimd
	DirectiveDeclareTarget
	DirectiveDeclareReduction
	DirectiveDeclareMapper
	DirectiveTeams
	DirectiveDistribute
	DirectiveDistributeSimd
	DirectiveDistributeParallelFor
	DirectiveDistributeParallelForSimd
	DirectiveParallelFor
	DirectiveParallelForSimd
	DirectiveParallelSections
	DirectiveParallelMaster
	DirectiveParallelMasked
	DirectiveMasterTaskloop
	DirectiveMasterTaskloopSimd
	DirectiveMaskedTaskloop
	DirectiveMaskedTaskloopSimd
	DirectiveParallelMasterTaskloop
	DirectiveParallelMasterTaskloopSimd
	DirectiveParallelMaskedTaskloop
	DirectiveParallelMaskedTaskloopSimd
	DirectiveForSimd
	DirectiveSimd
	DirectiveTargetParallel
	DirectiveTargetParallelFor
	DirectiveTargetParallelForSimd
	DirectiveTargetParallelLoop
	DirectiveTargetSimd
	DirectiveTargetTeams
	DirectiveTargetTeamsDistribute
	DirectiveTargetTeamsDistributeSimd
	DirectiveTargetTeamsDistributeParallelFor
	DirectiveTargetTeamsDistributeParallelForSimd
	DirectiveTargetTeamsLoop
	DirectiveTeamsDistribute
	DirectiveTeamsDistributeSimd
	DirectiveTeamsDistributeParallelFor
	DirectiveTeamsDistributeParallelForSimd
	DirectiveTeamsLoop
	DirectiveLoop
	DirectiveParallelLoop
	DirectiveScan
	DirectiveRequires
	DirectiveScope
	DirectiveError
	DirectiveNothing
	DirectiveDepobj
	DirectiveMetadirective
	DirectiveDispatch
	DirectiveInterop
	DirectiveAssume
	DirectiveAssumes
	DirectiveAllocate
	DirectiveFuse
	DirectiveSplit
	DirectiveTile
	DirectiveInterchange
	DirectiveReverse
	DirectiveStripe
	DirectiveUnroll
)

var openMPDirectives = []DirectiveSpec{
	{Kind: DirectiveParallel, Name: "parallel"},
	{Kind: DirectiveFor, Name: "for"},
	{Kind: DirectiveSections, Name: "sections"},
	{Kind: DirectiveSection, Name: "section", NoClauses: true},
	{Kind: DirectiveSingle, Name: "single"},
	{Kind: DirectiveMaster, Name: "master", NoClauses: true},
	{Kind: DirectiveMasked, Name: "masked"},
	{Kind: DirectiveCritical, Name: "critical", TakesArgument: true},
	{Kind: DirectiveBarrier, Name: "barrier", NoClauses: true},
	{Kind: DirectiveTaskwait, Name: "taskwait"},
	{Kind: DirectiveTaskgroup, Name: "taskgroup"},
	{Kind: DirectiveAtomic, Name: "atomic"},
	{Kind: DirectiveFlush, Name: "flush", TakesArgument: true},
	{Kind: DirectiveOrdered, Name: "ordered"},
	{Kind: DirectiveCancel, Name: "cancel"},
	{Kind: DirectiveCancellationPoint, Name: "cancellation point"},
	{Kind: DirectiveThreadprivate, Name: "threadprivate", TakesArgument: true, NoClauses: true},
	{Kind: DirectiveTask, Name: "task"},
	{Kind: DirectiveTaskloop, Name: "taskloop"},
	{Kind: DirectiveTaskloopSimd, Name: "taskloop simd"},
	{Kind: DirectiveTaskyield, Name: "taskyield", NoClauses: true},
	{Kind: DirectiveTarget, Name: "target"},
	{Kind: DirectiveTargetData, Name: "target data"},
	{Kind: DirectiveTargetEnterData, Name: "target enter data"},
	{Kind: DirectiveTargetExitData, Name: "target exit data"},
	{Kind: DirectiveTargetUpdate, Name: "target update"},
	{Kind: DirectiveDeclareSimd, Name: "declare simd"},
	{Kind: DirectiveDeclareTarget, Name: "declare target", TakesArgument: true},
	{Kind: DirectiveDeclareReduction, Name: "declare reduction", TakesArgument: true},
	{Kind: DirectiveDeclareMapper, Name: "declare mapper", TakesArgument: true},
	{Kind: DirectiveTeams, Name: "teams"},
	{Kind: DirectiveDistribute, Name: "distribute"},
	{Kind: DirectiveDistributeSimd, Name: "distribute simd"},
	{Kind: DirectiveDistributeParallelFor, Name: "distribute parallel for"},
	{Kind: DirectiveDistributeParallelForSimd, Name: "distribute parallel for simd"},
	{Kind: DirectiveParallelFor, Name: "parallel for"},
	{Kind: DirectiveParallelForSimd, Name: "parallel for simd"},
	{Kind: DirectiveParallelSections, Name: "parallel sections"},
	{Kind: DirectiveParallelMaster, Name: "parallel master"},
	{Kind: DirectiveParallelMasked, Name: "parallel masked"},
	{Kind: DirectiveMasterTaskloop, Name: "master taskloop"},
	{Kind: DirectiveMasterTaskloopSimd, Name: "master taskloop simd"},
	{Kind: DirectiveMaskedTaskloop, Name: "masked taskloop"},
	{Kind: DirectiveMaskedTaskloopSimd, Name: "masked taskloop simd"},
	{Kind: DirectiveParallelMasterTaskloop, Name: "parallel master taskloop"},
	{Kind: DirectiveParallelMasterTaskloopSimd, Name: "parallel master taskloop simd"},
	{Kind: DirectiveParallelMaskedTaskloop, Name: "parallel masked taskloop"},
	{Kind: DirectiveParallelMaskedTaskloopSimd, Name: "parallel masked taskloop simd"},
	{Kind: DirectiveForSimd, Name: "for simd"},
	{Kind: DirectiveSimd, Name: "simd"},
	{Kind: DirectiveTargetParallel, Name: "target parallel"},
	{Kind: DirectiveTargetParallelFor, Name: "target parallel for"},
	{Kind: DirectiveTargetParallelForSimd, Name: "target parallel for simd"},
	{Kind: DirectiveTargetParallelLoop, Name: "target parallel loop"},
	{Kind: DirectiveTargetSimd, Name: "target simd"},
	{Kind: DirectiveTargetTeams, Name: "target teams"},
	{Kind: DirectiveTargetTeamsDistribute, Name: "target teams distribute"},
	{Kind: DirectiveTargetTeamsDistributeSimd, Name: "target teams distribute simd"},
	{Kind: DirectiveTargetTeamsDistributeParallelFor, Name: "target teams distribute parallel for"},
	{Kind: DirectiveTargetTeamsDistributeParallelForSimd, Name: "target teams distribute parallel for simd"},
	{Kind: DirectiveTargetTeamsLoop, Name: "target teams loop"},
	{Kind: DirectiveTeamsDistribute, Name: "teams distribute"},
	{Kind: DirectiveTeamsDistributeSimd, Name: "teams distribute simd"},
	{Kind: DirectiveTeamsDistributeParallelFor, Name: "teams distribute parallel for"},
	{Kind: DirectiveTeamsDistributeParallelForSimd, Name: "teams distribute parallel for simd"},
	{Kind: DirectiveTeamsLoop, Name: "teams loop"},
	{Kind: DirectiveLoop, Name: "loop"},
	{Kind: DirectiveParallelLoop, Name: "parallel loop"},
	{Kind: DirectiveScan, Name: "scan"},
	{Kind: DirectiveRequires, Name: "requires"},
	{Kind: DirectiveScope, Name: "scope"},
	{Kind: DirectiveError, Name: "error"},
	{Kind: DirectiveNothing, Name: "nothing", NoClauses: true},
	{Kind: DirectiveDepobj, Name: "depobj", TakesArgument: true},
	{Kind: DirectiveMetadirective, Name: "metadirective"},
	{Kind: DirectiveDispatch, Name: "dispatch"},
	{Kind: DirectiveInterop, Name: "interop"},
	{Kind: DirectiveAssume, Name: "assume"},
	{Kind: DirectiveAssumes, Name: "assumes"},
	{Kind: DirectiveAllocate, Name: "allocate", TakesArgument: true},
	{Kind: DirectiveFuse, Name: "fuse"},
	{Kind: DirectiveSplit, Name: "split"},
	{Kind: DirectiveTile, Name: "tile"},
	{Kind: DirectiveInterchange, Name: "interchange"},
	{Kind: DirectiveReverse, Name: "reverse"},
	{Kind: DirectiveStripe, Name: "stripe"},
	{Kind: DirectiveUnroll, Name: "unroll"},
}

var openMPClauses = []ClauseSpec{
	{Name: "private", Rule: RuleParenthesized},
	{Name: "firstprivate", Rule: RuleParenthesized},
	{Name: "lastprivate", Rule: RuleParenthesized},
	{Name: "shared", Rule: RuleParenthesized},
	{Name: "copyin", Rule: RuleParenthesized},
	{Name: "copyprivate", Rule: RuleParenthesized},
	{Name: "default", Rule: RuleParenthesized},
	{Name: "reduction", Rule: RuleCustom, Custom: parseReductionClause},
	{Name: "in_reduction", Rule: RuleCustom, Custom: parseReductionClause},
	{Name: "task_reduction", Rule: RuleCustom, Custom: parseReductionClause},
	{Name: "schedule", Rule: RuleParenthesized},
	{Name: "dist_schedule", Rule: RuleParenthesized},
	{Name: "collapse", Rule: RuleParenthesized},
	{Name: "ordered", Rule: RuleFlexible},
	{Name: "nowait", Rule: RuleBare},
	{Name: "untied", Rule: RuleBare},
	{Name: "mergeable", Rule: RuleBare},
	{Name: "nogroup", Rule: RuleBare},
	{Name: "inbranch", Rule: RuleBare},
	{Name: "notinbranch", Rule: RuleBare},
	{Name: "threads", Rule: RuleBare},
	{Name: "simd", Rule: RuleBare},
	{Name: "final", Rule: RuleParenthesized},
	{Name: "if", Rule: RuleParenthesized},
	{Name: "num_threads", Rule: RuleParenthesized},
	{Name: "num_teams", Rule: RuleParenthesized},
	{Name: "thread_limit", Rule: RuleParenthesized},
	{Name: "priority", Rule: RuleParenthesized},
	{Name: "grainsize", Rule: RuleParenthesized},
	{Name: "num_tasks", Rule: RuleParenthesized},
	{Name: "safelen", Rule: RuleParenthesized},
	{Name: "simdlen", Rule: RuleParenthesized},
	{Name: "aligned", Rule: RuleParenthesized},
	{Name: "linear", Rule: RuleParenthesized},
	{Name: "map", Rule: RuleParenthesized},
	{Name: "depend", Rule: RuleParenthesized},
	{Name: "doacross", Rule: RuleParenthesized},
	{Name: "affinity", Rule: RuleParenthesized},
	{Name: "device", Rule: RuleParenthesized},
	{Name: "defaultmap", Rule: RuleParenthesized},
	{Name: "proc_bind", Rule: RuleParenthesized},
	{Name: "allocate", Rule: RuleParenthesized},
	{Name: "allocator", Rule: RuleParenthesized},
	{Name: "detach", Rule: RuleParenthesized},
	{Name: "hint", Rule: RuleParenthesized},
	{Name: "nontemporal", Rule: RuleParenthesized},
	{Name: "order", Rule: RuleParenthesized},
	{Name: "bind", Rule: RuleParenthesized},
	{Name: "filter", Rule: RuleParenthesized},
	{Name: "sizes", Rule: RuleParenthesized},
	{Name: "partial", Rule: RuleFlexible},
	{Name: "full", Rule: RuleBare},
	{Name: "uses_allocators", Rule: RuleParenthesized},
	{Name: "is_device_ptr", Rule: RuleParenthesized},
	{Name: "has_device_addr", Rule: RuleParenthesized},
	{Name: "use_device_ptr", Rule: RuleParenthesized},
	{Name: "use_device_addr", Rule: RuleParenthesized},
	{Name: "to", Rule: RuleParenthesized},
	{Name: "from", Rule: RuleParenthesized},
	{Name: "link", Rule: RuleParenthesized},
	{Name: "device_type", Rule: RuleParenthesized},
	{Name: "inclusive", Rule: RuleParenthesized},
	{Name: "exclusive", Rule: RuleParenthesized},
	{Name: "novariants", Rule: RuleParenthesized},
	{Name: "nocontext", Rule: RuleParenthesized},
	{Name: "severity", Rule: RuleParenthesized},
	{Name: "message", Rule: RuleParenthesized},
	{Name: "at", Rule: RuleParenthesized},
	{Name: "update", Rule: RuleFlexible},
	{Name: "capture", Rule: RuleBare},
	{Name: "compare", Rule: RuleBare},
	{Name: "read", Rule: RuleBare},
	{Name: "write", Rule: RuleBare},
	{Name: "seq_cst", Rule: RuleBare},
	{Name: "acq_rel", Rule: RuleBare},
	{Name: "acquire", Rule: RuleBare},
	{Name: "release", Rule: RuleBare},
	{Name: "relaxed", Rule: RuleBare},
	{Name: "destroy", Rule: RuleFlexible},
	{Name: "reverse_offload", Rule: RuleBare},
	{Name: "unified_address", Rule: RuleBare},
	{Name: "unified_shared_memory", Rule: RuleBare},
	{Name: "dynamic_allocators", Rule: RuleBare},
	{Name: "atomic_default_mem_order", Rule: RuleParenthesized},
	// Metadirective selectors carry context-selector syntax the IR does not
	// model yet; they round-trip as unknown clauses.
	{Name: "when", Rule: RuleUnsupported},
	{Name: "match", Rule: RuleUnsupported},
}
