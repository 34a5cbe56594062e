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

// OpenACC directive tags, offset from the OpenMP namespace by
// AccDirectiveBase. The order of this block is frozen for the same reason as
// the OpenMP one.
const (
	AccDirectiveParallel DirectiveKind = AccDirectiveBase + iota
	AccDirectiveSerial
	AccDirectiveKernels
	AccDirectiveData
	AccDirectiveEnterData
	AccDirectiveExitData
	AccDirectiveHostData
	AccDirectiveLoop
	AccDirectiveCache
	AccDirectiveAtomic
	AccDirectiveDeclare
	AccDirectiveInit
	AccDirectiveShutdown
	AccDirectiveSet
	AccDirectiveUpdate
	AccDirectiveWait
	AccDirectiveRoutine
	AccDirectiveParallelLoop
	AccDirectiveSerialLoop
	AccDirectiveKernelsLoop
)

var openACCDirectives = []DirectiveSpec{
	{Kind: AccDirectiveParallel, Name: "parallel"},
	{Kind: AccDirectiveSerial, Name: "serial"},
	{Kind: AccDirectiveKernels, Name: "kernels"},
	{Kind: AccDirectiveData, Name: "data"},
	{Kind: AccDirectiveEnterData, Name: "enter data"},
	{Kind: AccDirectiveExitData, Name: "exit data"},
	{Kind: AccDirectiveHostData, Name: "host_data"},
	{Kind: AccDirectiveLoop, Name: "loop"},
	{Kind: AccDirectiveCache, Name: "cache", TakesArgument: true, NoClauses: true},
	{Kind: AccDirectiveAtomic, Name: "atomic"},
	{Kind: AccDirectiveDeclare, Name: "declare"},
	{Kind: AccDirectiveInit, Name: "init"},
	{Kind: AccDirectiveShutdown, Name: "shutdown"},
	{Kind: AccDirectiveSet, Name: "set"},
	{Kind: AccDirectiveUpdate, Name: "update"},
	{Kind: AccDirectiveWait, Name: "wait", TakesArgument: true},
	{Kind: AccDirectiveRoutine, Name: "routine", TakesArgument: true},
	{Kind: AccDirectiveParallelLoop, Name: "parallel loop"},
	{Kind: AccDirectiveSerialLoop, Name: "serial loop"},
	{Kind: AccDirectiveKernelsLoop, Name: "kernels loop"},
}

var openACCClauses = []ClauseSpec{
	{Name: "copy", Rule: RuleParenthesized},
	{Name: "copyin", Rule: RuleParenthesized},
	{Name: "copyout", Rule: RuleParenthesized},
	{Name: "create", Rule: RuleParenthesized},
	{Name: "delete", Rule: RuleParenthesized},
	{Name: "present", Rule: RuleParenthesized},
	{Name: "no_create", Rule: RuleParenthesized},
	{Name: "deviceptr", Rule: RuleParenthesized},
	{Name: "attach", Rule: RuleParenthesized},
	{Name: "detach", Rule: RuleParenthesized},
	{Name: "private", Rule: RuleParenthesized},
	{Name: "firstprivate", Rule: RuleParenthesized},
	{Name: "reduction", Rule: RuleCustom, Custom: parseReductionClause},
	{Name: "use_device", Rule: RuleParenthesized},
	{Name: "device_resident", Rule: RuleParenthesized},
	{Name: "host", Rule: RuleParenthesized},
	{Name: "device", Rule: RuleParenthesized},
	{Name: "num_gangs", Rule: RuleParenthesized},
	{Name: "num_workers", Rule: RuleParenthesized},
	{Name: "vector_length", Rule: RuleParenthesized},
	{Name: "gang", Rule: RuleFlexible},
	{Name: "worker", Rule: RuleFlexible},
	{Name: "vector", Rule: RuleFlexible},
	{Name: "seq", Rule: RuleBare},
	{Name: "independent", Rule: RuleBare},
	{Name: "auto", Rule: RuleBare},
	{Name: "collapse", Rule: RuleParenthesized},
	{Name: "tile", Rule: RuleParenthesized},
	{Name: "async", Rule: RuleFlexible},
	{Name: "wait", Rule: RuleFlexible},
	{Name: "if", Rule: RuleParenthesized},
	{Name: "self", Rule: RuleFlexible},
	{Name: "default", Rule: RuleParenthesized},
	{Name: "device_type", Rule: RuleParenthesized},
	{Name: "bind", Rule: RuleParenthesized},
	{Name: "link", Rule: RuleParenthesized},
	{Name: "nohost", Rule: RuleBare},
	{Name: "finalize", Rule: RuleBare},
	{Name: "if_present", Rule: RuleBare},
}
