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

import "fmt"

// ConversionErrorKind classifies failures when promoting a raw directive to
// the IR.
type ConversionErrorKind int

const (
	// UnknownDirective: the directive name is not in the catalogue.
	UnknownDirective ConversionErrorKind = iota
	// UnknownClause: the clause name is not in the catalogue (strict mode
	// only; lenient mode preserves the clause as Unknown).
	UnknownClause
	// InvalidClauseSyntax: the clause body does not match its grammar.
	InvalidClauseSyntax
	// Unsupported: recognised by the parser but not representable yet.
	Unsupported
)

// ConversionError is a failure while building the IR, annotated with the
// offending name or body text.
type ConversionError struct {
	Kind   ConversionErrorKind
	Detail string
}

func (e *ConversionError) Error() string {
	switch e.Kind {
	case UnknownDirective:
		return fmt.Sprintf("unknown directive: %s", e.Detail)
	case UnknownClause:
		return fmt.Sprintf("unknown clause: %s", e.Detail)
	case InvalidClauseSyntax:
		return fmt.Sprintf("invalid clause syntax: %s", e.Detail)
	default:
		return fmt.Sprintf("unsupported feature: %s", e.Detail)
	}
}

func conversionError(kind ConversionErrorKind, format string, args ...any) *ConversionError {
	return &ConversionError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
