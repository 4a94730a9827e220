// Package evaluator converts token sequences from infix to postfix order
// and reduces postfix sequences to a numeric result.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2025 S. Grinevich
//
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strcalc.evaluator'.
func tracer() tracing.Trace {
	return tracing.Select("strcalc.evaluator")
}
