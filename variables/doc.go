// Package variables parses name=value assignments into a variable mapping
// for expression evaluation.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2025 S. Grinevich
//
package variables

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strcalc.vars'.
func tracer() tracing.Trace {
	return tracing.Select("strcalc.vars")
}
