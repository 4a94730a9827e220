// Package scanner breaks expression strings into token sequences and
// resolves identifiers into numeric literals.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2025 S. Grinevich
//
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strcalc.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("strcalc.scanner")
}
