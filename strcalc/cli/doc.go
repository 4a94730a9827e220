package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'strcalc.cli'
func tracer() tracing.Trace {
	return tracing.Select("strcalc.cli")
}
