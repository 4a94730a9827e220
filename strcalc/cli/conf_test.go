package cli

import (
	"testing"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// The verbose flag has to reach all three pipeline trace keys, otherwise
// the token sequence and the postfix form never show up.
func TestVerboseFlagEnablesPipelineTraces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strcalc.cli")
	defer teardown()
	//
	flags := rootCmd.PersistentFlags()
	if err := flags.Set("verbose", "true"); err != nil {
		t.Fatalf("cannot set verbose flag: %v", err)
	}
	defer flags.Set("verbose", "false")
	konf := koanfadapter.New(koanf.New("."), "STRCALC", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		t.Fatalf("cannot merge flags: %v", err)
	}
	for _, key := range []string{
		"trace.strcalc.scanner",
		"trace.strcalc.vars",
		"trace.strcalc.evaluator",
	} {
		if level := konf.GetString(key); level != "Debug" {
			t.Errorf("expected %s to be Debug, have %q", key, level)
		}
	}
}
