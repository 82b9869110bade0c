package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRootCommand_Flags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"config", "log-file", "debug-log"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("root command missing --%s flag", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command returned error: %v", err)
	}
	if !strings.Contains(out.String(), "loglens") {
		t.Fatalf("version output = %q, want it to mention loglens", out.String())
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("version output = %q, want it to contain %q", out.String(), Version)
	}
}
