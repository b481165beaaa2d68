// ABOUTME: Tests for the version command output
// ABOUTME: Covers default build info and SetVersion override
package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCmd(t *testing.T) {
	SetVersion("1.2.3", "abc1234", "2026-03-14")
	defer SetVersion("dev", "none", "unknown")

	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"StudyBuddy 1.2.3", "Commit: abc1234", "Built:  2026-03-14"} {
		if !strings.Contains(got, want) {
			t.Errorf("Output missing %q:\n%s", want, got)
		}
	}
}
