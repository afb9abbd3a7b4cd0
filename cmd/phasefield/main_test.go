package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// newTestRootCmd creates a root command with persistent flags for testing subcommands
func newTestRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "phasefield",
	}
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	return rootCmd
}

// writeTestConfig writes a minimal config file so tests never read the
// user's ~/.phasefield/config.yaml.
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestVersionCmd(t *testing.T) {
	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newVersionCmd())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(buf.String(), "phasefield version") {
		t.Errorf("version output missing banner: %q", buf.String())
	}
}

func TestVersionCmdJSON(t *testing.T) {
	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newVersionCmd())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version", "--json"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var out map[string]string
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out["version"] == "" {
		t.Error("JSON output missing version field")
	}
}

func TestTopologyCmdJSON(t *testing.T) {
	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newTopologyCmd())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"topology", "--json"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var out topologyOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.Groups) != 3 {
		t.Errorf("got %d groups, want 3", len(out.Groups))
	}
	if len(out.Nodes) != 9 {
		t.Errorf("got %d nodes, want 9", len(out.Nodes))
	}
	if len(out.Edges) == 0 {
		t.Error("reference topology has no edges")
	}
}

func TestTopologyCmdBadFile(t *testing.T) {
	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newTopologyCmd())

	path := filepath.Join(t.TempDir(), "topo.yaml")
	if err := os.WriteFile(path, []byte("groups: {not: a list}\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"topology", "--file", path})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for malformed topology file")
	}
}

func TestRunCmdJSON(t *testing.T) {
	cfgPath := writeTestConfig(t, `
oscillator:
  base_frequency: 1.0
  coupling_strength: 0.3
  seed: 42
simulation:
  duration: 0.5
  dt: 0.01
  record_interval: 10
`)

	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newRunCmd())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"run", "--json", "--config", cfgPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var out runOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Session == "" {
		t.Error("missing session ID")
	}
	if out.Records != 5 {
		t.Errorf("got %d records, want 5", out.Records)
	}
	if out.Snapshot == nil {
		t.Fatal("missing snapshot")
	}
	if len(out.Snapshot.Nodes) != 9 {
		t.Errorf("snapshot has %d nodes, want 9", len(out.Snapshot.Nodes))
	}
	if out.Snapshot.DominantGroup == "" {
		t.Error("missing dominant group")
	}
}

func TestRunCmdFlagOverrides(t *testing.T) {
	cfgPath := writeTestConfig(t, `
simulation:
  duration: 100
`)

	run := func(args ...string) runOutput {
		t.Helper()
		rootCmd := newTestRootCmd()
		rootCmd.AddCommand(newRunCmd())
		var buf bytes.Buffer
		rootCmd.SetOut(&buf)
		rootCmd.SetErr(new(bytes.Buffer))
		rootCmd.SetArgs(append([]string{"run", "--json", "--config", cfgPath}, args...))
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		var out runOutput
		if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		return out
	}

	// --duration overrides the config's 100s run.
	out := run("--duration", "0.2", "--seed", "7")
	if out.Duration != 0.2 {
		t.Errorf("duration = %v, want 0.2", out.Duration)
	}

	// Same seed reproduces the same final phases.
	again := run("--duration", "0.2", "--seed", "7")
	for name, node := range out.Snapshot.Nodes {
		if again.Snapshot.Nodes[name].Phase != node.Phase {
			t.Errorf("node %s phase diverged across seeded runs: %v vs %v", name, node.Phase, again.Snapshot.Nodes[name].Phase)
		}
	}
}

func TestRunCmdRejectsBadConfig(t *testing.T) {
	cfgPath := writeTestConfig(t, `
simulation:
  dt: -1
`)

	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newRunCmd())
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"run", "--json", "--config", cfgPath})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected validation error for negative dt")
	}
}
