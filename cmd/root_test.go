package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// executeCommand runs the root command with args against an empty home
// directory and returns everything written to stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COMMENT_FILTER_DB", "")
	resetFlags()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores flag variables, they outlive a single Execute
func resetFlags() {
	verbose, configPath, dbPath, cfg = false, "", "", nil
	usersIncluded = false
	commentsFiltered, commentsAs = false, ""
	demoAs, demoSteps, demoSeed, demoFormat, demoOutput = "user-1", "apply,clear", true, "", ""
	healthcheckDetails = false
	configForce = false
	serveAddr = ""
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		want    string
	}{
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantErr: false,
			want:    "dev (commit: unknown",
		},
		{
			name:    "help flag",
			args:    []string{"--help"},
			wantErr: false,
			want:    "comment-filter run",
		},
		{
			name:    "nonexistent command",
			args:    []string{"nonexistent-command"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.want != "" && !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestRootCommand_MissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := executeCommand(t, "--config", missing, "users")
	if err == nil || !strings.Contains(err.Error(), "failed to load config") {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestRootCommand_DBFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flag.db")
	out, err := executeCommand(t, "--db", path, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "database_path: "+path) {
		t.Errorf("--db should override database_path:\n%s", out)
	}
}

func TestRootCommand_SubcommandsRegistered(t *testing.T) {
	want := []string{"run", "serve", "demo", "users", "comments", "healthcheck", "config"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s command not registered", name)
		}
	}
}
