package internal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestShowProgressWithSteps(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		steps   []ProgressStep
		wantErr bool
		want    string
	}{
		{
			name: "successful steps",
			steps: []ProgressStep{
				{Message: "Step 1", Fn: func() error { return nil }},
				{Message: "Step 2", Fn: func() error { return nil }},
			},
			wantErr: false,
			want:    "[1/2] Step 1 ... ok\n[2/2] Step 2 ... ok\n",
		},
		{
			name: "step with error",
			steps: []ProgressStep{
				{Message: "Step 1", Fn: func() error { return errors.New("step error") }},
				{Message: "Step 2", Fn: func() error { return nil }},
			},
			wantErr: true,
			want:    "[1/2] Step 1 ... FAILED\n",
		},
		{
			name:    "no steps",
			steps:   nil,
			wantErr: false,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := ShowProgressWithSteps(ctx, &buf, tt.steps)
			if (err != nil) != tt.wantErr {
				t.Errorf("ShowProgressWithSteps() error = %v, wantErr %v", err, tt.wantErr)
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestShowProgressWithSteps_WrapsStepName(t *testing.T) {
	sentinel := errors.New("boom")
	err := ShowProgressWithSteps(context.Background(), &bytes.Buffer{}, []ProgressStep{
		{Message: "Opening database", Fn: func() error { return sentinel }},
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("error should wrap the step error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Opening database: ") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestPrintHelpers(t *testing.T) {
	tests := []struct {
		name  string
		print func(*bytes.Buffer)
		want  string
	}{
		{"success", func(b *bytes.Buffer) { PrintSuccess(b, "done") }, "done\n"},
		{"info", func(b *bytes.Buffer) { PrintInfo(b, "note") }, "note\n"},
		{"warning", func(b *bytes.Buffer) { PrintWarning(b, "careful") }, "WARNING: careful\n"},
		{"error", func(b *bytes.Buffer) { PrintError(b, "broken") }, "ERROR: broken\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrintEntry(t *testing.T) {
	var buf bytes.Buffer
	for _, e := range CreateTestEntries() {
		PrintEntry(&buf, e)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
	if lines[2] != "[09:00:02] warn    Please login first" {
		t.Errorf("line = %q", lines[2])
	}
}
