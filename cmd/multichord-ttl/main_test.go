package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRunDefaultMatchesGolden(t *testing.T) {
	expected, err := os.ReadFile(filepath.Join("..", "..", "pkg", "multichord", "output", "testdata", "multi_chord.ttl"))
	if err != nil {
		t.Fatalf("Failed to read golden file: %v", err)
	}

	out, err := execute(t)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != string(expected) {
		t.Error("Default output does not match golden file")
	}
}

func TestRunOutputFileAndWorkbook(t *testing.T) {
	dir := t.TempDir()
	ttlPath := filepath.Join(dir, "multi_chord.ttl")
	xlsxPath := filepath.Join(dir, "ports.xlsx")

	out, err := execute(t, "-o", ttlPath, "--xlsx", xlsxPath)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "" {
		t.Errorf("Expected no stdout when writing to a file, got %d bytes", len(out))
	}

	data, err := os.ReadFile(ttlPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.HasSuffix(string(data), "\t] .\n") {
		t.Error("Output file is not a complete descriptor")
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()
	if got := f.GetSheetList(); len(got) != 2 {
		t.Errorf("Expected 2 sheets, got %v", got)
	}
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "--pretty")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out, "\"symbol\": \"offset_cs1\"") {
		t.Error("JSON output is missing offset_cs1")
	}
}

func TestRunInvalidFormat(t *testing.T) {
	if _, err := execute(t, "--format", "xml"); err == nil {
		t.Error("Expected error for invalid format")
	}
}

func TestChordCommand(t *testing.T) {
	tests := []struct {
		args  []string
		lines int
	}{
		{[]string{"chord"}, 1},
		{[]string{"chord", "--preset", "major", "--note", "60"}, 3},
		{[]string{"chord", "--preset", "minor", "--note", "62", "--off"}, 3},
		{[]string{"chord", "--preset", "major", "--note", "127"}, 1},
	}

	for _, tt := range tests {
		out, err := execute(t, tt.args...)
		if err != nil {
			t.Fatalf("%v failed: %v", tt.args, err)
		}
		if got := strings.Count(out, "\n"); got != tt.lines {
			t.Errorf("%v printed %d lines, expected %d:\n%s", tt.args, got, tt.lines, out)
		}
	}
}

func TestChordCommandErrors(t *testing.T) {
	tests := [][]string{
		{"chord", "--preset", "augmented"},
		{"chord", "--note", "200"},
		{"chord", "--channel", "16"},
	}

	for _, args := range tests {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}
