package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Key", "Hex", "RGB"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Key", "Hex"})

	table.AddRow([]string{"50", "#ffffff"})
	table.AddRow([]string{"100"})
	table.AddRow([]string{"200", "#eeeeee", "extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected short row padded with empty cell, got %q", table.rows[1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected long row truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Key", "Hex"})
	table.AddRow([]string{"50", "#c5d3ff"})
	table.AddRow([]string{"900", "#001158"})

	output := table.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d:\n%s", len(lines), output)
	}

	if lines[0] != "Key  Hex" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "---  -------" {
		t.Errorf("separator = %q", lines[1])
	}
	if lines[2] != "50   #c5d3ff" {
		t.Errorf("row = %q", lines[2])
	}
	if lines[3] != "900  #001158" {
		t.Errorf("row = %q", lines[3])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	table := &Table{padding: 2}
	if output := table.Render(); output != "" {
		t.Errorf("Expected empty string for empty table, got: %q", output)
	}
}

func TestTableIgnoresANSIWidth(t *testing.T) {
	table := NewTable([]string{"Swatch", "Hex"})
	table.AddRow([]string{"\033[48;2;0;0;0m    \033[0m", "#000000"})

	lines := strings.Split(table.Render(), "\n")
	if !strings.HasSuffix(lines[2], "  #000000") {
		t.Errorf("row = %q", lines[2])
	}
	if !strings.HasPrefix(lines[1], "------  ") {
		t.Errorf("separator = %q, want column sized to header", lines[1])
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{input: "ab", width: 4, want: "ab  "},
		{input: "abcd", width: 2, want: "abcd"},
		{input: "", width: 3, want: "   "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}
