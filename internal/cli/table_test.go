package cli

import (
	"strings"
	"testing"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable("Name", "Value")

	table.AddRow("ratio", "4.50:1")
	table.AddRow("short")
	table.AddRow("long", "1", "extra")

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d cells, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("Level", "Result")
	table.AddRow("AA normal", "pass")
	table.AddRow("AAA large", "fail")

	want := "Level      Result\n" +
		"---------  ------\n" +
		"AA normal  pass\n" +
		"AAA large  fail\n"

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderHeaderless(t *testing.T) {
	table := NewTable()
	table.AddRow("complementary", "#ff0000, #00ffff")
	table.AddRow("triadic", "#ff0000, #00ff00, #0000ff")

	got := table.Render()
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Render() produced %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[1], "triadic        #ff0000") {
		t.Errorf("Render() line = %q, want aligned second column", lines[1])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcde", 5, "abcde"},
		{"abcdef", 5, "abcdef"},
		{"", 3, "   "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}
