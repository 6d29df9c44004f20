package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "Night Drive", "Night Drive"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline dropped", "line\nbreak", "linebreak"},
		{"nbsp", "a\u00a0b", "a b"},
		{"invalid utf8", "ok\xffok", "okok"},
		{"escape", "\x1b[31mred", "[31mred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello w…"},
		{"zero", "hello", 0, ""},
		{"wide runes", "日本語テスト", 7, "日本語…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad_ExactWidth(t *testing.T) {
	for _, in := range []string{"", "ab", "a much longer title than fits"} {
		got := TruncateAndPad(in, 12)
		if w := lipgloss.Width(got); w != 12 {
			t.Errorf("TruncateAndPad(%q, 12) width = %d, want 12", in, w)
		}
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 15)
	if got != "left      right" {
		t.Errorf("Row() = %q", got)
	}
	// Always at least one space.
	if got := Row("left", "right", 4); got != "left right" {
		t.Errorf("Row() narrow = %q", got)
	}
}

func TestJoinNonEmpty(t *testing.T) {
	if got := JoinNonEmpty(" · ", "a", "", "b", ""); got != "a · b" {
		t.Errorf("JoinNonEmpty() = %q, want %q", got, "a · b")
	}
	if got := JoinNonEmpty(", "); got != "" {
		t.Errorf("JoinNonEmpty() empty = %q", got)
	}
}
