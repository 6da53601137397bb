package markdown

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		notWant string
	}{
		{"emphasis", "Join us **Saturday**", "<strong>Saturday</strong>", ""},
		{"hard wraps", "line one\nline two", "<br", ""},
		{"raw html escaped", "<script>alert(1)</script>", "", "<script>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.in)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if tt.want != "" && !strings.Contains(got, tt.want) {
				t.Errorf("Render(%q) = %q, want it to contain %q", tt.in, got, tt.want)
			}
			if tt.notWant != "" && strings.Contains(got, tt.notWant) {
				t.Errorf("Render(%q) = %q, must not contain %q", tt.in, got, tt.notWant)
			}
		})
	}
}

func TestRenderOrEscape(t *testing.T) {
	got := RenderOrEscape("Welcome <b>all</b> to **worship**")
	if !strings.Contains(got, "<strong>worship</strong>") {
		t.Errorf("RenderOrEscape = %q, want rendered emphasis", got)
	}
	if strings.Contains(got, "<b>") {
		t.Errorf("RenderOrEscape = %q, raw html must not pass through", got)
	}
}
