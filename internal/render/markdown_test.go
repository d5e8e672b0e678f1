package render

import (
	"strings"
	"testing"
)

func TestMarkdown_Headings(t *testing.T) {
	got := Markdown("## Warm-Up\n\nSome text.")
	if !strings.Contains(got, "<h2") {
		t.Errorf("Markdown() = %q, want an <h2> element", got)
	}
	if !strings.Contains(got, "Warm-Up") {
		t.Errorf("Markdown() = %q, want heading text preserved", got)
	}
}

func TestMarkdown_GFMTable(t *testing.T) {
	src := "| Exercise | Reps |\n| --- | --- |\n| Squats | 15 |\n"
	got := Markdown(src)
	if !strings.Contains(got, "<table") {
		t.Errorf("Markdown() = %q, want a <table> element", got)
	}
}

func TestMarkdown_StripsScript(t *testing.T) {
	got := Markdown("hello <script>alert(1)</script> world")
	if strings.Contains(got, "<script") {
		t.Errorf("Markdown() = %q, script tag survived sanitization", got)
	}
	if !strings.Contains(got, "hello") || !strings.Contains(got, "world") {
		t.Errorf("Markdown() = %q, surrounding text lost", got)
	}
}

func TestMarkdown_ExternalLinksOpenInNewTab(t *testing.T) {
	got := Markdown("[gym](https://example.com/gym)")
	if !strings.Contains(got, `target="_blank"`) {
		t.Errorf("Markdown() = %q, want target=_blank on external link", got)
	}
	if !strings.Contains(got, "noreferrer") {
		t.Errorf("Markdown() = %q, want noreferrer rel on external link", got)
	}
}

func TestMarkdown_AllowsImages(t *testing.T) {
	got := Markdown("![squat form](https://example.com/squat.jpg)")
	if !strings.Contains(got, "<img") {
		t.Errorf("Markdown() = %q, want an <img> element", got)
	}
}

func TestMarkdown_Empty(t *testing.T) {
	if got := Markdown(""); strings.TrimSpace(got) != "" {
		t.Errorf("Markdown(\"\") = %q, want empty output", got)
	}
}
