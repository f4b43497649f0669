package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSuggestion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text kept", "1. Be specific\n2. Add metrics", "1. Be specific\n2. Add metrics"},
		{"tags stripped", "<p>1. <b>Be</b> specific</p><script>alert(1)</script>", "1. Be specific"},
		{"entities decoded", "Budget &amp; timeline", "Budget & timeline"},
		{"apostrophes survive", "your organization's approach", "your organization's approach"},
		{"blank lines collapsed", "one\r\n\r\n\r\n\r\ntwo", "one\n\ntwo"},
		{"trimmed", "  \n text \n ", "text"},
		{"only markup", "<div></div>", ""},
		{"encoded script stays dead", "1. Tip &lt;script&gt;alert(1)&lt;/script&gt; and <b>bold</b>", "1. Tip  and bold"},
		{"double encoded markup stays text", "use &amp;lt;b&amp;gt; sparingly", "use &lt;b&gt; sparingly"},
		{"quotes decoded", `say &quot;thanks&quot;`, `say "thanks"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSuggestion(tt.in))
		})
	}
}

func TestNormalizeSuggestion_NoLiveMarkup(t *testing.T) {
	inputs := []string{
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"&#60;img src=x onerror=alert(1)&#62;",
		"<p>ok</p>&lt;iframe src=//evil&gt;&lt;/iframe&gt;",
	}
	for _, in := range inputs {
		out := NormalizeSuggestion(in)
		assert.NotContains(t, out, "<", in)
	}
}

func TestTidySuggestion_KeepsStubTemplate(t *testing.T) {
	out := TidySuggestion(StubSuggestion("Acme <Labs>", "Water"))

	assert.True(t, strings.HasPrefix(out, "Based on your input for Acme <Labs>, here are some suggestions for your grant proposal on Water:"))
	assert.Equal(t, StubSuggestion("Acme <Labs>", "Water"), out)
}

func TestTidySuggestion(t *testing.T) {
	assert.Equal(t, "a\n\nb", TidySuggestion("  a\r\n\r\n\r\nb \n"))
	assert.Equal(t, "x < y", TidySuggestion("x < y"))
}
