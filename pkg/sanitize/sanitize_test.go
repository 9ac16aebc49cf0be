package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text unchanged",
			input:    "Just a regular sentence about content strategy.",
			expected: "Just a regular sentence about content strategy.",
		},
		{
			name:     "html tags stripped",
			input:    "<p>Hello <b>world</b></p>",
			expected: "Hello world",
		},
		{
			name:     "entities decoded",
			input:    "Ben &amp; Jerry&#39;s &quot;best&quot; flavor",
			expected: `Ben & Jerry's "best" flavor`,
		},
		{
			name:     "script injection noise removed",
			input:    "click javascript:void(0) here and window.location.href there and document.getElementById too",
			expected: "click here and there and getElementById too",
		},
		{
			name:     "whitespace collapsed",
			input:    "too   many\n\n\tspaces   here",
			expected: "too many spaces here",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "   padded   ",
			expected: "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"Plain text stays plain.",
		"<div>Some <em>markup</em> &amp; entities</div>",
		"javascript:void(0) mixed with   real    content here",
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		assert.Equal(t, once, twice, "Clean should be idempotent for %q", input)
	}
}

func TestClean_Truncation(t *testing.T) {
	long := strings.Repeat("word ", MaxLength) // way over the cap

	cleaned := Clean(long)
	assert.LessOrEqual(t, len([]rune(cleaned)), MaxLength)
	assert.Equal(t, cleaned, strings.TrimSpace(cleaned))
}

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"named entities", "a &lt; b &amp;&amp; b &gt; c", "a < b && b > c"},
		{"numeric entities", "caf&#233; &#8212; open", "café — open"},
		{"tags become spaces", "one<br>two", "one two"},
		{"nested markup", "<div><span>inner</span></div>", "inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeEntities(tt.input))
		})
	}
}
