package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Kind
	}{
		{"contents marker", "## Contents", KindContentsMarker},
		{"section heading", "## Tools", KindSectionHeading},
		{"contribute heading is still a heading", "## How to contribute?", KindSectionHeading},
		{"sub-section heading", "> Static Analysis", KindSubSectionHeading},
		{"list item", "- [IDA Pro](https://hex-rays.com/ida-pro/)", KindListItem},
		{"bare url list item", "- https://ghidra-sre.org", KindListItem},
		{"plain text", "Some prose line", KindOther},
		{"empty", "", KindOther},
		{"h3 is not a section", "### Deep heading", KindOther},
		{"hash without space", "##Tools", KindOther},
		{"blockquote without space", ">quoted", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLine(tt.line))
		})
	}
}

func TestExtractListItem_LinkForm(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Item
	}{
		{
			name: "plain link",
			line: "- [IDA Pro](https://hex-rays.com/ida-pro/)",
			want: Item{Title: "IDA Pro", URL: "https://hex-rays.com/ida-pro/"},
		},
		{
			name: "link with extra info",
			line: "- [IDA Pro](https://hex-rays.com/ida-pro/) [free version available]",
			want: Item{Title: "IDA Pro", URL: "https://hex-rays.com/ida-pro/", ExtraInfo: "free version available"},
		},
		{
			name: "url with query string",
			line: "- [Search](https://example.com/q?term=anti-cheat&page=2) [hosted]",
			want: Item{Title: "Search", URL: "https://example.com/q?term=anti-cheat&page=2", ExtraInfo: "hosted"},
		},
		{
			name: "http scheme",
			line: "- [Old Site](http://example.org/tool)",
			want: Item{Title: "Old Site", URL: "http://example.org/tool"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractListItem(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractListItem_BareURLForm(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Item
	}{
		{
			name: "bare domain",
			line: "- https://ghidra-sre.org",
			want: Item{Title: "ghidra-sre.org", URL: "https://ghidra-sre.org"},
		},
		{
			name: "bare url with path",
			line: "- https://github.com/gmh5225/awesome-game-security",
			want: Item{Title: "awesome-game-security", URL: "https://github.com/gmh5225/awesome-game-security"},
		},
		{
			name: "bare url with extra info",
			line: "- https://ghidra-sre.org [open source]",
			want: Item{Title: "ghidra-sre.org", URL: "https://ghidra-sre.org", ExtraInfo: "open source"},
		},
		{
			name: "trailing slash keeps last non-empty segment",
			line: "- https://example.com/tools/",
			want: Item{Title: "tools", URL: "https://example.com/tools/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractListItem(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractListItem_NoMatch(t *testing.T) {
	lines := []string{
		"- plain text item without a link",
		"- [Anchor only](#tools)",
		"- [ftp link](ftp://example.com/file)",
		"just prose",
		"- ",
	}

	for _, line := range lines {
		_, ok := ExtractListItem(line)
		assert.False(t, ok, "expected no match for %q", line)
	}
}

func TestItemDescription(t *testing.T) {
	withExtra := Item{Title: "IDA Pro", ExtraInfo: "free version available"}
	assert.Equal(t, "free version available", withExtra.Description())

	withoutExtra := Item{Title: "IDA Pro"}
	assert.Equal(t, "IDA Pro", withoutExtra.Description())
}
