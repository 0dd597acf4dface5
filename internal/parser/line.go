package parser

import (
	"regexp"
	"strings"
)

// Kind classifies a single trimmed line of the source document.
type Kind int

const (
	KindOther Kind = iota
	KindContentsMarker
	KindSectionHeading
	KindSubSectionHeading
	KindListItem
)

const (
	contentsHeading   = "Contents"
	contributeHeading = "How to contribute?"
)

var (
	// - [Title](https://example.com/path) [optional extra]
	linkItemRegex = regexp.MustCompile(`^- \[([^\]]+)\]\((https?://[^\s)]+)\)(?:\s*\[([^\]]+)\])?`)
	// - https://example.com/path [optional extra]
	bareItemRegex = regexp.MustCompile(`^- (https?://[^\s\]]+)(?:\s*\[([^\]]+)\])?`)
	// - [Category](#anchor) inside the Contents block
	contentsEntryRegex = regexp.MustCompile(`^- \[([^\]]+)\]`)
)

// ClassifyLine categorizes a trimmed line. Rules apply in priority order:
// the exact Contents heading, any other "## " heading, a "> " sub-heading,
// a "- " list item, and everything else is KindOther. Classification does
// not check section context; the parser applies context rules itself.
func ClassifyLine(trimmed string) Kind {
	switch {
	case trimmed == "## "+contentsHeading:
		return KindContentsMarker
	case strings.HasPrefix(trimmed, "## "):
		return KindSectionHeading
	case strings.HasPrefix(trimmed, "> "):
		return KindSubSectionHeading
	case strings.HasPrefix(trimmed, "- "):
		return KindListItem
	default:
		return KindOther
	}
}

// Item holds the fields extracted from a single list-item line.
type Item struct {
	Title     string
	URL       string
	ExtraInfo string
}

// Description is the extra info when present, otherwise the title.
// Always non-empty for an extracted item.
func (it Item) Description() string {
	if it.ExtraInfo != "" {
		return it.ExtraInfo
	}
	return it.Title
}

// ExtractListItem tries the markdown-link form first, then the bare-URL
// form. For a bare URL the title is the last non-empty path segment.
// Lines matching neither form contribute nothing.
func ExtractListItem(trimmed string) (Item, bool) {
	if m := linkItemRegex.FindStringSubmatch(trimmed); m != nil {
		return Item{Title: m[1], URL: m[2], ExtraInfo: m[3]}, true
	}
	if m := bareItemRegex.FindStringSubmatch(trimmed); m != nil {
		return Item{Title: lastURLSegment(m[1]), URL: m[1], ExtraInfo: m[2]}, true
	}
	return Item{}, false
}

// lastURLSegment returns the last non-empty "/"-delimited segment.
func lastURLSegment(url string) string {
	parts := strings.Split(url, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return url
}

// headingText strips the "## " marker from a section heading line.
func headingText(trimmed string) string {
	return strings.TrimSpace(trimmed[3:])
}

// subHeadingText strips the "> " marker from a sub-section heading line.
func subHeadingText(trimmed string) string {
	return strings.TrimSpace(trimmed[2:])
}
