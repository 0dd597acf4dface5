package search

import (
	"strings"

	"github.com/gmh5225/awesome-game-security-site/internal/parser"
)

// Mode selects how a query is matched against resources.
type Mode int

const (
	// ModeFreeText splits the query on whitespace and requires every term
	// as a substring of the searchable content, with a whole-query exact
	// section match as a shortcut.
	ModeFreeText Mode = iota
	// ModeTag requires exact (case-insensitive) equality against one of
	// the resource's sections. No substring matching.
	ModeTag
	// ModeNavigation is issued by the category tree: parent equality,
	// optionally combined with an exact section match.
	ModeNavigation
)

// Query is one search request.
type Query struct {
	Text string
	Mode Mode
	// ParentCategory narrows a navigation query to resources filed under
	// that exact top-level category.
	ParentCategory string
}

// Filter returns the resources matching q in input order. An empty query
// matches everything.
func Filter(resources []*parser.Resource, q Query) []*parser.Resource {
	if strings.TrimSpace(q.Text) == "" {
		return resources
	}

	out := make([]*parser.Resource, 0, len(resources))
	for _, r := range resources {
		if matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r *parser.Resource, q Query) bool {
	switch q.Mode {
	case ModeTag:
		return r.HasSection(q.Text)
	case ModeNavigation:
		if q.ParentCategory != "" {
			return r.ParentSection == q.ParentCategory && r.HasSection(q.Text)
		}
		// A bare top-level category shows everything filed under it.
		return strings.EqualFold(r.ParentSection, q.Text)
	default:
		return matchesFreeText(r, q.Text)
	}
}

func matchesFreeText(r *parser.Resource, text string) bool {
	// Whole-query section equality: "this looks like a tag".
	if r.HasSection(text) || strings.EqualFold(r.ParentSection, text) {
		return true
	}

	content := strings.ToLower(r.SearchableContent)
	for _, term := range strings.Fields(strings.ToLower(text)) {
		if !strings.Contains(content, term) {
			return false
		}
	}
	return true
}
