package parser

import (
	"slices"
	"strings"
)

// Category is one entry of the navigation tree.
type Category struct {
	Name          string   `json:"name"`
	SubCategories []string `json:"subCategories,omitempty"`
}

// Categories builds the navigation tree as a projection of the source text
// independent of the resource collection. The Contents block enumerates the
// canonical ordered category list — including categories that currently
// hold no resources — and "> " lines under a Contents-known heading become
// that category's sub-categories.
func Categories(text string) []Category {
	lines := strings.Split(text, "\n")

	var order []string
	index := make(map[string]*Category)

	inContents := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch ClassifyLine(line) {
		case KindContentsMarker:
			inContents = true
		case KindSectionHeading:
			inContents = false
		case KindListItem:
			if !inContents {
				continue
			}
			m := contentsEntryRegex.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			name := m[1]
			if _, ok := index[name]; !ok {
				index[name] = &Category{Name: name}
				order = append(order, name)
			}
		}
	}

	var current *Category
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch ClassifyLine(line) {
		case KindContentsMarker:
			current = nil
		case KindSectionHeading:
			// nil when the heading was not listed in Contents.
			current = index[headingText(line)]
		case KindSubSectionHeading:
			if current == nil {
				continue
			}
			sub := subHeadingText(line)
			if !slices.Contains(current.SubCategories, sub) {
				current.SubCategories = append(current.SubCategories, sub)
			}
		}
	}

	cats := make([]Category, 0, len(order))
	for _, name := range order {
		cats = append(cats, *index[name])
	}
	return cats
}
