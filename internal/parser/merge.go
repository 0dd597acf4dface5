package parser

import (
	"slices"
	"strings"
)

// MergeByURL collapses resources sharing a URL into a single record for
// presentation: sections are unioned in insertion order, distinct
// descriptions and parent sections are pipe-joined, and searchable content
// is concatenated. The input is not mutated. After this pass no two
// entries share a URL, whatever key policy produced the input.
func MergeByURL(resources []*Resource) []*Resource {
	byURL := make(map[string]*Resource, len(resources))
	var merged []*Resource

	for _, r := range resources {
		existing, ok := byURL[r.URL]
		if !ok {
			clone := *r
			clone.Sections = slices.Clone(r.Sections)
			byURL[r.URL] = &clone
			merged = append(merged, &clone)
			continue
		}

		for _, s := range r.Sections {
			if !slices.Contains(existing.Sections, s) {
				existing.Sections = append(existing.Sections, s)
			}
		}
		if r.Description != "" && !slices.Contains(strings.Split(existing.Description, " | "), r.Description) {
			existing.Description += " | " + r.Description
		}
		if r.SearchableContent != "" {
			existing.SearchableContent += " " + r.SearchableContent
		}
		switch {
		case r.ParentSection == "":
		case existing.ParentSection == "":
			existing.ParentSection = r.ParentSection
		case !slices.Contains(strings.Split(existing.ParentSection, " | "), r.ParentSection):
			existing.ParentSection += " | " + r.ParentSection
		}
	}

	return merged
}
