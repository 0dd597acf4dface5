package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gmh5225/awesome-game-security-site/internal/parser"
)

// Strategy selects how a filtered result set is cut into pages.
type Strategy string

const (
	// StrategyPerSection slices [start,end) inside every section and
	// hides sections left empty by the slice.
	StrategyPerSection Strategy = "section"
	// StrategyFlat slices the flat, already-sorted result list before
	// regrouping (the legacy "load more" accumulation).
	StrategyFlat Strategy = "flat"
)

// Section is one displayed group of resources.
type Section struct {
	Name      string             `json:"name"`
	Resources []*parser.Resource `json:"resources"`
}

// Page is one page of grouped results.
type Page struct {
	Sections    []Section `json:"sections"`
	HasMore     bool      `json:"hasMore"`
	HasPrevious bool      `json:"hasPrevious"`
}

var collator = collate.New(language.English)

// Paginate groups resources by parent section (falling back to the first
// section a resource is filed under), orders section names and in-section
// titles with a locale-aware comparison, and slices out the requested page.
func Paginate(resources []*parser.Resource, page, pageSize int, strategy Strategy) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	start := (page - 1) * pageSize
	end := page * pageSize

	groups := groupBySection(resources)
	out := Page{HasPrevious: page > 1}

	if strategy == StrategyFlat {
		var flat []*parser.Resource
		for _, g := range groups {
			flat = append(flat, g.Resources...)
		}
		out.HasMore = len(flat) > end
		if start >= len(flat) {
			return out
		}
		out.Sections = regroup(flat[start:min(end, len(flat))])
		return out
	}

	for _, g := range groups {
		if len(g.Resources) > end {
			out.HasMore = true
		}
		if start >= len(g.Resources) {
			continue
		}
		out.Sections = append(out.Sections, Section{
			Name:      g.Name,
			Resources: g.Resources[start:min(end, len(g.Resources))],
		})
	}
	return out
}

// groupBySection buckets resources by display section and sorts both the
// section names and the titles within each section.
func groupBySection(resources []*parser.Resource) []Section {
	byName := make(map[string][]*parser.Resource)
	var order []string

	for _, r := range resources {
		name := r.ParentSection
		if name == "" && len(r.Sections) > 0 {
			name = r.Sections[0]
		}
		if name == "" {
			continue
		}
		if _, ok := byName[name]; !ok {
			order = append(order, name)
		}
		byName[name] = append(byName[name], r)
	}

	sort.Slice(order, func(i, j int) bool {
		return collator.CompareString(order[i], order[j]) < 0
	})

	groups := make([]Section, 0, len(order))
	for _, name := range order {
		rs := byName[name]
		sort.SliceStable(rs, func(i, j int) bool {
			return collator.CompareString(rs[i].Title, rs[j].Title) < 0
		})
		groups = append(groups, Section{Name: name, Resources: rs})
	}
	return groups
}

// regroup rebuilds sections from an already-sorted flat slice.
func regroup(flat []*parser.Resource) []Section {
	var sections []Section
	for _, r := range flat {
		name := r.ParentSection
		if name == "" && len(r.Sections) > 0 {
			name = r.Sections[0]
		}
		if n := len(sections); n > 0 && sections[n-1].Name == name {
			sections[n-1].Resources = append(sections[n-1].Resources, r)
			continue
		}
		sections = append(sections, Section{Name: name, Resources: []*parser.Resource{r}})
	}
	return sections
}
