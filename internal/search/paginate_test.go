package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmh5225/awesome-game-security-site/internal/parser"
)

func makeResources(section string, n int) []*parser.Resource {
	out := make([]*parser.Resource, n)
	for i := range out {
		out[i] = &parser.Resource{
			Title:         fmt.Sprintf("tool-%02d", i),
			URL:           fmt.Sprintf("https://example.com/%s/%d", section, i),
			Sections:      []string{section},
			ParentSection: section,
		}
	}
	return out
}

func pageCount(p Page) int {
	n := 0
	for _, s := range p.Sections {
		n += len(s.Resources)
	}
	return n
}

func TestPaginate_Boundaries(t *testing.T) {
	rs := makeResources("Tools", 23)

	p1 := Paginate(rs, 1, 10, StrategyPerSection)
	assert.Equal(t, 10, pageCount(p1))
	assert.True(t, p1.HasMore)
	assert.False(t, p1.HasPrevious)

	p2 := Paginate(rs, 2, 10, StrategyPerSection)
	assert.Equal(t, 10, pageCount(p2))
	assert.True(t, p2.HasMore)
	assert.True(t, p2.HasPrevious)

	p3 := Paginate(rs, 3, 10, StrategyPerSection)
	assert.Equal(t, 3, pageCount(p3))
	assert.False(t, p3.HasMore)
	assert.True(t, p3.HasPrevious)

	p4 := Paginate(rs, 4, 10, StrategyPerSection)
	assert.Equal(t, 0, pageCount(p4))
	assert.False(t, p4.HasMore)
	assert.True(t, p4.HasPrevious)
}

func TestPaginate_PerSectionHidesEmptiedSections(t *testing.T) {
	rs := append(makeResources("Alpha", 12), makeResources("Beta", 3)...)

	p1 := Paginate(rs, 1, 10, StrategyPerSection)
	require.Len(t, p1.Sections, 2)
	assert.Equal(t, "Alpha", p1.Sections[0].Name)
	assert.Len(t, p1.Sections[0].Resources, 10)
	assert.Len(t, p1.Sections[1].Resources, 3)
	assert.True(t, p1.HasMore)

	// Beta has nothing beyond the first page and disappears.
	p2 := Paginate(rs, 2, 10, StrategyPerSection)
	require.Len(t, p2.Sections, 1)
	assert.Equal(t, "Alpha", p2.Sections[0].Name)
	assert.Len(t, p2.Sections[0].Resources, 2)
	assert.False(t, p2.HasMore)
}

func TestPaginate_FlatStrategy(t *testing.T) {
	rs := append(makeResources("Alpha", 7), makeResources("Beta", 7)...)

	p1 := Paginate(rs, 1, 10, StrategyFlat)
	assert.Equal(t, 10, pageCount(p1))
	require.Len(t, p1.Sections, 2)
	assert.Equal(t, "Alpha", p1.Sections[0].Name)
	assert.Len(t, p1.Sections[0].Resources, 7)
	assert.Equal(t, "Beta", p1.Sections[1].Name)
	assert.Len(t, p1.Sections[1].Resources, 3)
	assert.True(t, p1.HasMore)

	p2 := Paginate(rs, 2, 10, StrategyFlat)
	assert.Equal(t, 4, pageCount(p2))
	assert.False(t, p2.HasMore)
	assert.True(t, p2.HasPrevious)
}

func TestPaginate_SectionAndTitleOrdering(t *testing.T) {
	rs := []*parser.Resource{
		{Title: "zeta", URL: "https://e.com/1", Sections: []string{"Tools"}, ParentSection: "Tools"},
		{Title: "alpha", URL: "https://e.com/2", Sections: []string{"Tools"}, ParentSection: "Tools"},
		{Title: "mid", URL: "https://e.com/3", Sections: []string{"Anti-Cheat"}, ParentSection: "Anti-Cheat"},
	}

	p := Paginate(rs, 1, 10, StrategyPerSection)
	require.Len(t, p.Sections, 2)
	assert.Equal(t, "Anti-Cheat", p.Sections[0].Name)
	assert.Equal(t, "Tools", p.Sections[1].Name)
	assert.Equal(t, "alpha", p.Sections[1].Resources[0].Title)
	assert.Equal(t, "zeta", p.Sections[1].Resources[1].Title)
}

func TestPaginate_FallbackToFirstSection(t *testing.T) {
	rs := []*parser.Resource{
		{Title: "loose", URL: "https://e.com/1", Sections: []string{"Leaked Source"}},
	}

	p := Paginate(rs, 1, 10, StrategyPerSection)
	require.Len(t, p.Sections, 1)
	assert.Equal(t, "Leaked Source", p.Sections[0].Name)
}
