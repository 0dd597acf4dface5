package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gmh5225/awesome-game-security-site/internal/parser"
	"github.com/gmh5225/awesome-game-security-site/internal/search"
)

func testModel(t *testing.T) Model {
	t.Helper()

	doc := parser.Parse(`## Contents
- [Tools](#tools)
- [Anti-Cheat](#anti-cheat)
## Tools
> Static Analysis
- [IDA Pro](https://hex-rays.com/ida-pro/) [free version available]
- https://ghidra-sre.org
## Anti-Cheat
- [BattlEye](https://www.battleye.com) [kernel anticheat]
`, parser.Options{})

	return Model{
		pageSize:   10,
		strategy:   search.StrategyPerSection,
		page:       1,
		resources:  doc.Resources,
		categories: doc.Categories,
		navEntries: flattenNav(doc.Categories),
	}
}

func TestFlattenNav(t *testing.T) {
	cats := []parser.Category{
		{Name: "Tools", SubCategories: []string{"Static Analysis", "Dynamic Analysis"}},
		{Name: "Anti-Cheat"},
	}

	entries := flattenNav(cats)
	want := []navEntry{
		{name: "Tools"},
		{name: "Static Analysis", parent: "Tools"},
		{name: "Dynamic Analysis", parent: "Tools"},
		{name: "Anti-Cheat"},
	}

	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], entries[i])
		}
	}
}

func TestRecompute_FullPipeline(t *testing.T) {
	m := testModel(t)
	m.query = search.Query{Text: "ida free", Mode: search.ModeFreeText}
	m.recompute()

	if m.resultCount != 1 {
		t.Fatalf("expected 1 result, got %d", m.resultCount)
	}
	if m.rows[0].resource.Title != "IDA Pro" {
		t.Errorf("expected IDA Pro, got %s", m.rows[0].resource.Title)
	}
	if m.rows[0].section != "Tools" {
		t.Errorf("expected Tools section, got %s", m.rows[0].section)
	}
}

func TestRecompute_EmptyQueryShowsEverything(t *testing.T) {
	m := testModel(t)
	m.recompute()

	if m.resultCount != 3 {
		t.Fatalf("expected 3 results, got %d", m.resultCount)
	}
	// Sections are collate-ordered: Anti-Cheat before Tools.
	if m.rows[0].section != "Anti-Cheat" {
		t.Errorf("expected Anti-Cheat first, got %s", m.rows[0].section)
	}
}

func TestHandleEnter_NavigationSelection(t *testing.T) {
	m := testModel(t)
	m.navVisible = true
	m.navCursor = 1 // "Static Analysis" under "Tools"

	m.handleEnter()

	if m.navVisible {
		t.Error("expected panel to close after selection")
	}
	if m.query.Mode != search.ModeNavigation {
		t.Errorf("expected navigation mode, got %v", m.query.Mode)
	}
	if m.query.Text != "Static Analysis" || m.query.ParentCategory != "Tools" {
		t.Errorf("unexpected query: %+v", m.query)
	}
	if m.resultCount != 2 {
		t.Errorf("expected 2 results under Static Analysis, got %d", m.resultCount)
	}
}

func TestHandleEnter_TopLevelCategoryHasNoHint(t *testing.T) {
	m := testModel(t)
	m.navVisible = true
	m.navCursor = 0 // "Tools"

	m.handleEnter()

	if m.query.ParentCategory != "" {
		t.Errorf("top-level selection must not carry a parent hint, got %q", m.query.ParentCategory)
	}
	if m.resultCount != 2 {
		t.Errorf("expected 2 results under Tools, got %d", m.resultCount)
	}
}

func TestHandleKey_TagActivation(t *testing.T) {
	m := testModel(t)
	m.recompute()
	// Cursor starts on the first row: BattlEye, filed under Anti-Cheat.

	if _, handled := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlG}); !handled {
		t.Fatal("expected ctrl+g to be consumed")
	}
	if m.typedMode != search.ModeTag {
		t.Errorf("expected tag mode, got %v", m.typedMode)
	}
	if m.query.Text != "Anti-Cheat" {
		t.Errorf("expected Anti-Cheat tag query, got %q", m.query.Text)
	}
	if m.resultCount != 1 {
		t.Errorf("expected 1 result for the tag, got %d", m.resultCount)
	}
}

func TestMoveCursor_ClampsAndScrolls(t *testing.T) {
	m := testModel(t)
	m.height = 14
	m.recompute()

	m.moveCursor(-5)
	if m.cursor != 0 {
		t.Errorf("cursor should clamp at 0, got %d", m.cursor)
	}

	m.moveCursor(100)
	if m.cursor != len(m.rows)-1 {
		t.Errorf("cursor should clamp at %d, got %d", len(m.rows)-1, m.cursor)
	}
	if m.cursor < m.offset || m.cursor >= m.offset+m.listHeight() {
		t.Errorf("cursor %d outside viewport [%d,%d)", m.cursor, m.offset, m.offset+m.listHeight())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%d,%d,%d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
