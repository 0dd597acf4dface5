package ui

import (
	"fmt"
	"strings"

	"github.com/gmh5225/awesome-game-security-site/internal/search"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := max(m.width, 60)

	var b strings.Builder
	b.WriteString(m.renderHeader(width))
	b.WriteString("\n")
	b.WriteString(m.renderSearchLine())
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	if m.navVisible {
		b.WriteString(m.renderNav())
	} else {
		b.WriteString(m.renderResults())
	}

	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader(width int) string {
	title := styles.Section.Render("Awesome Game Security")

	var info []string
	info = append(info, fmt.Sprintf("%d resources", m.resultCount))
	if m.fetching {
		info = append(info, "fetching…")
	}
	if m.stale {
		info = append(info, "cached copy")
	}
	if !m.lastFetch.IsZero() {
		info = append(info, "updated "+m.lastFetch.Format("15:04:05"))
	}
	if m.lastErr != nil {
		info = append(info, styles.Error.Render("offline"))
	}

	line := title + "  " + styles.Dim.Render(strings.Join(info, " · "))
	if m.status != "" {
		line += "  " + styles.Status.Render(m.status)
	}
	return line
}

func (m Model) renderSearchLine() string {
	mode := "[text]"
	if m.typedMode == search.ModeTag {
		mode = "[tag]"
	}
	return styles.Dim.Render(mode) + " " + m.textInput.View()
}

func (m Model) renderNav() string {
	var b strings.Builder
	b.WriteString(styles.Section.Render("Categories"))
	b.WriteString("\n")

	if len(m.navEntries) == 0 {
		b.WriteString(styles.Dim.Render("  no categories yet"))
		b.WriteString("\n")
		return b.String()
	}

	viewHeight := max(m.height-8, 5)
	start := clamp(m.navCursor-viewHeight/2, 0, max(0, len(m.navEntries)-viewHeight))
	end := min(start+viewHeight, len(m.navEntries))

	for i := start; i < end; i++ {
		entry := m.navEntries[i]

		indent := ""
		label := styles.Section.Render(entry.name)
		if entry.parent != "" {
			indent = "    "
			label = styles.Tag.Render(entry.name)
		}

		if i == m.navCursor {
			b.WriteString(styles.Cursor.Render("▶ "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(indent)
		b.WriteString(label)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderResults() string {
	var b strings.Builder

	switch {
	case !m.hasSearched && m.resultCount == 0 && len(m.resources) == 0:
		b.WriteString(styles.Dim.Render("  Loading the resource list…"))
		b.WriteString("\n")
		return b.String()
	case !m.hasSearched:
		b.WriteString(styles.Dim.Render("  Start searching, or press tab to browse categories"))
		b.WriteString("\n")
		return b.String()
	case m.resultCount == 0:
		b.WriteString(styles.Dim.Render("  No resources found"))
		b.WriteString("\n")
		return b.String()
	}

	viewHeight := m.listHeight()
	start := m.offset
	end := min(start+viewHeight, len(m.rows))

	prevSection := ""
	if start > 0 {
		prevSection = m.rows[start-1].section
	}

	for i := start; i < end; i++ {
		r := m.rows[i]

		if r.section != prevSection {
			b.WriteString(styles.Section.Render("■ " + r.section))
			b.WriteString("\n")
			prevSection = r.section
		}

		cursor := "  "
		if i == m.cursor {
			cursor = styles.Cursor.Render("▶ ")
		}

		titleLine := styles.Title.Render(r.resource.Title)
		if r.resource.Description != r.resource.Title {
			titleLine += styles.Dim.Render(" — ") + styles.Desc.Render(r.resource.Description)
		}
		if i == m.cursor {
			titleLine = styles.Selected.Render(titleLine)
		}

		b.WriteString(cursor)
		b.WriteString(titleLine)
		b.WriteString("\n    ")
		b.WriteString(styles.URL.Render(r.resource.URL))
		if len(r.resource.Sections) > 0 {
			b.WriteString("  ")
			b.WriteString(styles.Tag.Render("[" + strings.Join(r.resource.Sections, "] [") + "]"))
		}
		b.WriteString("\n")
	}

	if end < len(m.rows) {
		b.WriteString(styles.Dim.Render(fmt.Sprintf("  … %d more on this page", len(m.rows)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFooter() string {
	prev := styles.Dim.Render("← prev")
	if m.pageData.HasPrevious {
		prev = styles.Status.Render("← prev")
	}
	next := styles.Dim.Render("next →")
	if m.pageData.HasMore {
		next = styles.Status.Render("next →")
	}

	paging := fmt.Sprintf("%s · page %d · %s", prev, m.page, next)
	help := styles.Dim.Render("tab categories · ctrl+t mode · ctrl+g tag · enter open · ctrl+y copy · ctrl+r refresh · esc clear")
	return paging + "\n" + help
}
