package parser

import (
	"slices"
	"strings"
)

// Resource is one discovered link entry.
type Resource struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	URL               string   `json:"url"`
	Sections          []string `json:"sections"`
	SearchableContent string   `json:"searchableContent"`
	ParentSection     string   `json:"parentSection,omitempty"`
	IsSubSection      bool     `json:"isSubSection,omitempty"`
}

// HasSection reports whether the resource is filed under name,
// compared case-insensitively.
func (r *Resource) HasSection(name string) bool {
	for _, s := range r.Sections {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// KeyPolicy selects the identity rule used to deduplicate entries
// within a single parse pass.
type KeyPolicy string

const (
	// KeyByURL collapses same-link entries with differing incidental
	// descriptions into one record, accumulating sections.
	KeyByURL KeyPolicy = "url"
	// KeyByURLAndDescription keeps entries with distinct descriptions
	// separate; MergeByURL folds them back together for presentation.
	KeyByURLAndDescription KeyPolicy = "url_desc"
)

// Options control parse behavior.
type Options struct {
	// KeyPolicy defaults to KeyByURL when empty.
	KeyPolicy KeyPolicy
	// MergeLookahead folds a following plain line into the description
	// ("{description} - {nextLine}") and skips it. Off by default.
	MergeLookahead bool
}

// Document is the parsed form of one fetch of the source markdown.
type Document struct {
	Resources  []*Resource `json:"resources"`
	Categories []Category  `json:"categories"`
}

// Parse scans the document text in a single forward pass and produces the
// deduplicated resource list (in first-insertion order) plus the category
// tree. Parsing never fails: lines that match no known pattern are
// skipped, and a malformed document yields empty collections.
func Parse(text string, opts Options) *Document {
	if opts.KeyPolicy == "" {
		opts.KeyPolicy = KeyByURL
	}

	lines := strings.Split(text, "\n")

	var (
		currentSection    string
		currentSubSection string
	)
	byKey := make(map[string]*Resource)
	var ordered []*Resource

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		switch ClassifyLine(line) {
		case KindContentsMarker:
			// Contents contributes no resources.
			currentSection = ""
			currentSubSection = ""
			continue
		case KindSectionHeading:
			section := headingText(line)
			if section == contributeHeading {
				currentSection = ""
				currentSubSection = ""
				continue
			}
			currentSection = section
			currentSubSection = ""
			continue
		case KindSubSectionHeading:
			currentSubSection = subHeadingText(line)
			continue
		case KindListItem:
			// Falls through to extraction below.
		default:
			continue
		}

		if currentSection == "" && currentSubSection == "" {
			continue
		}

		item, ok := ExtractListItem(line)
		if !ok || item.URL == "" {
			continue
		}

		description := item.Description()
		if opts.MergeLookahead {
			if next, folded := lookaheadLine(lines, i); folded {
				description = description + " - " + next
				i++
			}
		}

		// Sub-section first; the top-level section, when present, is
		// always the parent regardless of sub-section activity.
		var sections []string
		if currentSubSection != "" {
			sections = append(sections, currentSubSection)
		}
		if currentSection != "" {
			sections = append(sections, currentSection)
		}

		key := item.URL
		if opts.KeyPolicy == KeyByURLAndDescription {
			key = item.URL + "|" + description
		}

		if existing, seen := byKey[key]; seen {
			mergeOccurrence(existing, sections, description)
			continue
		}

		res := &Resource{
			Title:         item.Title,
			Description:   description,
			URL:           item.URL,
			Sections:      sections,
			ParentSection: currentSection,
			IsSubSection:  currentSubSection != "",
		}
		res.SearchableContent = joinNonEmpty(item.Title, description, item.URL, item.ExtraInfo, currentSection, currentSubSection)
		byKey[key] = res
		ordered = append(ordered, res)
	}

	return &Document{
		Resources:  ordered,
		Categories: Categories(text),
	}
}

// lookaheadLine returns the next trimmed line when it is a plain
// continuation (not a heading, sub-heading, or list item, and not blank).
func lookaheadLine(lines []string, i int) (string, bool) {
	if i+1 >= len(lines) {
		return "", false
	}
	next := strings.TrimSpace(lines[i+1])
	if next == "" || ClassifyLine(next) != KindOther {
		return "", false
	}
	return next, true
}

// mergeOccurrence folds a repeated occurrence into an existing resource:
// new sections are unioned in insertion order and appended to the
// searchable content, and a distinct description is pipe-joined.
func mergeOccurrence(existing *Resource, sections []string, description string) {
	for _, s := range sections {
		if slices.Contains(existing.Sections, s) {
			continue
		}
		existing.Sections = append(existing.Sections, s)
		existing.SearchableContent += " " + s
	}
	if description != "" && !slices.Contains(strings.Split(existing.Description, " | "), description) {
		existing.Description += " | " + description
	}
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
