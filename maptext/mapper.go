// Package maptext maps arbitrary newline-delimited text onto a layout
// template's section structure.
//
// The mapping is a best-effort textual heuristic with no semantic
// understanding: a line that contains a template section's name
// (case-insensitive substring) opens a new output section named after
// that line. It never fails.
package maptext

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

// DefaultSection is the name of the section that collects lines seen
// before any section heading matches.
const DefaultSection = "Body"

// Mapper maps input text onto a template's sections.
type Mapper struct{}

// NewMapper creates a section mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map produces a MappedDocument from raw input text and a template.
// Blank lines are dropped; the renderer handles height-sensitive
// blank-line preservation on the raw-text path. Section order is the
// first-seen order of matched headings; when a line matches several
// section names the first in template order wins. An empty template
// yields a single "Body" section holding every non-empty line.
//
// A "Body" section that collected no lines is dropped when other
// sections exist, so downstream renderers and exports never see an
// empty leading section.
func (m *Mapper) Map(text string, t *model.Template) *model.MappedDocument {
	var names []string
	if t != nil {
		names = t.SectionNames()
	}
	folded := make([]string, len(names))
	for i, name := range names {
		folded[i] = foldLine(name)
	}

	doc := &model.MappedDocument{}
	doc.Sections = append(doc.Sections, model.MappedSection{Name: DefaultSection})
	current := 0

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if matchesSection(foldLine(line), folded) {
			doc.Sections = append(doc.Sections, model.MappedSection{Name: line})
			current = len(doc.Sections) - 1
			continue
		}
		doc.Sections[current].Lines = append(doc.Sections[current].Lines, line)
	}

	// Drop the default section when nothing landed in it.
	if len(doc.Sections[0].Lines) == 0 && len(doc.Sections) > 1 {
		doc.Sections = doc.Sections[1:]
	}
	if t != nil {
		doc.TemplateName = templateName(t)
	}
	return doc
}

// matchesSection reports whether the folded line contains any template
// section name, checked in template order (first match wins).
func matchesSection(foldedLine string, foldedNames []string) bool {
	for _, name := range foldedNames {
		if name == "" {
			continue
		}
		if strings.Contains(foldedLine, name) {
			return true
		}
	}
	return false
}

// foldLine normalizes a line for comparison: NFC form, lower case.
func foldLine(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// templateName derives a stable identifier for diagnostics from the
// template's section structure.
func templateName(t *model.Template) string {
	names := t.SectionNames()
	if len(names) == 0 {
		return "untitled"
	}
	return strings.ToLower(strings.Join(names, "-"))
}
