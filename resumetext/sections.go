package resumetext

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// sectionKeywords are the headings recognized as section boundaries,
// matched case-insensitively on their own line.
var sectionKeywords = []string{
	"summary", "profile",
	"experience", "work experience", "professional experience",
	"education",
	"skills", "technical skills",
	"projects", "certifications", "achievements", "publications",
	"languages", "internship",
}

var (
	headingLineRe = regexp.MustCompile(
		`(?i)^\s*(` + strings.Join(quoteAll(sectionKeywords), "|") + `)\s*:?\s*$`)
	innerSpaceRe = regexp.MustCompile(`\s+`)

	titleCaser = cases.Title(language.English)
)

func quoteAll(words []string) []string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return quoted
}

// Section is one mined resume section: a recognized heading and its
// cleaned body text.
type Section struct {
	Heading string
	Body    string
}

// Sections splits resume text at recognized headings, in document
// order. Text with no recognized heading comes back as a single
// "Full Text" section; empty input yields nil.
func Sections(text string) []Section {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(text, "\n")

	type headingPos struct {
		line    int
		heading string
	}
	var positions []headingPos
	for i, line := range lines {
		if m := headingLineRe.FindStringSubmatch(line); m != nil {
			positions = append(positions, headingPos{line: i, heading: titleCaser.String(strings.TrimSpace(m[1]))})
		}
	}

	if len(positions) == 0 {
		return []Section{{Heading: "Full Text", Body: strings.Join(lines, "\n")}}
	}

	var sections []Section
	for idx, pos := range positions {
		end := len(lines)
		if idx+1 < len(positions) {
			end = positions[idx+1].line
		}
		body := cleanBody(lines[pos.line+1 : end])
		if body == "" {
			continue
		}
		sections = append(sections, Section{Heading: pos.heading, Body: body})
	}
	return sections
}

// cleanBody normalizes section body lines: inner whitespace collapses
// to single spaces and runs of blank lines collapse to one.
func cleanBody(lines []string) string {
	var cleaned []string
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			if len(cleaned) > 0 && cleaned[len(cleaned)-1] != "" {
				cleaned = append(cleaned, "")
			}
			continue
		}
		cleaned = append(cleaned, innerSpaceRe.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
