package maptext

import (
	"strings"
	"testing"

	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

func templateWithSections(names ...string) *model.Template {
	t := &model.Template{}
	for _, name := range names {
		t.Sections = append(t.Sections, model.Section{Name: name})
	}
	return t
}

func sectionNames(doc *model.MappedDocument) []string {
	names := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		names = append(names, s.Name)
	}
	return names
}

// Template sections Header/Experience/Skills against a small resume:
// the name line lands in Body, the matching lines open their sections.
func TestMapResume(t *testing.T) {
	tmpl := templateWithSections("Header", "Experience", "Skills")
	input := "John Doe\nExperience\n- Built X\nSkills\nPython, SQL"

	doc := NewMapper().Map(input, tmpl)

	want := []string{"Body", "Experience", "Skills"}
	got := sectionNames(doc)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("section order = %v, want %v", got, want)
	}

	wantLines := map[string][]string{
		"Body":       {"John Doe"},
		"Experience": {"- Built X"},
		"Skills":     {"Python, SQL"},
	}
	for name, lines := range wantLines {
		sec := doc.Section(name)
		if sec == nil {
			t.Fatalf("section %q missing", name)
		}
		if strings.Join(sec.Lines, "|") != strings.Join(lines, "|") {
			t.Errorf("section %q lines = %v, want %v", name, sec.Lines, lines)
		}
	}
}

func TestMapEmptyTemplate(t *testing.T) {
	doc := NewMapper().Map("line one\nline two", &model.Template{})
	if len(doc.Sections) != 1 || doc.Sections[0].Name != DefaultSection {
		t.Fatalf("sections = %v, want single %q", sectionNames(doc), DefaultSection)
	}
	if len(doc.Sections[0].Lines) != 2 {
		t.Errorf("Body lines = %v, want both input lines", doc.Sections[0].Lines)
	}
}

func TestMapNilTemplate(t *testing.T) {
	doc := NewMapper().Map("only line", nil)
	if len(doc.Sections) != 1 || doc.Sections[0].Lines[0] != "only line" {
		t.Errorf("nil template mapping = %+v, want single Body section", doc)
	}
}

func TestMapDropsBlankLines(t *testing.T) {
	doc := NewMapper().Map("a\n\n  \n\nb", &model.Template{})
	if len(doc.Sections[0].Lines) != 2 {
		t.Errorf("lines = %v, want blank lines dropped", doc.Sections[0].Lines)
	}
}

func TestMapCaseInsensitiveSubstring(t *testing.T) {
	tmpl := templateWithSections("Experience")
	doc := NewMapper().Map("WORK EXPERIENCE AND MORE\ndid things", tmpl)

	// The matched line becomes the section name verbatim.
	if len(doc.Sections) != 1 || doc.Sections[0].Name != "WORK EXPERIENCE AND MORE" {
		t.Fatalf("sections = %v, want the matching line verbatim", sectionNames(doc))
	}
	if len(doc.Sections[0].Lines) != 1 || doc.Sections[0].Lines[0] != "did things" {
		t.Errorf("lines = %v, want [did things]", doc.Sections[0].Lines)
	}
}

func TestMapEmptyBodyDropped(t *testing.T) {
	tmpl := templateWithSections("Skills")
	doc := NewMapper().Map("Skills\nGo", tmpl)
	if len(doc.Sections) != 1 || doc.Sections[0].Name != "Skills" {
		t.Errorf("sections = %v, want only Skills", sectionNames(doc))
	}
}

func TestMapEmptyInput(t *testing.T) {
	doc := NewMapper().Map("", templateWithSections("Skills"))
	if len(doc.Sections) != 1 || doc.Sections[0].Name != DefaultSection || len(doc.Sections[0].Lines) != 0 {
		t.Errorf("empty input mapping = %+v, want empty Body only", doc)
	}
}

func TestMapCarriageReturns(t *testing.T) {
	doc := NewMapper().Map("a\r\nb\r\n", &model.Template{})
	lines := doc.Sections[0].Lines
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Errorf("lines = %v, want CR stripped", lines)
	}
}

func TestTemplateName(t *testing.T) {
	if got := templateName(&model.Template{}); got != "untitled" {
		t.Errorf("templateName(empty) = %q, want untitled", got)
	}
	tmpl := templateWithSections("General", "Skills")
	if got := templateName(tmpl); got != "general-skills" {
		t.Errorf("templateName = %q, want general-skills", got)
	}
}
