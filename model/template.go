package model

import "fmt"

// Margins holds page margins in page units.
type Margins struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
}

// PageGeometry describes the physical dimensions of a page.
type PageGeometry struct {
	Width   float64
	Height  float64
	Margins Margins
}

// Validate checks the geometry invariants: positive dimensions and
// margins smaller than half of the corresponding dimension.
func (g PageGeometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("page dimensions must be positive, got %gx%g", g.Width, g.Height)
	}
	if g.Margins.Left >= g.Width/2 || g.Margins.Right >= g.Width/2 {
		return fmt.Errorf("horizontal margins must be less than half the page width (%g)", g.Width/2)
	}
	if g.Margins.Top >= g.Height/2 || g.Margins.Bottom >= g.Height/2 {
		return fmt.Errorf("vertical margins must be less than half the page height (%g)", g.Height/2)
	}
	return nil
}

// TextSpan is a piece of text extracted from a reference page, with its
// bounding box and, when the extraction backend provides it, font
// metadata. Spans are immutable once extracted.
//
// Font is empty and Size is zero when the backend cannot report font
// metadata (for example the OCR backend, which only yields word boxes).
type TextSpan struct {
	Text string
	Font string
	Size float64
	BBox BBox

	// Source indices identifying where the span came from in the
	// extraction backend's block/line/span hierarchy.
	BlockNo int
	LineNo  int
	SpanNo  int
}

// HasSize reports whether the span carries a usable font size.
func (s TextSpan) HasSize() bool {
	return s.Size > 0
}

// PageData is the raw output of a geometry extraction backend: page
// dimensions plus the ordered, non-empty text spans found on the page.
type PageData struct {
	Width  float64
	Height float64
	Spans  []TextSpan
}

// Zone is a horizontal band of the page aggregating nearby text spans.
// Zones partition the page's vertical extent into contiguous bands; a
// span belongs to the zone its bounding-box center falls into.
type Zone struct {
	Index int
	BBox  BBox
	Spans []TextSpan
}

// Section is a named, contiguous group of spans in reading order,
// detected from a reference page. The first section, before any detected
// heading, is named "General".
type Section struct {
	Name  string
	BBox  BBox
	Spans []TextSpan
}

// HeaderRegion is the detected page header: the union of all spans whose
// top edge falls within the header band at the top of the page.
type HeaderRegion struct {
	BBox  BBox
	Spans []TextSpan
}

// StyleConfig is the optional per-template style configuration carried in
// the persisted template and resolved into a RenderStyle at render time.
type StyleConfig struct {
	FontFamily   string
	FontSize     float64
	TextColor    string
	HeadingColor string
	Margins      *Margins
}

// Template is the reusable layout description extracted from a reference
// page: page geometry, zones, optional header, detected sections, and
// optional style configuration. A Template is read-only once stored and
// may be reused across many render calls.
type Template struct {
	Geometry PageGeometry
	NumSpans int
	Zones    []Zone
	Header   *HeaderRegion
	Sections []Section
	Style    *StyleConfig
}

// SectionNames returns the detected section names in template order.
func (t *Template) SectionNames() []string {
	names := make([]string, 0, len(t.Sections))
	for _, s := range t.Sections {
		names = append(names, s.Name)
	}
	return names
}

// MappedSection is one named group of content lines in a MappedDocument.
type MappedSection struct {
	Name  string
	Lines []string
}

// MappedDocument is the result of mapping raw input text onto a
// Template's section structure. Section order is first-seen order of the
// matched headings in the input. A MappedDocument is created fresh per
// render call and discarded after use.
type MappedDocument struct {
	TemplateName string
	Sections     []MappedSection
}

// Section returns the section with the given name, or nil.
func (d *MappedDocument) Section(name string) *MappedSection {
	for i := range d.Sections {
		if d.Sections[i].Name == name {
			return &d.Sections[i]
		}
	}
	return nil
}
