package template

import (
	"sort"
	"strings"

	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

// DefaultNumZones is the number of equal vertical bands a page is
// divided into.
const DefaultNumZones = 6

// HeadingConfig holds the thresholds of the heading heuristic. A span is
// classified as a heading when its font size exceeds the page median by
// SizeDelta (evaluated only when both sizes are known), or its text ends
// with a colon, or its text is shorter than MaxShortLen characters,
// entirely upper-case, and at most MaxShortWords words.
//
// The heuristic can misclassify short body lines as headings; the
// thresholds are exposed so callers can tune it, but the defaults are
// deliberately kept at the values the engine has always used.
type HeadingConfig struct {
	// SizeDelta is the font size excess over the median, in points,
	// that marks a heading. Default: 1.5.
	SizeDelta float64

	// MaxShortLen is the exclusive character limit for the short
	// all-caps rule. Default: 40.
	MaxShortLen int

	// MaxShortWords is the inclusive word limit for the short all-caps
	// rule. Default: 4.
	MaxShortWords int
}

// DefaultHeadingConfig returns the default heading thresholds.
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		SizeDelta:     1.5,
		MaxShortLen:   40,
		MaxShortWords: 4,
	}
}

// Config holds configuration for the template builder.
type Config struct {
	// NumZones is the number of equal vertical bands. Default: 6.
	NumZones int

	// HeaderBandRatio is the fraction of the page height from the top
	// within which spans count toward the header. Default: 0.15.
	HeaderBandRatio float64

	// Heading holds the heading-detection thresholds.
	Heading HeadingConfig
}

// DefaultConfig returns a configuration with the standard zoning and
// detection parameters.
func DefaultConfig() Config {
	return Config{
		NumZones:        DefaultNumZones,
		HeaderBandRatio: 0.15,
		Heading:         DefaultHeadingConfig(),
	}
}

// Builder derives a layout Template from extracted page data.
type Builder struct {
	config Config
}

// NewBuilder creates a builder with default configuration.
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// NewBuilderWithConfig creates a builder with custom configuration.
// Out-of-range values fall back to the defaults.
func NewBuilderWithConfig(config Config) *Builder {
	if config.NumZones < 1 {
		config.NumZones = DefaultNumZones
	}
	if config.HeaderBandRatio <= 0 || config.HeaderBandRatio >= 1 {
		config.HeaderBandRatio = 0.15
	}
	if config.Heading.SizeDelta <= 0 {
		config.Heading.SizeDelta = 1.5
	}
	if config.Heading.MaxShortLen <= 0 {
		config.Heading.MaxShortLen = 40
	}
	if config.Heading.MaxShortWords <= 0 {
		config.Heading.MaxShortWords = 4
	}
	return &Builder{config: config}
}

// Build derives a Template from page data. It never fails: an empty page
// yields a template with zero zones, a nil header, and no sections.
func (b *Builder) Build(page model.PageData) *model.Template {
	t := &model.Template{
		Geometry: model.PageGeometry{Width: page.Width, Height: page.Height},
		NumSpans: len(page.Spans),
	}
	if len(page.Spans) == 0 {
		return t
	}

	t.Zones = b.zones(page)
	t.Header = b.header(page)
	t.Sections = b.sections(page)
	return t
}

// zones assigns each span to the vertical band its bounding-box center
// falls into and emits one zone per non-empty band. A single linear pass.
func (b *Builder) zones(page model.PageData) []model.Zone {
	n := b.config.NumZones
	bandHeight := page.Height / float64(n)

	members := make([][]model.TextSpan, n)
	for _, span := range page.Spans {
		idx := 0
		if bandHeight > 0 {
			idx = int(span.BBox.Center().Y / bandHeight)
		}
		if idx < 0 {
			idx = 0
		}
		if idx > n-1 {
			idx = n - 1
		}
		members[idx] = append(members[idx], span)
	}

	var zones []model.Zone
	for i, spans := range members {
		if len(spans) == 0 {
			continue
		}
		zones = append(zones, model.Zone{
			Index: i,
			BBox:  spanUnion(spans).Round(2),
			Spans: spans,
		})
	}
	return zones
}

// header collects all spans whose top edge lies within the header band
// at the top of the page. Nil when the band is empty.
func (b *Builder) header(page model.PageData) *model.HeaderRegion {
	threshold := page.Height * b.config.HeaderBandRatio

	var members []model.TextSpan
	for _, span := range sortedByTop(page.Spans) {
		if span.BBox.Y0 <= threshold {
			members = append(members, span)
		}
	}
	if len(members) == 0 {
		return nil
	}
	return &model.HeaderRegion{
		BBox:  spanUnion(members).Round(2),
		Spans: members,
	}
}

// sections walks the spans top to bottom and splits them into named
// sections at heading spans. The stretch before the first heading is
// named "General".
func (b *Builder) sections(page model.PageData) []model.Section {
	sorted := sortedByTop(page.Spans)
	median, hasMedian := medianSize(sorted)

	var sections []model.Section
	current := model.Section{Name: "General"}

	for _, span := range sorted {
		if b.isHeading(span, median, hasMedian) {
			if len(current.Spans) > 0 {
				current.BBox = spanUnion(current.Spans).Round(2)
				sections = append(sections, current)
			}
			current = model.Section{
				Name:  strings.TrimRight(span.Text, ":"),
				Spans: []model.TextSpan{span},
			}
			continue
		}
		current.Spans = append(current.Spans, span)
	}
	if len(current.Spans) > 0 {
		current.BBox = spanUnion(current.Spans).Round(2)
		sections = append(sections, current)
	}
	return sections
}

// isHeading applies the heading heuristic to a single span.
func (b *Builder) isHeading(span model.TextSpan, median float64, hasMedian bool) bool {
	cfg := b.config.Heading
	if span.HasSize() && hasMedian && span.Size >= median+cfg.SizeDelta {
		return true
	}
	text := strings.TrimSpace(span.Text)
	if strings.HasSuffix(text, ":") {
		return true
	}
	if len(text) < cfg.MaxShortLen &&
		text == strings.ToUpper(text) &&
		len(strings.Fields(text)) <= cfg.MaxShortWords {
		return true
	}
	return false
}

// sortedByTop returns the spans ordered top-to-bottom by the top edge of
// their bounding boxes. The input slice is not modified.
func sortedByTop(spans []model.TextSpan) []model.TextSpan {
	out := make([]model.TextSpan, len(spans))
	copy(out, spans)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BBox.Y0 < out[j].BBox.Y0
	})
	return out
}

// medianSize computes the median font size across spans that report one.
// hasMedian is false when no span reports a size.
func medianSize(spans []model.TextSpan) (median float64, hasMedian bool) {
	var sizes []float64
	for _, span := range spans {
		if span.HasSize() {
			sizes = append(sizes, span.Size)
		}
	}
	if len(sizes) == 0 {
		return 0, false
	}
	sort.Float64s(sizes)
	return sizes[len(sizes)/2], true
}

func spanUnion(spans []model.TextSpan) model.BBox {
	boxes := make([]model.BBox, len(spans))
	for i, span := range spans {
		boxes[i] = span.BBox
	}
	return model.UnionAll(boxes)
}
