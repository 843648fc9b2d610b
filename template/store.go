package template

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

// FormatVersion is the format identifier written into every persisted
// template. Load rejects files carrying any other identifier.
const FormatVersion = "layout-template/v1"

// FormatError indicates a malformed persisted template: unparseable
// JSON, a missing required field, a type mismatch, or an unknown format
// identifier.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed template: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed template: %s", e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Wire schema. Bounding boxes are serialized as [x0, y0, x1, y1] arrays
// rounded to two decimals; a load of a saved template reconstructs the
// template field-for-field within that rounding.

type templateFile struct {
	Format     string         `json:"format"`
	PageWidth  *float64       `json:"page_width"`
	PageHeight *float64       `json:"page_height"`
	NumBlocks  int            `json:"num_blocks"`
	Zones      []zoneRecord   `json:"zones"`
	Detection  detectionBlock `json:"detection"`
	Style      *styleRecord   `json:"style,omitempty"`
}

type zoneRecord struct {
	ZoneIndex int          `json:"zone_index"`
	BBox      [4]float64   `json:"bbox"`
	Items     []spanRecord `json:"items"`
}

type detectionBlock struct {
	Header   *regionRecord   `json:"header"`
	Sections []sectionRecord `json:"sections"`
}

type regionRecord struct {
	BBox  [4]float64   `json:"bbox"`
	Lines []spanRecord `json:"lines"`
}

type sectionRecord struct {
	Name  string       `json:"name"`
	BBox  [4]float64   `json:"bbox"`
	Lines []spanRecord `json:"lines"`
}

type spanRecord struct {
	Text    string     `json:"text"`
	Font    string     `json:"font,omitempty"`
	Size    float64    `json:"size,omitempty"`
	BBox    [4]float64 `json:"bbox"`
	BlockNo int        `json:"block_no"`
	LineNo  int        `json:"line_no"`
	SpanNo  int        `json:"span_no"`
}

type styleRecord struct {
	Margins     *marginsRecord `json:"margins,omitempty"`
	FontFamily  string         `json:"font_family,omitempty"`
	FontSize    float64        `json:"font_size,omitempty"`
	TextColor   string         `json:"text_color,omitempty"`
	HeaderColor string         `json:"header_color,omitempty"`
}

type marginsRecord struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Store persists templates as versioned JSON. It is pure
// (de)serialization with validation; no layout logic.
type Store struct{}

// NewStore creates a template store.
func NewStore() *Store {
	return &Store{}
}

// Save writes the template to w in the versioned JSON format.
func (s *Store) Save(t *model.Template, w io.Writer) error {
	file := templateFile{
		Format:     FormatVersion,
		PageWidth:  &t.Geometry.Width,
		PageHeight: &t.Geometry.Height,
		NumBlocks:  t.NumSpans,
		Zones:      make([]zoneRecord, 0, len(t.Zones)),
		Detection: detectionBlock{
			Sections: make([]sectionRecord, 0, len(t.Sections)),
		},
	}

	for _, z := range t.Zones {
		file.Zones = append(file.Zones, zoneRecord{
			ZoneIndex: z.Index,
			BBox:      boxToWire(z.BBox),
			Items:     spansToWire(z.Spans),
		})
	}
	if t.Header != nil {
		file.Detection.Header = &regionRecord{
			BBox:  boxToWire(t.Header.BBox),
			Lines: spansToWire(t.Header.Spans),
		}
	}
	for _, sec := range t.Sections {
		file.Detection.Sections = append(file.Detection.Sections, sectionRecord{
			Name:  sec.Name,
			BBox:  boxToWire(sec.BBox),
			Lines: spansToWire(sec.Spans),
		})
	}
	if t.Style != nil {
		file.Style = styleToWire(t.Style)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&file); err != nil {
		return fmt.Errorf("encoding template: %w", err)
	}
	return nil
}

// Load reads a template previously written by Save, validating the
// format identifier and required fields. Malformed input yields a
// FormatError.
func (s *Store) Load(r io.Reader) (*model.Template, error) {
	var file templateFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, &FormatError{Reason: "invalid JSON", Err: err}
	}

	if file.Format != FormatVersion {
		return nil, &FormatError{Reason: fmt.Sprintf("unsupported format %q, want %q", file.Format, FormatVersion)}
	}
	if file.PageWidth == nil || file.PageHeight == nil {
		return nil, &FormatError{Reason: "missing page_width or page_height"}
	}
	if *file.PageWidth <= 0 || *file.PageHeight <= 0 {
		return nil, &FormatError{Reason: fmt.Sprintf("non-positive page dimensions %gx%g", *file.PageWidth, *file.PageHeight)}
	}

	t := &model.Template{
		Geometry: model.PageGeometry{Width: *file.PageWidth, Height: *file.PageHeight},
		NumSpans: file.NumBlocks,
	}
	for _, z := range file.Zones {
		if z.ZoneIndex < 0 {
			return nil, &FormatError{Reason: fmt.Sprintf("negative zone index %d", z.ZoneIndex)}
		}
		t.Zones = append(t.Zones, model.Zone{
			Index: z.ZoneIndex,
			BBox:  boxFromWire(z.BBox),
			Spans: spansFromWire(z.Items),
		})
	}
	if file.Detection.Header != nil {
		t.Header = &model.HeaderRegion{
			BBox:  boxFromWire(file.Detection.Header.BBox),
			Spans: spansFromWire(file.Detection.Header.Lines),
		}
	}
	for _, sec := range file.Detection.Sections {
		if sec.Name == "" {
			return nil, &FormatError{Reason: "section with empty name"}
		}
		t.Sections = append(t.Sections, model.Section{
			Name:  sec.Name,
			BBox:  boxFromWire(sec.BBox),
			Spans: spansFromWire(sec.Lines),
		})
	}
	if file.Style != nil {
		t.Style = styleFromWire(file.Style)
	}
	return t, nil
}

// SaveFile writes the template to a file.
func (s *Store) SaveFile(t *model.Template, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating template file: %w", err)
	}
	defer f.Close()
	return s.Save(t, f)
}

// LoadFile reads a template from a file.
func (s *Store) LoadFile(path string) (*model.Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening template file: %w", err)
	}
	defer f.Close()
	return s.Load(f)
}

func boxToWire(b model.BBox) [4]float64 {
	r := b.Round(2)
	return [4]float64{r.X0, r.Y0, r.X1, r.Y1}
}

func boxFromWire(a [4]float64) model.BBox {
	return model.BBox{X0: a[0], Y0: a[1], X1: a[2], Y1: a[3]}
}

func spansToWire(spans []model.TextSpan) []spanRecord {
	out := make([]spanRecord, 0, len(spans))
	for _, s := range spans {
		out = append(out, spanRecord{
			Text:    s.Text,
			Font:    s.Font,
			Size:    s.Size,
			BBox:    boxToWire(s.BBox),
			BlockNo: s.BlockNo,
			LineNo:  s.LineNo,
			SpanNo:  s.SpanNo,
		})
	}
	return out
}

func spansFromWire(records []spanRecord) []model.TextSpan {
	if len(records) == 0 {
		return nil
	}
	out := make([]model.TextSpan, 0, len(records))
	for _, r := range records {
		out = append(out, model.TextSpan{
			Text:    r.Text,
			Font:    r.Font,
			Size:    r.Size,
			BBox:    boxFromWire(r.BBox),
			BlockNo: r.BlockNo,
			LineNo:  r.LineNo,
			SpanNo:  r.SpanNo,
		})
	}
	return out
}

func styleToWire(cfg *model.StyleConfig) *styleRecord {
	rec := &styleRecord{
		FontFamily:  cfg.FontFamily,
		FontSize:    cfg.FontSize,
		TextColor:   cfg.TextColor,
		HeaderColor: cfg.HeadingColor,
	}
	if cfg.Margins != nil {
		rec.Margins = &marginsRecord{
			Top:    cfg.Margins.Top,
			Left:   cfg.Margins.Left,
			Right:  cfg.Margins.Right,
			Bottom: cfg.Margins.Bottom,
		}
	}
	return rec
}

func styleFromWire(rec *styleRecord) *model.StyleConfig {
	cfg := &model.StyleConfig{
		FontFamily:   rec.FontFamily,
		FontSize:     rec.FontSize,
		TextColor:    rec.TextColor,
		HeadingColor: rec.HeaderColor,
	}
	if rec.Margins != nil {
		cfg.Margins = &model.Margins{
			Top:    rec.Margins.Top,
			Left:   rec.Margins.Left,
			Right:  rec.Margins.Right,
			Bottom: rec.Margins.Bottom,
		}
	}
	return cfg
}
