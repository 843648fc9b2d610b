package extract

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	ledongthucpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

// rowTolerance is the maximum baseline difference, in points, for two
// glyphs to be considered part of the same text row.
const rowTolerance = 0.5

// PDFBackend is the primary extraction backend. It reads positioned text
// from the PDF content stream, yielding spans with font name and size.
//
// The reference file is validated with pdfcpu before extraction so that
// malformed input fails early with a clear error instead of surfacing as
// a parse panic deep inside text extraction.
type PDFBackend struct{}

// NewPDFBackend creates the primary PDF extraction backend.
func NewPDFBackend() *PDFBackend {
	return &PDFBackend{}
}

// Name implements Backend.
func (b *PDFBackend) Name() string { return "pdf" }

// Available implements Backend. The PDF backend is pure Go and always
// available.
func (b *PDFBackend) Available() bool { return true }

// ExtractSpans implements Backend.
func (b *PDFBackend) ExtractSpans(src Source, pageIndex int) (model.PageData, error) {
	if err := src.stat(); err != nil {
		return model.PageData{}, err
	}
	if pageIndex < 0 {
		return model.PageData{}, fmt.Errorf("page index must not be negative, got %d", pageIndex)
	}

	reader, pageCount, closeFn, err := b.open(src)
	if err != nil {
		return model.PageData{}, err
	}
	defer closeFn()

	if pageIndex >= pageCount {
		return model.PageData{}, fmt.Errorf("page index %d out of range, document has %d page(s)", pageIndex, pageCount)
	}

	page := reader.Page(pageIndex + 1) // ledongthuc pages are 1-based
	if page.V.IsNull() {
		return model.PageData{}, fmt.Errorf("page %d could not be loaded", pageIndex)
	}

	width, height := pageSize(page)
	spans := mergeGlyphs(page.Content().Text, height)
	return model.PageData{Width: width, Height: height, Spans: spans}, nil
}

// open validates the source and returns a reader, the page count, and
// a close function releasing the underlying file handle. The caller
// must invoke the close function once the page content has been read.
func (b *PDFBackend) open(src Source) (*ledongthucpdf.Reader, int, func() error, error) {
	if src.IsFile() {
		if err := api.ValidateFile(src.Path(), nil); err != nil {
			return nil, 0, nil, fmt.Errorf("invalid reference PDF %s: %w", src.Path(), err)
		}
		count, err := api.PageCountFile(src.Path())
		if err != nil {
			return nil, 0, nil, fmt.Errorf("reading page count of %s: %w", src.Path(), err)
		}
		f, reader, err := ledongthucpdf.Open(src.Path())
		if err != nil {
			return nil, 0, nil, fmt.Errorf("opening reference PDF %s: %w", src.Path(), err)
		}
		return reader, count, f.Close, nil
	}

	data := src.Bytes()
	count, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("invalid reference PDF buffer: %w", err)
	}
	reader, err := ledongthucpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, 0, nil, fmt.Errorf("opening reference PDF buffer: %w", err)
	}
	return reader, count, func() error { return nil }, nil
}

// pageSize resolves the page dimensions from the MediaBox, walking up the
// page tree when the entry is inherited.
func pageSize(p ledongthucpdf.Page) (width, height float64) {
	v := p.V
	for !v.IsNull() {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			w := mb.Index(2).Float64() - mb.Index(0).Float64()
			h := mb.Index(3).Float64() - mb.Index(1).Float64()
			if w > 0 && h > 0 {
				return w, h
			}
		}
		v = v.Key("Parent")
	}
	// A4 when the page tree omits MediaBox entirely
	return 595.28, 841.89
}

// glyph is one positioned text chunk from the content stream, in PDF
// bottom-origin coordinates.
type glyph struct {
	text string
	font string
	size float64
	x    float64
	y    float64
	w    float64
}

// mergeGlyphs groups the per-glyph text chunks emitted by the content
// stream into spans: runs on the same baseline with the same font and
// size, broken where the horizontal gap exceeds one em. Coordinates are
// converted to top-origin; the vertical extent is approximated as one
// font size above the baseline, which is close enough for band
// assignment and header detection.
func mergeGlyphs(texts []ledongthucpdf.Text, pageHeight float64) []model.TextSpan {
	glyphs := make([]glyph, 0, len(texts))
	for _, t := range texts {
		glyphs = append(glyphs, glyph{
			text: t.S,
			font: t.Font,
			size: t.FontSize,
			x:    t.X,
			y:    t.Y,
			w:    t.W,
		})
	}

	// top-to-bottom (descending PDF Y), then left-to-right
	sort.SliceStable(glyphs, func(i, j int) bool {
		if math.Abs(glyphs[i].y-glyphs[j].y) > rowTolerance {
			return glyphs[i].y > glyphs[j].y
		}
		return glyphs[i].x < glyphs[j].x
	})

	var spans []model.TextSpan
	var cur *glyph
	var buf strings.Builder
	lineNo := -1
	spanNo := 0
	prevY := math.Inf(1)

	flush := func() {
		if cur == nil {
			return
		}
		text := strings.TrimSpace(buf.String())
		if text != "" {
			baseline := pageHeight - cur.y
			spans = append(spans, model.TextSpan{
				Text:   text,
				Font:   cur.font,
				Size:   cur.size,
				BBox:   model.NewBBox(cur.x, baseline-cur.size, cur.x+cur.w, baseline),
				LineNo: lineNo,
				SpanNo: spanNo,
			})
			spanNo++
		}
		cur = nil
		buf.Reset()
	}

	for i := range glyphs {
		g := glyphs[i]
		newRow := math.Abs(g.y-prevY) > rowTolerance
		if newRow {
			flush()
			lineNo++
			spanNo = 0
			prevY = g.y
		}
		if cur != nil {
			gap := g.x - (cur.x + cur.w)
			sameRun := g.font == cur.font && g.size == cur.size && gap <= cur.size
			if !sameRun {
				flush()
			}
		}
		if cur == nil {
			start := g
			cur = &start
			buf.WriteString(g.text)
			continue
		}
		buf.WriteString(g.text)
		cur.w = (g.x + g.w) - cur.x
		if g.size > cur.size {
			cur.size = g.size
		}
	}
	flush()

	return spans
}
