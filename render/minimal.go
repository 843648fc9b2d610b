package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

// Fixed typography of the minimal tier: monospaced, one size, one
// leading, manual placement.
const (
	minimalFontSize = 10
	minimalLeading  = 12
	minimalMargin   = 50
)

// MinimalRenderer is the last fallback tier: a fixed monospaced font and
// manual line-by-line placement. It accepts any input — empty strings,
// whitespace, strings without newlines, arbitrarily long strings — and
// always returns a non-empty byte stream. Content that overflows the
// page is truncated rather than failing; only I/O-level write errors
// propagate to the caller.
type MinimalRenderer struct{}

// NewMinimalRenderer creates the minimal paginator.
func NewMinimalRenderer() *MinimalRenderer {
	return &MinimalRenderer{}
}

// Render places the text line by line until the page is full.
func (r *MinimalRenderer) Render(text string) (model.RenderedPage, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(minimalMargin, minimalMargin, minimalMargin)
	pdf.SetAutoPageBreak(false, minimalMargin)
	pdf.AddPage()
	pdf.SetFont("Courier", "", minimalFontSize)
	pdf.SetTextColor(0, 0, 0)

	pageWidth, pageHeight := pdf.GetPageSize()
	contentWidth := pageWidth - 2*minimalMargin
	limit := pageHeight - minimalMargin

	// Courier is fixed-pitch, so one measurement covers every glyph.
	glyphWidth := pdf.GetStringWidth("M")
	charsPerLine := 1
	if glyphWidth > 0 {
		if n := int(contentWidth / glyphWidth); n > 0 {
			charsPerLine = n
		}
	}

	y := float64(minimalMargin) + minimalLeading
placement:
	for _, line := range strings.Split(text, "\n") {
		for _, chunk := range wrapFixed(line, charsPerLine) {
			if y > limit {
				break placement // page full: truncate, never fail
			}
			if chunk != "" {
				pdf.Text(minimalMargin, y, chunk)
			}
			y += minimalLeading
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return model.RenderedPage{}, fmt.Errorf("minimal renderer: writing page: %w", err)
	}
	return model.RenderedPage{Bytes: buf.Bytes(), Tier: model.TierMinimal}, nil
}

// wrapFixed splits a line into chunks of at most width characters. An
// empty line yields one empty chunk so it still advances the cursor.
func wrapFixed(line string, width int) []string {
	if line == "" {
		return []string{""}
	}
	runes := []rune(line)
	chunks := make([]string, 0, len(runes)/width+1)
	for len(runes) > width {
		chunks = append(chunks, string(runes[:width]))
		runes = runes[width:]
	}
	return append(chunks, string(runes))
}
