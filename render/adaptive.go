package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

// AdaptiveRenderer lays out blocks into one page, shrinking typography
// with a single-shot linear correction when the estimated content height
// exceeds the page. It never panics outward: internal construction
// failures surface as RenderError so the fallback chain can degrade.
type AdaptiveRenderer struct{}

// NewAdaptiveRenderer creates the template-aware adaptive renderer.
func NewAdaptiveRenderer() *AdaptiveRenderer {
	return &AdaptiveRenderer{}
}

// RenderDocument renders a mapped document with the given style.
func (r *AdaptiveRenderer) RenderDocument(doc *model.MappedDocument, style model.RenderStyle) (model.RenderedPage, error) {
	return r.RenderBlocks(BlocksFromDocument(doc), style)
}

// RenderBlocks renders pre-built layout blocks with the given style.
func (r *AdaptiveRenderer) RenderBlocks(blocks []Block, style model.RenderStyle) (page model.RenderedPage, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &RenderError{Tier: "adaptive", Reason: "layout panic", Err: fmt.Errorf("%v", p)}
		}
	}()

	if !hasText(blocks) {
		return model.RenderedPage{}, &RenderError{Tier: "adaptive", Reason: "no renderable content"}
	}

	m := style.Margins
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(false, m.Bottom)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	contentWidth := pageWidth - m.Left - m.Right
	available := pageHeight - m.Top - m.Bottom

	pdf.SetFont(style.FontFamily, "", style.BaseSize)
	avgGlyphWidth := pdf.GetStringWidth("M")

	estimated := EstimateBlocks(blocks, contentWidth, avgGlyphWidth, style.Leading)
	scale := ComputeScale(estimated, available)
	size := ScaledFont(style.BaseSize, scale, style.MinFontSize)
	leading := style.Leading * size / style.BaseSize

	textR, textG, textB := hexColor(style.TextColor)
	headR, headG, headB := hexColor(style.HeadingColor)

	for _, block := range blocks {
		switch block.Kind {
		case BlockHeading:
			pdf.Ln(leading / 2)
			pdf.SetTextColor(headR, headG, headB)
			pdf.SetFont(style.FontFamily, "B", size+1)
			pdf.MultiCell(0, leading+2, block.Text, "", "L", false)
		case BlockListItem:
			pdf.SetTextColor(textR, textG, textB)
			pdf.SetFont(style.FontFamily, "", size)
			pdf.SetX(m.Left + size)
			pdf.MultiCell(contentWidth-size, leading, "• "+block.Text, "", "L", false)
		case BlockBody:
			pdf.SetTextColor(textR, textG, textB)
			pdf.SetFont(style.FontFamily, "", size)
			pdf.MultiCell(0, leading, block.Text, "", "L", false)
		case BlockSpacer:
			pdf.Ln(spacerHeight)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return model.RenderedPage{}, &RenderError{Tier: "adaptive", Reason: "writing page", Err: err}
	}
	return model.RenderedPage{Bytes: buf.Bytes(), Tier: model.TierTemplate}, nil
}

// hexColor parses a "#RRGGBB" color; malformed input yields black.
func hexColor(s string) (r, g, b int) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
