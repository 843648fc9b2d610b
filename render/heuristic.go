package render

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/jung-kurt/gofpdf"

	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

// Fixed typographic rules of the heuristic tier, in points.
const (
	heuristicTitleSize   = 16
	heuristicHeadingSize = 12
	heuristicBodySize    = 10.5
	heuristicLeading     = 14
)

// HeuristicRenderer is the second fallback tier: a single-column layout
// with no template and no adaptive scaling. The first non-empty line
// becomes the title; later lines are classified as heading, bullet, or
// body by fixed typographic rules.
type HeuristicRenderer struct{}

// NewHeuristicRenderer creates the heuristic single-column renderer.
func NewHeuristicRenderer() *HeuristicRenderer {
	return &HeuristicRenderer{}
}

// Render lays the raw text out as a titled single column.
func (r *HeuristicRenderer) Render(text string, style model.RenderStyle) (page model.RenderedPage, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &RenderError{Tier: "heuristic", Reason: "layout panic", Err: fmt.Errorf("%v", p)}
		}
	}()

	lines := strings.Split(text, "\n")
	title, rest := splitTitle(lines)
	if title == "" {
		return model.RenderedPage{}, &RenderError{Tier: "heuristic", Reason: "no renderable content"}
	}

	m := style.Margins
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(false, m.Bottom)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	headR, headG, headB := hexColor(style.HeadingColor)
	textR, textG, textB := hexColor(style.TextColor)

	// Centered title with a rule underneath.
	pdf.SetTextColor(headR, headG, headB)
	pdf.SetFont(style.FontFamily, "B", heuristicTitleSize)
	pdf.MultiCell(0, heuristicTitleSize+4, title, "", "C", false)
	y := pdf.GetY() + 4
	pdf.SetDrawColor(0xCC, 0xCC, 0xCC)
	pdf.Line(m.Left, y, pageWidth-m.Right, y)
	pdf.SetY(y + 8)

	for _, raw := range rest {
		line := strings.TrimSpace(raw)
		if line == "" {
			pdf.Ln(spacerHeight)
			continue
		}
		switch {
		case strings.HasSuffix(line, ":") || isUpperLine(line):
			pdf.SetTextColor(headR, headG, headB)
			pdf.SetFont(style.FontFamily, "B", heuristicHeadingSize)
			pdf.MultiCell(0, heuristicLeading+1, line, "", "L", false)
		default:
			text, bullet := isBullet(line)
			if bullet {
				text = "• " + text
				pdf.SetX(m.Left + heuristicBodySize)
			}
			pdf.SetTextColor(textR, textG, textB)
			pdf.SetFont(style.FontFamily, "", heuristicBodySize)
			pdf.MultiCell(0, heuristicLeading, text, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return model.RenderedPage{}, &RenderError{Tier: "heuristic", Reason: "writing page", Err: err}
	}
	return model.RenderedPage{Bytes: buf.Bytes(), Tier: model.TierHeuristic}, nil
}

// isUpperLine reports whether the line is entirely upper-case with at
// least one letter.
func isUpperLine(line string) bool {
	return line == strings.ToUpper(line) && strings.IndexFunc(line, unicode.IsLetter) >= 0
}

// splitTitle returns the first non-empty line and the remaining lines.
func splitTitle(lines []string) (string, []string) {
	for i, raw := range lines {
		if line := strings.TrimSpace(raw); line != "" {
			return line, lines[i+1:]
		}
	}
	return "", nil
}
