package render

import "math"

// overflowCompensation counteracts the conservatism of the closed-form
// height estimate when scaling down to fit.
const overflowCompensation = 1.1

// EstimateHeight estimates the vertical space a text block occupies:
// ceil(len(text) / charsPerLine) * leading, with charsPerLine derived
// from the content width and an average glyph width.
//
// This is a deliberate approximation, not glyph shaping: it ignores word
// boundaries, kerning, and per-character widths. The adaptive fit
// compensates for its conservatism with a fixed correction factor.
func EstimateHeight(text string, contentWidth, avgGlyphWidth, leading float64) float64 {
	if text == "" {
		return leading
	}
	if contentWidth <= 0 || avgGlyphWidth <= 0 {
		return leading
	}
	charsPerLine := contentWidth / avgGlyphWidth
	if charsPerLine < 1 {
		charsPerLine = 1
	}
	lines := math.Ceil(float64(len(text)) / charsPerLine)
	if lines < 1 {
		lines = 1
	}
	return lines * leading
}

// EstimateBlocks sums the estimated heights of all blocks. Spacers
// contribute their fixed height.
func EstimateBlocks(blocks []Block, contentWidth, avgGlyphWidth, leading float64) float64 {
	total := 0.0
	for _, b := range blocks {
		if b.Kind == BlockSpacer {
			total += spacerHeight
			continue
		}
		total += EstimateHeight(b.Text, contentWidth, avgGlyphWidth, leading)
	}
	return total
}

// ComputeScale returns the uniform scale factor for the given estimated
// content height and available page height: 1 when the content fits,
// available/estimated otherwise. Monotonic: more content never yields a
// larger scale.
func ComputeScale(estimated, available float64) float64 {
	if estimated <= available || estimated <= 0 {
		return 1
	}
	return available / estimated
}

// ScaledFont applies the single-shot linear correction to the base font
// size: base * scale * 1.1, clamped to the minimum floor. The correction
// factor compensates for the height estimate's conservatism; extreme
// overflow can therefore still exceed one page, a trade-off accepted in
// exchange for determinism and O(blocks) cost.
func ScaledFont(base, scale, floor float64) float64 {
	if scale >= 1 {
		return base
	}
	return math.Max(floor, base*scale*overflowCompensation)
}
