package model

// RenderStyle holds the typographic parameters resolved for a single
// render call, either from a Template's style configuration or from
// defaults.
type RenderStyle struct {
	// FontFamily is a core PDF font family (Helvetica, Times, Courier).
	FontFamily string

	// BaseSize is the body font size in points before adaptive scaling.
	BaseSize float64

	// Leading is the line height in points.
	Leading float64

	// TextColor and HeadingColor are hex colors like "#1A1A1A".
	TextColor    string
	HeadingColor string

	Margins Margins

	// MinFontSize is the floor below which adaptive scaling never goes,
	// regardless of overflow severity.
	MinFontSize float64
}

// DefaultRenderStyle returns the style used when a template carries no
// style configuration.
func DefaultRenderStyle() RenderStyle {
	return RenderStyle{
		FontFamily:   "Helvetica",
		BaseSize:     11,
		Leading:      15,
		TextColor:    "#1A1A1A",
		HeadingColor: "#0A66C2",
		Margins:      Margins{Top: 50, Left: 50, Right: 50, Bottom: 50},
		MinFontSize:  8,
	}
}

// ResolveStyle merges a template's style configuration over the default
// render style. A nil config yields the defaults unchanged.
func ResolveStyle(cfg *StyleConfig) RenderStyle {
	style := DefaultRenderStyle()
	if cfg == nil {
		return style
	}
	if cfg.FontFamily != "" {
		style.FontFamily = cfg.FontFamily
	}
	if cfg.FontSize > 0 {
		style.BaseSize = cfg.FontSize
		style.Leading = cfg.FontSize + 4
	}
	if cfg.TextColor != "" {
		style.TextColor = cfg.TextColor
	}
	if cfg.HeadingColor != "" {
		style.HeadingColor = cfg.HeadingColor
	}
	if cfg.Margins != nil {
		style.Margins = *cfg.Margins
	}
	return style
}

// Tier identifies which fallback tier produced a rendered page.
type Tier int

const (
	// TierTemplate is the template-aware adaptive renderer.
	TierTemplate Tier = iota + 1

	// TierHeuristic is the single-column heuristic renderer.
	TierHeuristic

	// TierMinimal is the fixed-font minimal paginator.
	TierMinimal
)

func (t Tier) String() string {
	switch t {
	case TierTemplate:
		return "template"
	case TierHeuristic:
		return "heuristic"
	case TierMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// RenderedPage is the terminal artifact of a render call: a finished
// single-page document. Ownership of the byte slice transfers to the
// caller. Tier records which fallback tier produced the output, for
// diagnostics.
type RenderedPage struct {
	Bytes []byte
	Tier  Tier
}
