package render

import (
	"errors"
	"fmt"

	"github.com/talhaazmatmeo/ai-resume-enhancer/extract"
	"github.com/talhaazmatmeo/ai-resume-enhancer/maptext"
	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
	"github.com/talhaazmatmeo/ai-resume-enhancer/template"
)

// Request carries the inputs of one render call through the fallback
// chain. Text is required; everything else is optional and only used by
// the tiers that can exploit it.
type Request struct {
	// Text is the raw input text to lay out.
	Text string

	// Template is a pre-built template, highest priority.
	Template *model.Template

	// TemplatePath loads a stored template when Template is nil.
	TemplatePath string

	// Reference extracts a fresh template from a reference page when
	// neither Template nor TemplatePath is set.
	Reference *extract.Source

	// PageIndex selects the reference page (0-based).
	PageIndex int

	// Style overrides the template-derived render style.
	Style *model.RenderStyle
}

// Strategy is one fallback tier: it either produces a page or reports
// failure so the chain can move on. Failure is a return value, not a
// panic; each renderer already confines panics internally.
type Strategy interface {
	Name() string
	Render(req Request) (model.RenderedPage, error)
}

// Chain executes strategies in order and stops at the first success.
// The default chain is template-aware → heuristic → minimal; tier 3
// accepts any input, so only its own I/O-level failure reaches the
// caller.
type Chain struct {
	strategies []Strategy
}

// NewChain creates the default three-tier chain using the given
// extraction backend for the template-aware tier. A nil backend limits
// tier 1 to pre-built or stored templates.
func NewChain(backend extract.Backend) *Chain {
	return &Chain{
		strategies: []Strategy{
			NewTemplateStrategy(backend),
			&heuristicStrategy{renderer: NewHeuristicRenderer()},
			&minimalStrategy{renderer: NewMinimalRenderer()},
		},
	}
}

// NewChainWith creates a chain over an explicit strategy list, in order.
func NewChainWith(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// Render tries each tier in order and returns the first success. The
// returned page's Tier field reports which tier produced it.
func (c *Chain) Render(req Request) (model.RenderedPage, error) {
	var lastErr error
	for _, s := range c.strategies {
		page, err := s.Render(req)
		if err == nil {
			return page, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("render chain has no strategies")
	}
	return model.RenderedPage{}, lastErr
}

// TemplateStrategy is tier 1: extract or load a template, map the text
// onto its sections, and render adaptively with the template-derived
// style.
type TemplateStrategy struct {
	backend  extract.Backend
	builder  *template.Builder
	store    *template.Store
	mapper   *maptext.Mapper
	renderer *AdaptiveRenderer
}

// NewTemplateStrategy creates the template-aware tier. A nil backend
// disables reference-page extraction but leaves stored and pre-built
// templates usable.
func NewTemplateStrategy(backend extract.Backend) *TemplateStrategy {
	return &TemplateStrategy{
		backend:  backend,
		builder:  template.NewBuilder(),
		store:    template.NewStore(),
		mapper:   maptext.NewMapper(),
		renderer: NewAdaptiveRenderer(),
	}
}

// Name implements Strategy.
func (s *TemplateStrategy) Name() string { return "template" }

// Render implements Strategy.
func (s *TemplateStrategy) Render(req Request) (model.RenderedPage, error) {
	tmpl, err := s.resolveTemplate(req)
	if err != nil {
		return model.RenderedPage{}, err
	}

	style := model.ResolveStyle(tmpl.Style)
	if req.Style != nil {
		style = *req.Style
	}

	doc := s.mapper.Map(req.Text, tmpl)
	return s.renderer.RenderDocument(doc, style)
}

func (s *TemplateStrategy) resolveTemplate(req Request) (*model.Template, error) {
	switch {
	case req.Template != nil:
		return req.Template, nil
	case req.TemplatePath != "":
		return s.store.LoadFile(req.TemplatePath)
	case req.Reference != nil:
		if s.backend == nil {
			return nil, fmt.Errorf("no extraction backend for reference page")
		}
		page, err := s.backend.ExtractSpans(*req.Reference, req.PageIndex)
		if err != nil {
			return nil, err
		}
		return s.builder.Build(page), nil
	default:
		return nil, fmt.Errorf("no template source in request")
	}
}

// heuristicStrategy adapts the tier-2 renderer to the Strategy
// interface.
type heuristicStrategy struct {
	renderer *HeuristicRenderer
}

func (s *heuristicStrategy) Name() string { return "heuristic" }

func (s *heuristicStrategy) Render(req Request) (model.RenderedPage, error) {
	style := model.DefaultRenderStyle()
	if req.Style != nil {
		style = *req.Style
	}
	return s.renderer.Render(req.Text, style)
}

// minimalStrategy adapts the tier-3 renderer to the Strategy interface.
type minimalStrategy struct {
	renderer *MinimalRenderer
}

func (s *minimalStrategy) Name() string { return "minimal" }

func (s *minimalStrategy) Render(req Request) (model.RenderedPage, error) {
	return s.renderer.Render(req.Text)
}
