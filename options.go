package enhancer

import (
	"github.com/talhaazmatmeo/ai-resume-enhancer/extract"
	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
	"github.com/talhaazmatmeo/ai-resume-enhancer/render"
)

// renderConfig accumulates the optional inputs of a Render call.
type renderConfig struct {
	request render.Request
	backend extract.Backend
}

// RenderOption configures a Render call.
type RenderOption func(*renderConfig)

// WithTemplate renders onto a pre-built layout template.
func WithTemplate(t *Template) RenderOption {
	return func(c *renderConfig) {
		c.request.Template = t
	}
}

// WithTemplatePath renders onto a layout template stored at path.
func WithTemplatePath(path string) RenderOption {
	return func(c *renderConfig) {
		c.request.TemplatePath = path
	}
}

// WithReferenceFile extracts a fresh layout template from the given
// reference PDF.
func WithReferenceFile(path string) RenderOption {
	return func(c *renderConfig) {
		src := extract.FromFile(path)
		c.request.Reference = &src
	}
}

// WithReferenceBytes extracts a fresh layout template from an in-memory
// reference PDF.
func WithReferenceBytes(data []byte) RenderOption {
	return func(c *renderConfig) {
		src := extract.FromBytes(data)
		c.request.Reference = &src
	}
}

// WithReferencePage selects the reference page, 0-based.
func WithReferencePage(index int) RenderOption {
	return func(c *renderConfig) {
		c.request.PageIndex = index
	}
}

// WithStyle overrides the template-derived typography.
func WithStyle(style model.RenderStyle) RenderOption {
	return func(c *renderConfig) {
		c.request.Style = &style
	}
}

// WithBackend overrides the extraction backend used for reference
// pages, skipping the availability probe.
func WithBackend(b extract.Backend) RenderOption {
	return func(c *renderConfig) {
		c.backend = b
	}
}
