// Package enhancer provides a fluent API for rebuilding resumes onto
// the layout of a reference PDF.
//
// Basic usage:
//
//	page, err := enhancer.Render(resumeText,
//	    enhancer.WithReferenceFile("reference.pdf"))
//	if err != nil {
//	    // handle error
//	}
//	os.WriteFile("out.pdf", page.Bytes, 0644)
//
// Extracting and storing a layout template:
//
//	tmpl, err := enhancer.OpenReference("reference.pdf").Template()
//	if err != nil {
//	    // handle error
//	}
//	err = enhancer.OpenReference("reference.pdf").SaveTemplate("layout.json")
//
// Rendering falls through a fixed chain of tiers: a template-aware
// adaptive layout, a single-column heuristic layout, and a minimal
// monospaced layout that accepts any input. A render call therefore
// always produces a page unless output encoding itself fails.
//
// For advanced use cases, the lower-level extract, template, maptext,
// and render packages are also available.
package enhancer

import (
	"github.com/talhaazmatmeo/ai-resume-enhancer/extract"
	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
	"github.com/talhaazmatmeo/ai-resume-enhancer/render"
	"github.com/talhaazmatmeo/ai-resume-enhancer/template"
)

// Re-exported result and error types, so common flows need only this
// package.
type (
	// Template is a reusable layout description of a reference page.
	Template = model.Template

	// RenderedPage is a finished single-page PDF with the producing tier.
	RenderedPage = model.RenderedPage

	// NotFoundError reports a missing reference file.
	NotFoundError = extract.NotFoundError

	// ConfigurationError reports that no extraction backend is usable.
	ConfigurationError = extract.ConfigurationError

	// FormatError reports an invalid stored template.
	FormatError = template.FormatError

	// RenderError reports an internal failure of a single render tier.
	RenderError = render.RenderError
)

// Fallback tiers, as reported in RenderedPage.Tier.
const (
	TierTemplate  = model.TierTemplate
	TierHeuristic = model.TierHeuristic
	TierMinimal   = model.TierMinimal
)

// Reference is a fluent handle on a reference page. Configure it with
// chainable methods, then call a terminal operation such as Template,
// SaveTemplate, or PageData.
type Reference struct {
	source  extract.Source
	page    int
	backend extract.Backend
	config  template.Config
}

// OpenReference opens a reference PDF file for template extraction.
func OpenReference(path string) *Reference {
	return &Reference{
		source: extract.FromFile(path),
		config: template.DefaultConfig(),
	}
}

// FromReferenceBytes uses an in-memory PDF buffer as the reference.
func FromReferenceBytes(data []byte) *Reference {
	return &Reference{
		source: extract.FromBytes(data),
		config: template.DefaultConfig(),
	}
}

// Page selects the reference page, 0-based. The default is the first
// page.
func (r *Reference) Page(index int) *Reference {
	r.page = index
	return r
}

// Zones overrides the number of horizontal layout bands.
func (r *Reference) Zones(n int) *Reference {
	r.config.NumZones = n
	return r
}

// HeaderBand overrides the fraction of the page height treated as the
// header band.
func (r *Reference) HeaderBand(ratio float64) *Reference {
	r.config.HeaderBandRatio = ratio
	return r
}

// Backend overrides the extraction backend. The default probes the PDF
// backend first, then OCR.
func (r *Reference) Backend(b extract.Backend) *Reference {
	r.backend = b
	return r
}

func (r *Reference) resolveBackend() (extract.Backend, error) {
	if r.backend != nil {
		return r.backend, nil
	}
	return extract.Probe()
}

// PageData extracts the positioned text spans of the reference page.
func (r *Reference) PageData() (model.PageData, error) {
	backend, err := r.resolveBackend()
	if err != nil {
		return model.PageData{}, err
	}
	return backend.ExtractSpans(r.source, r.page)
}

// Template extracts the reference page and derives its layout template.
func (r *Reference) Template() (*Template, error) {
	page, err := r.PageData()
	if err != nil {
		return nil, err
	}
	return template.NewBuilderWithConfig(r.config).Build(page), nil
}

// SaveTemplate derives the layout template and writes it to path as
// JSON.
func (r *Reference) SaveTemplate(path string) error {
	tmpl, err := r.Template()
	if err != nil {
		return err
	}
	return template.NewStore().SaveFile(tmpl, path)
}

// LoadTemplate reads a stored layout template from path.
func LoadTemplate(path string) (*Template, error) {
	return template.NewStore().LoadFile(path)
}

// Render lays the text out as a single-page PDF, falling through the
// render tiers until one succeeds.
func Render(text string, opts ...RenderOption) (RenderedPage, error) {
	cfg := renderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	backend := cfg.backend
	if backend == nil && cfg.request.Reference != nil {
		probed, err := extract.Probe()
		if err != nil {
			return RenderedPage{}, err
		}
		backend = probed
	}

	req := cfg.request
	req.Text = text
	return render.NewChain(backend).Render(req)
}

// Must panics when err is non-nil, for scripts and tests where error
// handling would be cumbersome.
//
// Example:
//
//	tmpl := enhancer.Must(enhancer.OpenReference("reference.pdf").Template())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
