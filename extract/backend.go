package extract

import (
	"strings"

	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

// Backend extracts the text spans of a single page from a reference
// source. Implementations differ in capability: the PDF backend reports
// font metadata per span, the OCR backend reports bounding boxes only.
type Backend interface {
	// Name returns a short identifier for diagnostics ("pdf", "ocr").
	Name() string

	// Available reports whether the backend can run in this environment.
	// The result is expected to be probed once at startup.
	Available() bool

	// ExtractSpans returns the page dimensions and the ordered non-empty
	// text spans of the page at pageIndex (0-based). An empty page yields
	// zero spans, not an error.
	ExtractSpans(src Source, pageIndex int) (model.PageData, error)
}

// Probe returns the first available backend from the given list, in
// order. With no arguments it probes the default backends: PDF first,
// then OCR. A ConfigurationError is returned when none is available.
func Probe(backends ...Backend) (Backend, error) {
	if len(backends) == 0 {
		backends = []Backend{NewPDFBackend(), NewOCRBackend()}
	}
	names := make([]string, 0, len(backends))
	for _, b := range backends {
		if b.Available() {
			return b, nil
		}
		names = append(names, b.Name())
	}
	return nil, &ConfigurationError{
		Reason: "no extraction backend available (probed: " + strings.Join(names, ", ") + ")",
	}
}
