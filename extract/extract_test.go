package extract

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jung-kurt/gofpdf"
	ledongthucpdf "github.com/ledongthuc/pdf"

	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

// g creates one positioned text chunk in PDF bottom-origin coordinates.
func g(s, font string, size, x, y, w float64) ledongthucpdf.Text {
	return ledongthucpdf.Text{S: s, Font: font, FontSize: size, X: x, Y: y, W: w}
}

func glyphRun(texts ...ledongthucpdf.Text) []ledongthucpdf.Text {
	return texts
}

// fakeBackend is a probe test double with a fixed availability.
type fakeBackend struct {
	name      string
	available bool
}

func (f *fakeBackend) Name() string    { return f.name }
func (f *fakeBackend) Available() bool { return f.available }
func (f *fakeBackend) ExtractSpans(Source, int) (model.PageData, error) {
	return model.PageData{}, nil
}

func TestProbeSelectsFirstAvailable(t *testing.T) {
	first := &fakeBackend{name: "first", available: false}
	second := &fakeBackend{name: "second", available: true}
	third := &fakeBackend{name: "third", available: true}

	got, err := Probe(first, second, third)
	if err != nil {
		t.Fatalf("Probe returned error: %v", err)
	}
	if got.Name() != "second" {
		t.Errorf("Probe selected %q, want %q", got.Name(), "second")
	}
}

func TestProbeNoneAvailable(t *testing.T) {
	_, err := Probe(
		&fakeBackend{name: "a", available: false},
		&fakeBackend{name: "b", available: false},
	)
	if err == nil {
		t.Fatal("Probe returned nil error with no available backend")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Probe error = %T, want *ConfigurationError", err)
	}
}

func TestSourceAccessors(t *testing.T) {
	f := FromFile("/tmp/ref.pdf")
	if !f.IsFile() || f.Path() != "/tmp/ref.pdf" || f.Bytes() != nil {
		t.Errorf("FromFile source malformed: %+v", f)
	}

	b := FromBytes([]byte("%PDF-1.4"))
	if b.IsFile() || b.Path() != "" || string(b.Bytes()) != "%PDF-1.4" {
		t.Errorf("FromBytes source malformed: %+v", b)
	}
}

func TestPDFBackendMissingFile(t *testing.T) {
	backend := NewPDFBackend()
	_, err := backend.ExtractSpans(FromFile("testdata/does-not-exist.pdf"), 0)
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("ExtractSpans error = %T (%v), want *NotFoundError", err, err)
	}
	if nfErr.Path != "testdata/does-not-exist.pdf" {
		t.Errorf("NotFoundError.Path = %q, want the missing path", nfErr.Path)
	}
}

func TestPDFBackendNegativePage(t *testing.T) {
	backend := NewPDFBackend()
	if _, err := backend.ExtractSpans(FromBytes([]byte("%PDF-1.4")), -1); err == nil {
		t.Error("ExtractSpans accepted a negative page index")
	}
}

func TestPDFBackendAlwaysAvailable(t *testing.T) {
	if !NewPDFBackend().Available() {
		t.Error("PDF backend should always be available")
	}
}

func TestOCRBackendRejectsNonZeroPage(t *testing.T) {
	backend := NewOCRBackend()
	_, err := backend.ExtractSpans(FromBytes([]byte{0x89, 'P', 'N', 'G'}), 1)
	if err == nil {
		t.Error("ExtractSpans accepted page index 1 for an image source")
	}
}

// writeReferencePDF renders a small one-page reference to a temp file.
func writeReferencePDF(t *testing.T) string {
	t.Helper()
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(50, 100, "Jane Roe")
	pdf.Text(50, 300, "Experience")

	path := filepath.Join(t.TempDir(), "ref.pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing reference PDF: %v", err)
	}
	return path
}

func TestPDFBackendExtractsFromFile(t *testing.T) {
	path := writeReferencePDF(t)
	page, err := NewPDFBackend().ExtractSpans(FromFile(path), 0)
	if err != nil {
		t.Fatalf("ExtractSpans returned error: %v", err)
	}
	if page.Width <= 0 || page.Height <= 0 {
		t.Errorf("page dimensions = %vx%v, want positive", page.Width, page.Height)
	}
	if len(page.Spans) == 0 {
		t.Fatal("ExtractSpans produced no spans")
	}
}

func TestPDFBackendReleasesFileHandles(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("descriptor accounting reads /proc/self/fd")
	}

	path := writeReferencePDF(t)
	backend := NewPDFBackend()

	openFDs := func() int {
		entries, err := os.ReadDir("/proc/self/fd")
		if err != nil {
			t.Fatalf("reading /proc/self/fd: %v", err)
		}
		return len(entries)
	}

	// Warm up once so lazily opened process files don't skew the count.
	if _, err := backend.ExtractSpans(FromFile(path), 0); err != nil {
		t.Fatalf("ExtractSpans returned error: %v", err)
	}

	before := openFDs()
	for i := 0; i < 20; i++ {
		if _, err := backend.ExtractSpans(FromFile(path), 0); err != nil {
			t.Fatalf("extraction %d returned error: %v", i, err)
		}
	}
	if after := openFDs(); after > before+2 {
		t.Errorf("open descriptors grew from %d to %d across repeated extractions", before, after)
	}
}

func TestMergeGlyphs(t *testing.T) {
	// Two rows on a 100pt page: "Go" at baseline y=90 (top of page) and
	// "fast code" at y=50 where the word gap exceeds one em.
	texts := glyphRun(
		g("G", "Helvetica", 12, 10, 90, 7),
		g("o", "Helvetica", 12, 17, 90, 7),
		g("fast", "Helvetica", 10, 10, 50, 18),
		g("code", "Helvetica", 10, 60, 50, 20),
	)
	spans := mergeGlyphs(texts, 100)

	if len(spans) != 3 {
		t.Fatalf("mergeGlyphs produced %d spans, want 3", len(spans))
	}
	if spans[0].Text != "Go" {
		t.Errorf("spans[0].Text = %q, want %q", spans[0].Text, "Go")
	}
	if spans[0].Font != "Helvetica" || spans[0].Size != 12 {
		t.Errorf("spans[0] font metadata = %q/%v, want Helvetica/12", spans[0].Font, spans[0].Size)
	}
	// Baseline 90 on a 100pt page sits 10pt from the top.
	if spans[0].BBox.Y1 != 10 {
		t.Errorf("spans[0].BBox.Y1 = %v, want 10", spans[0].BBox.Y1)
	}
	if spans[0].BBox.X0 != 10 || spans[0].BBox.X1 != 24 {
		t.Errorf("spans[0] horizontal extent = [%v, %v], want [10, 24]", spans[0].BBox.X0, spans[0].BBox.X1)
	}

	if spans[1].Text != "fast" || spans[2].Text != "code" {
		t.Errorf("second row spans = %q, %q, want fast, code", spans[1].Text, spans[2].Text)
	}
	if spans[1].LineNo != 1 || spans[2].LineNo != 1 {
		t.Errorf("second row line numbers = %d, %d, want 1, 1", spans[1].LineNo, spans[2].LineNo)
	}
	if spans[1].SpanNo != 0 || spans[2].SpanNo != 1 {
		t.Errorf("second row span numbers = %d, %d, want 0, 1", spans[1].SpanNo, spans[2].SpanNo)
	}
}

func TestMergeGlyphsSkipsWhitespace(t *testing.T) {
	texts := glyphRun(
		g("   ", "Helvetica", 12, 10, 90, 5),
		g("\t", "Helvetica", 12, 16, 90, 5),
	)
	if spans := mergeGlyphs(texts, 100); len(spans) != 0 {
		t.Errorf("mergeGlyphs produced %d spans from whitespace, want 0", len(spans))
	}
}

func TestMergeGlyphsEmpty(t *testing.T) {
	if spans := mergeGlyphs(nil, 100); len(spans) != 0 {
		t.Errorf("mergeGlyphs(nil) produced %d spans, want 0", len(spans))
	}
}
