package extract

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"

	// Register decoders for the page-image formats Tesseract accepts
	// beyond the stdlib's PNG/JPEG.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "image/jpeg"
	_ "image/png"

	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

// OCRBackend is the secondary extraction backend. It recognizes a
// rendered page image via Tesseract and yields word bounding boxes only;
// spans carry no font name or size. It is used when the primary PDF
// backend cannot serve, such as for scanned reference pages.
//
// Tesseract must be installed on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
type OCRBackend struct {
	language string
}

// NewOCRBackend creates the OCR extraction backend with English
// recognition.
func NewOCRBackend() *OCRBackend {
	return &OCRBackend{language: "eng"}
}

// SetLanguage sets the recognition language(s). Multiple languages can be
// given "+"-separated (e.g. "eng+fra").
func (b *OCRBackend) SetLanguage(lang string) {
	b.language = lang
}

// Name implements Backend.
func (b *OCRBackend) Name() string { return "ocr" }

// Available implements Backend. It reports whether a Tesseract
// installation with at least one language pack can be reached.
func (b *OCRBackend) Available() bool {
	langs, err := gosseract.GetAvailableLanguages()
	return err == nil && len(langs) > 0
}

// ExtractSpans implements Backend. The source must be a single page
// image (PNG, JPEG, TIFF, or BMP); pageIndex must be 0. Page dimensions
// are the image dimensions in pixels.
func (b *OCRBackend) ExtractSpans(src Source, pageIndex int) (model.PageData, error) {
	if err := src.stat(); err != nil {
		return model.PageData{}, err
	}
	if pageIndex != 0 {
		return model.PageData{}, fmt.Errorf("ocr backend reads single-page images, page index %d out of range", pageIndex)
	}

	data := src.Bytes()
	if src.IsFile() {
		var err error
		data, err = os.ReadFile(src.Path())
		if err != nil {
			return model.PageData{}, &NotFoundError{Path: src.Path()}
		}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return model.PageData{}, fmt.Errorf("decoding page image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(b.language); err != nil {
		return model.PageData{}, fmt.Errorf("setting OCR language %q: %w", b.language, err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return model.PageData{}, fmt.Errorf("loading page image into OCR engine: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return model.PageData{}, fmt.Errorf("OCR recognition failed: %w", err)
	}

	spans := make([]model.TextSpan, 0, len(boxes))
	for i, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}
		spans = append(spans, model.TextSpan{
			Text: word,
			BBox: model.NewBBox(
				float64(box.Box.Min.X), float64(box.Box.Min.Y),
				float64(box.Box.Max.X), float64(box.Box.Max.Y),
			),
			SpanNo: i,
		})
	}

	return model.PageData{
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
		Spans:  spans,
	}, nil
}
