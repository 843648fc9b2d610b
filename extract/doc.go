// Package extract reads a reference page and produces raw text spans with
// bounding boxes and, when the backend supports it, font metadata.
//
// Two backends are provided. The primary PDF backend reads positioned
// text directly from the PDF content stream and yields font names and
// sizes per span. The secondary OCR backend recognizes a rendered page
// image and yields word bounding boxes only, with no font metadata. The
// backend to use is selected once via Probe and injected into the
// template builder, rather than chosen by runtime conditionals.
package extract
