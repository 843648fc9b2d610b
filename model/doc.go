// Package model defines the shared data model for the adaptive layout
// engine: page geometry, extracted text spans, layout templates, mapped
// documents, and render styles.
//
// All coordinates are in page units (points) with the origin at the
// top-left corner of the page; Y grows downward. Extraction backends are
// responsible for converting into this coordinate system.
package model
