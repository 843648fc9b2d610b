// Package template turns the raw spans of a reference page into a
// reusable layout Template, and persists templates as versioned JSON.
//
// The Builder groups spans into equal vertical zones, detects a header
// band at the top of the page, and splits the span stream into named
// sections at detected heading spans. Detection is heuristic and never
// fails; a page with no data yields empty structures.
package template
