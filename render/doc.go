// Package render lays out mapped or raw text content into a single-page
// PDF. It provides three renderers of decreasing sophistication — the
// template-aware adaptive renderer, a heuristic single-column renderer,
// and a minimal fixed-font paginator — plus the fallback chain that
// tries them in order and guarantees output.
package render
