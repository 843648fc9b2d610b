// Package ats estimates how an applicant tracking system would score a
// resume against a job description.
//
// The score is a weighted blend of five heuristic components: keyword
// match, section presence, title similarity, formatting friendliness,
// and length. Each component is a fraction in [0, 1]; the blended score
// is reported as a percentage with per-component detail and concrete
// improvement suggestions.
package ats
