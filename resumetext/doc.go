// Package resumetext extracts plain text from resume documents and
// mines it for section bodies and skill tokens.
//
// The mining is keyword and pattern based. It recognizes the common
// resume headings (Experience, Education, Skills, ...) as section
// boundaries and pulls candidate skill tokens out of the section text,
// filtering header noise such as names and contact details.
package resumetext
