package resumetext

import (
	"regexp"
	"strings"
	"unicode"
)

// maxSkills caps the mined skill list.
const maxSkills = 60

// headerLines is how many leading lines are treated as the resume
// header (name, contact details) when filtering skill candidates.
const headerLines = 8

// noiseWords are tokens never reported as skills: stop words, section
// names, and common resume filler.
var noiseWords = wordSet(
	"the", "and", "with", "for", "in", "on", "a", "an", "to", "of", "by", "from",
	"experience", "skills", "education", "profile", "projects", "professional",
	"summary", "certifications", "languages", "internship", "worked", "work",
	"university", "college", "school", "student", "pakistan", "multan", "bahawalpur",
	"jhang", "faisal", "movers", "store", "department", "vision", "higher",
	"matriculation", "fsc",
)

// prioritySkills are well-known skills promoted to the front of the
// result, and exempt from the short-acronym filter.
var prioritySkills = wordSet(
	"python", "sql", "excel", "aws", "azure", "docker", "kubernetes", "javascript",
	"react", "node", "java", "c++", "c#", "git", "linux", "powerbi", "tableau",
	"data analysis", "machine learning", "nlp", "deep learning", "rest", "api",
	"supply chain", "procurement", "inventory", "logistics", "communication",
	"project management", "teamwork", "problem solving", "leadership",
)

var (
	bulletRe       = regexp.MustCompile(`[•\x{2022}]`)
	candidateSepRe = regexp.MustCompile(`,|;|/|\n|\t|\x{2022}|-`)
	edgeTrimRe     = regexp.MustCompile(`^[^\w+#]+|[^\w+#]+$`)
	wordTokenRe    = regexp.MustCompile(`[A-Za-z+#.]{2,}`)
	looseTokenRe   = regexp.MustCompile(`[A-Za-z+#.\-]{2,}`)
	emailRe        = regexp.MustCompile(`\S+@\S+`)
	phoneRe        = regexp.MustCompile(`\+?\d[\d\-\s()]{4,}\d`)
	headerSplitRe  = regexp.MustCompile(`[,|/;:()\t\-]`)
	trailingRe     = regexp.MustCompile(`[^\w\s+#.\-]$`)
	alnumRe        = regexp.MustCompile(`[A-Za-z0-9]`)
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

// Skills mines a skill list from mined sections. A section headed
// "Skills" or "Technical Skills" is preferred; otherwise every section
// body contributes. Recognized priority skills sort first, and the list
// is capped at 60 entries.
func Skills(sections []Section) []string {
	var text string
	for _, s := range sections {
		switch strings.ToLower(s.Heading) {
		case "skills", "technical skills":
			text = s.Body
		}
		if text != "" {
			break
		}
	}
	if text == "" {
		var bodies []string
		for _, s := range sections {
			bodies = append(bodies, s.Body)
		}
		text = strings.Join(bodies, "\n")
	}
	return SkillsFromText(text)
}

// SkillsFromText mines a skill list directly from raw text.
func SkillsFromText(text string) []string {
	header := headerTokens(text)

	candidates := splitCandidates(text)
	if len(candidates) == 0 {
		candidates = looseTokenRe.FindAllString(text, -1)
	}

	var priority, normal []string
	seen := make(map[string]bool)
	for _, tok := range candidates {
		tok = strings.TrimSpace(tok)
		low := strings.ToLower(tok)

		switch {
		case noiseWords[low]:
			continue
		// Recognized skills bypass the header filter: a short skills
		// list is its own "header" and would otherwise erase itself.
		case header[low] && !prioritySkills[low]:
			continue
		case len(low) <= 1, isDigits(low):
			continue
		case isShortAcronym(tok) && !prioritySkills[low]:
			continue
		case !alnumRe.MatchString(tok):
			continue
		case seen[low]:
			continue
		}
		seen[low] = true

		tok = strings.TrimSpace(trailingRe.ReplaceAllString(tok, ""))
		if prioritySkills[low] {
			priority = append(priority, tok)
		} else {
			normal = append(normal, tok)
		}
	}

	result := append(priority, normal...)
	if len(result) > maxSkills {
		result = result[:maxSkills]
	}
	return result
}

// splitCandidates breaks text into candidate skill tokens on the
// separators people actually use in skill lists.
func splitCandidates(text string) []string {
	text = bulletRe.ReplaceAllString(text, ",")
	text = strings.ReplaceAll(text, "|", ",")

	var cleaned []string
	for _, t := range candidateSepRe.Split(text, -1) {
		tok := strings.TrimSpace(t)
		if tok == "" {
			continue
		}
		tok = edgeTrimRe.ReplaceAllString(tok, "")
		tok = innerSpaceRe.ReplaceAllString(tok, " ")
		if len(tok) < 2 {
			continue
		}
		cleaned = append(cleaned, tok)
	}
	return cleaned
}

// headerTokens collects the words of the leading resume lines, minus
// emails and phone numbers, so names and contact details never surface
// as skills.
func headerTokens(text string) map[string]bool {
	lines := strings.Split(text, "\n")
	if len(lines) > headerLines {
		lines = lines[:headerLines]
	}

	tokens := make(map[string]bool)
	for _, line := range lines {
		line = emailRe.ReplaceAllString(line, "")
		line = phoneRe.ReplaceAllString(line, "")
		for _, part := range headerSplitRe.Split(line, -1) {
			for _, w := range wordTokenRe.FindAllString(part, -1) {
				tokens[strings.ToLower(w)] = true
			}
		}
	}
	return tokens
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// isShortAcronym reports short all-caps tokens, which are usually
// initials or degree abbreviations rather than skills.
func isShortAcronym(tok string) bool {
	return len(tok) <= 3 && tok == strings.ToUpper(tok) && strings.IndexFunc(tok, unicode.IsLetter) >= 0
}
