package ats

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Component weights of the blended score. They sum to 1.
const (
	weightKeywords   = 0.40
	weightSections   = 0.20
	weightTitleMatch = 0.15
	weightFormatting = 0.15
	weightLength     = 0.10
)

// fuzzyThreshold is the minimum similarity for a fuzzy keyword hit.
const fuzzyThreshold = 0.85

// expectedSections are the headings an ATS-friendly resume carries.
var expectedSections = []string{
	"experience", "education", "skills", "projects", "certifications", "summary",
}

// Formatting penalties, subtracted from a perfect friendliness of 1.
const (
	penaltyTable   = 0.25
	penaltyImage   = 0.20
	penaltyColumns = 0.10
)

var (
	headingCandidateRe = regexp.MustCompile(`^\s*([A-Za-z ]{3,30})\s*$`)
	multiSpaceRe       = regexp.MustCompile(`\s{2,}`)
	imageMarkerRe      = regexp.MustCompile(`\b(image|figure|photo|logo)\b`)
)

// ComponentScores holds the five component fractions, each in [0, 1].
type ComponentScores struct {
	KeywordMatch    float64 `json:"keyword_match"`
	SectionPresence float64 `json:"section_presence"`
	TitleSimilarity float64 `json:"title_similarity"`
	Formatting      float64 `json:"formatting_friendliness"`
	Length          float64 `json:"length_score"`
}

// Result is the outcome of scoring a resume against a job description.
type Result struct {
	// Score is the blended percentage in [0, 100].
	Score int `json:"score"`

	Components ComponentScores `json:"raw_component_scores"`

	// JobKeywords are the mined job-description keywords the keyword
	// component matched against.
	JobKeywords []string `json:"job_keywords"`

	// Suggestions are concrete improvements for the weakest components.
	Suggestions []string `json:"suggestions"`
}

// Scorer scores resumes against job descriptions. The zero value is not
// usable; construct with NewScorer.
type Scorer struct {
	similarity *metrics.SmithWatermanGotoh
}

// NewScorer creates a scorer with case-insensitive fuzzy matching.
func NewScorer() *Scorer {
	sim := metrics.NewSmithWatermanGotoh()
	sim.CaseSensitive = false
	return &Scorer{similarity: sim}
}

// ScoreResume blends the five components into a percentage and collects
// improvement suggestions. It never fails: missing input simply zeroes
// the affected components.
func (s *Scorer) ScoreResume(resumeText, jobText string) Result {
	keywords := ExtractJobKeywords(jobText, DefaultTopKeywords)

	c := ComponentScores{
		KeywordMatch:    s.keywordMatch(resumeText, keywords),
		SectionPresence: sectionPresence(resumeText),
		TitleSimilarity: s.titleSimilarity(resumeText, jobText),
		Formatting:      formattingFriendliness(resumeText),
		Length:          lengthScore(resumeText),
	}

	total := weightKeywords*c.KeywordMatch +
		weightSections*c.SectionPresence +
		weightTitleMatch*c.TitleSimilarity +
		weightFormatting*c.Formatting +
		weightLength*c.Length

	return Result{
		Score:       int(math.Round(total * 100)),
		Components:  round3(c),
		JobKeywords: keywords,
		Suggestions: suggestions(c, keywords, resumeText),
	}
}

// keywordMatch is the fraction of job keywords present in the resume,
// by direct containment or fuzzy token match.
func (s *Scorer) keywordMatch(resumeText string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	rtext := cleanText(resumeText)
	tokens := uniqueTokens(rtext)

	found := 0
	for _, kw := range keywords {
		kw = cleanText(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(rtext, kw) {
			found++
			continue
		}
		if s.bestTokenSimilarity(kw, tokens) >= fuzzyThreshold {
			found++
		}
	}
	return float64(found) / float64(len(keywords))
}

func (s *Scorer) bestTokenSimilarity(kw string, tokens []string) float64 {
	best := 0.0
	for _, tok := range tokens {
		if sim := strutil.Similarity(kw, tok, s.similarity); sim > best {
			best = sim
		}
	}
	return best
}

// titleSimilarity fuzzy-matches the resume's leading lines against the
// job description's leading lines, which usually carry the job title.
func (s *Scorer) titleSimilarity(resumeText, jobText string) float64 {
	if resumeText == "" || jobText == "" {
		return 0
	}

	hint := strings.Join(leadingLines(jobText, 5), " ")
	if len(hint) > 200 {
		hint = hint[:200]
	}
	hint = cleanText(hint)
	if hint == "" {
		return 0
	}

	best := 0.0
	for _, line := range leadingLines(resumeText, 20) {
		if sim := strutil.Similarity(cleanText(line), hint, s.similarity); sim > best {
			best = sim
		}
	}
	return math.Min(1, best)
}

// sectionPresence is the fraction of expected headings found standing
// alone on a resume line.
func sectionPresence(resumeText string) float64 {
	present := make(map[string]bool)
	for _, line := range strings.Split(resumeText, "\n") {
		m := headingCandidateRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		heading := strings.ToLower(strings.TrimSpace(m[1]))
		for _, want := range expectedSections {
			if heading == want {
				present[want] = true
			}
		}
	}
	return float64(len(present)) / float64(len(expectedSections))
}

// formattingFriendliness starts at 1 and subtracts penalties for
// table-like lines, image markers, and column-like runs of short lines.
func formattingFriendliness(resumeText string) float64 {
	if resumeText == "" {
		return 0
	}

	var lines []string
	for _, l := range strings.Split(resumeText, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}

	score := 1.0

	colLike := 0
	for _, l := range lines {
		if multiSpaceRe.MatchString(strings.TrimSpace(l)) && len(strings.Fields(l)) > 2 {
			colLike++
		}
	}
	if len(lines) > 0 && float64(colLike)/float64(len(lines)) > 0.15 {
		score -= penaltyTable
	}

	if imageMarkerRe.MatchString(strings.ToLower(resumeText)) {
		score -= penaltyImage
	}

	short := 0
	for _, l := range lines {
		if len(strings.TrimSpace(l)) < 30 {
			short++
		}
	}
	if len(lines) > 0 && float64(short)/float64(len(lines)) > 0.45 {
		score -= penaltyColumns
	}

	return math.Max(0, math.Min(1, score))
}

// lengthScore rewards the one-to-two-page range: full marks up to 800
// words, degrading on either side.
func lengthScore(resumeText string) float64 {
	if resumeText == "" {
		return 0
	}
	words := len(wordRe.FindAllString(resumeText, -1))
	switch {
	case words < 150:
		return 0.4
	case words <= 800:
		return 1.0
	case words <= 1200:
		return 0.7
	default:
		return 0.4
	}
}

func suggestions(c ComponentScores, keywords []string, resumeText string) []string {
	var out []string
	if c.KeywordMatch < 0.5 && len(keywords) > 0 {
		rtext := cleanText(resumeText)
		var missing []string
		for _, kw := range keywords {
			if !strings.Contains(rtext, strings.ToLower(kw)) {
				missing = append(missing, kw)
			}
		}
		if len(missing) > 8 {
			missing = missing[:8]
		}
		out = append(out, fmt.Sprintf(
			"Add or mirror top job keywords: %s (do not keyword-stuff; add naturally).",
			strings.Join(missing, ", ")))
	}
	if c.SectionPresence < 0.6 {
		out = append(out, "Add missing sections: Experience, Skills, Education (use clear headings).")
	}
	if c.Formatting < 0.7 {
		out = append(out, "Avoid tables/columns/images. Use simple single-column layout and common fonts.")
	}
	if c.Length < 0.6 {
		out = append(out, "Ensure resume length is appropriate (1-2 pages) and use bullets for experience.")
	}
	return out
}

// leadingLines returns the first n non-empty lines of text.
func leadingLines(text string, n int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
		if len(out) == n {
			break
		}
	}
	return out
}

func uniqueTokens(cleaned string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, t := range strings.Fields(cleaned) {
		if !seen[t] {
			seen[t] = true
			tokens = append(tokens, t)
		}
	}
	sort.Strings(tokens)
	return tokens
}

func round3(c ComponentScores) ComponentScores {
	r := func(v float64) float64 { return math.Round(v*1000) / 1000 }
	return ComponentScores{
		KeywordMatch:    r(c.KeywordMatch),
		SectionPresence: r(c.SectionPresence),
		TitleSimilarity: r(c.TitleSimilarity),
		Formatting:      r(c.Formatting),
		Length:          r(c.Length),
	}
}
