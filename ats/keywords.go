package ats

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultTopKeywords is how many job-description keywords scoring
// considers.
const DefaultTopKeywords = 25

// stopwords are frequent tokens never reported as job keywords.
var stopwords = map[string]bool{
	"with": true, "that": true, "this": true, "from": true, "will": true,
	"have": true, "your": true, "you": true, "the": true, "and": true,
	"for": true, "our": true, "be": true, "are": true, "or": true,
}

var (
	// cleanRe strips punctuation but keeps + # . so tokens like "c++"
	// and "c#" survive.
	cleanRe = regexp.MustCompile(`[^\w\s+#.]`)
	spaceRe = regexp.MustCompile(`\s+`)
	wordRe  = regexp.MustCompile(`\w+`)
)

// cleanText lower-cases and normalizes text for token comparison.
func cleanText(text string) string {
	if text == "" {
		return ""
	}
	t := strings.ToLower(text)
	t = cleanRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(t, " "))
}

// ExtractJobKeywords mines the most frequent meaningful tokens of a job
// description, up to topN, most frequent first with alphabetical
// tie-breaking.
func ExtractJobKeywords(jobText string, topN int) []string {
	if strings.TrimSpace(jobText) == "" {
		return nil
	}
	if topN <= 0 {
		topN = DefaultTopKeywords
	}

	freq := make(map[string]int)
	for _, tok := range strings.Fields(cleanText(jobText)) {
		if len(tok) > 2 {
			freq[tok]++
		}
	}

	tokens := make([]string, 0, len(freq))
	for tok := range freq {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if freq[tokens[i]] != freq[tokens[j]] {
			return freq[tokens[i]] > freq[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})

	if len(tokens) > topN {
		tokens = tokens[:topN]
	}

	keywords := tokens[:0]
	for _, tok := range tokens {
		if !stopwords[tok] {
			keywords = append(keywords, tok)
		}
	}
	return keywords
}
