package ats

import (
	"math"
	"strings"
	"testing"
)

const jobDescription = `Hiring: Supply Chain Analyst.
Responsibilities include procurement, inventory management, logistics,
analytics, Excel, and coordination with vendors.
Skills required: supply chain, procurement, inventory, Excel.`

const strongResume = `John Doe
Supply Chain Analyst

Summary
Supply chain professional focused on procurement and inventory management with strong Excel and logistics analytics experience across vendor coordination projects.

Experience
Supply Chain Analyst, Acme Logistics
Managed procurement and inventory for a regional distribution network and built Excel dashboards for logistics analytics while coordinating vendors weekly.
Improved inventory turnover by tracking procurement cycles and negotiating vendor terms across multiple categories with documented savings each quarter for three years running.

Education
BSc Supply Chain Management, Punjab University with coursework in logistics and procurement analytics plus an internship supporting inventory planning.

Skills
Excel, procurement, inventory management, logistics, analytics, supply chain planning, vendor coordination, reporting, forecasting, negotiation, communication, data analysis and stakeholder management.`

const weakResume = `Jane Smith
Barista. Latte art. Friendly.`

func TestWeightsSumToOne(t *testing.T) {
	sum := weightKeywords + weightSections + weightTitleMatch + weightFormatting + weightLength
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("component weights should sum to 1, got %.4f", sum)
	}
}

func TestExtractJobKeywords(t *testing.T) {
	keywords := ExtractJobKeywords("Go Go Go docker docker kubernetes and the with", 10)

	if len(keywords) == 0 {
		t.Fatal("expected keywords")
	}
	for _, kw := range keywords {
		if stopwords[kw] {
			t.Errorf("stopword %q survived filtering", kw)
		}
		if len(kw) <= 2 {
			t.Errorf("short token %q survived filtering", kw)
		}
	}
	// Frequency order: docker (2) before kubernetes (1). "go" is
	// dropped as a short token.
	if keywords[0] != "docker" {
		t.Errorf("expected the most frequent keyword first, got %v", keywords)
	}
}

func TestExtractJobKeywordsEmpty(t *testing.T) {
	if got := ExtractJobKeywords("", 10); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestExtractJobKeywordsCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString("keyword")
		sb.WriteByte(byte('a' + i%26))
		sb.WriteByte(byte('a' + i/26))
		sb.WriteByte(' ')
	}
	if got := ExtractJobKeywords(sb.String(), 20); len(got) > 20 {
		t.Errorf("expected at most 20 keywords, got %d", len(got))
	}
}

func TestLengthScore(t *testing.T) {
	tests := []struct {
		name     string
		words    int
		expected float64
	}{
		{"too short", 50, 0.4},
		{"ideal", 400, 1.0},
		{"long", 1000, 0.7},
		{"too long", 3000, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.TrimSpace(strings.Repeat("word ", tt.words))
			if got := lengthScore(text); got != tt.expected {
				t.Errorf("%d words: expected %.1f, got %.1f", tt.words, tt.expected, got)
			}
		})
	}
	if got := lengthScore(""); got != 0 {
		t.Errorf("empty text: expected 0, got %.1f", got)
	}
}

func TestSectionPresence(t *testing.T) {
	text := "Experience\nstuff\nSkills\nstuff\nEducation\nstuff"
	if got := sectionPresence(text); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("three of six sections: expected 0.5, got %.3f", got)
	}
	if got := sectionPresence("no headings here at all"); got != 0 {
		t.Errorf("expected 0 without headings, got %.3f", got)
	}
}

func TestFormattingFriendliness(t *testing.T) {
	clean := "A normal resume line that is long enough to not look like a column.\n" +
		strings.Repeat("Another normal line of ordinary prose that reads like a sentence should.\n", 10)
	if got := formattingFriendliness(clean); got != 1 {
		t.Errorf("clean layout: expected 1, got %.2f", got)
	}

	tabular := strings.Repeat("cell one    cell two    cell three\n", 10)
	if got := formattingFriendliness(tabular); got >= 1 {
		t.Errorf("table-like layout should be penalized, got %.2f", got)
	}

	withImage := clean + "\nSee attached photo for reference."
	if got := formattingFriendliness(withImage); got >= 1 {
		t.Errorf("image markers should be penalized, got %.2f", got)
	}
}

func TestScoreResume(t *testing.T) {
	scorer := NewScorer()

	strong := scorer.ScoreResume(strongResume, jobDescription)
	weak := scorer.ScoreResume(weakResume, jobDescription)

	for _, r := range []Result{strong, weak} {
		if r.Score < 0 || r.Score > 100 {
			t.Errorf("score %d out of [0, 100]", r.Score)
		}
		for _, v := range []float64{
			r.Components.KeywordMatch, r.Components.SectionPresence,
			r.Components.TitleSimilarity, r.Components.Formatting, r.Components.Length,
		} {
			if v < 0 || v > 1 {
				t.Errorf("component %.3f out of [0, 1]", v)
			}
		}
	}

	if strong.Score <= weak.Score {
		t.Errorf("expected the matching resume to outscore the mismatched one: %d vs %d",
			strong.Score, weak.Score)
	}
	if strong.Components.KeywordMatch <= weak.Components.KeywordMatch {
		t.Errorf("expected a higher keyword match for the matching resume: %.3f vs %.3f",
			strong.Components.KeywordMatch, weak.Components.KeywordMatch)
	}
	if len(strong.JobKeywords) == 0 {
		t.Error("expected job keywords in the result")
	}
}

func TestScoreResumeSuggestions(t *testing.T) {
	result := NewScorer().ScoreResume(weakResume, jobDescription)
	if len(result.Suggestions) == 0 {
		t.Fatal("expected suggestions for a weak resume")
	}

	var hasSections bool
	for _, s := range result.Suggestions {
		if strings.Contains(s, "missing sections") {
			hasSections = true
		}
	}
	if !hasSections {
		t.Errorf("expected a missing-sections suggestion, got %v", result.Suggestions)
	}
}

func TestScoreResumeEmptyInputs(t *testing.T) {
	result := NewScorer().ScoreResume("", "")
	if result.Score != 0 {
		t.Errorf("expected 0 for empty inputs, got %d", result.Score)
	}
	if len(result.Suggestions) == 0 {
		t.Error("expected suggestions even for empty input")
	}
}
