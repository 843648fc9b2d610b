package render

import (
	"strings"

	"github.com/talhaazmatmeo/ai-resume-enhancer/maptext"
	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

// BlockKind classifies a layout block.
type BlockKind int

const (
	// BlockHeading is a section heading.
	BlockHeading BlockKind = iota

	// BlockBody is a regular text line.
	BlockBody

	// BlockListItem is a bulleted line, marker stripped.
	BlockListItem

	// BlockSpacer is a fixed-height vertical gap.
	BlockSpacer
)

// spacerHeight is the fixed height of a spacer block in points.
const spacerHeight = 6

// Block is one unit of vertical layout: a heading, a text line, a list
// item, or a spacer.
type Block struct {
	Kind BlockKind
	Text string
}

// bulletMarkers are the prefixes that turn a line into a list item.
var bulletMarkers = []string{"- ", "* ", "• "}

// isBullet reports whether the line starts with a bullet marker, and
// returns the line with the marker stripped.
func isBullet(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	// A bare bullet glyph with no trailing space still counts.
	if strings.HasPrefix(line, "•") {
		return strings.TrimSpace(strings.TrimPrefix(line, "•")), true
	}
	return line, false
}

// BlocksFromDocument converts a mapped document into layout blocks in
// document order: a heading block per named section (the default "Body"
// section gets none), then one block per content line.
func BlocksFromDocument(doc *model.MappedDocument) []Block {
	var blocks []Block
	for _, section := range doc.Sections {
		if section.Name != "" && section.Name != maptext.DefaultSection {
			blocks = append(blocks, Block{Kind: BlockHeading, Text: section.Name})
		}
		for _, line := range section.Lines {
			if text, ok := isBullet(line); ok {
				blocks = append(blocks, Block{Kind: BlockListItem, Text: text})
				continue
			}
			blocks = append(blocks, Block{Kind: BlockBody, Text: line})
		}
		blocks = append(blocks, Block{Kind: BlockSpacer})
	}
	return blocks
}

// BlocksFromText converts raw newline-delimited text into layout
// blocks. Blank lines become spacers; bulleted lines become list items;
// everything else is body text.
func BlocksFromText(text string) []Block {
	var blocks []Block
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			blocks = append(blocks, Block{Kind: BlockSpacer})
			continue
		}
		if stripped, ok := isBullet(line); ok {
			blocks = append(blocks, Block{Kind: BlockListItem, Text: stripped})
			continue
		}
		blocks = append(blocks, Block{Kind: BlockBody, Text: line})
	}
	return blocks
}

// hasText reports whether any block carries renderable text.
func hasText(blocks []Block) bool {
	for _, b := range blocks {
		if b.Kind != BlockSpacer && b.Text != "" {
			return true
		}
	}
	return false
}
