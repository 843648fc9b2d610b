package resumetext

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ledongthucpdf "github.com/ledongthuc/pdf"

	"github.com/talhaazmatmeo/ai-resume-enhancer/extract"
)

// Text extracts the plain text of a resume source, joining rows and
// pages with newlines. PDF input is read from the content stream;
// anything else is treated as UTF-8 text.
func Text(src extract.Source) (string, error) {
	if src.IsFile() {
		return textFromFile(src.Path())
	}
	return textFromBytes(src.Bytes())
}

// FromFile extracts the plain text of a resume file.
func FromFile(path string) (string, error) {
	return Text(extract.FromFile(path))
}

// FromBytes extracts the plain text of an in-memory resume.
func FromBytes(data []byte) (string, error) {
	return Text(extract.FromBytes(data))
}

func textFromFile(path string) (string, error) {
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading resume %s: %w", path, err)
		}
		return string(data), nil
	}

	f, reader, err := ledongthucpdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening resume %s: %w", path, err)
	}
	defer f.Close()
	return readerText(reader)
}

func textFromBytes(data []byte) (string, error) {
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return string(data), nil
	}
	reader, err := ledongthucpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening resume buffer: %w", err)
	}
	return readerText(reader)
}

// readerText walks every page row by row so that line structure, which
// the section miner depends on, survives extraction.
func readerText(reader *ledongthucpdf.Reader) (string, error) {
	var lines []string
	for pageNo := 1; pageNo <= reader.NumPage(); pageNo++ {
		page := reader.Page(pageNo)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("extracting text from page %d: %w", pageNo, err)
		}
		for _, row := range rows {
			var sb strings.Builder
			for _, word := range row.Content {
				sb.WriteString(word.S)
			}
			if line := strings.TrimSpace(sb.String()); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}
