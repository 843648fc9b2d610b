package render

import (
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"

	"github.com/talhaazmatmeo/ai-resume-enhancer/maptext"
	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

// pageHTML is the single-page document markup used by the HTML export:
// a centered name block, then one titled section per mapped section.
const pageHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8"/>
<style>
  body { font-family: {{.FontFamily}}, Arial, sans-serif; margin: 35px; color: {{.TextColor}}; }
  .name { font-size: 22px; font-weight: 700; text-align: center; margin-bottom: 4px; }
  hr { border: 0; border-top: 1px solid #ddd; margin: 6px 0 10px 0; }
  h2 { font-size: 13px; color: {{.HeadingColor}}; margin: 12px 0 4px 0; text-transform: uppercase; }
  p, li { font-size: {{.BaseSize}}px; line-height: 1.35; margin: 0 0 5px 0; }
  ul { margin: 0 0 6px 18px; padding: 0; }
</style>
</head>
<body>
{{- if .Name}}
  <div class="name">{{.Name}}</div>
  <hr/>
{{- end}}
{{- range .Sections}}
  {{- if .Title}}
  <h2>{{.Title}}</h2>
  {{- end}}
  {{- range .Items}}
  {{- if .Bullet}}
  <ul><li>{{.Text}}</li></ul>
  {{- else}}
  <p>{{.Text}}</p>
  {{- end}}
  {{- end}}
{{- end}}
</body>
</html>
`

var htmlPage = htmltemplate.Must(htmltemplate.New("page").Parse(pageHTML))

type htmlItem struct {
	Text   string
	Bullet bool
}

type htmlSection struct {
	Title string
	Items []htmlItem
}

type htmlPageData struct {
	Name         string
	FontFamily   string
	BaseSize     float64
	TextColor    string
	HeadingColor string
	Sections     []htmlSection
}

// WriteHTML renders a mapped document as a single HTML page, the
// exchange form used when an external HTML-to-PDF service renders the
// final page instead of the native tiers.
func WriteHTML(doc *model.MappedDocument, style model.RenderStyle, w io.Writer) error {
	data := htmlPageData{
		FontFamily:   style.FontFamily,
		BaseSize:     style.BaseSize,
		TextColor:    style.TextColor,
		HeadingColor: style.HeadingColor,
	}

	for _, section := range doc.Sections {
		out := htmlSection{}
		if section.Name != "" && section.Name != maptext.DefaultSection {
			out.Title = section.Name
		}
		for _, line := range section.Lines {
			text, bullet := isBullet(line)
			// The first body line of the leading section is the name.
			if data.Name == "" && out.Title == "" && !bullet {
				data.Name = text
				continue
			}
			out.Items = append(out.Items, htmlItem{Text: text, Bullet: bullet})
		}
		if out.Title != "" || len(out.Items) > 0 {
			data.Sections = append(data.Sections, out)
		}
	}

	if err := htmlPage.Execute(w, data); err != nil {
		return fmt.Errorf("rendering HTML page: %w", err)
	}
	return nil
}

// HTMLString is a convenience wrapper returning the page as a string.
func HTMLString(doc *model.MappedDocument, style model.RenderStyle) (string, error) {
	var sb strings.Builder
	if err := WriteHTML(doc, style, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
