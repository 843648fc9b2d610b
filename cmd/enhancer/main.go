// Command enhancer extracts layout templates from reference resumes,
// renders text onto them, and scores resumes against job descriptions.
//
// Usage:
//
//	enhancer extract -ref reference.pdf -out layout.json
//	enhancer render -in resume.txt -out resume.pdf [-template layout.json | -ref reference.pdf]
//	enhancer score -resume resume.pdf -job job.txt
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	enhancer "github.com/talhaazmatmeo/ai-resume-enhancer"
	"github.com/talhaazmatmeo/ai-resume-enhancer/ats"
	"github.com/talhaazmatmeo/ai-resume-enhancer/maptext"
	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
	"github.com/talhaazmatmeo/ai-resume-enhancer/render"
	"github.com/talhaazmatmeo/ai-resume-enhancer/resumetext"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "extract":
		err = runExtract(log, os.Args[2:])
	case "render":
		err = runRender(log, os.Args[2:])
	case "score":
		err = runScore(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage:
  enhancer extract -ref reference.pdf -out layout.json [-page N] [-zones N]
  enhancer render  -in resume.txt -out resume.pdf [-template layout.json | -ref reference.pdf] [-html out.html]
  enhancer score   -resume resume.pdf -job job.txt [-json]
`)
}

func runExtract(log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	ref := fs.String("ref", "", "reference PDF to extract the layout from")
	out := fs.String("out", "layout.json", "output template path")
	page := fs.Int("page", 0, "reference page, 0-based")
	zones := fs.Int("zones", 0, "number of layout zones (0 for the default)")
	fs.Parse(args)

	if *ref == "" {
		return fmt.Errorf("-ref is required")
	}

	r := enhancer.OpenReference(*ref).Page(*page)
	if *zones > 0 {
		r = r.Zones(*zones)
	}
	if err := r.SaveTemplate(*out); err != nil {
		return err
	}
	log.Info("template saved", "ref", *ref, "out", *out)
	return nil
}

func runRender(log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	in := fs.String("in", "", "input text file (resume content)")
	out := fs.String("out", "resume.pdf", "output PDF path")
	tmplPath := fs.String("template", "", "stored layout template")
	ref := fs.String("ref", "", "reference PDF to derive the layout from")
	htmlOut := fs.String("html", "", "also write an HTML rendition to this path")
	fs.Parse(args)

	if *in == "" {
		return fmt.Errorf("-in is required")
	}
	text, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var opts []enhancer.RenderOption
	switch {
	case *tmplPath != "":
		opts = append(opts, enhancer.WithTemplatePath(*tmplPath))
	case *ref != "":
		opts = append(opts, enhancer.WithReferenceFile(*ref))
	}

	page, err := enhancer.Render(string(text), opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, page.Bytes, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Info("page rendered", "out", *out, "tier", page.Tier.String())

	if *htmlOut != "" {
		if err := writeHTML(string(text), *tmplPath, *htmlOut); err != nil {
			return err
		}
		log.Info("html written", "out", *htmlOut)
	}
	return nil
}

// writeHTML maps the text onto the stored template when one is given,
// otherwise onto a single body section, and writes the HTML rendition.
func writeHTML(text, tmplPath, outPath string) error {
	var tmpl *enhancer.Template
	if tmplPath != "" {
		loaded, err := enhancer.LoadTemplate(tmplPath)
		if err != nil {
			return err
		}
		tmpl = loaded
	}

	doc := maptext.NewMapper().Map(text, tmpl)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating HTML output: %w", err)
	}
	defer f.Close()
	return render.WriteHTML(doc, model.DefaultRenderStyle(), f)
}

func runScore(args []string) error {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	resume := fs.String("resume", "", "resume file (PDF or plain text)")
	job := fs.String("job", "", "job description text file")
	asJSON := fs.Bool("json", false, "print the full result as JSON")
	fs.Parse(args)

	if *resume == "" || *job == "" {
		return fmt.Errorf("-resume and -job are required")
	}

	resumeText, err := resumetext.FromFile(*resume)
	if err != nil {
		return err
	}
	jobText, err := os.ReadFile(*job)
	if err != nil {
		return fmt.Errorf("reading job description: %w", err)
	}

	result := ats.NewScorer().ScoreResume(resumeText, string(jobText))

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("ATS score: %d/100\n", result.Score)
	for _, s := range result.Suggestions {
		fmt.Printf("  - %s\n", s)
	}
	return nil
}
