package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"eventregistration/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

const timeLayout = "Mon, 02 Jan 2006 15:04 MST"

var funcs = map[string]any{
	"formatTime": func(t time.Time) string { return t.UTC().Format(timeLayout) },
}

// templateRenderer implements domain.EmailTemplateRenderer using embedded template files.
// Each named template is a set of three files: <name>_subject.txt, <name>.html and <name>.txt.
type templateRenderer struct {
	html *template.Template
	text *texttemplate.Template
}

// NewTemplateRenderer parses the embedded templates folder once.
func NewTemplateRenderer() (domain.EmailTemplateRenderer, error) {
	html, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	text, err := texttemplate.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &templateRenderer{html: html, text: text}, nil
}

// Render executes the named template (e.g. "registration_confirmation") with data and returns subject, html, and text bodies.
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	var buf bytes.Buffer
	if err := r.text.ExecuteTemplate(&buf, templateName+"_subject.txt", data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	subject = strings.TrimSpace(buf.String())

	buf.Reset()
	if err := r.html.ExecuteTemplate(&buf, templateName+".html", data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	htmlBody = buf.String()

	buf.Reset()
	if err := r.text.ExecuteTemplate(&buf, templateName+".txt", data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	textBody = buf.String()
	return subject, htmlBody, textBody, nil
}
