// Package tmpl renders shell command templates such as presentation.open_command.
package tmpl

import (
	"fmt"
	"strings"
	"text/template"
)

// Template is a parsed command template. Referencing a field the data does
// not have is an execution error, never an empty string.
type Template struct {
	t *template.Template
}

// Parse compiles src with the command helpers:
//
//	shq      single-quote a value for sh ('it'\''s')
//	join     join a string slice: {{ join .Args " " }}
//	default  fall back when a value is empty: {{ .Title | default "deck" }}
func Parse(src string) (*Template, error) {
	t, err := template.New("cmd").
		Funcs(template.FuncMap{
			"shq":     shellQuote,
			"join":    strings.Join,
			"default": fallback,
		}).
		Option("missingkey=error").
		Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Template{t: t}, nil
}

// Execute renders the template with data.
func (t *Template) Execute(data any) (string, error) {
	var sb strings.Builder
	if err := t.t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return sb.String(), nil
}

// Render parses and executes src in one step.
func Render(src string, data any) (string, error) {
	t, err := Parse(src)
	if err != nil {
		return "", err
	}
	return t.Execute(data)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func fallback(def, v string) string {
	if v == "" {
		return def
	}
	return v
}
