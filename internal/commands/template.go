package commands

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

// ExpandTemplate expands a template string using the provided data.
// The data can be any struct - templates access fields via {{ .FieldName }}.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	// Quick check: plain strings pass through untouched.
	if !strings.Contains(tmplStr, "{{") {
		return tmplStr, nil
	}

	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// configMessage returns the named message template from a handler config,
// falling back to the given default, expanded against data.
func configMessage(config map[string]any, key, fallback string, data any) (string, error) {
	tmplStr := fallback
	if s, ok := config[key].(string); ok && s != "" {
		tmplStr = s
	}
	return ExpandTemplate(tmplStr, data)
}
