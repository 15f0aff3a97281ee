// Package document turns a bound context into final petition text and ships
// it to object storage and back-office exports.
package document

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Render executes the template body against the bound context. The binder
// guarantees a value for every declared field, and missingkey=zero keeps
// stray template variables from aborting a rendering.
func Render(name, body string, context map[string]any) (string, error) {
	funcMap := template.FuncMap{
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"title": strings.Title,
		"today": func() string {
			return time.Now().Format("02/01/2006")
		},
		"currency": formatCurrency,
	}

	tmpl, err := template.New(name).Funcs(funcMap).Option("missingkey=zero").Parse(body)
	if err != nil {
		return "", fmt.Errorf("template parse: %w", err)
	}

	var out bytes.Buffer

	if err := tmpl.Execute(&out, context); err != nil {
		return "", fmt.Errorf("template execute: %w", err)
	}

	return out.String(), nil
}

// formatCurrency prints a float in Brazilian notation: 1234.5 -> "1.234,50".
func formatCurrency(value any) string {
	f, ok := value.(float64)
	if !ok {
		return fmt.Sprintf("%v", value)
	}

	s := fmt.Sprintf("%.2f", f)
	s = strings.ReplaceAll(s, ".", ",")

	intPart := s[:len(s)-3]
	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	result := strings.Join(grouped, ".") + s[len(s)-3:]
	if negative {
		result = "-" + result
	}

	return result
}
