// Package theme defines the visual tokens shared by every rendered view.
// A Theme is a value type with no setters; once constructed it cannot change,
// so a single instance can be handed to every template for the life of the process.
package theme

import (
	"fmt"
	"html/template"
	"strings"
)

// Token is a single named visual value and the CSS custom property it renders to.
type Token struct {
	Name   string
	CSSVar string
	Value  string
}

// Theme holds the color and shape tokens of the console.
type Theme struct {
	primary      string
	text         string
	success      string
	errorColor   string
	info         string
	borderRadius int
}

// Default returns the console theme.
func Default() Theme {
	return Theme{
		primary:      "#EB5424",
		text:         "#313638",
		success:      "#4BAB4E",
		errorColor:   "#EB5424",
		info:         "#2454BB",
		borderRadius: 4,
	}
}

// Primary returns the accent color used for links and actions.
func (t Theme) Primary() string { return t.primary }

// Text returns the body text color.
func (t Theme) Text() string { return t.text }

// Success returns the color marking healthy state, such as an active schedule.
func (t Theme) Success() string { return t.success }

// Error returns the color of error messages.
func (t Theme) Error() string { return t.errorColor }

// Info returns the color of informational tags.
func (t Theme) Info() string { return t.info }

// BorderRadius returns the corner radius in pixels.
func (t Theme) BorderRadius() int { return t.borderRadius }

// Tokens returns the theme tokens in a stable order.
func (t Theme) Tokens() []Token {
	return []Token{
		{Name: "colorPrimary", CSSVar: "--color-primary", Value: t.primary},
		{Name: "colorText", CSSVar: "--color-text", Value: t.text},
		{Name: "colorSuccess", CSSVar: "--color-success", Value: t.success},
		{Name: "colorError", CSSVar: "--color-error", Value: t.errorColor},
		{Name: "colorInfo", CSSVar: "--color-info", Value: t.info},
		{Name: "borderRadius", CSSVar: "--border-radius", Value: fmt.Sprintf("%dpx", t.borderRadius)},
	}
}

// CSS renders the tokens as custom properties on :root.
func (t Theme) CSS() template.CSS {
	var b strings.Builder
	b.WriteString(":root{")
	for _, tok := range t.Tokens() {
		b.WriteString(tok.CSSVar)
		b.WriteByte(':')
		b.WriteString(tok.Value)
		b.WriteByte(';')
	}
	b.WriteString("}")
	return template.CSS(b.String())
}
