package convert

import (
	"strings"

	"github.com/wizzomafizzo/codeconv/internal/syntax"
)

// jsReplacements maps JavaScript tokens to their TypeScript replacement.
// Tokens absent from the table pass through unchanged.
var jsReplacements = map[string]string{
	"var":         "let",
	"console.log": "console.info",
	"==":          "===",
	"!=":          "!==",
}

// JavaScriptToTypeScript rewrites JavaScript into TypeScript token by token.
// Text between recognised tokens is copied verbatim and string or template
// literals are never rewritten.
type JavaScriptToTypeScript struct {
	replacements map[string]string
}

// NewJavaScriptToTypeScript builds the converter. Entries in overrides replace
// or extend the built-in replacement table.
func NewJavaScriptToTypeScript(overrides map[string]string) *JavaScriptToTypeScript {
	return &JavaScriptToTypeScript{replacements: mergeTables(jsReplacements, overrides)}
}

func (*JavaScriptToTypeScript) Name() string { return "javascript-to-typescript" }
func (*JavaScriptToTypeScript) Source() string { return LangJavaScript }
func (*JavaScriptToTypeScript) Target() string { return LangTypeScript }
func (*JavaScriptToTypeScript) Extension() string { return ".ts" }

// Convert implements Converter.
func (c *JavaScriptToTypeScript) Convert(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", ErrEmptySource
	}

	var b strings.Builder
	b.Grow(len(src))

	pos := 0
	for _, span := range syntax.JavaScriptToken.FindAllStringIndex(src, -1) {
		start, end := span[0], span[1]
		b.WriteString(src[pos:start])

		token := src[start:end]
		if replacement, ok := c.replacements[token]; ok {
			token = replacement
		}
		b.WriteString(token)
		pos = end
	}
	b.WriteString(src[pos:])

	return b.String(), nil
}
