// Package syntax holds the token grammars shared by the converters and by
// config validation of replacement tables.
package syntax

import (
	"regexp"
	"strings"
)

// JavaScriptToken matches one JavaScript token in priority order:
// multi-character operators, identifiers, string and template literals,
// numbers, then single punctuation. Literals honor backslash escapes so an
// escaped quote never ends them; template literals may span lines.
// "===" and "!==" are matched whole so already strict comparisons are kept.
var JavaScriptToken = regexp.MustCompile(
	`console\.log|===|!==|==|!=|=>|\?\?|\?\.` +
		`|[a-zA-Z_][a-zA-Z0-9_]*` +
		`|"(?:[^"\\\n]|\\.)*"` +
		`|'(?:[^'\\\n]|\\.)*'` +
		"|`(?:[^`\\\\]|\\\\(?s:.))*`" +
		`|[0-9]+\.[0-9]+|[0-9]+` +
		`|[{}();=]`,
)

var javaIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsJavaIdentifier reports whether s is a single Java identifier, the only
// token kind the Java keyword table is consulted for.
func IsJavaIdentifier(s string) bool {
	return javaIdentifier.MatchString(s)
}

// IsJavaScriptReplaceable reports whether s is exactly one token the
// JavaScript tokenizer produces and is not a string or template literal.
func IsJavaScriptReplaceable(s string) bool {
	if s == "" || strings.ContainsAny(s[:1], "\"'`") {
		return false
	}
	return JavaScriptToken.FindString(s) == s
}
