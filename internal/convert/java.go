package convert

import (
	"strings"
)

// javaKeywords maps Java keywords to their C# spelling. An empty value drops
// the keyword. Keywords spelled the same in both languages are omitted.
var javaKeywords = map[string]string{
	"boolean":    "bool",
	"super":      "base",
	"extends":    ":",
	"implements": ",",
	"import":     "using",
	"final":      "",
}

// printlnChain is the token sequence after "System" that becomes Console.WriteLine.
var printlnChain = []string{".", "out", ".", "println"}

// JavaToCSharp rewrites Java source into C# token by token and re-indents it
// by brace depth.
type JavaToCSharp struct {
	keywords map[string]string
	indent   int
}

// NewJavaToCSharp builds the converter. Entries in overrides replace or extend
// the built-in keyword table.
func NewJavaToCSharp(indent int, overrides map[string]string) *JavaToCSharp {
	return &JavaToCSharp{
		keywords: mergeTables(javaKeywords, overrides),
		indent:   indent,
	}
}

func (*JavaToCSharp) Name() string { return "java-to-csharp" }
func (*JavaToCSharp) Source() string { return LangJava }
func (*JavaToCSharp) Target() string { return LangCSharp }
func (*JavaToCSharp) Extension() string { return ".cs" }

// Convert implements Converter.
func (c *JavaToCSharp) Convert(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", ErrEmptySource
	}

	return c.layout(c.rewrite(Lex(src))), nil
}

// rewrite applies keyword substitution, drops package statements and folds
// System.out.println into a single Console.WriteLine token.
func (c *JavaToCSharp) rewrite(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	lineStart := true

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok.Kind != TokenIdentifier {
			out = append(out, tok)
			lineStart = tok.Kind == TokenNewline
			continue
		}

		mapped, overridden := c.keywords[tok.Value]
		switch {
		case tok.Value == "package" && !overridden:
			i = skipStatement(tokens, i, lineStart)
			continue
		case tok.Value == "System" && matchesChain(tokens[i+1:], printlnChain):
			tok.Value = "Console.WriteLine"
			i += len(printlnChain)
		case overridden:
			if mapped == "" {
				continue
			}
			tok.Value = mapped
		}

		out = append(out, tok)
		lineStart = false
	}

	return out
}

// skipStatement returns the index of the last token of the statement starting
// at i. The statement ends at ";" or at the end of its line, whichever comes
// first. The trailing newline is included when the statement filled its line.
func skipStatement(tokens []Token, i int, ownLine bool) int {
	for i < len(tokens) && tokens[i].Value != ";" && tokens[i].Kind != TokenNewline {
		i++
	}
	if i >= len(tokens) {
		return i
	}
	if tokens[i].Kind == TokenNewline {
		if ownLine {
			return i
		}
		return i - 1
	}
	if ownLine && i+1 < len(tokens) && tokens[i+1].Kind == TokenNewline {
		i++
	}
	return i
}

func matchesChain(tokens []Token, chain []string) bool {
	if len(tokens) < len(chain) {
		return false
	}
	for i, want := range chain {
		if tokens[i].Value != want || tokens[i].SpaceBefore {
			return false
		}
	}
	return true
}

// layout joins tokens back into text. Each line is indented by the brace
// depth at its start; a line opening with "}" is dedented first.
func (c *JavaToCSharp) layout(tokens []Token) string {
	var b strings.Builder
	depth := 0
	var line []Token

	flush := func() {
		if len(line) == 0 {
			return
		}
		first := line[0]
		closesFirst := first.Kind == TokenOperator && first.Value == "}"
		if closesFirst && depth > 0 {
			depth--
		}

		b.WriteString(strings.Repeat(" ", c.indent*depth))
		for i, tok := range line {
			if i > 0 && tok.SpaceBefore {
				b.WriteByte(' ')
			}
			b.WriteString(tok.Value)

			if tok.Kind != TokenOperator || (i == 0 && closesFirst) {
				continue
			}
			switch tok.Value {
			case "{":
				depth++
			case "}":
				if depth > 0 {
					depth--
				}
			}
		}
		line = line[:0]
	}

	for _, tok := range tokens {
		if tok.Kind == TokenNewline {
			flush()
			b.WriteByte('\n')
			continue
		}
		line = append(line, tok)
	}
	flush()

	return b.String()
}
