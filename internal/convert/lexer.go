package convert

import (
	"strings"
	"unicode/utf8"
)

// TokenKind classifies a lexeme produced by the Java lexer.
type TokenKind int

const (
	TokenIdentifier TokenKind = iota
	TokenNumber
	TokenString
	TokenChar
	TokenLineComment
	TokenBlockComment
	TokenOperator
	TokenNewline
	TokenOther
)

var tokenKindNames = map[TokenKind]string{
	TokenIdentifier:   "identifier",
	TokenNumber:       "number",
	TokenString:       "string",
	TokenChar:         "char",
	TokenLineComment:  "line_comment",
	TokenBlockComment: "block_comment",
	TokenOperator:     "operator",
	TokenNewline:      "newline",
	TokenOther:        "other",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is one lexeme. SpaceBefore records whether spaces or tabs separated
// it from the previous token on the same line.
type Token struct {
	Value       string
	Kind        TokenKind
	Line        int
	SpaceBefore bool
}

// twoCharOperators are tried before single characters so the longest match wins.
var twoCharOperators = []string{"==", "!=", "<=", ">=", "&&", "||", "++", "--"}

const singleCharOperators = "+-*/%=<>!?:.,;(){}[]"

// Lex splits Java-like source into tokens. It never fails: characters that
// start no known token are emitted as TokenOther and passed through.
func Lex(src string) []Token {
	l := &lexer{src: src, line: 1}
	return l.run()
}

type lexer struct {
	src    string
	tokens []Token
	pos    int
	line   int
	space  bool
}

func (l *lexer) run() []Token {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			l.space = true
			l.pos++
		case c == '\n':
			l.emit(TokenNewline, l.pos+1)
			l.line++
		case c == '/' && l.peek(1) == '/':
			l.lexLineComment()
		case c == '/' && l.peek(1) == '*':
			l.lexBlockComment()
		case c == '"':
			l.emit(TokenString, l.scanQuoted('"'))
		case c == '\'':
			l.emit(TokenChar, l.scanQuoted('\''))
		case isDigit(c) || (c == '.' && isDigit(l.peek(1))):
			l.emit(TokenNumber, l.scanNumber())
		case isIdentStart(c):
			l.emit(TokenIdentifier, l.scanIdentifier())
		default:
			l.lexOperator()
		}
	}
	return l.tokens
}

func (l *lexer) emit(kind TokenKind, end int) {
	l.tokens = append(l.tokens, Token{
		Kind:        kind,
		Value:       l.src[l.pos:end],
		Line:        l.line,
		SpaceBefore: l.space && kind != TokenNewline,
	})
	l.pos = end
	l.space = false
}

func (l *lexer) peek(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

// scanUntil returns the offset of the first occurrence of stop after pos, or
// len(src). When inclusive the stop sequence is part of the token.
func (l *lexer) scanUntil(stop string, inclusive bool) int {
	idx := strings.Index(l.src[l.pos:], stop)
	if idx < 0 {
		return len(l.src)
	}
	end := l.pos + idx
	if inclusive {
		end += len(stop)
	}
	return end
}

// lexLineComment emits a comment up to the end of the line. A trailing
// carriage return is left to be skipped as whitespace.
func (l *lexer) lexLineComment() {
	end := l.scanUntil("\n", false)
	if end > l.pos && l.src[end-1] == '\r' {
		end--
	}
	l.emit(TokenLineComment, end)
}

// lexBlockComment emits a comment that may span lines. CRLF line breaks
// inside it are normalized to LF.
func (l *lexer) lexBlockComment() {
	end := l.scanUntil("*/", true)
	startLine := l.line
	body := l.src[l.pos:end]
	l.emit(TokenBlockComment, end)

	tok := &l.tokens[len(l.tokens)-1]
	tok.Line = startLine
	tok.Value = strings.ReplaceAll(tok.Value, "\r\n", "\n")
	l.line += strings.Count(body, "\n")
}

// scanQuoted scans a string or char literal with backslash escapes. An
// unterminated literal stops at the end of the line.
func (l *lexer) scanQuoted(quote byte) int {
	i := l.pos + 1
	for i < len(l.src) {
		switch l.src[i] {
		case '\\':
			if i+1 < len(l.src) && l.src[i+1] != '\n' {
				i += 2
				continue
			}
			return i + 1
		case quote:
			return i + 1
		case '\n':
			return i
		}
		i++
	}
	return i
}

func (l *lexer) scanNumber() int {
	i := l.pos
	for i < len(l.src) && isDigit(l.src[i]) {
		i++
	}
	if i < len(l.src) && l.src[i] == '.' {
		i++
		for i < len(l.src) && isDigit(l.src[i]) {
			i++
		}
	}
	if i < len(l.src) && (l.src[i] == 'e' || l.src[i] == 'E') {
		j := i + 1
		if j < len(l.src) && (l.src[j] == '+' || l.src[j] == '-') {
			j++
		}
		if j < len(l.src) && isDigit(l.src[j]) {
			for j < len(l.src) && isDigit(l.src[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func (l *lexer) scanIdentifier() int {
	i := l.pos + 1
	for i < len(l.src) && isIdentPart(l.src[i]) {
		i++
	}
	return i
}

func (l *lexer) lexOperator() {
	rest := l.src[l.pos:]
	for _, op := range twoCharOperators {
		if strings.HasPrefix(rest, op) {
			l.emit(TokenOperator, l.pos+len(op))
			return
		}
	}
	if strings.IndexByte(singleCharOperators, rest[0]) >= 0 {
		l.emit(TokenOperator, l.pos+1)
		return
	}
	_, size := utf8.DecodeRuneInString(rest)
	l.emit(TokenOther, l.pos+size)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
