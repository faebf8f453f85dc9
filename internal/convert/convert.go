// Package convert implements token-level source converters between
// programming languages. The converters rewrite keywords and well-known
// calls; they do not parse or check the program.
package convert

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/wizzomafizzo/codeconv/internal/config"
)

// Canonical language names.
const (
	LangJava       = "java"
	LangCSharp     = "csharp"
	LangJavaScript = "javascript"
	LangTypeScript = "typescript"
)

var (
	// ErrUnknownLanguage is returned when no converter handles a language pair.
	ErrUnknownLanguage = errors.New("unknown language conversion")
	// ErrEmptySource is returned for input that is empty or whitespace only.
	ErrEmptySource = errors.New("please provide some code for conversion")
)

var languageAliases = map[string]string{
	"java":       LangJava,
	"csharp":     LangCSharp,
	"cs":         LangCSharp,
	"c#":         LangCSharp,
	"javascript": LangJavaScript,
	"js":         LangJavaScript,
	"typescript": LangTypeScript,
	"ts":         LangTypeScript,
}

// Converter turns source text in one language into another.
type Converter interface {
	Name() string
	Source() string
	Target() string
	Extension() string
	Convert(src string) (string, error)
}

// NormalizeLanguage resolves a language name or alias to its canonical form.
func NormalizeLanguage(name string) (string, error) {
	canonical, ok := languageAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: unsupported language %q", ErrUnknownLanguage, name)
	}
	return canonical, nil
}

// Registry indexes converters by source and target language.
type Registry struct {
	converters map[string]Converter
}

// NewRegistry returns a registry holding the built-in converters configured by cfg.
func NewRegistry(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	r := &Registry{converters: make(map[string]Converter)}
	r.Register(NewJavaToCSharp(cfg.Indent, cfg.Java.Keywords))
	r.Register(NewJavaScriptToTypeScript(cfg.JavaScript.Replacements))
	return r
}

// Register adds c, replacing any converter for the same language pair.
func (r *Registry) Register(c Converter) {
	r.converters[pairKey(c.Source(), c.Target())] = c
}

// Lookup finds the converter for a language pair. Aliases are accepted.
func (r *Registry) Lookup(from, to string) (Converter, error) {
	source, err := NormalizeLanguage(from)
	if err != nil {
		return nil, err
	}
	target, err := NormalizeLanguage(to)
	if err != nil {
		return nil, err
	}

	c, ok := r.converters[pairKey(source, target)]
	if !ok {
		return nil, fmt.Errorf("%w: %s to %s", ErrUnknownLanguage, source, target)
	}
	return c, nil
}

// List returns all converters ordered by name.
func (r *Registry) List() []Converter {
	list := make([]Converter, 0, len(r.converters))
	for _, c := range r.converters {
		list = append(list, c)
	}
	slices.SortFunc(list, func(a, b Converter) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return list
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

func pairKey(source, target string) string {
	return source + "->" + target
}

func mergeTables(base, overrides map[string]string) map[string]string {
	merged := maps.Clone(base)
	maps.Copy(merged, overrides)
	return merged
}
