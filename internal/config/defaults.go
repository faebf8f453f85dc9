package config

// DefaultIndent is the number of spaces per brace level in C# output.
const DefaultIndent = 4

// DefaultConfig returns the default codeconv configuration
func DefaultConfig() *Config {
	return &Config{
		Indent: DefaultIndent,
	}
}
