// Package constants contains names and paths shared across codeconv.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "codeconv"

	// LogFilename is the rotating log file name inside the data directory.
	LogFilename = "codeconv.log"

	// ConfigFilename is the converter config file name inside the config directory.
	ConfigFilename = "config.yml"

	// CSharpOutputFilename is the default file written by convert --save for C# output.
	CSharpOutputFilename = "converted.cs"

	// TypeScriptOutputFilename is the default file written by convert --save for TypeScript output.
	TypeScriptOutputFilename = "converted.ts"
)
