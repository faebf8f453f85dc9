// Package record holds the sample record printed when codeconv runs without a subcommand.
package record

import (
	"fmt"
	"io"
)

const (
	defaultVariable = 10
	defaultName     = "Shriyansh"
)

// record is a fixed two-field value. Both fields are set once by newRecord
// and never change afterwards. The type is unexported so the only way to get
// one is through newRecord.
type record struct {
	name     string
	variable int
}

func newRecord() record {
	return record{
		variable: defaultVariable,
		name:     defaultName,
	}
}

// report writes the record's fields to w, one per line.
func (r record) report(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Name: %s\n", r.name); err != nil {
		return fmt.Errorf("failed to write name: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Variable: %d\n", r.variable); err != nil {
		return fmt.Errorf("failed to write variable: %w", err)
	}
	return nil
}

// Run creates a record and reports it to w.
func Run(w io.Writer) error {
	return newRecord().report(w)
}
