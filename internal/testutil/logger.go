package testutil

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wizzomafizzo/codeconv/internal/logging"
)

var loggerInitOnce sync.Once

// InitTestLogger silences the global zerolog logger for the test binary.
func InitTestLogger(t *testing.T) {
	t.Helper()
	loggerInitOnce.Do(func() {
		log.Logger = zerolog.New(io.Discard)
	})
}

// NewLogContext returns a context carrying a debug-level logger that writes
// into the returned builder, for asserting on log output.
func NewLogContext(t *testing.T) (context.Context, *strings.Builder) {
	t.Helper()

	var buf strings.Builder
	ctx, err := logging.New(context.Background(), nil, logging.Config{
		Writer: &buf,
		Level:  logging.DebugLevel,
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return ctx, &buf
}
