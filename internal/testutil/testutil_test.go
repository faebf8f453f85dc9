package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wizzomafizzo/codeconv/internal/logging"
	"go.uber.org/goleak"
)

// Tests in this package stay sequential so goleak sees no paused parallel tests.

func TestNewLogContext_CapturesOutput(t *testing.T) {
	ctx, buf := NewLogContext(t)
	logging.Get(ctx).Debug().Msg("captured")

	assert.Contains(t, buf.String(), "captured")
}

func TestInitTestLogger_Repeatable(t *testing.T) {
	InitTestLogger(t)
	InitTestLogger(t)
}

func TestVerifyNoLeaks_NoGoroutines(t *testing.T) {
	VerifyNoLeaks(t)
}

func TestVerifyNoLeaksWithOptions(t *testing.T) {
	VerifyNoLeaksWithOptions(t, goleak.IgnoreTopFunction("non.existent.function"))
}
