package mylog

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardLogger(t *testing.T) {
	t.Run("Writes component, label and message", func(t *testing.T) {
		out := &bytes.Buffer{}
		sut := standardLogger{componentName: "checkout", minimum: SeverityInfo, out: out}

		sut.Log(context.TODO(), "cs_1", SeverityWarn, "retry %d", 2)

		assert.Contains(t, out.String(), "WARN  checkout - cs_1 - retry 2")
	})

	t.Run("Drops entries below minimum", func(t *testing.T) {
		out := &bytes.Buffer{}
		sut := standardLogger{componentName: "checkout", minimum: SeverityInfo, out: out}

		sut.Log(context.TODO(), "cs_1", SeverityDebug, "noise")

		assert.Empty(t, out.String())
	})

	t.Run("Minimum from environment", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "warn")
		assert.Equal(t, SeverityWarn, minimumSeverity())

		t.Setenv("LOG_LEVEL", "verbose")
		assert.Equal(t, SeverityInfo, minimumSeverity())
	})
}
