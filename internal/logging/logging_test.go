package logging

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_InfoLevelHidesDebug(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(Options{Output: &buf})

	logger.Info("Connecting to Amazon Glacier...")
	logger.V(DebugLevel).Info("Job ID", "job", "abc")

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "Connecting to Amazon Glacier...")
	assert.NotContains(t, out, "Job ID")
}

func TestNew_DebugLevelShowsDebug(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(Options{Output: &buf, Debug: true})

	logger.V(DebugLevel).Info("Job ID", "job", "abc")

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "Job ID")
	assert.Contains(t, out, `"job": "abc"`)
}

func TestNew_LineFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(Options{Output: &buf})

	logger.Error(errors.New("access denied"), "Cannot remove archive", "archive", "a1")

	line := strings.TrimSpace(buf.String())
	assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\s+ERROR\s+Cannot remove archive`), line)
	assert.Contains(t, line, "access denied")
	assert.Contains(t, line, `"archive": "a1"`)
}

func TestNew_WithValues(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(Options{Output: &buf}).WithValues("vault", "demo")

	logger.Info("Removing vault...")

	assert.Contains(t, buf.String(), `"vault": "demo"`)
}

func TestUseColor(t *testing.T) {
	t.Parallel()
	on, off := true, false

	assert.False(t, useColor(&bytes.Buffer{}, nil), "buffers are never terminals")
	assert.True(t, useColor(&bytes.Buffer{}, &on))
	assert.False(t, useColor(&bytes.Buffer{}, &off))
}
