package log

import (
	"bytes"
	"testing"

	alog "github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}

	mu.Lock()
	prevHandler, prevLevel, prevVerbose := logger.Handler, logger.Level, verbose
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		logger.Handler, logger.Level, verbose = prevHandler, prevLevel, prevVerbose
		mu.Unlock()
	})

	SetOutput(buf)
	return buf
}

func TestVerbosity(t *testing.T) {
	buf := captureOutput(t)

	SetVerbose(false)
	Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	assert.True(t, IsVerbose())
	Debugf("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
}

func TestWithFields(t *testing.T) {
	buf := captureOutput(t)

	WithFields(Fields{"app": "dhcp"}).Info("session opened")
	assert.Contains(t, buf.String(), "session opened")
	assert.Contains(t, buf.String(), "app")
	assert.Contains(t, buf.String(), "=dhcp")
}

func TestSplitHandler(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	l := &alog.Logger{Handler: newHandler(out, errOut), Level: alog.DebugLevel}

	l.Info("to stdout")
	l.Error("to stderr")

	assert.Contains(t, out.String(), "to stdout")
	assert.NotContains(t, out.String(), "to stderr")
	assert.Contains(t, errOut.String(), "to stderr")
}
