package html2pdf

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestLoggingEngine_Launch(t *testing.T) {
	t.Parallel()

	logger, buf := newBufferLogger()
	inner := &fakeEngine{}
	engine := NewLoggingEngine(inner, logger)

	b, err := engine.Launch(context.Background(), defaultLaunchConfig("/opt/chrome"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg="browser launch"`)
	assert.Contains(t, out, "bin=/opt/chrome")
	assert.Contains(t, out, "headless=true")
	assert.Contains(t, out, "no_sandbox=true")

	require.NoError(t, b.Close())
	assert.Contains(t, buf.String(), `msg="browser close"`)
	assert.Equal(t, 1, inner.browserCloses)
}

func TestLoggingEngine_LaunchError(t *testing.T) {
	t.Parallel()

	logger, buf := newBufferLogger()
	engine := NewLoggingEngine(&fakeEngine{launchErr: errors.New("no chrome")}, logger)

	b, err := engine.Launch(context.Background(), LaunchConfig{})
	require.Error(t, err)
	assert.Nil(t, b)
	assert.Contains(t, buf.String(), `err="no chrome"`)
}

func TestLoggingEngine_PagesPassThrough(t *testing.T) {
	t.Parallel()

	logger, _ := newBufferLogger()
	inner := &fakeEngine{}
	b, err := NewLoggingEngine(inner, logger).Launch(context.Background(), LaunchConfig{})
	require.NoError(t, err)

	_, err = b.NewPage(context.Background(), defaultViewport())
	require.NoError(t, err)
	assert.Len(t, inner.viewports, 1)
}
