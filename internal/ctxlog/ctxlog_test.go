package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfarer/internal/ctxlog"
)

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))

	var buf bytes.Buffer
	l, err := ctxlog.New(&buf, slog.LevelDebug, "json")
	require.NoError(t, err)
	ctx := ctxlog.WithLogger(context.Background(), l)
	ctxlog.FromContext(ctx).Debug("loaded", "cities", 3)
	assert.Contains(t, buf.String(), `"cities":3`)
}

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	l, err := ctxlog.New(&buf, slog.LevelWarn, "text")
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = ctxlog.New(&buf, slog.LevelInfo, "xml")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ctxlog.ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	_, err = ctxlog.ParseLevel("loud")
	assert.Error(t, err)
}
