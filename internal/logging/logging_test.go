package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, "circles", "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "key", 42)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown")
	require.Contains(t, out, "key=42")
	require.Contains(t, out, "circles")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "circles", "loud")
	require.Error(t, err)
	require.ErrorContains(t, err, "loud")
}
