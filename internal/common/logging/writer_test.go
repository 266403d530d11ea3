package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilteredLevelWriter_DropsBelowLevel(t *testing.T) {
	out := &bytes.Buffer{}
	w := &FilteredLevelWriter{writer: out, level: zerolog.InfoLevel}

	n, err := w.WriteLevel(zerolog.DebugLevel, []byte("dropped"))
	require.NoError(t, err)
	// A dropped line still reports its full length so zerolog does not error
	assert.Equal(t, len("dropped"), n)
	assert.Zero(t, out.Len())
}

func TestFilteredLevelWriter_WritesAtOrAboveLevel(t *testing.T) {
	out := &bytes.Buffer{}
	w := &FilteredLevelWriter{writer: out, level: zerolog.InfoLevel}

	_, err := w.WriteLevel(zerolog.InfoLevel, []byte("info line\n"))
	require.NoError(t, err)
	_, err = w.WriteLevel(zerolog.ErrorLevel, []byte("error line\n"))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "info line")
	assert.Contains(t, out.String(), "error line")
}
