package buildlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogAccumulatesInOrder(t *testing.T) {
	l := New()
	l.Progress("building mesh with %d points", 5)
	l.Warn("constraint %d already an edge", 2)
	l.Err("failed to flip edge %d-%d", 1, 3)

	require := assert.New(t)
	require.Equal(3, l.Count())
	entries := l.Entries()
	require.Equal(Progress, entries[0].Category)
	require.Equal(Warn, entries[1].Category)
	require.Equal(Error, entries[2].Category)
	require.Contains(entries[0].Text, "5 points")
}

func TestLogDumpFormatsEachCategory(t *testing.T) {
	l := New()
	l.Progress("starting")
	l.Warn("watch out")
	l.Err("boom")

	var buf bytes.Buffer
	l.Dump(&buf, "run summary")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "run summary\n"))
	assert.Contains(t, out, "PROG starting")
	assert.Contains(t, out, "WARN watch out")
	assert.Contains(t, out, "ERR boom")
}

func TestLogReset(t *testing.T) {
	l := New()
	l.Progress("one")
	l.Reset()
	assert.Equal(t, 0, l.Count())
	assert.Empty(t, l.Entries())
}
