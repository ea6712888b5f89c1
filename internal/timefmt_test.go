package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceTime(t *testing.T) {
	got, err := ParseServiceTime("2026-08-24 09:30:15")
	require.NoError(t, err)
	want := time.Date(2026, 8, 24, 9, 30, 15, 0, time.Local)
	assert.True(t, got.Equal(want))
}

func TestParseServiceTimeRejectsOtherLayouts(t *testing.T) {
	for _, value := range []string{"", "2026-08-24T09:30:15Z", "1756005015"} {
		_, err := ParseServiceTime(value)
		assert.Error(t, err, "value %q", value)
	}
}

func TestIsInFuture(t *testing.T) {
	assert.True(t, IsInFuture(time.Now().Add(time.Minute)))
	assert.False(t, IsInFuture(time.Now().Add(-time.Minute)))
}
