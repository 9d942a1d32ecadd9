package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	month, err := parseMonth("2026-04")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), month)

	_, err = parseMonth("04/2026")
	assert.Error(t, err)

	// Empty input defaults to the first day of the current month
	month, err = parseMonth("")
	require.NoError(t, err)
	now := time.Now().UTC()
	assert.Equal(t, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), month)
	assert.Equal(t, 1, month.Day())
}
