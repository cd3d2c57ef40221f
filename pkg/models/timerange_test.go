package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimeWindow_Presets(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		preset string
		from   time.Time
	}{
		{"hour", now.Add(-time.Hour)},
		{"day", now.Add(-24 * time.Hour)},
		{"week", now.Add(-7 * 24 * time.Hour)},
		{"month", now.Add(-30 * 24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			window, err := ResolveTimeWindow(map[string]any{"time_range": tt.preset}, now)
			require.NoError(t, err)
			require.NotNil(t, window)
			assert.Equal(t, tt.from, window.From)
			assert.Equal(t, now, window.To)
		})
	}
}

func TestResolveTimeWindow_ExplicitDates(t *testing.T) {
	window, err := ResolveTimeWindow(map[string]any{
		"time_range": map[string]any{
			"from_date": "2026-01-01",
			"to_date":   "2026-02-01T12:30:00Z",
		},
	}, time.Now())
	require.NoError(t, err)
	require.NotNil(t, window)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), window.From)
	assert.Equal(t, time.Date(2026, 2, 1, 12, 30, 0, 0, time.UTC), window.To)
}

func TestResolveTimeWindow_MissingIsNil(t *testing.T) {
	window, err := ResolveTimeWindow(map[string]any{}, time.Now())
	require.NoError(t, err)
	assert.Nil(t, window)
}

func TestResolveTimeWindow_UnknownPreset(t *testing.T) {
	_, err := ResolveTimeWindow(map[string]any{"time_range": "fortnight"}, time.Now())
	assert.Error(t, err)
}

func TestResolveTimeWindow_InvalidExplicitDate(t *testing.T) {
	_, err := ResolveTimeWindow(map[string]any{
		"time_range": map[string]any{
			"from_date": "not-a-date",
			"to_date":   "2026-02-01",
		},
	}, time.Now())
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-08-24")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = ParseDate("2026-08-24T10:15:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, parsed.Hour())

	_, err = ParseDate("24/08/2026")
	assert.Error(t, err)
}
