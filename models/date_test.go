package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2026, 9, 15)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-15"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.True(t, parsed.Equal(d))
}

func TestDate_UnmarshalRejectsTimestamps(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"2026-09-15T10:30:00Z"`), &d)
	require.Error(t, err, "a due date must not carry a time of day")
}

func TestDate_ScanAcceptsDriverShapes(t *testing.T) {
	want := NewDate(2026, 9, 15)

	tests := []struct {
		name string
		src  any
	}{
		{"time.Time from postgres", time.Date(2026, 9, 15, 13, 45, 0, 0, time.UTC)},
		{"plain string from sqlite", "2026-09-15"},
		{"timestamp string from sqlite", "2026-09-15 00:00:00+00:00"},
		{"byte slice", []byte("2026-09-15")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.True(t, d.Equal(want), "got %s", d)
		})
	}
}

func TestDate_ScanRejectsUnknownType(t *testing.T) {
	var d Date
	require.Error(t, d.Scan(42))
}

func TestParseProgress(t *testing.T) {
	for _, p := range Progresses {
		parsed, err := ParseProgress(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := ParseProgress("Done")
	require.Error(t, err)

	assert.True(t, ProgressInProgress.Valid())
	assert.False(t, Progress("Paused").Valid())
}
