package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tp(s string) *time.Time {
	t := ts(s)
	return &t
}

func TestStatusAt(t *testing.T) {
	start := tp("2025-06-01T00:00:00Z")
	end := tp("2025-06-30T23:59:59Z")

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		now   time.Time
		want  WindowStatus
	}{
		{"no window at all", nil, nil, ts("2025-06-15T12:00:00Z"), WindowNone},
		{"before start", start, end, ts("2025-05-31T23:59:59Z"), WindowScheduled},
		{"inside window", start, end, ts("2025-06-15T12:00:00Z"), WindowActive},
		{"exactly at start", start, end, *start, WindowActive},
		{"exactly at end", start, end, *end, WindowActive},
		{"after end", start, end, ts("2025-07-01T00:00:00Z"), WindowExpired},
		{"open start, before end", nil, end, ts("2025-01-01T00:00:00Z"), WindowActive},
		{"open start, after end", nil, end, ts("2025-08-01T00:00:00Z"), WindowExpired},
		{"open end, after start", start, nil, ts("2026-01-01T00:00:00Z"), WindowActive},
		{"open end, before start", start, nil, ts("2025-01-01T00:00:00Z"), WindowScheduled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusAt(tt.start, tt.end, tt.now))
		})
	}
}

func TestIsLive(t *testing.T) {
	assert.True(t, IsLive(WindowActive))
	assert.True(t, IsLive(WindowNone))
	assert.False(t, IsLive(WindowScheduled))
	assert.False(t, IsLive(WindowExpired))
}
