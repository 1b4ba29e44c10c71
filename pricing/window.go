// Package pricing is the single home for all discount and offer math.
//
// Every function here is pure: no database, no logging, no implicit clock.
// Callers supply "now" explicitly, once per operation, so a checkout pass or
// an admin save sees a single consistent instant.
package pricing

import (
	"time"
)

// WindowStatus describes where "now" falls relative to a promotion window.
type WindowStatus string

const (
	// WindowNone means no start and no end: the promotion is live whenever
	// its owning entity says it is.
	WindowNone      WindowStatus = "no_window"
	WindowScheduled WindowStatus = "scheduled"
	WindowActive    WindowStatus = "active"
	WindowExpired   WindowStatus = "expired"
)

// StatusAt evaluates a time window against now. Both ends are optional.
func StatusAt(start, end *time.Time, now time.Time) WindowStatus {
	if start == nil && end == nil {
		return WindowNone
	}
	if start != nil && now.Before(*start) {
		return WindowScheduled
	}
	if end != nil && now.After(*end) {
		return WindowExpired
	}
	return WindowActive
}

// IsLive reports whether a status counts as currently in effect.
func IsLive(s WindowStatus) bool {
	return s == WindowActive || s == WindowNone
}
