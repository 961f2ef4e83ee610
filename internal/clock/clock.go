// Package clock abstracts wall-clock time so cooldown expiry and calendar
// month logic can be tested deterministically.
package clock

import "time"

// Clock provides the current time to the application.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the current wall-clock time in UTC.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now().UTC() }
