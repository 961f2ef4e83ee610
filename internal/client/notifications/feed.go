// Package notifications keeps the in-app notification feed. The feed is
// owned by the application object and passed to consumers explicitly; it is
// deliberately not a package-level global.
package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MaxFeedSize bounds the feed; the oldest entries are dropped past it.
const MaxFeedSize = 100

// Notification is a single feed entry.
type Notification struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	Read      bool
}

// Feed is a bounded, newest-first notification list. Safe for concurrent
// use.
type Feed struct {
	mu    sync.Mutex
	items []Notification
	now   func() time.Time
}

func NewFeed() *Feed {
	return &Feed{now: time.Now}
}

// Push adds a notification to the front of the feed and returns its id.
func (f *Feed) Push(title, body string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		CreatedAt: f.now(),
	}
	f.items = append([]Notification{n}, f.items...)
	if len(f.items) > MaxFeedSize {
		f.items = f.items[:MaxFeedSize]
	}
	return n.ID
}

// List returns a copy of the feed, newest first.
func (f *Feed) List() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	cp := make([]Notification, len(f.items))
	copy(cp, f.items)
	return cp
}

// Unread counts unread notifications.
func (f *Feed) Unread() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int
	for _, item := range f.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// MarkRead marks a single notification read. Unknown ids are ignored.
func (f *Feed) MarkRead(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return
		}
	}
}
