package notifications

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_PushNewestFirst(t *testing.T) {
	f := NewFeed()
	f.Push("first", "")
	f.Push("second", "")

	list := f.List()
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Title)
	assert.Equal(t, "first", list[1].Title)
}

func TestFeed_BoundedSize(t *testing.T) {
	f := NewFeed()
	for i := 0; i < MaxFeedSize+10; i++ {
		f.Push(fmt.Sprintf("n%d", i), "")
	}

	list := f.List()
	require.Len(t, list, MaxFeedSize)
	assert.Equal(t, fmt.Sprintf("n%d", MaxFeedSize+9), list[0].Title, "newest survives")
}

func TestFeed_UnreadAndMarkRead(t *testing.T) {
	f := NewFeed()
	id := f.Push("a", "")
	f.Push("b", "")

	require.Equal(t, 2, f.Unread())

	f.MarkRead(id)
	require.Equal(t, 1, f.Unread())

	f.MarkRead("no-such-id")
	require.Equal(t, 1, f.Unread())
}

func TestFeed_ListReturnsCopy(t *testing.T) {
	f := NewFeed()
	f.Push("a", "")

	list := f.List()
	list[0].Read = true

	require.Equal(t, 1, f.Unread(), "mutating the copy must not touch the feed")
}
