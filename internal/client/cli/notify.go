package cli

import (
	"context"
	"fmt"
)

func (a *App) Notifications(ctx context.Context) error {
	items := a.feed.List()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return nil
	}
	for _, n := range items {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s [%s] %s: %s\n", marker, n.ID, n.Title, n.Body)
	}
	return nil
}

func (a *App) MarkRead(ctx context.Context, id string) error {
	a.feed.MarkRead(id)
	return nil
}
