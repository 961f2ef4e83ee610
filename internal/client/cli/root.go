package cli

import (
	"bufio"
	"context"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if a.userID == "" {
		return "(not logged in)"
	}
	if n := a.feed.Unread(); n > 0 {
		return "(" + a.userID + ", unread notes!)"
	}
	return "(" + a.userID + ")"
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to recipekeeper CLI (type 'help' for commands)")

	_ = a.Login(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
