package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Search(ctx context.Context, text string) error
	ToggleSaved(ctx context.Context, id string) error
	List(ctx context.Context) error
	MyAdd(ctx context.Context) error
	MyDelete(ctx context.Context, id string) error
	MyList(ctx context.Context) error
	Photo(ctx context.Context, path string) error
	Quota(ctx context.Context) error
	Notifications(ctx context.Context) error
	MarkRead(ctx context.Context, id string) error
	Sync(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the recipekeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help              — show available commands
//	  - login             — authenticate
//	  - exit | quit       — leave the program
//
//	Logged in:
//	  - help              — show available commands
//	  - search <text>     — search recipes by free text
//	  - save <id>         — toggle the saved state of a recipe
//	  - list              — list saved recipes
//	  - myadd             — author a new recipe (interactive prompts)
//	  - mydel <id>        — delete an authored recipe
//	  - mylist            — list authored recipes
//	  - photo <path>      — upload a profile photo (counts toward quota)
//	  - quota             — show remaining uploads this month
//	  - notes             — list in-app notifications
//	  - read <id>         — mark a notification read
//	  - sync              — re-pull the remote record
//	  - logout            — log out
//	  - exit | quit       — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: search <text>, save <id>, (l)ist, myadd, mydel <id>, mylist, photo <path>, quota, notes, read <id>, sync, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <text>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "save", "unsave":
			if len(args) == 0 {
				printlnFn("Usage:", cmd, "<recipe id>")
				continue
			}
			_ = a.ToggleSaved(ctx, args[0])

		case "l", "list":
			_ = a.List(ctx)

		case "myadd":
			_ = a.MyAdd(ctx)

		case "mydel":
			if len(args) == 0 {
				printlnFn("Usage: mydel <recipe id>")
				continue
			}
			_ = a.MyDelete(ctx, args[0])

		case "mylist":
			_ = a.MyList(ctx)

		case "photo":
			if len(args) == 0 {
				printlnFn("Usage: photo <path to image>")
				continue
			}
			_ = a.Photo(ctx, args[0])

		case "quota":
			_ = a.Quota(ctx)

		case "notes", "notifications":
			_ = a.Notifications(ctx)

		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <notification id>")
				continue
			}
			_ = a.MarkRead(ctx, args[0])

		case "sync":
			_ = a.Sync(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
