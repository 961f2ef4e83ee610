package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mpavlenko/recipekeeper/internal/common"
)

// Photo uploads an image file as the user's profile photo. Each upload
// consumes one unit of the monthly quota.
func (a *App) Photo(ctx context.Context, path string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("error reading %s: %v", path, err)
		return err
	}

	url, err := a.profile.UploadPhoto(ctx, a.userID, data)
	if err != nil {
		if errors.Is(err, common.ErrQuotaExceeded) {
			fmt.Fprintln(a.out, "Monthly upload limit reached, try again next month.")
			a.feed.Push("Upload limit reached", "You have used all photo uploads for this month.")
		} else {
			log.Println(err.Error())
		}
		return err
	}

	fmt.Fprintf(a.out, "Uploaded, photo is at %s\n", url)
	return nil
}

// Quota prints the remaining uploads for the current calendar month.
func (a *App) Quota(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	left, err := a.quota.Remaining(ctx, a.userID)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Fprintf(a.out, "%d uploads left this month.\n", left)
	return nil
}
