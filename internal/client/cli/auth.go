package cli

import (
	"context"
	"log"

	"github.com/mpavlenko/recipekeeper/internal/client/identity"
	"github.com/mpavlenko/recipekeeper/internal/client/repositories/metadata"
)

// Login prompts for credentials, exchanges them for a bearer token and wires
// the per-user services. On failure the app stays logged out.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	token, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	var userID string
	if a.config.TokenSecret != "" {
		userID, err = identity.UserIDFromToken(token, []byte(a.config.TokenSecret))
	} else {
		userID, err = identity.UserIDFromTokenUnverified(token)
	}
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.token = token
	a.startSession(ctx, userID)
	if err := a.repos.Metadata.Set(ctx, metadata.KeyLastUser, []byte(userID)); err != nil {
		a.log.Warn(ctx, "failed to remember last user", "error", err.Error())
	}

	log.Printf("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.token = ""
	a.userID = ""
	a.bookmarks = nil
	a.mine = nil
	a.quota = nil
	a.profile = nil
	log.Println("Logged out")
	return nil
}
