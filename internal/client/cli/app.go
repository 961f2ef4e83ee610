// Package cli is the interactive shell of the recipekeeper client. It owns
// every stateful service object (key pool, notification feed, per-user
// reconcilers) and threads them to commands explicitly; nothing here is a
// package-level global.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mpavlenko/recipekeeper/internal/blob"
	blobs3 "github.com/mpavlenko/recipekeeper/internal/blob/s3"
	"github.com/mpavlenko/recipekeeper/internal/client/bookmarks"
	"github.com/mpavlenko/recipekeeper/internal/client/config"
	"github.com/mpavlenko/recipekeeper/internal/client/localdb"
	"github.com/mpavlenko/recipekeeper/internal/client/models"
	"github.com/mpavlenko/recipekeeper/internal/client/notifications"
	"github.com/mpavlenko/recipekeeper/internal/client/profile"
	"github.com/mpavlenko/recipekeeper/internal/client/quota"
	"github.com/mpavlenko/recipekeeper/internal/client/recipes"
	"github.com/mpavlenko/recipekeeper/internal/client/search"
	"github.com/mpavlenko/recipekeeper/internal/clock"
	"github.com/mpavlenko/recipekeeper/internal/logging"
	"github.com/mpavlenko/recipekeeper/internal/remote"
	"github.com/mpavlenko/recipekeeper/internal/remote/rest"
)

type App struct {
	config *config.Config
	log    logging.Logger
	repos  *localdb.Repositories

	auth     *rest.AuthClient
	store    remote.Store
	uploader blob.Uploader
	searcher *search.Client
	cooldown *search.Cooldown
	feed     *notifications.Feed

	// session state, populated by login
	token  string
	userID string

	bookmarks bookmarks.Service
	mine      recipes.Service
	quota     *quota.Service
	profile   *profile.Service

	reader *bufio.Reader
	out    io.Writer

	// lastResults holds the most recent search output so save/unsave can
	// reference recipes by id.
	lastResults map[string]models.RecipeSummary
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	repos, err := localdb.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err.Error())
		return nil, err
	}

	clk := clock.NewSystemClock()
	cooldown := search.NewCooldown(repos.Metadata, clk)
	searcher := search.NewClient(search.NewPool(c.APIKeys), cooldown, log,
		search.WithEndpoint(c.SearchEndpoint),
		search.WithCooldownWindow(c.SearchCooldown),
	)

	app := &App{
		config:   c,
		log:      log,
		repos:    repos,
		auth:     rest.NewAuthClient(c.BackendBaseURL),
		searcher: searcher,
		cooldown: cooldown,
		feed:     notifications.NewFeed(),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	app.store = rest.NewStore(c.BackendBaseURL, func() string { return app.token })
	app.uploader = blobs3.NewUploader(blobs3.Options{
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
		PublicURL:    c.S3PublicURL,
	})

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.userID != ""
}

// startSession wires the per-user services once identity is known.
func (a *App) startSession(ctx context.Context, userID string) {
	a.userID = userID
	a.bookmarks = bookmarks.NewService(a.store, a.repos.Saved, userID, a.log)
	a.mine = recipes.NewService(a.store, a.repos.Mine, userID)
	a.quota = quota.NewService(a.store, clock.NewSystemClock())
	a.profile = profile.NewService(a.quota, a.uploader, a.log)

	// remote record is authoritative on mount
	if err := a.bookmarks.Resync(ctx); err != nil {
		a.log.Warn(ctx, "bookmark resync failed, local cache may be stale", "error", err.Error())
	}
	if err := a.mine.Resync(ctx); err != nil {
		a.log.Warn(ctx, "authored recipe resync failed", "error", err.Error())
	}

	a.feed.Push("Welcome back", "Signed in as "+userID)
}

// watchCooldown pushes an in-app notification when an active search cooldown
// expires. Returns immediately if no cooldown is running.
func (a *App) watchCooldown(ctx context.Context) {
	remaining, err := a.cooldown.Remaining(ctx)
	if err != nil || remaining == 0 {
		return
	}
	a.cooldown.Watch(ctx, time.Minute, func(remaining int64) {
		if remaining == 0 {
			a.feed.Push("Search available", "The search cooldown has ended, you can search again.")
		}
	})
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.repos.DB.Close() }()

	go a.watchCooldown(ctx)

	a.Root(ctx)
}
