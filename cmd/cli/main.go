package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mpavlenko/recipekeeper/internal/buildinfo"
	"github.com/mpavlenko/recipekeeper/internal/client/cli"
	"github.com/mpavlenko/recipekeeper/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	// a missing .env is fine, config falls back to defaults
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
