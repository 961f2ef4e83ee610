package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
)

// MyAdd interactively collects a new recipe and stores it.
func (a *App) MyAdd(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	title, err := GetSimpleText(a.reader, "Recipe title", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if title == "" {
		fmt.Fprintln(a.out, "Title is required.")
		return nil
	}

	ingredients, err := GetMultiline(a.reader, "Ingredients, one per line", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	instructions, err := GetMultiline(a.reader, "Instructions", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	diets, err := GetSimpleText(a.reader, "Dietary tags (vegetarian, vegan, gluten free, dairy free), comma-separated or empty", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	rec := models.RecipeSummary{
		Title:        title,
		Instructions: instructions,
	}
	if ingredients != "" {
		rec.Ingredients = strings.Split(ingredients, "\n")
	}
	for _, d := range strings.Split(diets, ",") {
		switch strings.ToLower(strings.TrimSpace(d)) {
		case "vegetarian":
			rec.Vegetarian = true
		case "vegan":
			rec.Vegan = true
		case "gluten free", "gluten-free":
			rec.GlutenFree = true
		case "dairy free", "dairy-free":
			rec.DairyFree = true
		}
	}

	added, err := a.mine.Add(ctx, rec)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Added %s.\n", added.ID)
	return nil
}

func (a *App) MyDelete(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	if err := a.mine.Delete(ctx, id); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s.\n", id)
	return nil
}

func (a *App) MyList(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	items, err := a.mine.List(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No authored recipes yet.")
		return nil
	}
	for _, r := range items {
		printRecipe(a.out, r)
	}
	return nil
}
