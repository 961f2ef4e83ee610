// Package models defines recipe domain types shared by the client services.
package models

// RecipeSummary is a denormalized projection of a fetched recipe, used both
// for display and as the cached payload of a saved recipe. Identifiers are
// stable and unique per source API, so a summary fetched once may be cached
// indefinitely.
type RecipeSummary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	ImageURL     string   `json:"image_url"`
	Vegetarian   bool     `json:"vegetarian"`
	Vegan        bool     `json:"vegan"`
	GlutenFree   bool     `json:"gluten_free"`
	DairyFree    bool     `json:"dairy_free"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// DietaryTags returns the summary's dietary flags as display labels.
func (r RecipeSummary) DietaryTags() []string {
	var tags []string
	if r.Vegetarian {
		tags = append(tags, "vegetarian")
	}
	if r.Vegan {
		tags = append(tags, "vegan")
	}
	if r.GlutenFree {
		tags = append(tags, "gluten-free")
	}
	if r.DairyFree {
		tags = append(tags, "dairy-free")
	}
	return tags
}
