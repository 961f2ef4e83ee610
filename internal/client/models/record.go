package models

// UserRecord is the per-user remote document held by the backend document
// store, keyed by the authenticated user's identity. It is fetched whole and
// written with merge semantics; the store resolves concurrent writes
// last-writer-wins.
type UserRecord struct {
	SavedRecipes    []RecipeSummary `json:"saved_recipes"`
	MyRecipes       []RecipeSummary `json:"my_recipes"`
	UploadCount     int             `json:"upload_count"`
	LastUploadMonth string          `json:"last_upload_month"`
}

// SavedIDs returns the identifiers of the saved recipes in list order.
func (r UserRecord) SavedIDs() []string {
	ids := make([]string, 0, len(r.SavedRecipes))
	for _, s := range r.SavedRecipes {
		ids = append(ids, s.ID)
	}
	return ids
}

// RecordPatch is a partial update of a UserRecord. Nil fields are left
// untouched by the merge.
type RecordPatch struct {
	SavedRecipes    *[]RecipeSummary `json:"saved_recipes,omitempty"`
	MyRecipes       *[]RecipeSummary `json:"my_recipes,omitempty"`
	UploadCount     *int             `json:"upload_count,omitempty"`
	LastUploadMonth *string          `json:"last_upload_month,omitempty"`
}

// Apply merges the patch into rec, field by field.
func (p RecordPatch) Apply(rec *UserRecord) {
	if p.SavedRecipes != nil {
		rec.SavedRecipes = *p.SavedRecipes
	}
	if p.MyRecipes != nil {
		rec.MyRecipes = *p.MyRecipes
	}
	if p.UploadCount != nil {
		rec.UploadCount = *p.UploadCount
	}
	if p.LastUploadMonth != nil {
		rec.LastUploadMonth = *p.LastUploadMonth
	}
}
