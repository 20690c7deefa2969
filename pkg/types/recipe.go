package types

import (
	"net/url"
	"strings"
	"time"
)

// RecipePlaceholderURL is the external URL every submitted recipe receives.
const RecipePlaceholderURL = "#"

// Recipe is a community-submitted dish. A recipe is discoverable by search
// only once Approved is true; approval is never revoked.
type Recipe struct {
	ID           string    `json:"id"` // UUID v7, generated on submit.
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
	Calories     int       `json:"calories"`
	CookingTime  string    `json:"cookingTime"`
	Image        string    `json:"image"`
	URL          string    `json:"url"`
	Author       string    `json:"author,omitempty"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

// Matches reports whether the lower-cased query is a substring of the title,
// the description, or any ingredient. Approval is not considered.
func (r Recipe) Matches(lowerQuery string) bool {
	if strings.Contains(strings.ToLower(r.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(r.Description), lowerQuery) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), lowerQuery) {
			return true
		}
	}
	return false
}

// Clone returns a copy of r that shares no slices with it.
func (r Recipe) Clone() Recipe {
	r.Ingredients = append([]string(nil), r.Ingredients...)
	r.Instructions = append([]string(nil), r.Instructions...)
	return r
}

// RecipeDraft is the caller input to a recipe submission. ID, URL and
// approval are always assigned by the store.
type RecipeDraft struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Calories     int      `json:"calories"`
	CookingTime  string   `json:"cookingTime"`
	Image        string   `json:"image"`
	Author       string   `json:"author"`
}

// Validate checks the draft in the order title, description, ingredients,
// instructions, calories and returns a *ValidationError for the first rule
// that fails.
func (d RecipeDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return NewValidationError(FieldTitle, "title is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		return NewValidationError(FieldDescription, "description is required")
	}
	if len(compact(d.Ingredients)) == 0 {
		return NewValidationError(FieldIngredients, "add at least one ingredient")
	}
	if len(compact(d.Instructions)) == 0 {
		return NewValidationError(FieldInstructions, "add at least one instruction")
	}
	if d.Calories < 0 {
		return NewValidationError(FieldCalories, "calories cannot be negative")
	}
	return nil
}

// Normalize returns the recipe a valid draft produces: trimmed title and
// description, blank list entries dropped, and a fallback image when none
// was given. The caller assigns ID, URL, approval and creation time.
func (d RecipeDraft) Normalize() Recipe {
	title := strings.TrimSpace(d.Title)
	image := strings.TrimSpace(d.Image)
	if image == "" {
		image = FallbackRecipeImage(title)
	}
	return Recipe{
		Title:        title,
		Description:  strings.TrimSpace(d.Description),
		Ingredients:  compact(d.Ingredients),
		Instructions: compact(d.Instructions),
		Calories:     d.Calories,
		CookingTime:  strings.TrimSpace(d.CookingTime),
		Image:        image,
		Author:       d.Author,
	}
}

// FallbackRecipeImage returns a stock-photo URL keyed on the first word of
// title. The result is never empty.
func FallbackRecipeImage(title string) string {
	word := "food"
	if fields := strings.Fields(title); len(fields) > 0 {
		word = fields[0]
	}
	return "https://source.unsplash.com/featured/?" + url.QueryEscape(word) + ",food"
}

// compact trims every entry and drops the blank ones.
func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
