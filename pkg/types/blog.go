package types

import (
	"strings"
	"time"
)

// ExcerptLength is the number of characters of the first content line kept
// in a post excerpt.
const ExcerptLength = 150

// SponsoredProduct is a product block embedded in a blog post.
type SponsoredProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	URL         string `json:"url"`
}

// Complete reports whether name, description, price and URL are all set.
// Image is optional.
func (p SponsoredProduct) Complete() bool {
	return strings.TrimSpace(p.Name) != "" &&
		strings.TrimSpace(p.Description) != "" &&
		strings.TrimSpace(p.Price) != "" &&
		strings.TrimSpace(p.URL) != ""
}

// BlogPost is an editorial article. RecipeID is a copied identifier, not a
// live reference: deleting the recipe leaves it dangling.
type BlogPost struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Content           string             `json:"content"`
	Image             string             `json:"image,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	Excerpt           string             `json:"excerpt"`
	RecipeID          string             `json:"recipeId,omitempty"`
	SponsoredProducts []SponsoredProduct `json:"sponsoredProducts,omitempty"`
}

// Clone returns a copy of p that shares no slices with it.
func (p BlogPost) Clone() BlogPost {
	if p.SponsoredProducts != nil {
		p.SponsoredProducts = append([]SponsoredProduct(nil), p.SponsoredProducts...)
	}
	return p
}

// BlogDraft is the caller input to post creation.
type BlogDraft struct {
	Title             string             `json:"title"`
	Content           string             `json:"content"`
	Image             string             `json:"image,omitempty"`
	RecipeID          string             `json:"recipeId,omitempty"`
	SponsoredProducts []SponsoredProduct `json:"sponsoredProducts,omitempty"`
}

// BlogPatch holds the fields of a partial post update. Nil fields are left
// unchanged.
type BlogPatch struct {
	Title             *string             `json:"title,omitempty"`
	Content           *string             `json:"content,omitempty"`
	Image             *string             `json:"image,omitempty"`
	Excerpt           *string             `json:"excerpt,omitempty"`
	RecipeID          *string             `json:"recipeId,omitempty"`
	SponsoredProducts *[]SponsoredProduct `json:"sponsoredProducts,omitempty"`
}

// Apply merges the non-nil fields of patch into p.
func (patch BlogPatch) Apply(p *BlogPost) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.RecipeID != nil {
		p.RecipeID = *patch.RecipeID
	}
	if patch.SponsoredProducts != nil {
		p.SponsoredProducts = append([]SponsoredProduct(nil), (*patch.SponsoredProducts)...)
	}
}

// Excerpt derives a post summary: the first line of content, cut to
// ExcerptLength characters, trimmed, followed by "...".
func Excerpt(content string) string {
	first, _, _ := strings.Cut(content, "\n")
	if r := []rune(first); len(r) > ExcerptLength {
		first = string(r[:ExcerptLength])
	}
	return strings.TrimSpace(first) + "..."
}
