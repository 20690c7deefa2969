// Package editorial implements the admin publishing flow: a post, an
// optional embedded recipe, and optional sponsored products saved together.
package editorial

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/dietlog/internal/logging"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// AdminAuthor is the author recorded on recipes published with a post.
const AdminAuthor = "Admin"

// ErrPostNotFound is returned when Request.PostID names no post.
var ErrPostNotFound = errors.New("post not found")

// Request is one submission of the admin editor.
type Request struct {
	PostID  string `json:"id,omitempty"` // Set to edit an existing post.
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`

	// Recipe, when set, is saved as an approved recipe linked to the post.
	Recipe *types.RecipeDraft `json:"recipe,omitempty"`

	// SponsoredProducts, when non-nil, must contain at least one complete
	// product. Incomplete entries are dropped.
	SponsoredProducts []types.SponsoredProduct `json:"sponsoredProducts,omitempty"`
}

// RecipeStore is the part of the recipe store a Publisher writes to.
type RecipeStore interface {
	Submit(draft types.RecipeDraft) (types.Recipe, error)
	Approve(id string) bool
	Remove(id string) bool
}

// PostStore is the part of the blog store a Publisher writes to.
type PostStore interface {
	Get(id string) (types.BlogPost, bool)
	Create(draft types.BlogDraft) types.BlogPost
	Update(id string, patch types.BlogPatch) (types.BlogPost, bool)
}

// Publisher saves editor submissions across the recipe and blog stores.
type Publisher struct {
	recipes RecipeStore
	posts   PostStore
	log     *logrus.Entry
}

// NewPublisher returns a Publisher over the given stores.
func NewPublisher(r RecipeStore, p PostStore, logger logrus.FieldLogger) *Publisher {
	return &Publisher{recipes: r, posts: p, log: logging.Component(logger, "editorial")}
}

// Publish validates req and creates the post, or updates it when PostID is
// set. Nothing is written when validation fails.
func (p *Publisher) Publish(req Request) (types.BlogPost, error) {
	if strings.TrimSpace(req.Title) == "" {
		return types.BlogPost{}, types.NewValidationError(types.FieldTitle, "title and content are required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return types.BlogPost{}, types.NewValidationError(types.FieldContent, "title and content are required")
	}

	var products []types.SponsoredProduct
	if req.SponsoredProducts != nil {
		for _, sp := range req.SponsoredProducts {
			if sp.Complete() {
				products = append(products, sp)
			}
		}
		if len(products) == 0 {
			return types.BlogPost{}, types.NewValidationError(types.FieldSponsoredProducts,
				"add at least one product with name, description, price and url")
		}
	}

	if req.Recipe != nil {
		if err := validateRecipe(*req.Recipe); err != nil {
			return types.BlogPost{}, err
		}
	}

	if req.PostID != "" {
		if _, ok := p.posts.Get(req.PostID); !ok {
			return types.BlogPost{}, ErrPostNotFound
		}
	}

	var recipeID string
	if req.Recipe != nil {
		draft := *req.Recipe
		draft.Author = AdminAuthor
		r, err := p.recipes.Submit(draft)
		if err != nil {
			return types.BlogPost{}, err
		}
		p.recipes.Approve(r.ID)
		recipeID = r.ID
	}

	if req.PostID == "" {
		post := p.posts.Create(types.BlogDraft{
			Title:             req.Title,
			Content:           req.Content,
			Image:             req.Image,
			RecipeID:          recipeID,
			SponsoredProducts: products,
		})
		p.log.WithFields(logrus.Fields{"id": post.ID, "recipe": recipeID}).Info("post published")
		return post, nil
	}

	excerpt := types.Excerpt(req.Content)
	post, ok := p.posts.Update(req.PostID, types.BlogPatch{
		Title:             &req.Title,
		Content:           &req.Content,
		Image:             &req.Image,
		Excerpt:           &excerpt,
		RecipeID:          &recipeID,
		SponsoredProducts: &products,
	})
	if !ok {
		// The post went away after the existence check.
		if recipeID != "" {
			p.recipes.Remove(recipeID)
			p.log.WithFields(logrus.Fields{"id": req.PostID, "recipe": recipeID}).Warn("post vanished, recipe withdrawn")
		}
		return types.BlogPost{}, ErrPostNotFound
	}
	p.log.WithFields(logrus.Fields{"id": post.ID, "recipe": recipeID}).Info("post republished")
	return post, nil
}

// validateRecipe applies the editor's stricter rule on top of the draft
// checks: every ingredient row must be filled in.
func validateRecipe(d types.RecipeDraft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	for _, ing := range d.Ingredients {
		if strings.TrimSpace(ing) == "" {
			return types.NewValidationError(types.FieldIngredients, "all recipe fields are required")
		}
	}
	return nil
}
