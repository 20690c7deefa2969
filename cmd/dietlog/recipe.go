package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dietlog/internal/app"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Search, submit and moderate community recipes",
}

var recipeDraft struct {
	title        string
	description  string
	ingredients  []string
	instructions []string
	calories     int
	cookingTime  string
	image        string
	author       string
}

var recipeSearchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search approved recipes by title, description or ingredient",
	Long: `Search returns up to six approved recipes whose title, description or
any ingredient contains the query, ignoring case. An empty query lists the
first approved recipes.

Example:
  dietlog recipe search pasta
  dietlog recipe search "olio extravergine"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			return printRecipes(cmd, a.Recipes.Search(strings.Join(args, " ")))
		})
	},
}

var recipeSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a recipe for review",
	Long: `Submit validates the recipe and stores it unapproved. It becomes
searchable once a moderator approves it.

Example:
  dietlog recipe submit --title "Panzanella" --description "Insalata di pane" \
    --ingredient "pane raffermo" --ingredient pomodori \
    --instruction "Bagna il pane" --instruction "Mescola" --calories 300`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		author := recipeDraft.author
		if author == "" {
			author = cfg.user
		}
		draft := types.RecipeDraft{
			Title:        recipeDraft.title,
			Description:  recipeDraft.description,
			Ingredients:  recipeDraft.ingredients,
			Instructions: recipeDraft.instructions,
			Calories:     recipeDraft.calories,
			CookingTime:  recipeDraft.cookingTime,
			Image:        recipeDraft.image,
			Author:       author,
		}
		return withApp(func(a *app.App) error {
			r, err := a.Recipes.Submit(draft)
			if err != nil {
				return validation(err)
			}
			return emit(cmd, r, func(w io.Writer) {
				fmt.Fprintf(w, "submitted %s for review\n", r.ID)
			})
		})
	},
}

var recipeMineCmd = &cobra.Command{
	Use:   "mine [author]",
	Short: "List recipes submitted by an author (default: user.name)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		author := cfg.user
		if len(args) == 1 {
			author = args[0]
		}
		if author == "" {
			return userError(fmt.Errorf("no author given and user.name is not configured"))
		}
		return withApp(func(a *app.App) error {
			return printRecipes(cmd, a.Recipes.ListByAuthor(author))
		})
	},
}

var recipePendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List recipes awaiting approval",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			return printRecipes(cmd, a.Recipes.ListPendingReview())
		})
	},
}

var recipeApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a recipe so search can find it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			if !a.Recipes.Approve(args[0]) {
				return notFound("recipe", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "approved %s\n", args[0])
			return nil
		})
	},
}

var recipeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			if !a.Recipes.Remove(args[0]) {
				return notFound("recipe", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		})
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			r, ok := a.Recipes.Get(args[0])
			if !ok {
				return notFound("recipe", args[0])
			}
			return emit(cmd, r, func(w io.Writer) {
				fmt.Fprintf(w, "%s\n%s\n\n", r.Title, r.Description)
				fmt.Fprintf(w, "Calories:\t%d kcal\n", r.Calories)
				if r.CookingTime != "" {
					fmt.Fprintf(w, "Time:\t%s\n", r.CookingTime)
				}
				fmt.Fprintf(w, "Author:\t%s\n", r.Author)
				fmt.Fprintf(w, "Approved:\t%t\n\nIngredients:\n", r.Approved)
				for _, ing := range r.Ingredients {
					fmt.Fprintf(w, "  - %s\n", ing)
				}
				fmt.Fprintln(w, "\nInstructions:")
				for i, step := range r.Instructions {
					fmt.Fprintf(w, "  %d. %s\n", i+1, step)
				}
			})
		})
	},
}

func init() {
	f := recipeSubmitCmd.Flags()
	f.StringVar(&recipeDraft.title, "title", "", "recipe title (required)")
	f.StringVar(&recipeDraft.description, "description", "", "short description (required)")
	f.StringArrayVar(&recipeDraft.ingredients, "ingredient", nil, "ingredient, repeatable (at least one)")
	f.StringArrayVar(&recipeDraft.instructions, "instruction", nil, "instruction step, repeatable (at least one)")
	f.IntVar(&recipeDraft.calories, "calories", 0, "calories per serving")
	f.StringVar(&recipeDraft.cookingTime, "time", "", "cooking time, e.g. \"30 min\"")
	f.StringVar(&recipeDraft.image, "image", "", "image URL (default: a stock photo for the title)")
	f.StringVar(&recipeDraft.author, "author", "", "author name (default: user.name)")

	recipeCmd.AddCommand(recipeSearchCmd, recipeSubmitCmd, recipeMineCmd, recipePendingCmd,
		recipeApproveCmd, recipeDeleteCmd, recipeShowCmd)
}

func printRecipes(cmd *cobra.Command, recipes []types.Recipe) error {
	if recipes == nil {
		recipes = []types.Recipe{}
	}
	return emit(cmd, recipes, func(w io.Writer) {
		if len(recipes) == 0 {
			fmt.Fprintln(w, "no recipes")
			return
		}
		fmt.Fprintln(w, "ID\tTITLE\tKCAL\tAUTHOR\tAPPROVED")
		for _, r := range recipes {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%t\n", r.ID, r.Title, r.Calories, r.Author, r.Approved)
		}
	})
}
