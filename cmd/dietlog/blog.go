package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dietlog/internal/app"
	"github.com/mesh-intelligence/dietlog/internal/editorial"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

var blogCmd = &cobra.Command{
	Use:   "blog",
	Short: "Read and edit the nutrition blog",
}

var blogFlags struct {
	title    string
	content  string
	image    string
	excerpt  string
	recipeID string
	file     string
}

var blogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			posts := a.Posts.ListAll()
			return emit(cmd, posts, func(w io.Writer) {
				if len(posts) == 0 {
					fmt.Fprintln(w, "no posts")
					return
				}
				fmt.Fprintln(w, "ID\tDATE\tTITLE")
				for _, p := range posts {
					fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.CreatedAt.Local().Format(types.DateLayout), p.Title)
				}
			})
		})
	},
}

var blogLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the newest post",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			p, ok := a.Posts.Latest()
			if !ok {
				return userError(fmt.Errorf("no posts"))
			}
			return printPost(cmd, p)
		})
	},
}

var blogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			p, ok := a.Posts.Get(args[0])
			if !ok {
				return notFound("post", args[0])
			}
			return printPost(cmd, p)
		})
	},
}

var blogCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a post; the excerpt is derived from the first line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			p := a.Posts.Create(types.BlogDraft{
				Title:    blogFlags.title,
				Content:  blogFlags.content,
				Image:    blogFlags.image,
				RecipeID: blogFlags.recipeID,
			})
			return emit(cmd, p, func(w io.Writer) {
				fmt.Fprintf(w, "created %s\n", p.ID)
			})
		})
	},
}

var blogUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change the given fields of a post",
	Long: `Update merges only the flags that are set into the post. The excerpt is
not re-derived from new content; pass --excerpt to change it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch types.BlogPatch
		set := func(name string, v *string) *string {
			if cmd.Flags().Changed(name) {
				return v
			}
			return nil
		}
		patch.Title = set("title", &blogFlags.title)
		patch.Content = set("content", &blogFlags.content)
		patch.Image = set("image", &blogFlags.image)
		patch.Excerpt = set("excerpt", &blogFlags.excerpt)
		patch.RecipeID = set("recipe-id", &blogFlags.recipeID)

		return withApp(func(a *app.App) error {
			p, ok := a.Posts.Update(args[0], patch)
			if !ok {
				return notFound("post", args[0])
			}
			return emit(cmd, p, func(w io.Writer) {
				fmt.Fprintf(w, "updated %s\n", p.ID)
			})
		})
	},
}

var blogDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			if !a.Posts.Remove(args[0]) {
				return notFound("post", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		})
	},
}

var blogPublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a post with an optional recipe and sponsored products",
	Long: `Publish reads an editor submission as JSON from --file ("-" for stdin).
An embedded recipe is saved approved, authored by Admin, and linked to the
post. Incomplete sponsored products are dropped; at least one must remain
when the list is present. Set "id" to republish an existing post.

Example document:
  {"title": "Zuppe d'inverno", "content": "...",
   "recipe": {"title": "Minestrone", "description": "...",
              "ingredients": ["carote"], "instructions": ["Cuoci"]},
   "sponsoredProducts": [{"name": "Olio", "description": "...",
                          "price": "9,99 €", "url": "https://..."}]}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req editorial.Request
		if err := readJSONFile(cmd, blogFlags.file, &req); err != nil {
			return err
		}
		return withApp(func(a *app.App) error {
			p, err := a.Publisher.Publish(req)
			if err != nil {
				if errors.Is(err, editorial.ErrPostNotFound) {
					return notFound("post", req.PostID)
				}
				return validation(err)
			}
			return emit(cmd, p, func(w io.Writer) {
				fmt.Fprintf(w, "published %s\n", p.ID)
			})
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{blogCreateCmd, blogUpdateCmd} {
		c.Flags().StringVar(&blogFlags.title, "title", "", "post title")
		c.Flags().StringVar(&blogFlags.content, "content", "", "post content, paragraphs separated by newlines")
		c.Flags().StringVar(&blogFlags.image, "image", "", "image URL")
		c.Flags().StringVar(&blogFlags.recipeID, "recipe-id", "", "id of a linked recipe")
	}
	blogUpdateCmd.Flags().StringVar(&blogFlags.excerpt, "excerpt", "", "replacement excerpt")
	blogPublishCmd.Flags().StringVarP(&blogFlags.file, "file", "f", "-", "JSON submission file")

	blogCmd.AddCommand(blogListCmd, blogLatestCmd, blogShowCmd, blogCreateCmd,
		blogUpdateCmd, blogDeleteCmd, blogPublishCmd)
}

func printPost(cmd *cobra.Command, p types.BlogPost) error {
	return emit(cmd, p, func(w io.Writer) {
		fmt.Fprintf(w, "%s\n%s\n\n%s\n", p.Title, p.CreatedAt.Local().Format("2006-01-02 15:04"), p.Content)
		if p.RecipeID != "" {
			fmt.Fprintf(w, "\nRecipe:\t%s\n", p.RecipeID)
		}
		for _, sp := range p.SponsoredProducts {
			fmt.Fprintf(w, "Sponsored:\t%s\t%s\t%s\n", sp.Name, sp.Price, sp.URL)
		}
	})
}
