package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dietlog/internal/app"
	"github.com/mesh-intelligence/dietlog/internal/diary"
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Print the shopping list for every logged meal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			list := diary.ShoppingList(a.Journal.Meals())
			return emit(cmd, list, func(w io.Writer) {
				if len(list) == 0 {
					fmt.Fprintln(w, "shopping list is empty")
					return
				}
				for _, item := range list {
					fmt.Fprintf(w, "[ ] %s\n", item)
				}
			})
		})
	},
}
