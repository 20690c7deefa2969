package diary

import (
	"sort"

	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// ShoppingList returns the sorted, deduplicated union of every ingredient
// across meals. The result does not depend on meal order.
func ShoppingList(meals []types.Meal) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, m := range meals {
		for _, ing := range m.Ingredients {
			if !seen[ing] {
				seen[ing] = true
				out = append(out, ing)
			}
		}
	}
	sort.Strings(out)
	return out
}
