package recipes

import "github.com/mesh-intelligence/dietlog/pkg/types"

// SeedAuthor is the author of the built-in recipes.
const SeedAuthor = "Sistema"

// seedRecipes returns the recipes used when storage holds none.
func seedRecipes() []types.Recipe {
	return []types.Recipe{
		{
			ID:           "1",
			Title:        "Pasta al Pomodoro",
			Description:  "Un classico piatto italiano semplice e gustoso",
			Ingredients:  []string{"Pasta 80g", "Pomodori 200g", "Basilico", "Olio d'oliva", "Sale"},
			Instructions: []string{"Cuocere la pasta", "Preparare il sugo", "Condire e servire"},
			Calories:     350,
			CookingTime:  "20 min",
			Image:        "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?w=800",
			URL:          types.RecipePlaceholderURL,
			Author:       SeedAuthor,
			Approved:     true,
		},
		{
			ID:           "2",
			Title:        "Insalata di Quinoa",
			Description:  "Piatto leggero e nutriente, ricco di proteine vegetali",
			Ingredients:  []string{"Quinoa 100g", "Pomodorini", "Cetrioli", "Avocado", "Limone"},
			Instructions: []string{"Cuocere la quinoa", "Tagliare le verdure", "Condire con limone e olio"},
			Calories:     280,
			CookingTime:  "25 min",
			Image:        "https://images.unsplash.com/photo-1505576399279-565b52d4ac71?w=800",
			URL:          types.RecipePlaceholderURL,
			Author:       SeedAuthor,
			Approved:     true,
		},
		{
			ID:           "3",
			Title:        "Frittata di Verdure",
			Description:  "Ricca di proteine e verdure di stagione",
			Ingredients:  []string{"Uova 2", "Zucchine", "Peperoni", "Cipolla", "Formaggio"},
			Instructions: []string{"Sbattere le uova", "Aggiungere le verdure tagliate", "Cuocere in padella"},
			Calories:     320,
			CookingTime:  "15 min",
			Image:        "https://images.unsplash.com/photo-1565958011703-44f9829ba187?w=800",
			URL:          types.RecipePlaceholderURL,
			Author:       SeedAuthor,
			Approved:     true,
		},
	}
}
