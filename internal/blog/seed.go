package blog

import (
	"time"

	"github.com/mesh-intelligence/dietlog/pkg/types"
)

const welcomeContent = `Benvenuti nel nostro blog dedicato alla nutrizione e al benessere! Qui troverete consigli, ricette e approfondimenti per mantenere uno stile di vita sano ed equilibrato.

La corretta alimentazione è fondamentale per il nostro benessere quotidiano. Non si tratta solo di contare calorie, ma di comprendere come i diversi alimenti influenzano il nostro organismo e come possiamo combinare i cibi per ottenere il massimo beneficio.

Seguiteci per rimanere aggiornati sui nostri consigli nutrizionali!`

// seedPosts returns the welcome post, stamped at now.
func seedPosts(now time.Time) []types.BlogPost {
	return []types.BlogPost{
		{
			ID:        "1",
			Title:     "Benvenuti nel Blog Nutrizionale",
			Content:   welcomeContent,
			Excerpt:   "Benvenuti nel nostro blog dedicato alla nutrizione e al benessere! Qui troverete consigli, ricette e approfondimenti...",
			Image:     "https://images.unsplash.com/photo-1490818387583-1baba5e638af?w=800",
			CreatedAt: now.UTC(),
		},
	}
}
