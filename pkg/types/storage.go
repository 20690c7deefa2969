package types

// Durable storage keys. Each key holds one JSON document.
const (
	KeyRecipes        = "app_recipes"
	KeyBlogPosts      = "app_blog_posts"
	KeyMeals          = "app_meals"
	KeyDietPlan       = "app_diet_plan"
	KeyNutritionGoals = "app_nutrition_goals"
)

// Storage is the durable key-value substrate the stores mirror. Values are
// opaque blobs; callers own their encoding.
type Storage interface {
	// Get returns the blob stored under key.
	// Returns ErrKeyNotFound if nothing is stored under key.
	Get(key string) ([]byte, error)

	// Put replaces the blob stored under key.
	Put(key string, value []byte) error

	// Delete removes key. Deleting a missing key succeeds.
	Delete(key string) error

	// Close releases backend resources. Idempotent. After Close every other
	// method returns ErrStorageClosed.
	Close() error
}
