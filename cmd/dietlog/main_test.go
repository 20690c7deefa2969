package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/dietlog/internal/storage"
	"github.com/mesh-intelligence/dietlog/pkg/dietlog"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// monday is 2026-03-02 at 13:00 local time.
var monday = time.Date(2026, 3, 2, 13, 0, 0, 0, time.Local)

// testEnv points the CLI at fresh config and data directories.
func testEnv(t *testing.T) (configDir, dataDir string) {
	t.Helper()
	configDir = filepath.Join(t.TempDir(), "config")
	dataDir = filepath.Join(t.TempDir(), "data")
	t.Setenv("DIETLOG_CONFIG_DIR", configDir)
	t.Setenv("DIETLOG_DATA_DIR", dataDir)

	orig := now
	now = func() time.Time { return monday }
	t.Cleanup(func() { now = orig })
	return configDir, dataDir
}

// resetFlags restores every flag of c and its subcommands to its default,
// since cobra commands here are package-level and keep parsed values.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, "", args...)
	require.NoError(t, err, "dietlog %s", strings.Join(args, " "))
	return out
}

func decodeOut[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestVersion(t *testing.T) {
	testEnv(t)
	out := mustExecute(t, "version")
	assert.Equal(t, "dietlog "+dietlog.Version+"\n", out)
}

func TestInitWritesConfigAndStorage(t *testing.T) {
	configDir, dataDir := testEnv(t)

	out := mustExecute(t, "init")
	assert.Contains(t, out, "dietlog initialized")

	data, err := os.ReadFile(filepath.Join(configDir, configFileExt))
	require.NoError(t, err)
	var cf configFile
	require.NoError(t, yaml.Unmarshal(data, &cf))
	assert.Equal(t, types.BackendSQLite, cf.Backend)
	assert.Equal(t, defaultServerPort, cf.Server.Port)

	_, err = os.Stat(filepath.Join(dataDir, storage.DatabaseFile))
	assert.NoError(t, err)

	// Idempotent.
	mustExecute(t, "init")
}

func TestInitRejectsUnknownBackend(t *testing.T) {
	testEnv(t)
	_, err := execute(t, "", "init", "--backend", "redis")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestInitFileBackend(t *testing.T) {
	configDir, dataDir := testEnv(t)
	mustExecute(t, "init", "--backend", types.BackendFile)
	mustExecute(t, "meal", "add", "-i", "mela")

	data, err := os.ReadFile(filepath.Join(configDir, configFileExt))
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: file")

	_, err = os.Stat(filepath.Join(dataDir, types.KeyMeals+".json"))
	assert.NoError(t, err)
}

func TestRecipeCommands(t *testing.T) {
	testEnv(t)

	out := mustExecute(t, "--json", "recipe", "submit",
		"--title", "Panzanella", "--description", "Insalata di pane",
		"--ingredient", "pane raffermo", "--ingredient", "pomodori",
		"--instruction", "Bagna il pane", "--instruction", "Mescola",
		"--calories", "300", "--author", "Giulia")
	r := decodeOut[types.Recipe](t, out)
	assert.False(t, r.Approved)
	assert.Equal(t, []string{"pane raffermo", "pomodori"}, r.Ingredients)

	pending := decodeOut[[]types.Recipe](t, mustExecute(t, "--json", "recipe", "pending"))
	require.Len(t, pending, 1)
	assert.Equal(t, r.ID, pending[0].ID)

	assert.Empty(t, decodeOut[[]types.Recipe](t, mustExecute(t, "--json", "recipe", "search", "panzanella")))

	mustExecute(t, "recipe", "approve", r.ID)
	found := decodeOut[[]types.Recipe](t, mustExecute(t, "--json", "recipe", "search", "PANE"))
	require.Len(t, found, 1)

	mine := decodeOut[[]types.Recipe](t, mustExecute(t, "--json", "recipe", "mine", "Giulia"))
	assert.Len(t, mine, 1)

	assert.Contains(t, mustExecute(t, "recipe", "show", r.ID), "Panzanella")

	mustExecute(t, "recipe", "delete", r.ID)
	_, err := execute(t, "", "recipe", "show", r.ID)
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestRecipeSubmitValidation(t *testing.T) {
	testEnv(t)
	_, err := execute(t, "", "recipe", "submit", "--title", "Solo titolo")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
	ve, ok := types.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, types.FieldDescription, ve.Field)
}

func TestRecipeSearchSeeds(t *testing.T) {
	testEnv(t)
	out := mustExecute(t, "recipe", "search")
	assert.Contains(t, out, "TITLE")
	assert.Len(t, decodeOut[[]types.Recipe](t, mustExecute(t, "--json", "recipe", "search")), 3)
}

func TestBlogCommands(t *testing.T) {
	testEnv(t)

	created := decodeOut[types.BlogPost](t, mustExecute(t, "--json", "blog", "create",
		"--title", "Hello", "--content", "Line one\nLine two"))
	assert.Equal(t, "Line one...", created.Excerpt)

	updated := decodeOut[types.BlogPost](t, mustExecute(t, "--json", "blog", "update", created.ID, "--title", "Hi"))
	assert.Equal(t, "Hi", updated.Title)
	assert.Equal(t, "Line one\nLine two", updated.Content)
	assert.Equal(t, "Line one...", updated.Excerpt)

	posts := decodeOut[[]types.BlogPost](t, mustExecute(t, "--json", "blog", "list"))
	assert.Len(t, posts, 2)

	mustExecute(t, "blog", "delete", created.ID)
	_, err := execute(t, "", "blog", "show", created.ID)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestBlogPublishFromStdin(t *testing.T) {
	testEnv(t)
	doc := `{"title": "Zuppe", "content": "Inverno\nCaldo",
	  "recipe": {"title": "Minestrone", "description": "Zuppa di verdure",
	             "ingredients": ["carote"], "instructions": ["Cuoci"]},
	  "sponsoredProducts": [{"name": "Olio", "description": "EVO", "price": "9,99 €", "url": "https://shop.example/olio"},
	                        {"name": "incompleto"}]}`

	out, err := execute(t, doc, "--json", "blog", "publish")
	require.NoError(t, err)
	post := decodeOut[types.BlogPost](t, out)
	assert.Equal(t, "Inverno...", post.Excerpt)
	require.Len(t, post.SponsoredProducts, 1)
	require.NotEmpty(t, post.RecipeID)

	found := decodeOut[[]types.Recipe](t, mustExecute(t, "--json", "recipe", "search", "minestrone"))
	require.Len(t, found, 1)
	assert.Equal(t, "Admin", found[0].Author)

	_, err = execute(t, `{"title": "t", "content": "c", "sponsoredProducts": []}`, "blog", "publish")
	assert.Equal(t, exitUserError, exitCode(err))

	_, err = execute(t, `{not json`, "blog", "publish")
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestMealCommandsAndShopping(t *testing.T) {
	testEnv(t)

	meal := decodeOut[types.Meal](t, mustExecute(t, "--json", "meal", "add", "-i", "pane, latte"))
	assert.Equal(t, types.MealLunch, meal.Type)

	mustExecute(t, "meal", "add", "--type", "dinner", "-i", "uova, latte", "--at", "2026-03-02 20:30")

	meals := decodeOut[[]types.Meal](t, mustExecute(t, "--json", "meal", "list"))
	require.Len(t, meals, 2)
	assert.Equal(t, types.MealDinner, meals[1].Type)

	list := decodeOut[[]string](t, mustExecute(t, "--json", "shopping"))
	assert.Equal(t, []string{"latte", "pane", "uova"}, list)
	assert.Contains(t, mustExecute(t, "shopping"), "[ ] latte")

	_, err := execute(t, "", "meal", "add", "--type", "brunch", "-i", "x")
	assert.Equal(t, exitUserError, exitCode(err))
	_, err = execute(t, "", "meal", "add", "-i", " , ")
	assert.Equal(t, exitUserError, exitCode(err))
	_, err = execute(t, "", "meal", "add", "-i", "x", "--at", "yesterday")
	assert.Equal(t, exitUserError, exitCode(err))

	mustExecute(t, "meal", "clear")
	assert.Contains(t, mustExecute(t, "meal", "list"), "no meals logged")
}

func TestPlanCommands(t *testing.T) {
	testEnv(t)

	_, err := execute(t, "", "plan", "today")
	assert.Equal(t, exitUserError, exitCode(err))
	assert.True(t, errors.Is(err, types.ErrNoActivePlan))

	doc := `{"name": "Settimana", "startDate": "2026-03-02", "endDate": "2026-03-08",
	  "meals": [{"type": "lunch", "dayOfWeek": 1, "items": [{"ingredient": "farro", "amount": "80g"}, {"ingredient": "ceci"}]},
	            {"type": "dinner", "dayOfWeek": 2, "items": [{"ingredient": "orzo"}]}]}`
	out, err := execute(t, doc, "plan", "create")
	require.NoError(t, err)
	assert.Contains(t, out, "Settimana")

	today := decodeOut[[]types.PlannedMeal](t, mustExecute(t, "--json", "plan", "today"))
	require.Len(t, today, 1)

	meal := decodeOut[types.Meal](t, mustExecute(t, "--json", "meal", "complete", "1"))
	assert.Equal(t, types.MealLunch, meal.Type)
	assert.Equal(t, []string{"farro", "ceci"}, meal.Ingredients)

	_, err = execute(t, "", "meal", "complete", "2")
	assert.Equal(t, exitUserError, exitCode(err))

	_, err = execute(t, `{"name": ""}`, "plan", "create")
	assert.Equal(t, exitUserError, exitCode(err))

	assert.Contains(t, mustExecute(t, "plan", "show"), "farro 80g")
	mustExecute(t, "plan", "delete")
	_, err = execute(t, "", "plan", "delete")
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestGoalsCommands(t *testing.T) {
	testEnv(t)

	g := decodeOut[types.NutritionGoals](t, mustExecute(t, "--json", "goals", "show"))
	assert.Equal(t, types.DefaultNutritionGoals, g)

	g = decodeOut[types.NutritionGoals](t, mustExecute(t, "--json", "goals", "set", "--calories", "1800"))
	assert.Equal(t, 1800, g.Calories)
	assert.Equal(t, types.DefaultNutritionGoals.Protein, g.Protein)

	_, err := execute(t, "", "goals", "set", "--fat", "0")
	assert.Equal(t, exitUserError, exitCode(err))

	r := decodeOut[progressReport](t, mustExecute(t, "--json", "goals", "progress"))
	assert.Equal(t, 83, r.Progress.Calories)
	assert.Equal(t, 1800, r.Goals.Calories)
}

func TestUnknownCommandIsUserError(t *testing.T) {
	testEnv(t)
	_, err := execute(t, "", "frobnicate")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSysError, exitCode(sysError(errors.New("disk"))))
	assert.Equal(t, exitUserError, exitCode(userError(errors.New("bad input"))))
	assert.Equal(t, exitUserError, exitCode(errors.New("unknown flag")))
}
