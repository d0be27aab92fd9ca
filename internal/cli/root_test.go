package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
	pkgio "github.com/matzehuels/factorygraph/pkg/io"
)

const testClasses = `class,name
Desc_OreIron_C,Iron Ore
Desc_IronIngot_C,Iron Ingot
Desc_IronPlate_C,Iron Plate
`

const testRecipes = `{
  "Recipe_IngotIron_C": {
    "recipeInfo": {"class": "Recipe_IngotIron_C", "name": "Iron Ingot"},
    "machine": {"class": []},
    "rate": 30,
    "ingredients": [{"item": "Desc_OreIron_C", "amount": 1}],
    "products": [{"item": "Desc_IronIngot_C", "amount": 1}]
  },
  "Recipe_IronPlate_C": {
    "recipeInfo": {"class": "Recipe_IronPlate_C", "name": "Iron Plate"},
    "machine": {"class": ["Build_ConstructorMk1_C"]},
    "rate": 20,
    "ingredients": [{"item": "Desc_IronIngot_C", "amount": 3}],
    "products": [{"item": "Desc_IronPlate_C", "amount": 2}]
  }
}`

// writeData writes the fixture files into a fresh working directory and
// returns their paths.
func writeData(t *testing.T) (classes, recipes string) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	classes = filepath.Join(dir, "classes.csv")
	recipes = filepath.Join(dir, "recipes.json")
	if err := os.WriteFile(classes, []byte(testClasses), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(recipes, []byte(testRecipes), 0o644); err != nil {
		t.Fatal(err)
	}
	return classes, recipes
}

type result struct {
	out  string
	logs string
	err  error
}

func execute(t *testing.T, args ...string) result {
	t.Helper()
	var logs, out, errOut bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return result{out: out.String(), logs: logs.String(), err: err}
}

// run executes args against the fixture data.
func run(t *testing.T, args ...string) result {
	t.Helper()
	classes, recipes := writeData(t)
	return execute(t, append([]string{"--classes", classes, "--recipes", recipes}, args...)...)
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	want := []string{"info", "items", "item", "recipes", "recipe", "search", "between", "chain", "loops", "graph", "serve", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestItemsCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"All", []string{"items"}, []string{"Desc_OreIron_C", "Iron Plate", "3 items"}},
		{"Filtered", []string{"items", "plate"}, []string{"Desc_IronPlate_C", "1 item"}},
		{"NoMatch", []string{"items", "copper"}, []string{"0 items"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			if res.err != nil {
				t.Fatalf("execute: %v", res.err)
			}
			for _, w := range tt.want {
				if !strings.Contains(res.out, w) {
					t.Errorf("output missing %q:\n%s", w, res.out)
				}
			}
		})
	}
}

func TestItemCommand(t *testing.T) {
	res := run(t, "item", "iron ingot", "--depth", "0")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	want := "Iron Ingot [Desc_IronIngot_C]\n  class: Desc_IronIngot_C\n  name: Iron Ingot\n  children: 1\n"
	if res.out != want {
		t.Errorf("output =\n%s\nwant\n%s", res.out, want)
	}

	res = run(t, "item", "Desc_IronIngot_C", "--dir", "up", "--depth", "1")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	if !strings.Contains(res.out, "  parents: 1\n    Iron Ore [Desc_OreIron_C]\n") {
		t.Errorf("output missing parent:\n%s", res.out)
	}
}

func TestItemCommandJSON(t *testing.T) {
	res := run(t, "--json", "item", "Iron Plate")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	var got struct {
		Class   string   `json:"class"`
		Parents []string `json:"parents"`
	}
	if err := json.Unmarshal([]byte(res.out), &got); err != nil {
		t.Fatalf("decode %q: %v", res.out, err)
	}
	if got.Class != "Desc_IronPlate_C" || len(got.Parents) != 1 || got.Parents[0] != "Desc_IronIngot_C" {
		t.Errorf("item = %+v", got)
	}
}

func TestRecipeCommand(t *testing.T) {
	res := run(t, "recipe", "Recipe_IngotIron_C", "--depth", "0")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	for _, w := range []string{
		"Iron Ingot [Recipe_IngotIron_C]\n",
		"  machine: None\n",
		"  rate: 30\n",
		"  ingredient x1:\n    Iron Ore [Desc_OreIron_C]\n",
	} {
		if !strings.Contains(res.out, w) {
			t.Errorf("output missing %q:\n%s", w, res.out)
		}
	}

	res = run(t, "recipe", "Iron Plate", "--max-listed", "0")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	if strings.Contains(res.out, "ingredient x") {
		t.Errorf("--max-listed 0 still expanded ingredients:\n%s", res.out)
	}
}

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{"AnyRole", []string{"search", "Iron Ingot"}, []string{"Recipe_IngotIron_C", "Recipe_IronPlate_C", "2 recipes"}, nil},
		{"Product", []string{"search", "Iron Ingot", "--product"}, []string{"Recipe_IngotIron_C", "1 recipe"}, []string{"Recipe_IronPlate_C"}},
		{"Ingredient", []string{"search", "Iron Ingot", "--ingredient"}, []string{"Recipe_IronPlate_C", "Build_ConstructorMk1_C"}, []string{"Recipe_IngotIron_C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			if res.err != nil {
				t.Fatalf("execute: %v", res.err)
			}
			for _, w := range tt.want {
				if !strings.Contains(res.out, w) {
					t.Errorf("output missing %q:\n%s", w, res.out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(res.out, w) {
					t.Errorf("output contains %q:\n%s", w, res.out)
				}
			}
		})
	}
}

func TestBetweenCommand(t *testing.T) {
	res := run(t, "--json", "between", "Iron Ingot", "Iron Plate")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	var got []pkgio.RecipeView
	if err := json.Unmarshal([]byte(res.out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Class != "Recipe_IronPlate_C" {
		t.Errorf("between = %+v", got)
	}
}

func TestChainCommand(t *testing.T) {
	res := run(t, "--json", "chain", "Iron Ore", "Iron Plate")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	var hops []pkgio.HopView
	if err := json.Unmarshal([]byte(res.out), &hops); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(hops) != 2 || hops[0].From != "Desc_OreIron_C" || hops[1].To != "Desc_IronPlate_C" {
		t.Errorf("hops = %+v", hops)
	}

	res = run(t, "chain", "Iron Ore", "Iron Plate")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	if !strings.Contains(res.out, "Iron Ore") || !strings.Contains(res.out, "→ Iron Plate") {
		t.Errorf("chain text:\n%s", res.out)
	}

	res = run(t, "chain", "Iron Plate", "Iron Ore")
	if !fgerrors.Is(res.err, fgerrors.ErrCodeNoRoute) {
		t.Errorf("reverse chain error = %v, want NO_ROUTE", res.err)
	}
}

func TestLoopsCommand(t *testing.T) {
	res := run(t, "loops")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	if !strings.Contains(res.out, "No production loops") {
		t.Errorf("output:\n%s", res.out)
	}
}

func TestGraphCommand(t *testing.T) {
	res := run(t, "graph", "Iron Ingot")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	if !strings.HasPrefix(res.out, "digraph G {") || !strings.Contains(res.out, `"Desc_IronIngot_C" -> "Desc_IronPlate_C"`) {
		t.Errorf("dot output:\n%s", res.out)
	}

	classes, recipes := writeData(t)
	out := filepath.Join(t.TempDir(), "ingot.dot")
	res = execute(t, "--classes", classes, "--recipes", recipes, "graph", "Iron Ingot", "--dir", "up", "-o", out)
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `"Desc_OreIron_C" -> "Desc_IronIngot_C"`) {
		t.Errorf("file contents:\n%s", data)
	}
	if !strings.Contains(res.out, "Rendered DOT") {
		t.Errorf("status output:\n%s", res.out)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code fgerrors.Code
	}{
		{"UnknownItem", []string{"item", "Desc_Nope_C"}, fgerrors.ErrCodeItemNotFound},
		{"UnknownRecipe", []string{"recipe", "Recipe_Nope_C"}, fgerrors.ErrCodeRecipeNotFound},
		{"BadDirection", []string{"item", "Iron Ore", "--dir", "sideways"}, fgerrors.ErrCodeInvalidInput},
		{"BadFormat", []string{"graph", "Iron Ore", "-f", "png"}, fgerrors.ErrCodeInvalidInput},
		{"MissingConfig", []string{"--config", "nope.toml", "items"}, fgerrors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			if !fgerrors.Is(res.err, tt.code) {
				t.Errorf("error = %v, want %s", res.err, tt.code)
			}
		})
	}
}

func TestMissingDataFile(t *testing.T) {
	t.Chdir(t.TempDir())
	res := execute(t, "--classes", "missing.csv", "--recipes", "missing.json", "items")
	if !fgerrors.Is(res.err, fgerrors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", res.err)
	}
}

func TestConfigSources(t *testing.T) {
	classes, recipes := writeData(t)

	// Default config file in the working directory.
	toml := "[data]\nclasses = \"" + filepath.ToSlash(classes) + "\"\nrecipes = \"" + filepath.ToSlash(recipes) + "\"\n"
	if err := os.WriteFile("factorygraph.toml", []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}
	res := execute(t, "items")
	if res.err != nil {
		t.Fatalf("config file: %v", res.err)
	}
	if !strings.Contains(res.out, "3 items") {
		t.Errorf("output:\n%s", res.out)
	}

	// Environment beats the file.
	t.Setenv("FACTORYGRAPH_DATA_CLASSES", "env-missing.csv")
	res = execute(t, "items")
	if !fgerrors.Is(res.err, fgerrors.ErrCodeFileNotFound) {
		t.Errorf("env override: error = %v, want FILE_NOT_FOUND", res.err)
	}

	// Flags beat the environment.
	res = execute(t, "--classes", classes, "items")
	if res.err != nil {
		t.Errorf("flag override: %v", res.err)
	}
}

func TestLoadLogsProgress(t *testing.T) {
	res := run(t, "info")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	if !strings.Contains(res.logs, "Loaded 3 items and 2 recipes") {
		t.Errorf("logs = %q", res.logs)
	}
	if !strings.Contains(res.out, "3 items · 2 recipes") {
		t.Errorf("info output:\n%s", res.out)
	}
}
