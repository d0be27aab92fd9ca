package recipe

import (
	"testing"
)

func TestSearchMatchesMembership(t *testing.T) {
	g := testGraph(t)
	recipes := g.RecipeMap()

	for _, n := range g.Items() {
		for _, roles := range []Role{AsIngredient, AsProduct, AnyRole} {
			got := Search(n, recipes, roles)
			for class, r := range recipes {
				want := (roles&AsIngredient != 0 && r.IsIngredient(n)) ||
					(roles&AsProduct != 0 && r.IsProduct(n))
				if _, ok := got[class]; ok != want {
					t.Errorf("Search(%s, %s) contains %s = %v, want %v", n.ID, roles, class, ok, want)
				}
			}
		}
	}
}

func TestSearchRoles(t *testing.T) {
	g := testGraph(t)
	n := mustItem(t, g, ingot)

	tests := []struct {
		roles Role
		want  []string
	}{
		{AsIngredient, []string{"Recipe_IronPlate_C", "Recipe_IronRod_C"}},
		{AsProduct, []string{"Recipe_IngotIron_C"}},
		{AnyRole, []string{"Recipe_IngotIron_C", "Recipe_IronPlate_C", "Recipe_IronRod_C"}},
		{0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.roles.String(), func(t *testing.T) {
			got := g.Search(n, tt.roles)
			if len(got) != len(tt.want) {
				t.Fatalf("Search() = %v, want %v", classes(got), tt.want)
			}
			for i, r := range got {
				if r.Class != tt.want[i] {
					t.Errorf("Search()[%d] = %s, want %s", i, r.Class, tt.want[i])
				}
			}
			if m := Search(n, g.RecipeMap(), tt.roles); len(m) != len(tt.want) {
				t.Errorf("map Search() returned %d recipes, want %d", len(m), len(tt.want))
			}
		})
	}
}

func TestSearchKeepsKeys(t *testing.T) {
	g := testGraph(t)
	r, _ := g.Recipe("Recipe_Screw_C")
	in := map[string]*Recipe{"custom-key": r}

	got := Search(mustItem(t, g, screw), in, AsProduct)
	if got["custom-key"] != r {
		t.Errorf("Search() = %v, want the caller's key", got)
	}

	got["extra"] = r
	if _, ok := in["extra"]; ok {
		t.Error("Search() returned the input map")
	}
}

func TestBetween(t *testing.T) {
	g := testGraph(t)

	tests := []struct {
		from, to string
		want     []string
	}{
		{ingot, plate, []string{"Recipe_IronPlate_C"}},
		{screw, reinforce, []string{"Recipe_IronPlateReinforced_C"}},
		{oreIron, plate, nil},
		{plate, ingot, nil},
	}
	for _, tt := range tests {
		from, to := mustItem(t, g, tt.from), mustItem(t, g, tt.to)

		got := g.Between(from, to)
		if len(got) != len(tt.want) {
			t.Errorf("Between(%s, %s) = %v, want %v", tt.from, tt.to, classes(got), tt.want)
			continue
		}
		for i, r := range got {
			if r.Class != tt.want[i] {
				t.Errorf("Between(%s, %s)[%d] = %s, want %s", tt.from, tt.to, i, r.Class, tt.want[i])
			}
		}
		if m := Between(from, to, g.RecipeMap()); len(m) != len(tt.want) {
			t.Errorf("map Between(%s, %s) returned %d recipes", tt.from, tt.to, len(m))
		}
	}
}

func TestRoleString(t *testing.T) {
	tests := map[Role]string{
		AsIngredient: "ingredient",
		AsProduct:    "product",
		AnyRole:      "any",
		0:            "none",
	}
	for r, want := range tests {
		if got := r.String(); got != want {
			t.Errorf("Role(%d).String() = %q, want %q", r, got, want)
		}
	}
}

func classes(rs []*Recipe) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Class
	}
	return out
}
