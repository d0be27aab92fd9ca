package recipe

import (
	"testing"

	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
)

func TestChain(t *testing.T) {
	g := testGraph(t)

	hops, err := g.Chain(oreIron, reinforce)
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}

	want := []struct{ from, to, recipe string }{
		{oreIron, ingot, "Recipe_IngotIron_C"},
		{ingot, plate, "Recipe_IronPlate_C"},
		{plate, reinforce, "Recipe_IronPlateReinforced_C"},
	}
	if len(hops) != len(want) {
		t.Fatalf("Chain() has %d hops, want %d", len(hops), len(want))
	}
	for i, h := range hops {
		if h.From.ID != want[i].from || h.To.ID != want[i].to {
			t.Errorf("hop %d = %s -> %s, want %s -> %s", i, h.From.ID, h.To.ID, want[i].from, want[i].to)
		}
		if len(h.Recipes) != 1 || h.Recipes[0].Class != want[i].recipe {
			t.Errorf("hop %d recipes = %v, want [%s]", i, classes(h.Recipes), want[i].recipe)
		}
	}
}

func TestChainErrors(t *testing.T) {
	g := testGraph(t)

	tests := []struct {
		name     string
		from, to string
		code     fgerrors.Code
	}{
		{"UnknownFrom", "Desc_Nope_C", plate, fgerrors.ErrCodeItemNotFound},
		{"UnknownTo", plate, "Desc_Nope_C", fgerrors.ErrCodeItemNotFound},
		{"Upstream", reinforce, oreIron, fgerrors.ErrCodeNoRoute},
		{"Sibling", plate, rod, fgerrors.ErrCodeNoRoute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hops, err := g.Chain(tt.from, tt.to)
			if !fgerrors.Is(err, tt.code) {
				t.Errorf("Chain() error = %v, want code %s", err, tt.code)
			}
			if hops != nil {
				t.Errorf("Chain() hops = %v, want nil", hops)
			}
		})
	}
}

func TestChainSelf(t *testing.T) {
	g := testGraph(t)
	hops, err := g.Chain(plate, plate)
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}
	if hops == nil || len(hops) != 0 {
		t.Errorf("Chain(self) = %v, want empty", hops)
	}
}

func TestLoops(t *testing.T) {
	g := testGraph(t)
	if loops := g.Loops(); len(loops) != 0 {
		t.Errorf("Loops() = %d groups, want none", len(loops))
	}

	rows := append(testClasses(),
		ClassRow{ID: "Desc_Water_C", Name: "Water"},
		ClassRow{ID: "Desc_PackagedWater_C", Name: "Packaged Water"},
		ClassRow{ID: "Desc_FluidCanister_C", Name: "Empty Canister"},
	)
	table := testRecipes()
	table.Set("Recipe_PackagedWater_C", record("Recipe_PackagedWater_C", "Packaged Water",
		[]string{"Build_Packager_C"},
		amounts("Desc_Water_C", 2.0, "Desc_FluidCanister_C", 2.0),
		amounts("Desc_PackagedWater_C", 2.0)))
	table.Set("Recipe_UnpackageWater_C", record("Recipe_UnpackageWater_C", "Unpackage Water",
		[]string{"Build_Packager_C"},
		amounts("Desc_PackagedWater_C", 2.0),
		amounts("Desc_Water_C", 2.0, "Desc_FluidCanister_C", 2.0)))

	g, err := Precompute(rows, table)
	if err != nil {
		t.Fatalf("Precompute: %v", err)
	}

	loops := g.Loops()
	if len(loops) != 1 {
		t.Fatalf("Loops() = %d groups, want 1", len(loops))
	}
	want := []string{"Desc_Water_C", "Desc_PackagedWater_C", "Desc_FluidCanister_C"}
	if got := ids(loops[0]); len(got) != len(want) {
		t.Fatalf("loop = %v, want %v", got, want)
	}
	for i, n := range loops[0] {
		if n.ID != want[i] {
			t.Errorf("loop[%d] = %s, want %s", i, n.ID, want[i])
		}
	}
}

func TestLoopsSelfProducing(t *testing.T) {
	table := testRecipes()
	table.Set("Recipe_ScrewRecycle_C", record("Recipe_ScrewRecycle_C", "Screw Recycling",
		[]string{"Build_AssemblerMk1_C"},
		amounts(screw, 10.0, rod, 1.0),
		amounts(screw, 14.0)))

	g, err := Precompute(testClasses(), table)
	if err != nil {
		t.Fatalf("Precompute: %v", err)
	}
	if n := mustItem(t, g, screw); !n.HasChild(screw) {
		t.Fatalf("%s children = %v, want itself", screw, n.ChildIDs())
	}

	loops := g.Loops()
	if len(loops) != 1 {
		t.Fatalf("Loops() = %d groups, want 1", len(loops))
	}
	if got := ids(loops[0]); len(got) != 1 || got[0] != screw {
		t.Errorf("loop = %v, want [%s]", got, screw)
	}
}
