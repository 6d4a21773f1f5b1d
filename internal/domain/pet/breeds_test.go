package pet

import "testing"

func TestBreeds_CatalogIsComplete(t *testing.T) {
	all := Breeds()
	if len(all) != 10 {
		t.Fatalf("expected 10 breeds, got %d", len(all))
	}
	seen := map[string]bool{}
	for _, b := range all {
		if b.ID == "" || b.Name == "" {
			t.Fatalf("breed with missing identity: %+v", b)
		}
		if seen[b.ID] {
			t.Fatalf("duplicate breed id %q", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestBreedByID_FallsBackToDefault(t *testing.T) {
	if got := BreedByID("sphinx"); got.ID != DefaultBreed().ID {
		t.Fatalf("unknown id should fall back to default, got %q", got.ID)
	}
	if got := BreedByID("persian"); got.ID != "persian" {
		t.Fatalf("expected persian, got %q", got.ID)
	}
}

func TestBreed_DecayMultiplierDefaultsToOne(t *testing.T) {
	b := BreedByID("orange_tabby")
	if got := b.DecayMultiplierFor(NeedHunger); got != 1.2 {
		t.Fatalf("orange tabby hunger multiplier = %v, want 1.2", got)
	}
	if got := b.DecayMultiplierFor(NeedFun); got != 1 {
		t.Fatalf("unlisted need should default to 1, got %v", got)
	}
}

func TestStageForAge(t *testing.T) {
	if got := StageForAge(13); got != StageKitten {
		t.Fatalf("day 13 should be kitten, got %v", got)
	}
	if got := StageForAge(14); got != StageAdult {
		t.Fatalf("day 14 should be adult, got %v", got)
	}
	if GrowthNeedMultiplier(StageKitten) != 1.2 || GrowthNeedMultiplier(StageAdult) != 1 {
		t.Fatal("growth multipliers off: kitten 1.2, adult 1")
	}
}
