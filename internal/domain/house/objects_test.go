package house

import (
	"testing"

	"purrhaven/internal/domain/geom"
	"purrhaven/internal/domain/pet"
)

// fakeWorld records every effect an object interaction triggers.
type fakeWorld struct {
	carrying CarryItem
	cares    []pet.CareAction
	toasts   []string
	eatAt    *geom.Vec2
	drinkAt  *geom.Vec2
	sleepAt  *geom.Vec2
}

func (f *fakeWorld) Carrying() CarryItem        { return f.carrying }
func (f *fakeWorld) SetCarrying(item CarryItem) { f.carrying = item }
func (f *fakeWorld) CatEatAt(p geom.Vec2)       { f.eatAt = &p }
func (f *fakeWorld) CatDrinkAt(p geom.Vec2)     { f.drinkAt = &p }
func (f *fakeWorld) CatSleepAt(p geom.Vec2)     { f.sleepAt = &p }
func (f *fakeWorld) Care(a pet.CareAction)      { f.cares = append(f.cares, a) }
func (f *fakeWorld) Toast(m string)             { f.toasts = append(f.toasts, m) }

func TestCabinet_HandsOutFood(t *testing.T) {
	w := &fakeWorld{}
	NewCabinet(geom.Vec2{X: 850, Y: 180}).Interact(w)
	if w.carrying != CarryFood {
		t.Fatalf("carrying = %q, want food", w.carrying)
	}
}

func TestFoodBowl_RefillCountsAsFeedCare(t *testing.T) {
	bowl := NewFoodBowl(geom.Vec2{X: 820, Y: 330})
	w := &fakeWorld{carrying: CarryFood}

	bowl.Interact(w)
	if w.carrying != CarryNone {
		t.Fatal("refill should consume the carried food")
	}
	if bowl.FoodLevel != 100 {
		t.Fatalf("level = %v, want 100", bowl.FoodLevel)
	}
	if len(w.cares) != 1 || w.cares[0] != pet.CareFeed {
		t.Fatalf("cares = %v, want [feed]", w.cares)
	}
	if w.eatAt == nil || *w.eatAt != bowl.InteractionPoint() {
		t.Fatalf("cat should be sent to the bowl, got %v", w.eatAt)
	}
}

func TestFoodBowl_ServeFromStoredLevel(t *testing.T) {
	bowl := NewFoodBowl(geom.Vec2{X: 820, Y: 330})
	bowl.FoodLevel = 50
	w := &fakeWorld{}

	bowl.Interact(w)
	if bowl.FoodLevel != 20 {
		t.Fatalf("level = %v, want 20", bowl.FoodLevel)
	}
	if len(w.cares) != 0 {
		t.Fatalf("serving is not a care action, got %v", w.cares)
	}
	if w.eatAt == nil {
		t.Fatal("cat should still be sent to eat")
	}
}

func TestFoodBowl_EmptyBowlPromptsForFood(t *testing.T) {
	bowl := NewFoodBowl(geom.Vec2{X: 820, Y: 330})
	w := &fakeWorld{}

	bowl.Interact(w)
	if w.eatAt != nil || len(w.cares) != 0 {
		t.Fatal("empty bowl must have no effect")
	}
	if len(w.toasts) != 1 {
		t.Fatalf("expected a hint toast, got %v", w.toasts)
	}
}

func TestWaterBowl_RefillCountsAsWaterCare(t *testing.T) {
	bowl := NewWaterBowl(geom.Vec2{X: 900, Y: 330})
	w := &fakeWorld{carrying: CarryWater}

	bowl.Interact(w)
	if bowl.WaterLevel != 100 || w.carrying != CarryNone {
		t.Fatalf("refill failed: level %v carrying %q", bowl.WaterLevel, w.carrying)
	}
	if len(w.cares) != 1 || w.cares[0] != pet.CareWater {
		t.Fatalf("cares = %v, want [water]", w.cares)
	}
	if w.drinkAt == nil {
		t.Fatal("cat should be sent to drink")
	}
}

func TestLitterBox_CleanResetsDirt(t *testing.T) {
	box := NewLitterBox(geom.Vec2{X: 150, Y: 300})
	if box.DirtyLevel != 20 {
		t.Fatalf("fresh box starts at 20, got %v", box.DirtyLevel)
	}

	box.IncreaseDirt(200)
	if box.DirtyLevel != 100 {
		t.Fatalf("dirt should clamp at 100, got %v", box.DirtyLevel)
	}

	w := &fakeWorld{}
	box.Interact(w)
	if box.DirtyLevel != 0 {
		t.Fatalf("clean should reset dirt, got %v", box.DirtyLevel)
	}
	if len(w.cares) != 1 || w.cares[0] != pet.CareCleanLitter {
		t.Fatalf("cares = %v, want [cleanLitter]", w.cares)
	}
}

func TestToyBasket_TogglesPlayMode(t *testing.T) {
	basket := NewToyBasket(geom.Vec2{X: 480, Y: 310})
	w := &fakeWorld{}

	basket.Interact(w)
	if w.carrying != CarryToy {
		t.Fatalf("carrying = %q, want toy", w.carrying)
	}
	if len(w.cares) != 1 || w.cares[0] != pet.CarePlay {
		t.Fatalf("cares = %v, want [play]", w.cares)
	}

	basket.Interact(w)
	if w.carrying != CarryNone {
		t.Fatal("storing the toy should clear the carry")
	}
	if len(w.cares) != 1 {
		t.Fatal("storing the toy is not another care action")
	}
}

func TestFurniture_SendsCatToSleep(t *testing.T) {
	w := &fakeWorld{}
	tree := FurnitureByID("cat_tree")
	if tree == nil {
		t.Fatal("cat_tree should spawn")
	}
	tree.Interact(w)
	if w.sleepAt == nil {
		t.Fatal("cat tree should send the cat to sleep")
	}

	if FurnitureByID("sunset") != nil {
		t.Fatal("themes are not furniture")
	}
}

func TestBuildGrid_KeepsFixturesReachable(t *testing.T) {
	grid := BuildGrid()

	spawn := grid.WorldToTile(PlayerSpawn)
	if grid.Blocked(spawn) {
		t.Fatalf("player spawn tile %v must be walkable", spawn)
	}
	for _, obj := range DefaultObjects() {
		tile := grid.WorldToTile(obj.InteractionPoint())
		if grid.Blocked(tile) {
			t.Fatalf("interaction point of %s lands on blocked tile %v", obj.ID(), tile)
		}
	}
}
