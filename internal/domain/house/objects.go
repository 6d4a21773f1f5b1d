package house

import (
	"purrhaven/internal/domain/geom"
	"purrhaven/internal/domain/pet"
)

// CarryItem is what the player currently holds. It steers the cat's
// mode intent and gates several object effects.
type CarryItem string

const (
	CarryNone  CarryItem = ""
	CarryFood  CarryItem = "food"
	CarryWater CarryItem = "water"
	CarryToy   CarryItem = "toy"
)

// World is the slice of orchestrator state an object effect may touch.
// Effects read/mutate carry state, direct the cat, and emit care and
// toast events; they never reach into other systems directly.
type World interface {
	Carrying() CarryItem
	SetCarrying(CarryItem)
	CatEatAt(target geom.Vec2)
	CatDrinkAt(target geom.Vec2)
	CatSleepAt(target geom.Vec2)
	Care(action pet.CareAction)
	Toast(message string)
}

// Object is one interactable in the house scene.
type Object interface {
	ID() string
	Label() string
	Hint() string
	Position() geom.Vec2
	// InteractionPoint is where the player walks to, offset from the
	// object's own position so the approach stays walkable.
	InteractionPoint() geom.Vec2
	TriggerRadius() float64
	Interact(w World)
}

type baseObject struct {
	id       string
	label    string
	hint     string
	position geom.Vec2
	point    geom.Vec2
	radius   float64
}

func (b *baseObject) ID() string                  { return b.id }
func (b *baseObject) Label() string               { return b.label }
func (b *baseObject) Hint() string                { return b.hint }
func (b *baseObject) Position() geom.Vec2         { return b.position }
func (b *baseObject) InteractionPoint() geom.Vec2 { return b.point }
func (b *baseObject) TriggerRadius() float64      { return b.radius }

func newBase(id, label, hint string, pos geom.Vec2, radius float64) baseObject {
	return baseObject{
		id:       id,
		label:    label,
		hint:     hint,
		position: pos,
		point:    geom.Vec2{X: pos.X, Y: pos.Y + 46},
		radius:   radius,
	}
}

type Cabinet struct {
	baseObject
}

func NewCabinet(pos geom.Vec2) *Cabinet {
	return &Cabinet{baseObject: newBase("cabinet", "Cabinet", "Grab cat food", pos, 80)}
}

func (c *Cabinet) Interact(w World) {
	w.SetCarrying(CarryFood)
	w.Toast("Picked up cat food")
}

// FoodBowl stores a fill level; refilling counts as the feed care
// action, serving from the stored level only feeds the cat.
type FoodBowl struct {
	baseObject
	FoodLevel float64
}

func NewFoodBowl(pos geom.Vec2) *FoodBowl {
	return &FoodBowl{baseObject: newBase("food_bowl", "Food Bowl", "Refill or serve", pos, 70)}
}

func (f *FoodBowl) Interact(w World) {
	if w.Carrying() == CarryFood {
		w.SetCarrying(CarryNone)
		f.FoodLevel = 100
		w.CatEatAt(f.InteractionPoint())
		w.Care(pet.CareFeed)
		w.Toast("Food refilled")
		return
	}
	if f.FoodLevel <= 0 {
		w.Toast("Need cat food from cabinet")
		return
	}
	f.FoodLevel -= 30
	if f.FoodLevel < 0 {
		f.FoodLevel = 0
	}
	w.CatEatAt(f.InteractionPoint())
	w.Toast("Cat ate from bowl")
}

type WaterBowl struct {
	baseObject
	WaterLevel float64
}

func NewWaterBowl(pos geom.Vec2) *WaterBowl {
	return &WaterBowl{baseObject: newBase("water_bowl", "Water Bowl", "Refill or serve", pos, 70)}
}

func (b *WaterBowl) Interact(w World) {
	if w.Carrying() == CarryWater {
		w.SetCarrying(CarryNone)
		b.WaterLevel = 100
		w.CatDrinkAt(b.InteractionPoint())
		w.Care(pet.CareWater)
		w.Toast("Water refreshed")
		return
	}
	if b.WaterLevel <= 0 {
		w.Toast("Need to fill water first")
		return
	}
	b.WaterLevel -= 35
	if b.WaterLevel < 0 {
		b.WaterLevel = 0
	}
	w.CatDrinkAt(b.InteractionPoint())
	w.Toast("Cat had a drink")
}

// LitterBox accumulates dirt over time; cleaning resets it and counts
// as the cleanLitter care action.
type LitterBox struct {
	baseObject
	DirtyLevel float64
}

func NewLitterBox(pos geom.Vec2) *LitterBox {
	return &LitterBox{
		baseObject: newBase("litter_box", "Litter Box", "Clean litter", pos, 84),
		DirtyLevel: 20,
	}
}

func (l *LitterBox) IncreaseDirt(amount float64) {
	l.DirtyLevel = geom.Clamp(l.DirtyLevel+amount, 0, 100)
}

func (l *LitterBox) Interact(w World) {
	l.DirtyLevel = 0
	w.Care(pet.CareCleanLitter)
	w.Toast("Litter cleaned")
}

// ToyBasket toggles play mode: picking the toy up puts the cat in play
// orbit, storing it releases the cat.
type ToyBasket struct {
	baseObject
	Active bool
}

func NewToyBasket(pos geom.Vec2) *ToyBasket {
	return &ToyBasket{baseObject: newBase("toy_basket", "Toy Basket", "Start toy play", pos, 78)}
}

func (t *ToyBasket) Interact(w World) {
	t.Active = !t.Active
	if t.Active {
		w.SetCarrying(CarryToy)
		w.Care(pet.CarePlay)
		w.Toast("Play mode active")
		return
	}
	w.SetCarrying(CarryNone)
	w.Toast("Toy stored")
}

type CatTree struct {
	baseObject
}

func NewCatTree(pos geom.Vec2) *CatTree {
	obj := &CatTree{baseObject: newBase("cat_tree", "Cat Tree", "Send cat to nap", pos, 86)}
	obj.point = geom.Vec2{X: pos.X - 6, Y: pos.Y + 44}
	return obj
}

func (c *CatTree) Interact(w World) {
	w.CatSleepAt(c.InteractionPoint())
	w.Toast("Cat curled up on the tree")
}

type CatBed struct {
	baseObject
}

func NewCatBed(pos geom.Vec2) *CatBed {
	obj := &CatBed{baseObject: newBase("cat_bed", "Cat Bed", "Rest here", pos, 82)}
	obj.point = geom.Vec2{X: pos.X, Y: pos.Y + 40}
	return obj
}

func (c *CatBed) Interact(w World) {
	w.CatSleepAt(c.InteractionPoint())
	w.Toast("Cat is taking a cozy nap")
}

// DefaultObjects places the fixtures every house starts with.
func DefaultObjects() []Object {
	return []Object{
		NewCabinet(geom.Vec2{X: 850, Y: 180}),
		NewFoodBowl(geom.Vec2{X: 820, Y: 330}),
		NewWaterBowl(geom.Vec2{X: 900, Y: 330}),
		NewLitterBox(geom.Vec2{X: 150, Y: 300}),
		NewToyBasket(geom.Vec2{X: 480, Y: 310}),
	}
}

// FurnitureByID spawns a purchasable furniture object at its fixed
// spot, or nil for ids that are not furniture.
func FurnitureByID(id string) Object {
	switch id {
	case "cat_tree":
		return NewCatTree(geom.Vec2{X: 250, Y: 200})
	case "cat_bed":
		return NewCatBed(geom.Vec2{X: 620, Y: 540})
	default:
		return nil
	}
}
