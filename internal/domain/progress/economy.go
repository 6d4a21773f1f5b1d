package progress

type DecorKind string

const (
	DecorTheme     DecorKind = "theme"
	DecorFurniture DecorKind = "furniture"
)

type DecorItem struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Cost        int       `json:"cost"`
	ThemeColor  string    `json:"themeColor"`
	Kind        DecorKind `json:"kind"`
	Description string    `json:"description"`
}

var decorCatalog = []DecorItem{
	{ID: "default", Label: "Default Cozy", Cost: 0, ThemeColor: "#2F5DAA", Kind: DecorTheme, Description: "Classic house palette"},
	{ID: "sunset", Label: "Sunset Warm", Cost: 25, ThemeColor: "#D06F3B", Kind: DecorTheme, Description: "Warm evening tones"},
	{ID: "mint", Label: "Mint Fresh", Cost: 25, ThemeColor: "#5F9D76", Kind: DecorTheme, Description: "Fresh green palette"},
	{ID: "retro", Label: "Retro Toybox", Cost: 40, ThemeColor: "#A85A7C", Kind: DecorTheme, Description: "Playful vintage palette"},
	{ID: "cat_tree", Label: "Window Cat Tree", Cost: 60, ThemeColor: "#9B6E43", Kind: DecorFurniture, Description: "Sleep perch near window"},
	{ID: "cat_bed", Label: "Cloud Cat Bed", Cost: 45, ThemeColor: "#8A7EC7", Kind: DecorFurniture, Description: "Soft floor sleeping bed"},
}

func DecorCatalog() []DecorItem {
	out := make([]DecorItem, len(decorCatalog))
	copy(out, decorCatalog)
	return out
}

func DecorItemByID(id string) (DecorItem, bool) {
	for _, item := range decorCatalog {
		if item.ID == id {
			return item, true
		}
	}
	return DecorItem{}, false
}

// Economy holds the coin balance and the append-only set of purchased
// decor ids.
type Economy struct {
	Coins             int      `json:"coins"`
	PurchasedDecorIDs []string `json:"purchasedDecorIds"`
}

func (e *Economy) AwardCoins(amount int) {
	e.Coins += amount
	if e.Coins < 0 {
		e.Coins = 0
	}
}

func (e *Economy) Owns(id string) bool {
	for _, owned := range e.PurchasedDecorIDs {
		if owned == id {
			return true
		}
	}
	return false
}

// PurchaseDecor debits the item cost and records ownership. Buying an
// already-owned item succeeds without charge; unknown ids and
// insufficient balance fail.
func (e *Economy) PurchaseDecor(id string) bool {
	if e.Owns(id) {
		return true
	}
	item, ok := DecorItemByID(id)
	if !ok {
		return false
	}
	if e.Coins < item.Cost {
		return false
	}
	e.Coins -= item.Cost
	e.PurchasedDecorIDs = append(e.PurchasedDecorIDs, id)
	return true
}
