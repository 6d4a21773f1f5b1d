package pet

// Breed is static reference data. DecayMultiplier entries default to
// 1.0 for any need not listed.
type Breed struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Blurb           string              `json:"blurb"`
	Primary         string              `json:"primary"`
	Secondary       string              `json:"secondary"`
	Eye             string              `json:"eye"`
	DecayMultiplier map[NeedKey]float64 `json:"decayMultiplier,omitempty"`
}

func (b Breed) DecayMultiplierFor(key NeedKey) float64 {
	if m, ok := b.DecayMultiplier[key]; ok {
		return m
	}
	return 1
}

var breeds = []Breed{
	{
		ID: "orange_tabby", Name: "Orange Tabby",
		Blurb:   "A warm ball of chaos and cuddles",
		Primary: "#E8822A", Secondary: "#C46A1F", Eye: "#4CAF50",
		DecayMultiplier: map[NeedKey]float64{NeedHunger: 1.2},
	},
	{
		ID: "grey_tabby", Name: "Grey Tabby",
		Blurb:   "Mysterious yet surprisingly needy",
		Primary: "#7A7A7A", Secondary: "#4A4A4A", Eye: "#4CAF50",
	},
	{
		ID: "tuxedo", Name: "Tuxedo",
		Blurb:   "Born fancy, acts feral",
		Primary: "#1F1F1F", Secondary: "#F1F1F1", Eye: "#EBCB63",
		DecayMultiplier: map[NeedKey]float64{NeedHunger: 0.85},
	},
	{
		ID: "calico", Name: "Calico",
		Blurb:   "Three cats in one chaotic package",
		Primary: "#F4E9D8", Secondary: "#D96E2F", Eye: "#6AA84F",
		DecayMultiplier: map[NeedKey]float64{NeedFun: 1.25},
	},
	{
		ID: "siamese", Name: "Siamese",
		Blurb:   "Judges you, but lovingly",
		Primary: "#E8D8B6", Secondary: "#5C4332", Eye: "#6EC6FF",
	},
	{
		ID: "persian", Name: "Persian",
		Blurb:   "Maximum floof, minimum effort",
		Primary: "#F1EFE6", Secondary: "#CFC9BC", Eye: "#78A7E0",
		DecayMultiplier: map[NeedKey]float64{NeedHunger: 0.75, NeedThirst: 0.75, NeedHygiene: 0.75},
	},
	{
		ID: "bengal", Name: "Bengal",
		Blurb:   "A tiny leopard in your house",
		Primary: "#C68F3D", Secondary: "#6A4422", Eye: "#89C75F",
		DecayMultiplier: map[NeedKey]float64{NeedFun: 1.4},
	},
	{
		ID: "black", Name: "Black Cat",
		Blurb:   "Spooky? Just misunderstood",
		Primary: "#111111", Secondary: "#2C2C2C", Eye: "#B7E25C",
	},
	{
		ID: "russian_blue", Name: "Russian Blue",
		Blurb:   "Elegant and emotionally complex",
		Primary: "#708090", Secondary: "#4B5A68", Eye: "#57B65A",
		DecayMultiplier: map[NeedKey]float64{NeedFun: 0.9},
	},
	{
		ID: "ginger_white", Name: "Ginger & White",
		Blurb:   "The neighborhood sweetheart",
		Primary: "#F6F2EA", Secondary: "#D77E2E", Eye: "#73B559",
		DecayMultiplier: map[NeedKey]float64{NeedHunger: 0.95, NeedThirst: 0.95, NeedFun: 0.95, NeedHygiene: 0.95},
	},
}

func Breeds() []Breed {
	out := make([]Breed, len(breeds))
	copy(out, breeds)
	return out
}

// BreedByID resolves a breed id, falling back to the default breed for
// unknown ids (e.g. a save referencing a removed breed).
func BreedByID(id string) Breed {
	for _, b := range breeds {
		if b.ID == id {
			return b
		}
	}
	return breeds[0]
}

func DefaultBreed() Breed {
	return breeds[0]
}
