package cat

// AnimHandle is an opaque animation key owned by the presentation
// layer. Handles are resolved once at registration, never rebuilt from
// string fragments per call.
type AnimHandle string

// AnimKind is the coarse animation bucket a behavior state maps to.
type AnimKind string

const (
	AnimIdle  AnimKind = "idle"
	AnimWalk  AnimKind = "walk"
	AnimHappy AnimKind = "happy"
	AnimEat   AnimKind = "eat"
	AnimDrink AnimKind = "drink"
	AnimSleep AnimKind = "sleep"
)

type animKey struct {
	kind  AnimKind
	breed string
}

// AnimRegistry resolves (animation kind, breed) pairs to handles.
type AnimRegistry struct {
	handles map[animKey]AnimHandle
}

func NewAnimRegistry() *AnimRegistry {
	return &AnimRegistry{handles: make(map[animKey]AnimHandle)}
}

func (r *AnimRegistry) Register(kind AnimKind, breedID string, handle AnimHandle) {
	r.handles[animKey{kind: kind, breed: breedID}] = handle
}

// Resolve returns the registered handle, falling back to the breedless
// registration for that kind.
func (r *AnimRegistry) Resolve(kind AnimKind, breedID string) (AnimHandle, bool) {
	if h, ok := r.handles[animKey{kind: kind, breed: breedID}]; ok {
		return h, true
	}
	h, ok := r.handles[animKey{kind: kind}]
	return h, ok
}

// AnimKindFor selects the animation bucket for the cat's current pose.
func AnimKindFor(c *Cat) AnimKind {
	if r, ok := c.Reaction(); ok && r.Phase == PhaseReacting {
		switch r.Kind {
		case ReactDrink:
			return AnimDrink
		case ReactSleep:
			return AnimSleep
		default:
			return AnimEat
		}
	}
	if c.Moving() {
		return AnimWalk
	}
	if c.State() == StateHappy {
		return AnimHappy
	}
	return AnimIdle
}
