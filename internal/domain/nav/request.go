package nav

// Requester tags each path result with a generation token so callers
// can recognize and discard results superseded by a newer request. The
// search itself is computed inline; the callback boundary keeps call
// sites agnostic of that.
type Requester struct {
	pf  *Pathfinder
	gen uint64
}

func NewRequester(pf *Pathfinder) *Requester {
	return &Requester{pf: pf}
}

// Request runs a search and delivers the result together with its
// token. A nil path means unreachable.
func (r *Requester) Request(start, goal Tile, deliver func(path []Tile, token uint64)) uint64 {
	r.gen++
	token := r.gen
	if deliver != nil {
		deliver(r.pf.FindPath(start, goal), token)
	}
	return token
}

// Current reports the newest issued token. Results carrying an older
// token are stale.
func (r *Requester) Current() uint64 {
	return r.gen
}
