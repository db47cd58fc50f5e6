package facemesh

import "github.com/golang/geo/r2"

// roiArena owns the tracked boxes, one per slot. Every slot transition is an
// explicit operation, and a superseded box is handed to the release hook
// exactly once. Callers whose boxes are backed by pooled native buffers can
// use the hook to dispose them; otherwise it is a no-op.
type roiArena struct {
	slots   []r2.Rect
	release func(r2.Rect)
}

func newROIArena(release func(r2.Rect)) *roiArena {
	if release == nil {
		release = func(r2.Rect) {}
	}
	return &roiArena{release: release}
}

func (a *roiArena) count() int {
	return len(a.slots)
}

// boxAt returns the box at slot i, if occupied.
func (a *roiArena) boxAt(i int) (r2.Rect, bool) {
	if i < 0 || i >= len(a.slots) {
		return r2.Rect{}, false
	}
	return a.slots[i], true
}

// boxes returns a copy of all tracked boxes in slot order.
func (a *roiArena) boxes() []r2.Rect {
	out := make([]r2.Rect, len(a.slots))
	copy(out, a.slots)
	return out
}

// seed occupies the next free slot with a freshly detected box.
func (a *roiArena) seed(box r2.Rect) {
	a.slots = append(a.slots, box)
}

// replace swaps the box at slot i, releasing the previous occupant.
func (a *roiArena) replace(i int, box r2.Rect) {
	prev := a.slots[i]
	a.slots[i] = box
	a.release(prev)
}

// truncate drops every slot at index n or beyond, releasing each occupant.
func (a *roiArena) truncate(n int) {
	if n >= len(a.slots) {
		return
	}
	for _, box := range a.slots[n:] {
		a.release(box)
	}
	a.slots = a.slots[:n]
}

// clear drops every slot, releasing each occupant.
func (a *roiArena) clear() {
	a.truncate(0)
}
