package sim

import (
	"fmt"

	"github.com/pagesim/pagesim/sim/trace"
)

// FrameSet is the simulated physical memory: a fixed number of slots,
// each empty or holding one page. A page occupies at most one slot.
type FrameSet struct {
	slots  []trace.Slot
	pageAt map[int]int // page → slot index
}

// NewFrameSet creates a FrameSet with capacity empty slots.
func NewFrameSet(capacity int) *FrameSet {
	if capacity < 0 {
		panic(fmt.Sprintf("frame count must be >= 0, got %d", capacity))
	}
	return &FrameSet{
		slots:  make([]trace.Slot, capacity),
		pageAt: make(map[int]int, capacity),
	}
}

// Capacity returns the number of slots.
func (fs *FrameSet) Capacity() int { return len(fs.slots) }

// Occupied returns the number of slots holding a page.
func (fs *FrameSet) Occupied() int { return len(fs.pageAt) }

// Full reports whether every slot is occupied.
func (fs *FrameSet) Full() bool { return fs.Occupied() >= fs.Capacity() }

// Contains reports whether page is resident.
func (fs *FrameSet) Contains(page int) bool {
	_, ok := fs.pageAt[page]
	return ok
}

// Place loads page into the first empty slot and returns its index.
// Returns -1 when no slot is free.
func (fs *FrameSet) Place(page int) int {
	for i := range fs.slots {
		if !fs.slots[i].Occupied {
			fs.slots[i] = trace.Slot{Page: page, Occupied: true}
			fs.pageAt[page] = i
			return i
		}
	}
	return -1
}

// Replace overwrites the slot holding victim with page and returns the slot index.
// Panics if victim is not resident.
func (fs *FrameSet) Replace(victim, page int) int {
	idx, ok := fs.pageAt[victim]
	if !ok {
		panic(fmt.Sprintf("eviction victim %d is not resident", victim))
	}
	delete(fs.pageAt, victim)
	fs.slots[idx] = trace.Slot{Page: page, Occupied: true}
	fs.pageAt[page] = idx
	return idx
}

// Snapshot returns an independent copy of the slots.
func (fs *FrameSet) Snapshot() []trace.Slot {
	out := make([]trace.Slot, len(fs.slots))
	copy(out, fs.slots)
	return out
}
