package sim

import (
	"container/list"
	"fmt"
	"strings"
)

// Policy names a page-replacement policy.
type Policy string

const (
	// FIFO evicts the page that has been resident the longest.
	FIFO Policy = "FIFO"
	// LRU evicts the page that was referenced least recently.
	LRU Policy = "LRU"
)

// ValidPolicies is the set of recognized policy names.
// Shared by ParsePolicy, Scenario.Validate and NewReplacementPolicy.
var ValidPolicies = map[Policy]bool{FIFO: true, LRU: true}

// IsValidPolicy returns true if name is a recognized policy (case-sensitive).
func IsValidPolicy(name string) bool {
	return ValidPolicies[Policy(name)]
}

// ParsePolicy resolves a user-supplied policy name, ignoring case and surrounding space.
func ParsePolicy(name string) (Policy, error) {
	p := Policy(strings.ToUpper(strings.TrimSpace(name)))
	if !ValidPolicies[p] {
		return "", fmt.Errorf("unknown policy %q; valid policies: [FIFO, LRU]", name)
	}
	return p, nil
}

// ReplacementPolicy tracks residency order and chooses eviction victims.
// Implementations hold only pages currently resident in the frame set.
type ReplacementPolicy interface {
	// Name returns the policy identifier.
	Name() Policy
	// Touch records a hit on a resident page.
	Touch(page int)
	// Admit records that page was just loaded into a frame.
	Admit(page int)
	// Victim removes and returns the page to evict. Must only be called
	// while at least one page is tracked.
	Victim() int
}

// NewReplacementPolicy creates a replacement policy by name.
// Panics on unrecognized names.
func NewReplacementPolicy(p Policy) ReplacementPolicy {
	switch p {
	case FIFO:
		return &fifoPolicy{order: newPageOrder()}
	case LRU:
		return &lruPolicy{order: newPageOrder()}
	default:
		panic(fmt.Sprintf("unknown replacement policy %q; valid policies: [FIFO, LRU]", p))
	}
}

// pageOrder is an insertion-ordered set of pages, oldest at the front.
type pageOrder struct {
	l     *list.List
	index map[int]*list.Element
}

func newPageOrder() *pageOrder {
	return &pageOrder{l: list.New(), index: make(map[int]*list.Element)}
}

// pushBack appends page at the newest end.
func (o *pageOrder) pushBack(page int) {
	if _, ok := o.index[page]; ok {
		panic(fmt.Sprintf("page %d already tracked", page))
	}
	o.index[page] = o.l.PushBack(page)
}

// moveToBack marks page as the newest entry.
func (o *pageOrder) moveToBack(page int) {
	if e, ok := o.index[page]; ok {
		o.l.MoveToBack(e)
	}
}

// popFront removes and returns the oldest page.
func (o *pageOrder) popFront() int {
	e := o.l.Front()
	if e == nil {
		panic("victim requested from an empty page order")
	}
	page := o.l.Remove(e).(int)
	delete(o.index, page)
	return page
}

// fifoPolicy evicts in arrival order; hits do not reorder.
type fifoPolicy struct {
	order *pageOrder
}

func (f *fifoPolicy) Name() Policy { return FIFO }
func (f *fifoPolicy) Touch(_ int) {}
func (f *fifoPolicy) Admit(page int) { f.order.pushBack(page) }
func (f *fifoPolicy) Victim() int { return f.order.popFront() }

// lruPolicy evicts in recency order; a hit moves the page to the most-recently-used end.
type lruPolicy struct {
	order *pageOrder
}

func (l *lruPolicy) Name() Policy { return LRU }
func (l *lruPolicy) Touch(page int) { l.order.moveToBack(page) }
func (l *lruPolicy) Admit(page int) { l.order.pushBack(page) }
func (l *lruPolicy) Victim() int { return l.order.popFront() }
