package ancillaries

import (
	"sort"
	"sync"
)

// SelectionStore tracks selected ancillaries per leg. Each leg accumulates
// independently behind its own lock, so concurrent selection changes on
// different legs never clobber each other; totals are merged by summation
// at read time, never kept on a shared scalar.
type SelectionStore struct {
	mu   sync.RWMutex
	legs map[int]*legState
}

type legState struct {
	mu             sync.Mutex
	onlineEligible bool
	items          map[selectionKey]Item
}

// NewSelectionStore creates an empty store
func NewSelectionStore() *SelectionStore {
	return &SelectionStore{legs: make(map[int]*legState)}
}

func (s *SelectionStore) leg(legIndex int) *legState {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls, ok := s.legs[legIndex]
	if !ok {
		ls = &legState{items: make(map[selectionKey]Item)}
		s.legs[legIndex] = ls
	}
	return ls
}

// SetLegEligibility records whether the leg's carrier sells ancillaries
// online. Selections on ineligible legs are kept for display but priced 0.
func (s *SelectionStore) SetLegEligibility(legIndex int, onlineEligible bool) {
	ls := s.leg(legIndex)
	ls.mu.Lock()
	ls.onlineEligible = onlineEligible
	if !onlineEligible {
		for k, item := range ls.items {
			item.Price = 0
			ls.items[k] = item
		}
	}
	ls.mu.Unlock()
}

// Toggle selects the item, or deselects it when the same (category, code)
// is already selected. Returns true when the item is selected afterwards.
func (s *SelectionStore) Toggle(legIndex int, item Item) bool {
	ls := s.leg(legIndex)
	ls.mu.Lock()
	defer ls.mu.Unlock()

	k := selectionKey{Category: item.Category, Code: item.Code}
	if _, exists := ls.items[k]; exists {
		delete(ls.items, k)
		return false
	}

	if !ls.onlineEligible {
		// Advisory only: recorded for display, contributes nothing
		item.Price = 0
	}
	ls.items[k] = item
	return true
}

// SelectionsFor returns the currently selected items for a leg, in a
// stable order
func (s *SelectionStore) SelectionsFor(legIndex int) []Item {
	ls := s.leg(legIndex)
	ls.mu.Lock()
	defer ls.mu.Unlock()

	items := make([]Item, 0, len(ls.items))
	for _, item := range ls.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Code < items[j].Code
	})
	return items
}

// Subtotal is the sum of the leg's currently selected item prices
func (s *SelectionStore) Subtotal(legIndex int) float64 {
	ls := s.leg(legIndex)
	ls.mu.Lock()
	defer ls.mu.Unlock()

	var subtotal float64
	for _, item := range ls.items {
		subtotal += item.Price
	}
	return subtotal
}

// TotalAll sums every leg's subtotal
func (s *SelectionStore) TotalAll() float64 {
	s.mu.RLock()
	indexes := make([]int, 0, len(s.legs))
	for i := range s.legs {
		indexes = append(indexes, i)
	}
	s.mu.RUnlock()

	var total float64
	for _, i := range indexes {
		total += s.Subtotal(i)
	}
	return total
}

// Replace resets one leg's selections from a persisted snapshot
func (s *SelectionStore) Replace(legIndex int, onlineEligible bool, items []Item) {
	ls := s.leg(legIndex)
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.onlineEligible = onlineEligible
	ls.items = make(map[selectionKey]Item, len(items))
	for _, item := range items {
		if !onlineEligible {
			item.Price = 0
		}
		ls.items[selectionKey{Category: item.Category, Code: item.Code}] = item
	}
}
