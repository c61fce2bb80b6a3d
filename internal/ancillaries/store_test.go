package ancillaries

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baggageItem(code string, price float64) Item {
	return Item{Category: CategoryBaggage, Code: code, Description: code + " extra baggage", Price: price}
}

func mealItem(code string, price float64) Item {
	return Item{Category: CategoryMeal, Code: code, Description: "meal " + code, Price: price}
}

func TestToggleIsIdempotentPair(t *testing.T) {
	store := NewSelectionStore()
	store.SetLegEligibility(0, true)

	selected := store.Toggle(0, baggageItem("XB10", 800))
	assert.True(t, selected)
	assert.Equal(t, 800.0, store.Subtotal(0))

	// Toggling the same (category, code) again removes it
	selected = store.Toggle(0, baggageItem("XB10", 800))
	assert.False(t, selected)
	assert.Equal(t, 0.0, store.Subtotal(0))
	assert.Empty(t, store.SelectionsFor(0))
}

func TestToggleDistinctItemsAccumulate(t *testing.T) {
	store := NewSelectionStore()
	store.SetLegEligibility(0, true)

	store.Toggle(0, baggageItem("XB10", 800))
	store.Toggle(0, mealItem("VGML", 350))
	store.Toggle(0, Item{Category: CategorySeat, Code: "12A", Price: 500, Row: "12", Seat: "A"})

	assert.Equal(t, 1650.0, store.Subtotal(0))

	items := store.SelectionsFor(0)
	require.Len(t, items, 3)
	// Stable ordering: by category, then code
	assert.Equal(t, CategoryBaggage, items[0].Category)
	assert.Equal(t, CategoryMeal, items[1].Category)
	assert.Equal(t, CategorySeat, items[2].Category)
}

func TestIneligibleLegPricesZero(t *testing.T) {
	store := NewSelectionStore()
	store.SetLegEligibility(0, false)

	selected := store.Toggle(0, mealItem("VGML", 350))
	assert.True(t, selected, "advisory selections are still recorded")
	assert.Equal(t, 0.0, store.Subtotal(0))

	items := store.SelectionsFor(0)
	require.Len(t, items, 1)
	assert.Equal(t, 0.0, items[0].Price)
}

func TestEligibilityFlipZeroesExistingPrices(t *testing.T) {
	store := NewSelectionStore()
	store.SetLegEligibility(0, true)
	store.Toggle(0, baggageItem("XB10", 800))

	store.SetLegEligibility(0, false)
	assert.Equal(t, 0.0, store.Subtotal(0))
}

func TestLegsAccumulateIndependently(t *testing.T) {
	store := NewSelectionStore()
	store.SetLegEligibility(0, true)
	store.SetLegEligibility(1, true)

	store.Toggle(0, baggageItem("XB10", 800))
	store.Toggle(1, mealItem("VGML", 350))

	assert.Equal(t, 800.0, store.Subtotal(0))
	assert.Equal(t, 350.0, store.Subtotal(1))
	assert.Equal(t, 1150.0, store.TotalAll())

	// Deselecting on one leg leaves the other untouched
	store.Toggle(0, baggageItem("XB10", 800))
	assert.Equal(t, 0.0, store.Subtotal(0))
	assert.Equal(t, 350.0, store.Subtotal(1))
}

func TestConcurrentTogglesAcrossLegs(t *testing.T) {
	store := NewSelectionStore()
	const legs = 4
	const itemsPerLeg = 50

	for i := 0; i < legs; i++ {
		store.SetLegEligibility(i, true)
	}

	var wg sync.WaitGroup
	for i := 0; i < legs; i++ {
		wg.Add(1)
		go func(legIndex int) {
			defer wg.Done()
			for j := 0; j < itemsPerLeg; j++ {
				store.Toggle(legIndex, baggageItem(fmt.Sprintf("XB%02d", j), 10))
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < legs; i++ {
		assert.Equal(t, float64(itemsPerLeg*10), store.Subtotal(i))
		assert.Len(t, store.SelectionsFor(i), itemsPerLeg)
	}
	assert.Equal(t, float64(legs*itemsPerLeg*10), store.TotalAll())
}

func TestReplaceHydratesLeg(t *testing.T) {
	store := NewSelectionStore()
	store.SetLegEligibility(0, true)
	store.Toggle(0, baggageItem("STALE", 100))

	store.Replace(0, true, []Item{baggageItem("XB10", 800), mealItem("VGML", 350)})

	assert.Equal(t, 1150.0, store.Subtotal(0))
	items := store.SelectionsFor(0)
	require.Len(t, items, 2)

	// Hydrating an ineligible leg zeroes prices even in the snapshot
	store.Replace(1, false, []Item{mealItem("VGML", 350)})
	assert.Equal(t, 0.0, store.Subtotal(1))
}
