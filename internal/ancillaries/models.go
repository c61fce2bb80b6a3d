package ancillaries

// Category is the kind of ancillary add-on
type Category string

const (
	CategoryBaggage Category = "BAGGAGE"
	CategoryMeal    Category = "MEAL"
	CategorySeat    Category = "SEAT"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryBaggage, CategoryMeal, CategorySeat:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Item is one selected ancillary. Row/Seat are set for SEAT only.
type Item struct {
	Category    Category `json:"category"`
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Row         string   `json:"row,omitempty"`
	Seat        string   `json:"seat,omitempty"`
}

// selectionKey identifies an item within a leg; toggling the same key
// twice returns the leg to its prior state
type selectionKey struct {
	Category Category
	Code     string
}

// LegSummary is the read model for one leg's selections
type LegSummary struct {
	LegIndex int     `json:"leg_index"`
	Items    []Item  `json:"items"`
	Subtotal float64 `json:"subtotal"`
}
