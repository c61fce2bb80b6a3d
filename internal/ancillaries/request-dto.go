package ancillaries

// ToggleRequest selects or deselects one ancillary for a leg
type ToggleRequest struct {
	LegIndex    int     `json:"leg_index"`
	Category    string  `json:"category" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Row         string  `json:"row"`
	Seat        string  `json:"seat"`
}
