package planner

// Slot identifies a meal-time bucket within a day. The dinner course
// slots share the "dinner:" prefix so the grid can render them as one
// visual block.
const (
	SlotBreakfast     = "breakfast"
	SlotLunch         = "lunch"
	SlotSnack         = "snack"
	SlotDinnerMain    = "dinner:main"
	SlotDinnerSide    = "dinner:side"
	SlotDinnerPudding = "dinner:pudding"
)

// SlotOrder is the display order of slots within a day.
var SlotOrder = []string{
	SlotBreakfast,
	SlotLunch,
	SlotSnack,
	SlotDinnerMain,
	SlotDinnerSide,
	SlotDinnerPudding,
}

// SlotLabel maps slot keys to their display labels.
var SlotLabel = map[string]string{
	SlotBreakfast:     "Breakfast",
	SlotLunch:         "Lunch",
	SlotSnack:         "Snack",
	SlotDinnerMain:    "Dinner — Main",
	SlotDinnerSide:    "Dinner — Sides",
	SlotDinnerPudding: "Dinner — Pudding",
}

// IsValidSlot reports whether key names a known slot.
func IsValidSlot(key string) bool {
	_, ok := SlotLabel[key]
	return ok
}
