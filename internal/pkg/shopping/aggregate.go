package shopping

import (
	"fmt"
	"strings"
)

// RawIngredient is one ingredient row as fetched from storage, the
// shape the aggregator consumes. Qty and Unit are nil when the
// importer could not parse an amount; Unit is nil for count items.
type RawIngredient struct {
	Name string
	Line string
	Qty  *float64
	Unit *string
}

// AggregatedItem is one shopping line produced from an aggregation
// group. ID is the grouping key (normalized "name|unit"), stable
// across regenerations so clients can use it for list identity and
// the pantry join.
type AggregatedItem struct {
	ID          string
	Name        string
	DisplayLine string
	Qty         *float64
	Unit        *string
}

// MixedQtyPolicy decides what to do with a group whose members have a
// mix of parsed and unparsed quantities, where summing would
// under-report the total.
type MixedQtyPolicy int

const (
	// MixedQtyFirstLine keeps one item carrying the first member's
	// original line. Matches the historical behavior.
	MixedQtyFirstLine MixedQtyPolicy = iota
	// MixedQtySeparateLines emits every member's original line as its
	// own item so nothing is hidden behind the first occurrence.
	MixedQtySeparateLines
)

// GroupKey returns the aggregation key for an ingredient name and
// unit: both case-folded, nil unit represented by a sentinel so count
// items group together.
func GroupKey(name string, unit *string) string {
	u := "null"
	if unit != nil {
		u = strings.ToLower(*unit)
	}
	return strings.ToLower(strings.TrimSpace(name)) + "|" + u
}

// Aggregate groups ingredient rows by (name, unit) with the default
// mixed-quantity policy. Group order follows first appearance in the
// input, so the same rows in the same order always aggregate the same
// way.
func Aggregate(ingredients []RawIngredient) []AggregatedItem {
	return AggregateWithPolicy(ingredients, MixedQtyFirstLine)
}

// AggregateWithPolicy groups ingredient rows by case-folded
// (name, unit) key and merges each group into shopping lines:
//
//   - all members have a quantity and there is more than one member:
//     quantities are summed and a display line is synthesized
//   - exactly one member: its original line is passed through verbatim
//   - mixed parsed/unparsed quantities: resolved per policy
//
// Units are matched by exact case-folded string only; "g" never merges
// with "kg". The first-seen casing of a name is kept for display.
func AggregateWithPolicy(ingredients []RawIngredient, policy MixedQtyPolicy) []AggregatedItem {
	groups := make(map[string][]RawIngredient)
	var order []string

	for _, ing := range ingredients {
		key := GroupKey(ing.Name, ing.Unit)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], ing)
	}

	var results []AggregatedItem
	for _, key := range order {
		members := groups[key]
		first := members[0]

		allQty := true
		for _, m := range members {
			if m.Qty == nil {
				allQty = false
				break
			}
		}

		switch {
		case allQty && len(members) > 1:
			total := 0.0
			for _, m := range members {
				total += *m.Qty
			}
			results = append(results, AggregatedItem{
				ID:          key,
				Name:        first.Name,
				DisplayLine: FormatDisplayLine(total, first.Unit, first.Name),
				Qty:         &total,
				Unit:        first.Unit,
			})
		case len(members) == 1:
			results = append(results, AggregatedItem{
				ID:          key,
				Name:        first.Name,
				DisplayLine: first.Line,
				Qty:         first.Qty,
				Unit:        first.Unit,
			})
		case policy == MixedQtySeparateLines:
			for i, m := range members {
				results = append(results, AggregatedItem{
					ID:          fmt.Sprintf("%s#%d", key, i),
					Name:        first.Name,
					DisplayLine: m.Line,
					Qty:         m.Qty,
					Unit:        m.Unit,
				})
			}
		default:
			// Mixed quantities, first line stands in for the group.
			results = append(results, AggregatedItem{
				ID:          key,
				Name:        first.Name,
				DisplayLine: first.Line,
				Qty:         first.Qty,
				Unit:        first.Unit,
			})
		}
	}

	return results
}
