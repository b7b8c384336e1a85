package shopping

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// unitItem marks a count unit that must not be glued to the quantity.
const unitItem = "item"

// FormatDisplayLine renders a synthesized shopping line from a summed
// quantity. Count items read "3 onions" (or bare "onions" for a zero
// quantity); measured items follow recipe notation with no space
// between amount and unit, "125g butter".
func FormatDisplayLine(qty float64, unit *string, name string) string {
	if unit == nil || *unit == unitItem {
		if qty > 0 {
			return fmt.Sprintf("%s %s", formatQty(qty), name)
		}
		return name
	}
	return fmt.Sprintf("%s%s %s", formatQty(qty), *unit, name)
}

// formatQty renders a quantity without trailing zeros ("175", "1.5").
func formatQty(qty float64) string {
	return strconv.FormatFloat(qty, 'f', -1, 64)
}

// FormatForExport renders the list as plain text for clipboard export:
// a date-range header, then per category an upper-cased header and
// "- line" bullets for the unchecked items. Categories iterate in
// CategoryOrder; categories whose items are all checked are omitted.
func FormatForExport(list ShoppingList, start, end time.Time) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Shopping List - %s to %s",
		start.Format("2 Jan"), end.Format("2 Jan")))
	lines = append(lines, "")

	for _, category := range CategoryOrder {
		unchecked := uncheckedIn(list, category)
		if len(unchecked) == 0 {
			continue
		}
		lines = append(lines, strings.ToUpper(category))
		for _, item := range unchecked {
			lines = append(lines, "- "+item.DisplayLine)
		}
		lines = append(lines, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// FormatForShare renders the list for share sheets and reminder apps:
// natural-case category headers, blank line between categories, no
// document title. Same unchecked-only filtering as the export format.
func FormatForShare(list ShoppingList) string {
	var lines []string

	for _, category := range CategoryOrder {
		unchecked := uncheckedIn(list, category)
		if len(unchecked) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, category)
		for _, item := range unchecked {
			lines = append(lines, "- "+item.DisplayLine)
		}
	}

	return strings.Join(lines, "\n")
}

// UncheckedItems flattens the list to the items still to buy, in
// canonical category order.
func UncheckedItems(list ShoppingList) []ShoppingItem {
	var items []ShoppingItem
	for _, category := range CategoryOrder {
		items = append(items, uncheckedIn(list, category)...)
	}
	return items
}

func uncheckedIn(list ShoppingList, category string) []ShoppingItem {
	var out []ShoppingItem
	for _, item := range list[category] {
		if !item.Have {
			out = append(out, item)
		}
	}
	return out
}
