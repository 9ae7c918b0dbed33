package domain

import "sort"

// SortItems orders items in place by the display key
// (day_index, order_index, insertion sequence).
//
// order_index values are not required to be contiguous or unique — manual
// creates and updates may leave gaps or duplicates. The Seq tie-break keeps
// the order well-defined (and equal to insertion order) in that case.
func SortItems(items []TripItem) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.DayIndex != b.DayIndex {
			return a.DayIndex < b.DayIndex
		}
		if a.OrderIndex != b.OrderIndex {
			return a.OrderIndex < b.OrderIndex
		}
		return a.Seq < b.Seq
	})
}
