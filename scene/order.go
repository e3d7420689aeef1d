package scene

import "sort"

// PaintOrder returns elems in paint order. Elements carrying a fractional
// index are stably sorted by it with plain string comparison and written
// back into the positions keyed elements held; elements without an index
// stay where they are.
func PaintOrder(elems []Element) []Element {
	out := make([]Element, len(elems))
	copy(out, elems)

	var slots []int
	var keyed []Element
	for i, e := range elems {
		if e.Common().Index != "" {
			slots = append(slots, i)
			keyed = append(keyed, e)
		}
	}
	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].Common().Index < keyed[j].Common().Index
	})
	for n, slot := range slots {
		out[slot] = keyed[n]
	}
	return out
}
