package knapsack

// Knapsack is one problem instance: an ordered collection of items together
// with the maximum total weight the knapsack can hold. Item order is
// significant, since position i of a choice vector decides whether item i is
// included.
//
// A Knapsack is immutable after construction, which is what makes concurrent
// evaluation of many candidates against the same instance safe without
// locking.
type Knapsack struct {
	items    []Item
	capacity uint64
}

// New constructs an instance from a collection of items and a capacity. The
// items are copied, so later changes to the argument slice do not reach the
// instance. No validation is applied: an empty item list and a zero capacity
// are both legal.
func New(items []Item, capacity uint64) *Knapsack {
	owned := make([]Item, len(items))
	copy(owned, items)
	return &Knapsack{items: owned, capacity: capacity}
}

// Items returns a copy of the instance's items in their original order.
func (k *Knapsack) Items() []Item {
	items := make([]Item, len(k.items))
	copy(items, k.items)
	return items
}

// NumItems returns the number of items available to choose from.
func (k *Knapsack) NumItems() int {
	return len(k.items)
}

// GetItem returns the item at the given index, or false when the index is
// out of range.
func (k *Knapsack) GetItem(index int) (Item, bool) {
	if index < 0 || index >= len(k.items) {
		return Item{}, false
	}
	return k.items[index], true
}

// Capacity returns the maximum total weight the knapsack can hold.
func (k *Knapsack) Capacity() uint64 {
	return k.capacity
}

// Value returns the total value of the chosen items: the sum of Value over
// every position where choices holds true. Items and choices are zipped
// positionally and truncated to the shorter side, so a short choice vector
// leaves the trailing items unchosen and extra trailing choices are ignored.
// Callers that require equal lengths must check upstream.
func (k *Knapsack) Value(choices []bool) uint64 {
	var total uint64
	for i, item := range k.items {
		if i >= len(choices) {
			break
		}
		if choices[i] {
			total += item.Value()
		}
	}
	return total
}

// Weight returns the total weight of the chosen items, under the same
// zip-truncate rule as Value.
func (k *Knapsack) Weight(choices []bool) uint64 {
	var total uint64
	for i, item := range k.items {
		if i >= len(choices) {
			break
		}
		if choices[i] {
			total += item.Weight()
		}
	}
	return total
}
