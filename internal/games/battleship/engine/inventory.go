package engine

// Inventory holds the number of ships left to place, indexed by length-1.
type Inventory [MaxShipLength]int

// DefaultInventory is the classic fleet: four boats of length 1, three of
// length 2, two of length 3 and one of length 4.
var DefaultInventory = Inventory{4, 3, 2, 1}

// Remaining returns how many ships of the given length are left to place.
func (inv Inventory) Remaining(length int) int {
	if length < 1 || length > MaxShipLength {
		return 0
	}
	return inv[length-1]
}

// Total returns the number of ships left to place across all lengths.
func (inv Inventory) Total() int {
	n := 0
	for _, c := range inv {
		n += c
	}
	return n
}

// Empty reports whether every ship has been placed.
func (inv Inventory) Empty() bool {
	return inv.Total() == 0
}

// take decrements the count for length. Callers check Remaining first.
func (inv *Inventory) take(length int) {
	inv[length-1]--
}

// Longest returns the longest length still in stock, or 0 when empty.
func (inv Inventory) Longest() int {
	for l := MaxShipLength; l >= 1; l-- {
		if inv[l-1] > 0 {
			return l
		}
	}
	return 0
}

// NextAfter returns the next length after current (wrapping, ascending) that
// still has ships in stock, or 0 when the inventory is empty.
func (inv Inventory) NextAfter(current int) int {
	for i := 1; i <= MaxShipLength; i++ {
		l := (current+i-1)%MaxShipLength + 1
		if inv[l-1] > 0 {
			return l
		}
	}
	return 0
}

// Valid reports whether the inventory has no negative counts and at least one ship.
func (inv Inventory) Valid() bool {
	for _, c := range inv {
		if c < 0 {
			return false
		}
	}
	return inv.Total() > 0
}
