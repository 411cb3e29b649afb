package capacity

// Capacity is either unlimited or a bounded number of bag slots.
// The zero value is Unlimited.
type Capacity struct {
	slots   int
	bounded bool
}

func Unlimited() Capacity { return Capacity{} }

// Bounded returns a capacity of n slots. A bounded capacity always has at least one
// slot, so n <= 0 yields Unlimited.
func Bounded(n int) Capacity {
	if n <= 0 {
		return Unlimited()
	}
	return Capacity{slots: n, bounded: true}
}

// FromSlots maps a stored capacity value: zero or negative means no limit was configured.
func FromSlots(n int) Capacity { return Bounded(n) }

func (c Capacity) IsUnlimited() bool { return !c.bounded }

// Slots returns the nominal slot count and false when unlimited.
func (c Capacity) Slots() (int, bool) {
	return c.slots, c.bounded
}

// BufferCeiling is floor(90% of slots): the last 10% is never bookable.
// Integer arithmetic keeps the floor exact.
func (c Capacity) BufferCeiling() int {
	if !c.bounded {
		return 0
	}
	return c.slots * 9 / 10
}
