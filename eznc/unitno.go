package eznc

import "sync"

// MaxUnitNumber is the highest unit number EZSocket accepts.
const MaxUnitNumber = 255

// UnitAllocator hands out the unit numbers (1 to MaxUnitNumber) that identify
// logical EZSocket connections. The pool is shared by every session in the
// process that uses the same allocator instance, so the allocator guards its
// slots with its own mutex independent of any session lock.
//
// Allocation is deterministic: the lowest free number is always picked.
type UnitAllocator struct {
	mu   sync.Mutex
	used [MaxUnitNumber]bool
}

// NewUnitAllocator creates an allocator with all unit numbers free.
func NewUnitAllocator() *UnitAllocator {
	return &UnitAllocator{}
}

// Allocate marks the lowest free unit number as used and returns it.
// It returns ErrUnitNumbersExhausted when every number is in use; exhaustion
// is a hard failure and is not retried.
func (a *UnitAllocator) Allocate() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, used := range a.used {
		if !used {
			a.used[i] = true
			return i + 1, nil
		}
	}

	return 0, ErrUnitNumbersExhausted
}

// Release marks the unit number as free again. Releasing an already free or
// out of range number is a no-op.
func (a *UnitAllocator) Release(unitNo int) {
	if unitNo < 1 || unitNo > MaxUnitNumber {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.used[unitNo-1] = false
}
