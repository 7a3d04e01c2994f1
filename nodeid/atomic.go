package nodeid

import "sync/atomic"

// AtomicU32 is a fixed-width atomic node-ID cell. It wraps atomic.Uint32
// rather than exposing it directly so the borrow-count call sites in csr
// and the union-find call sites in wcc read as domain operations
// (Add, Load, CAS) instead of raw atomic plumbing.
type AtomicU32 struct {
	v atomic.Uint32
}

// NewAtomicU32 returns a cell initialized to v.
func NewAtomicU32(v uint32) *AtomicU32 {
	a := &AtomicU32{}
	a.v.Store(v)
	return a
}

// Load reads the current value. Relaxed: no ordering is implied beyond
// what the Go memory model guarantees for atomic operations.
func (a *AtomicU32) Load() uint32 { return a.v.Load() }

// Store writes v unconditionally.
func (a *AtomicU32) Store(v uint32) { a.v.Store(v) }

// Add adds delta and returns the new value. Used by the csr borrow
// counter, where correctness only depends on the sum being commutative,
// not on write ordering.
func (a *AtomicU32) Add(delta uint32) uint32 { return a.v.Add(delta) }

// CompareAndSwap performs a CAS from old to new, reporting success. Used
// by the WCC union-find link step, which requires the CAS itself to
// publish the new parent with acquire/release semantics. Go's
// sync/atomic already provides that on every atomic op, so no extra
// memory barrier is needed here.
func (a *AtomicU32) CompareAndSwap(old, new uint32) bool {
	return a.v.CompareAndSwap(old, new)
}

// AtomicU64 is the 64-bit counterpart of AtomicU32, used by the CSR
// builder's degree histogram and scatter cursors.
type AtomicU64 struct {
	v atomic.Uint64
}

// NewAtomicU64 returns a cell initialized to v.
func NewAtomicU64(v uint64) *AtomicU64 {
	a := &AtomicU64{}
	a.v.Store(v)
	return a
}

// Load reads the current value.
func (a *AtomicU64) Load() uint64 { return a.v.Load() }

// Store writes v unconditionally.
func (a *AtomicU64) Store(v uint64) { a.v.Store(v) }

// Add adds delta and returns the new value.
func (a *AtomicU64) Add(delta uint64) uint64 { return a.v.Add(delta) }

// CompareAndSwap performs a CAS from old to new, reporting success.
func (a *AtomicU64) CompareAndSwap(old, new uint64) bool {
	return a.v.CompareAndSwap(old, new)
}
