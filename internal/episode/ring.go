package episode

// #region ring

// Ring is a fixed-capacity FIFO buffer. Pushing onto a full ring
// evicts the oldest entry.
type Ring[T any] struct {
	buf      []T
	capacity int
}

// NewRing creates a ring holding at most capacity entries.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{
		buf:      make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Push appends v, evicting the oldest entry when full.
func (r *Ring[T]) Push(v T) {
	if len(r.buf) == r.capacity {
		copy(r.buf, r.buf[1:])
		r.buf = r.buf[:len(r.buf)-1]
	}
	r.buf = append(r.buf, v)
}

// Len returns the number of stored entries.
func (r *Ring[T]) Len() int {
	return len(r.buf)
}

// Values returns the stored entries, oldest first.
// The returned slice is a copy.
func (r *Ring[T]) Values() []T {
	out := make([]T, len(r.buf))
	copy(out, r.buf)
	return out
}

// Clear drops all entries, keeping capacity.
func (r *Ring[T]) Clear() {
	r.buf = r.buf[:0]
}

// #endregion ring
