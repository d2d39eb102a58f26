package Heaps

// Heap is a priority queue yielding its least element first, least as
// defined by the ordering the implementation was built with. Implemented by
// [BinaryHeap] and [PairHeap]; [FibHeap] stands alone because its Push
// hands back a node reference.
type Heap[T any] interface {
	// Push v onto the heap.
	Push(v T)
	// Pop the least element off the heap. Returning false if the heap is
	// empty.
	Pop() (T, bool)
	// Peek at the least element without removing it. Returning false if the
	// heap is empty.
	Peek() (T, bool)
	// Size of the heap.
	Size() uint
	// Empty reports whether the heap holds no elements.
	Empty() bool
}
