package Queues

// Queue is a first in first out container. Push reports a [FullQueueError]
// on implementations with a fixed capacity and always succeeds on growable
// ones.
type Queue[T any] interface {
	Push(item T) error
	Pop() (T, error)
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type BoundedQueue[T any] interface {
	Queue[T]
	Full() bool
	Size() uint
	Cap() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

type FullQueueError struct {
}

func (e *FullQueueError) Error() string {
	return "Queue is Full: cannot Push."
}
