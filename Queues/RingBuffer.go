package Queues

// A circular buffer that never grows: pushing into a full one fails instead
// of allocating, so memory use is fixed at creation.
type ringBuf[T any] struct {
	sz, head, tail uint
	content        []T
}

func MakeRingBuffer[T any](capacity uint) BoundedQueue[T] {
	return &ringBuf[T]{0, 0, 0, make([]T, capacity)}
}

func (this ringBuf[T]) Empty() bool {
	return this.sz == 0
}

func (this ringBuf[T]) Full() bool {
	return this.sz == uint(len(this.content))
}

func (this ringBuf[T]) Size() uint {
	return this.sz
}

func (this ringBuf[T]) Cap() uint {
	return uint(len(this.content))
}

func (this *ringBuf[T]) Push(item T) error {
	if this.Full() {
		return &FullQueueError{}
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
	return nil
}

func (this *ringBuf[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return t, nil
}

func (this ringBuf[T]) Peek() (item T) {
	if this.Empty() {
		return *new(T)
	}
	return this.content[this.head]
}
