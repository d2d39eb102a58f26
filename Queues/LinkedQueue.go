package Queues

type node[T any] struct {
	v  T
	nx *node[T]
}

// A singly linked queue growing one node per element. head is a dummy node
// whose nx is the front; tail aims at the last node, or at head when empty.
type linkedQ[T any] struct {
	head, tail *node[T]
}

func MakeLinkedQueue[T any]() Queue[T] {
	a := new(node[T])
	return &linkedQ[T]{a, a}
}

func (this *linkedQ[T]) Push(item T) error {
	n := &node[T]{v: item}
	this.tail.nx = n
	this.tail = n
	return nil
}

func (this *linkedQ[T]) Pop() (T, error) {
	first := this.head.nx
	if first == nil {
		return *new(T), &EmptyQueueError{}
	}
	this.head.nx = first.nx
	if first == this.tail {
		this.tail = this.head
	}
	first.nx = nil
	return first.v, nil
}

func (this linkedQ[T]) Peek() T {
	if this.head.nx == nil {
		return *new(T)
	}
	return this.head.nx.v
}

func (this linkedQ[T]) Empty() bool {
	return this.head.nx == nil
}
