package Stacks

// Stack is a last in first out container.
type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	Empty() bool
	Size() uint
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}

type arrStack[T any] struct {
	content []T
}

func MakeArrayStack[T any](initCap uint) Stack[T] {
	return &arrStack[T]{make([]T, 0, initCap)}
}

func (this *arrStack[T]) Push(item T) {
	this.content = append(this.content, item)
}

func (this *arrStack[T]) Pop() (T, error) {
	if len(this.content) == 0 {
		return *new(T), &EmptyStackError{}
	}
	last := len(this.content) - 1
	t := this.content[last]
	this.content[last] = *new(T)
	this.content = this.content[:last]
	return t, nil
}

func (this arrStack[T]) Peek() (T, error) {
	if len(this.content) == 0 {
		return *new(T), &EmptyStackError{}
	}
	return this.content[len(this.content)-1], nil
}

func (this arrStack[T]) Empty() bool {
	return len(this.content) == 0
}

func (this arrStack[T]) Size() uint {
	return uint(len(this.content))
}
