package Queues

import "github.com/cockroachdb/errors"

type Queue[T any] interface {
	Push(item T)
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

// ErrEmptyQueue is returned by Pop on an empty queue.
var ErrEmptyQueue = errors.New("queue is empty: cannot pop")
