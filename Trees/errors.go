package Trees

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidArgument means that a tree, node or element argument was absent or doesn't belong to the tree.
	ErrInvalidArgument = errors.New("bst: invalid argument")
	// ErrEmpty means that the operation needs a non-empty tree.
	ErrEmpty = errors.New("bst: empty tree")
	// ErrAllocation means that no more nodes can be addressed by the tree's index type.
	ErrAllocation = errors.New("bst: cannot allocate node")
	// ErrNotFound means that no node holds an equivalent element.
	ErrNotFound = errors.New("bst: not found")
)

// InvalidSliceError describes where the slice given to From breaks strict ascending order.
// It is marked as ErrInvalidArgument.
type InvalidSliceError[T any] struct {
	Index     int
	Prev, Cur T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at %d: %v then %v", e.Index, e.Prev, e.Cur)
}

func invalidSlice[T any](i int, prev, cur T) error {
	return errors.Mark(InvalidSliceError[T]{i, prev, cur}, ErrInvalidArgument)
}
