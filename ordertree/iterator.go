package ordertree

import (
	"iter"
)

// InOrder returns a lazy in-order iterator over the tree in ascending key
// order. Each call returns an independent, restartable sequence. The tree
// must not be mutated while a sequence is being consumed.
func (t *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := []*node[K, V]{}
		current := t.root
		for current != nil || len(stack) > 0 {

			for current != nil {
				stack = append(stack, current)
				current = current.left
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current.key, current.value) {
				return
			}

			current = current.right
		}
	}
}
