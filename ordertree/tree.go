// Package ordertree implements a self-balancing binary search tree in the
// style of Adelson-Velsky and Landis (AVL), augmented with per-subtree node
// counts. The count augmentation makes rank queries cheap: the k-th largest
// key is found in O(log n) by descending along cached counts instead of
// walking the whole tree.
//
// The tree is not safe for concurrent mutation. Callers that share a tree
// across goroutines must serialize writes themselves; read-only queries may
// share a reader lock since they never touch cached fields.
package ordertree

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrDuplicateKey is returned by Insert when the key is already present.
	ErrDuplicateKey = errors.New("ordertree: duplicate key")
	// ErrKeyNotFound is returned by Get and Delete for absent keys.
	ErrKeyNotFound = errors.New("ordertree: key not found")
	// ErrOutOfRange is returned by KthLargest when k is not in [1, Len()].
	ErrOutOfRange = errors.New("ordertree: rank out of range")
)

type node[K constraints.Ordered, V any] struct {
	key    K
	value  V
	height int // height of the subtree rooted here, leaf = 1
	count  int // nodes in the subtree rooted here, leaf = 1
	left   *node[K, V]
	right  *node[K, V]
}

// Tree is an order-statistics AVL tree mapping totally ordered keys to
// opaque values. The zero value is not usable; construct with New.
type Tree[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty tree.
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of keys currently in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Height returns the height of the tree, 0 when empty.
func (t *Tree[K, V]) Height() int {
	return t.heightOf(t.root)
}

func (t *Tree[K, V]) heightOf(n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (t *Tree[K, V]) countOf(n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.count
}

// update refreshes the cached height and subtree count of n from its
// children. Children must already carry correct caches.
func (t *Tree[K, V]) update(n *node[K, V]) {
	n.height = 1 + max(t.heightOf(n.left), t.heightOf(n.right))
	n.count = 1 + t.countOf(n.left) + t.countOf(n.right)
}

// balanceFactor is right height minus left height; the AVL invariant keeps
// it within [-1, 1] for every node.
func (t *Tree[K, V]) balanceFactor(n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return t.heightOf(n.right) - t.heightOf(n.left)
}

// rotateLeft promotes n's right child over n and returns it as the new
// subtree root. Only the two relinked nodes need their caches refreshed.
func (t *Tree[K, V]) rotateLeft(n *node[K, V]) *node[K, V] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	t.update(n)
	t.update(pivot)
	return pivot
}

// rotateRight promotes n's left child over n and returns it as the new
// subtree root.
func (t *Tree[K, V]) rotateRight(n *node[K, V]) *node[K, V] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	t.update(n)
	t.update(pivot)
	return pivot
}

// rebalance restores the AVL invariant at n after a structural change below
// it, choosing between the four single/double rotation cases. The caller is
// expected to have refreshed n's caches already.
func (t *Tree[K, V]) rebalance(n *node[K, V]) *node[K, V] {
	balance := t.balanceFactor(n)

	if balance >= 2 { // right-heavy
		if t.heightOf(n.right.left) > t.heightOf(n.right.right) {
			// right-left case
			n.right = t.rotateRight(n.right)
		}
		return t.rotateLeft(n)
	}

	if balance <= -2 { // left-heavy
		if t.heightOf(n.left.right) > t.heightOf(n.left.left) {
			// left-right case
			n.left = t.rotateLeft(n.left)
		}
		return t.rotateRight(n)
	}

	return n
}

// Insert adds key with the given value. It returns ErrDuplicateKey and
// leaves the tree untouched when the key is already present.
func (t *Tree[K, V]) Insert(key K, value V) error {
	root, err := t.insertNode(t.root, key, value)
	if err != nil {
		return err
	}
	t.root = root
	t.size++
	return nil
}

func (t *Tree[K, V]) insertNode(n *node[K, V], key K, value V) (*node[K, V], error) {
	if n == nil {
		return &node[K, V]{key: key, value: value, height: 1, count: 1}, nil
	}

	var err error
	switch {
	case key < n.key:
		n.left, err = t.insertNode(n.left, key, value)
	case key > n.key:
		n.right, err = t.insertNode(n.right, key, value)
	default:
		return n, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	if err != nil {
		return n, err
	}

	t.update(n)
	return t.rebalance(n), nil
}

// Delete removes key from the tree. It returns ErrKeyNotFound and leaves
// the tree untouched when the key is absent.
func (t *Tree[K, V]) Delete(key K) error {
	root, err := t.deleteNode(t.root, key)
	if err != nil {
		return err
	}
	t.root = root
	t.size--
	return nil
}

func (t *Tree[K, V]) deleteNode(n *node[K, V], key K) (*node[K, V], error) {
	if n == nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	var err error
	switch {
	case key < n.key:
		n.left, err = t.deleteNode(n.left, key)
	case key > n.key:
		n.right, err = t.deleteNode(n.right, key)
	default:
		if n.left == nil && n.right == nil {
			return nil, nil
		}
		if n.left == nil {
			return n.right, nil
		}
		if n.right == nil {
			return n.left, nil
		}
		// Two children: copy the in-order successor here, then delete it
		// from the right subtree. That recursion rebalances on the way out.
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.key = succ.key
		n.value = succ.value
		n.right, err = t.deleteNode(n.right, succ.key)
	}
	if err != nil {
		return n, err
	}

	t.update(n)
	return t.rebalance(n), nil
}

// Get returns the value stored at key, or ErrKeyNotFound.
func (t *Tree[K, V]) Get(key K) (V, error) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.value, nil
		}
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, err := t.Get(key)
	return err == nil
}

// Set stores value at key, inserting the key when absent and overwriting
// the value in place when present.
func (t *Tree[K, V]) Set(key K, value V) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			n.value = value
			return
		}
	}
	// Absent key: Insert cannot fail here.
	_ = t.Insert(key, value)
}

// KthLargest returns the key and value ranked k-th when keys are sorted
// descending, so KthLargest(1) is the maximum. It returns ErrOutOfRange
// unless 1 <= k <= Len(). The descent is guided by cached subtree counts
// and is O(log n) because the tree stays height-balanced.
func (t *Tree[K, V]) KthLargest(k int) (K, V, error) {
	if k < 1 || k > t.size {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, fmt.Errorf("%w: k=%d with %d keys", ErrOutOfRange, k, t.size)
	}
	n := t.kthLargestNode(t.root, k)
	return n.key, n.value, nil
}

func (t *Tree[K, V]) kthLargestNode(n *node[K, V], k int) *node[K, V] {
	rightCount := t.countOf(n.right)
	switch {
	case k == rightCount+1:
		return n
	case k <= rightCount:
		return t.kthLargestNode(n.right, k)
	default:
		return t.kthLargestNode(n.left, k-rightCount-1)
	}
}
