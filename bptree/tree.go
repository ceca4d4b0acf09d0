// Package bptree implements an in-memory B+ tree for use as an ordered
// index over keys of any type.
//
// Keys live in the leaves, which chain sideways in ascending order, so the
// sorted key sequence can always be recovered by walking the leaf chain.
// Internal nodes route lookups only. Ordering comes from a single compare
// function fixed at construction; the tree never assumes anything else
// about the key type.
//
// A Tree is not safe for concurrent use. Callers must serialize access.
package bptree

// DefaultMaxKeys is the fan-out bound used when the caller has no reason
// to tune it.
const DefaultMaxKeys = 4

/*
Tree only keeps a pointer to the root node of the tree.
The root starts out as a single empty leaf and is replaced (never mutated
in place) whenever it overflows -- the only way the tree grows in height.
*/
type Tree[K any] struct {
	root    *node[K]
	maxKeys int
	cmp     func(a, b K) int
	length  int
}

// New returns an empty tree ordered by cmp, which must be a total order
// over K (negative, zero, positive for a<b, a==b, a>b). maxKeys bounds
// the number of keys per node before a split. New panics on a nil cmp or
// a fan-out below 2; both are contract violations, not runtime errors.
func New[K any](maxKeys int, cmp func(a, b K) int) *Tree[K] {
	if cmp == nil {
		panic("bptree: nil compare function")
	}
	if maxKeys < 2 {
		panic("bptree: fan-out must be at least 2")
	}
	return &Tree[K]{
		root:    &node[K]{leaf: true},
		maxKeys: maxKeys,
		cmp:     cmp,
	}
}

// Len returns the number of keys in the tree, counting duplicates.
func (t *Tree[K]) Len() int {
	return t.length
}

// Height returns the number of node levels from root to leaf. A fresh
// tree has height 1.
func (t *Tree[K]) Height() int {
	h := 1
	for n := t.root; !n.leaf; n = n.children[0] {
		h++
	}
	return h
}

// Search reports whether key is present. It has no side effects and
// returns false on an empty tree.
func (t *Tree[K]) Search(key K) bool {
	n := t.findLeaf(key)
	for _, k := range n.keys {
		switch c := t.cmp(key, k); {
		case c == 0:
			return true
		case c < 0:
			// keys are sorted, no match past this point
			return false
		}
	}
	return false
}

// Insert adds key to the tree. Duplicate keys are permitted and stored
// adjacent to the existing occurrences.
func (t *Tree[K]) Insert(key K) {
	// The root is the only node allowed to be full when an insertion
	// starts; grow the tree by one level before descending.
	if len(t.root.keys) >= t.maxKeys {
		t.splitRoot()
	}
	t.insertInto(t.root, key)
	t.length++
}

/*
splitRoot creates a new internal root whose sole child is the old root,
then splits that child. The old root becomes the new root's left child
and the split-off sibling its right child.
*/
func (t *Tree[K]) splitRoot() {
	newRoot := &node[K]{children: []*node[K]{t.root}}
	t.splitChild(newRoot, 0)
	t.root = newRoot
}

// Delete removes the first exact occurrence of key from its leaf and
// reports whether it was present. No merging, borrowing, or rebalancing
// happens afterwards: a leaf may fall below half occupancy and a routing
// key may go stale. Deleting an absent key leaves the tree untouched.
func (t *Tree[K]) Delete(key K) bool {
	n := t.findLeaf(key)
	for pos, k := range n.keys {
		switch c := t.cmp(key, k); {
		case c == 0:
			n.keys = append(n.keys[:pos], n.keys[pos+1:]...)
			t.length--
			return true
		case c < 0:
			return false
		}
	}
	return false
}

// Ascend calls fn for every key in ascending order, walking the leaf
// chain from the leftmost leaf. Traversal stops early if fn returns
// false.
func (t *Tree[K]) Ascend(fn func(key K) bool) {
	n := t.root
	for !n.leaf {
		n = n.children[0]
	}
	for ; n != nil; n = n.next {
		for _, k := range n.keys {
			if !fn(k) {
				return
			}
		}
	}
}
