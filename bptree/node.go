package bptree

/*
A node is either a leaf or an internal node, fixed at creation.
Leaves hold the actual keys and chain sideways through next, so the full
sorted key sequence can be read off the leaves alone. Internal nodes hold
routing keys only, with one more child than keys.
*/
type node[K any] struct {
	leaf     bool
	keys     []K
	children []*node[K]
	next     *node[K] // right sibling in the leaf chain, leaves only
}

// helper to splice v into s at an arbitrary position
func insertAt[T any](s []T, pos int, v T) []T {
	s = append(s, v)
	copy(s[pos+1:], s[pos:])
	s[pos] = v
	return s
}

/*
splitChild splits the full node at parent.children[pos] into itself (left
half) and a newly created right sibling, and links the promoted key into
the parent at pos with the new sibling at pos+1.

Leaf split is copy-up: the first key of the right half is duplicated into
the parent and every key stays in some leaf. Internal split is push-up:
the middle routing key is removed from the splitting node when promoted.
*/
func (t *Tree[K]) splitChild(parent *node[K], pos int) {
	n := parent.children[pos]
	mid := (t.maxKeys + 1) / 2

	var promoted K
	right := &node[K]{leaf: n.leaf}

	if n.leaf {
		right.keys = append(right.keys, n.keys[mid:]...)
		promoted = right.keys[0]
		n.keys = n.keys[:mid:mid]

		// Keep the leaf chain intact: the new sibling takes over the old
		// next pointer and becomes the old leaf's successor.
		right.next = n.next
		n.next = right
	} else {
		promoted = n.keys[mid]
		right.keys = append(right.keys, n.keys[mid+1:]...)
		right.children = append(right.children, n.children[mid+1:]...)
		n.keys = n.keys[:mid:mid]
		n.children = n.children[: mid+1 : mid+1]
	}

	parent.keys = insertAt(parent.keys, pos, promoted)
	parent.children = insertAt(parent.children, pos+1, right)
}

/*
insertInto descends from n to a leaf and splices the key in, maintaining
ascending order. Duplicates are allowed and simply end up adjacent.

Any full child on the traversal path is split before descending into it,
so a leaf always has room by the time we reach it. After a split the
promoted key may redirect the descent one child to the right.
*/
func (t *Tree[K]) insertInto(n *node[K], key K) {
	if n.leaf {
		pos := 0
		for pos < len(n.keys) && t.cmp(n.keys[pos], key) <= 0 {
			pos++
		}
		n.keys = insertAt(n.keys, pos, key)
		return
	}

	pos := t.childIndex(n, key)
	if len(n.children[pos].keys) >= t.maxKeys {
		t.splitChild(n, pos)
		if t.cmp(key, n.keys[pos]) >= 0 {
			pos++
		}
	}
	t.insertInto(n.children[pos], key)
}

/*
childIndex returns the index of the child to descend into when looking
for key: the first child whose upper routing bound is past the key.
A key equal to a routing key belongs to the right child, since a leaf
split leaves a copy of the promoted key in the new right leaf.
*/
func (t *Tree[K]) childIndex(n *node[K], key K) int {
	pos := 0
	for pos < len(n.keys) && t.cmp(n.keys[pos], key) <= 0 {
		pos++
	}
	return pos
}

// findLeaf walks from n down to the leaf that key routes to.
func (t *Tree[K]) findLeaf(key K) *node[K] {
	n := t.root
	for !n.leaf {
		n = n.children[t.childIndex(n, key)]
	}
	return n
}
