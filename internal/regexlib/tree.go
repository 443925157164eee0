package regexlib

import (
	"fmt"
	"sort"
)

type nodeKind int

const (
	kindEmpty nodeKind = iota // ε
	kindLetter
	kindTerminator // synthetic end-marker
	kindOr
	kindCat
	kindStar
)

// posSet is a set of leaf ids. Leaves live in the Tree arena, so sets
// carry plain ints instead of node pointers.
type posSet map[int]struct{}

func (s posSet) add(id int) { s[id] = struct{}{} }

func (s posSet) union(o posSet) {
	for id := range o {
		s[id] = struct{}{}
	}
}

func (s posSet) has(id int) bool {
	_, ok := s[id]
	return ok
}

func (s posSet) sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// key is a content-based map key: two sets with the same members
// produce the same key regardless of insertion order.
func (s posSet) key() string { return fmt.Sprint(s.sorted()) }

// node is one variant of the syntax tree. nullable, firstpos and
// lastpos are computed once at construction; followpos is filled in
// for leaves by a later pass over the whole tree.
type node struct {
	kind nodeKind

	ch rune // kindLetter, kindTerminator
	id int  // leaf position id

	left  *node
	right *node // nil for kindStar

	nullable  bool
	firstpos  posSet
	lastpos   posSet
	followpos posSet // leaves only
}

func newEmpty() *node {
	return &node{kind: kindEmpty, nullable: true, firstpos: posSet{}, lastpos: posSet{}}
}

func newLeaf(kind nodeKind, ch rune, id int) *node {
	return &node{
		kind:      kind,
		ch:        ch,
		id:        id,
		firstpos:  posSet{id: {}},
		lastpos:   posSet{id: {}},
		followpos: posSet{},
	}
}

func newOr(l, r *node) *node {
	n := &node{
		kind:     kindOr,
		left:     l,
		right:    r,
		nullable: l.nullable || r.nullable,
		firstpos: posSet{},
		lastpos:  posSet{},
	}
	n.firstpos.union(l.firstpos)
	n.firstpos.union(r.firstpos)
	n.lastpos.union(l.lastpos)
	n.lastpos.union(r.lastpos)
	return n
}

func newCat(l, r *node) *node {
	n := &node{
		kind:     kindCat,
		left:     l,
		right:    r,
		nullable: l.nullable && r.nullable,
		firstpos: posSet{},
		lastpos:  posSet{},
	}
	n.firstpos.union(l.firstpos)
	if l.nullable {
		n.firstpos.union(r.firstpos)
	}
	n.lastpos.union(r.lastpos)
	if r.nullable {
		n.lastpos.union(l.lastpos)
	}
	return n
}

func newStar(c *node) *node {
	return &node{kind: kindStar, left: c, nullable: true, firstpos: c.firstpos, lastpos: c.lastpos}
}

func (n *node) isLeaf() bool {
	return n.kind == kindLetter || n.kind == kindTerminator
}

func (n *node) children() []*node {
	switch n.kind {
	case kindOr, kindCat:
		return []*node{n.left, n.right}
	case kindStar:
		return []*node{n.left}
	}
	return nil
}

func (n *node) label() string {
	switch n.kind {
	case kindEmpty:
		return "empty"
	case kindOr:
		return "OR"
	case kindCat:
		return "CAT"
	case kindStar:
		return "STAR"
	default:
		return fmt.Sprintf("%c:%d", n.ch, n.id)
	}
}

// Tree is the augmented, annotated syntax tree of one pattern. The
// rightmost leaf under the root is always the terminator; a DFA state
// whose position set contains it is accepting.
type Tree struct {
	root   *node
	leaves []*node // arena indexed by leaf id, terminator last
}

func newTree(root *node, numLeaves int) *Tree {
	t := &Tree{root: root, leaves: make([]*node, numLeaves)}
	t.index(root)
	t.buildFollowpos(root)
	return t
}

func (t *Tree) index(n *node) {
	if n.isLeaf() {
		t.leaves[n.id] = n
		return
	}
	for _, c := range n.children() {
		t.index(c)
	}
}

// terminator returns the position id of the end-marker.
func (t *Tree) terminator() int { return len(t.leaves) - 1 }

// buildFollowpos accumulates followpos edges over the whole tree.
// Only Cat (lastpos of the left child feeds firstpos of the right) and
// Star (lastpos of the child loops back to its firstpos) contribute.
func (t *Tree) buildFollowpos(n *node) {
	for _, c := range n.children() {
		t.buildFollowpos(c)
	}
	switch n.kind {
	case kindCat:
		for id := range n.left.lastpos {
			t.leaves[id].followpos.union(n.right.firstpos)
		}
	case kindStar:
		for id := range n.left.lastpos {
			t.leaves[id].followpos.union(n.left.firstpos)
		}
	}
}
