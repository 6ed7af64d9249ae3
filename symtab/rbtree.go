// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package symtab implements the ordered symbol table that holds a loaded
// dictionary: a red-black tree keyed by source word.
//
// Nodes live in an arena and reference each other by index. Index 0 is the
// sentinel, a black node that stands for "no child" and "no parent", so the
// rebalancing code can read a colour without checking for absence first.
package symtab

type color bool

const (
	red   color = true
	black color = false
)

// nilIdx is the arena slot of the shared sentinel.
const nilIdx uint32 = 0

type node struct {
	key                 string
	value               string
	color               color
	left, right, parent uint32
}

// Entry is a key/value pair returned by traversals.
type Entry struct {
	Key   string
	Value string
}

// Tree is a red-black tree mapping words to translations.
// It is not safe for concurrent use while Insert is running; concurrent
// Lookup calls on a tree that is no longer written to are fine.
type Tree struct {
	nodes []node
	root  uint32
}

// New returns an empty tree.
func New() *Tree {
	return NewWithCapacity(0)
}

// NewWithCapacity returns an empty tree with room for n entries.
func NewWithCapacity(n int) *Tree {
	nodes := make([]node, 1, n+1)
	nodes[nilIdx] = node{color: black}
	return &Tree{nodes: nodes, root: nilIdx}
}

// Len returns the number of entries.
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

// Reset releases every node. The tree is empty afterwards.
func (t *Tree) Reset() {
	t.nodes = t.nodes[:1]
	t.nodes[nilIdx] = node{color: black}
	t.root = nilIdx
}

// Insert stores value under key. If key is already present its value is
// replaced in place and Insert reports false; otherwise a new node is
// linked in and the tree is rebalanced.
func (t *Tree) Insert(key, value string) bool {
	parent := nilIdx
	cur := t.root
	for cur != nilIdx {
		parent = cur
		n := &t.nodes[cur]
		switch {
		case key < n.key:
			cur = n.left
		case key > n.key:
			cur = n.right
		default:
			n.value = value
			return false
		}
	}

	z := uint32(len(t.nodes))
	t.nodes = append(t.nodes, node{
		key:    key,
		value:  value,
		color:  red,
		left:   nilIdx,
		right:  nilIdx,
		parent: parent,
	})

	if parent == nilIdx {
		t.root = z
	} else if key < t.nodes[parent].key {
		t.nodes[parent].left = z
	} else {
		t.nodes[parent].right = z
	}

	t.insertFixup(z)
	return true
}

func (t *Tree) insertFixup(z uint32) {
	ns := t.nodes
	for ns[ns[z].parent].color == red {
		p := ns[z].parent
		g := ns[p].parent
		if p == ns[g].left {
			uncle := ns[g].right
			if ns[uncle].color == red {
				ns[p].color = black
				ns[uncle].color = black
				ns[g].color = red
				z = g
				continue
			}
			if z == ns[p].right {
				z = p
				t.rotateLeft(z)
				p = ns[z].parent
			}
			ns[p].color = black
			ns[g].color = red
			t.rotateRight(g)
		} else {
			uncle := ns[g].left
			if ns[uncle].color == red {
				ns[p].color = black
				ns[uncle].color = black
				ns[g].color = red
				z = g
				continue
			}
			if z == ns[p].left {
				z = p
				t.rotateRight(z)
				p = ns[z].parent
			}
			ns[p].color = black
			ns[g].color = red
			t.rotateLeft(g)
		}
	}
	ns[t.root].color = black
}

// rotateLeft turns x's right child y into the root of x's subtree.
//
//	   x              y
//	  / \            / \
//	 a   y    ->    x   c
//	    / \        / \
//	   b   c      a   b
func (t *Tree) rotateLeft(x uint32) {
	ns := t.nodes
	y := ns[x].right
	ns[x].right = ns[y].left
	if ns[y].left != nilIdx {
		ns[ns[y].left].parent = x
	}
	ns[y].parent = ns[x].parent
	switch xp := ns[x].parent; {
	case xp == nilIdx:
		t.root = y
	case x == ns[xp].left:
		ns[xp].left = y
	default:
		ns[xp].right = y
	}
	ns[y].left = x
	ns[x].parent = y
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree) rotateRight(y uint32) {
	ns := t.nodes
	x := ns[y].left
	ns[y].left = ns[x].right
	if ns[x].right != nilIdx {
		ns[ns[x].right].parent = y
	}
	ns[x].parent = ns[y].parent
	switch yp := ns[y].parent; {
	case yp == nilIdx:
		t.root = x
	case y == ns[yp].right:
		ns[yp].right = x
	default:
		ns[yp].left = x
	}
	ns[x].right = y
	ns[y].parent = x
}

// Lookup returns the translation stored under key.
func (t *Tree) Lookup(key string) (string, bool) {
	cur := t.root
	for cur != nilIdx {
		n := &t.nodes[cur]
		switch {
		case key < n.key:
			cur = n.left
		case key > n.key:
			cur = n.right
		default:
			return n.value, true
		}
	}
	return "", false
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return t.height(t.root)
}

func (t *Tree) height(i uint32) int {
	if i == nilIdx {
		return 0
	}
	return max(t.height(t.nodes[i].left), t.height(t.nodes[i].right)) + 1
}

// Walk calls fn for every entry in ascending key order until fn returns false.
func (t *Tree) Walk(fn func(key, value string) bool) {
	t.walk(t.root, fn)
}

func (t *Tree) walk(i uint32, fn func(key, value string) bool) bool {
	if i == nilIdx {
		return true
	}
	n := &t.nodes[i]
	if !t.walk(n.left, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return t.walk(n.right, fn)
}

// SearchPrefix returns, in ascending order, every entry whose key starts
// with prefix. An empty prefix returns the whole tree.
func (t *Tree) SearchPrefix(prefix string) []Entry {
	var results []Entry
	// Keys are ASCII, so 0xff sorts after any key carrying the prefix.
	high := prefix + "\xff"
	t.rangeSearch(t.root, prefix, high, &results)
	return results
}

// rangeSearch appends every entry with low <= key < high under i.
func (t *Tree) rangeSearch(i uint32, low, high string, results *[]Entry) {
	if i == nilIdx {
		return
	}
	n := &t.nodes[i]
	if n.key >= low {
		t.rangeSearch(n.left, low, high, results)
	}
	if n.key >= low && n.key < high {
		*results = append(*results, Entry{Key: n.key, Value: n.value})
	}
	if n.key < high {
		t.rangeSearch(n.right, low, high, results)
	}
}
