package weapons

import (
	"hunterdb/core/datamap"
	"hunterdb/core/gamecfg"
	"hunterdb/core/loader"
)

// noParent marks a node without a parent in the arena.
const noParent = -1

// Node is one weapon in an upgrade forest. Nodes live in the owning Tree's
// arena; Parent and children are stored as arena ids, never as owning
// pointers, so the parent back-reference cannot form an ownership cycle.
type Node struct {
	ID       int
	Type     gamecfg.WeaponType
	Name     datamap.Localized
	TreeName string
	Craft    *loader.RecipeRecord
	Upgrade  *loader.RecipeRecord
	Record   loader.WeaponRecord

	parent   int
	children []int
}

// Tree is the assembled upgrade forest for one weapon type.
type Tree struct {
	Type gamecfg.WeaponType

	nodes  map[int]*Node
	order  []int
	byName map[string]*Node

	roots    []*Node
	isolated []*Node
}

func newTree(wtype gamecfg.WeaponType) *Tree {
	return &Tree{
		Type:   wtype,
		nodes:  make(map[int]*Node),
		byName: make(map[string]*Node),
	}
}

func (t *Tree) add(n *Node) {
	t.nodes[n.ID] = n
	t.order = append(t.order, n.ID)
}

// finish indexes names and classifies roots and isolated nodes. Insertion
// order of the flat records is the correct in-game order for both.
func (t *Tree) finish() {
	for _, id := range t.order {
		node := t.nodes[id]
		t.byName[node.Name.En()] = node

		if node.parent != noParent {
			continue
		}
		if node.TreeName == "" {
			t.isolated = append(t.isolated, node)
		} else {
			t.roots = append(t.roots, node)
		}
	}
}

// ByID returns the node with the given weapon id.
func (t *Tree) ByID(id int) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// ByName returns the node with the given canonical English name.
func (t *Tree) ByName(nameEn string) (*Node, bool) {
	n, ok := t.byName[nameEn]
	return n, ok
}

// Parent returns the parent of a node, or nil for roots and isolated nodes.
func (t *Tree) Parent(n *Node) *Node {
	if n.parent == noParent {
		return nil
	}
	return t.nodes[n.parent]
}

// Children returns the children of a node in declared slot order.
func (t *Tree) Children(n *Node) []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, id := range n.children {
		out = append(out, t.nodes[id])
	}
	return out
}

// Roots returns the tree-group-bearing nodes without a parent.
func (t *Tree) Roots() []*Node {
	return t.roots
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.order)
}

// Crafted returns every tree-connected node in depth-first pre-order
// starting from the roots, preserving per-node child order. The walk is
// stack-based rather than recursive so deep upgrade lines cannot exhaust
// the call stack.
func (t *Tree) Crafted() []*Node {
	var out []*Node

	stack := make([]*Node, 0, len(t.roots))
	for i := len(t.roots) - 1; i >= 0; i-- {
		stack = append(stack, t.roots[i])
	}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, current)

		for i := len(current.children) - 1; i >= 0; i-- {
			stack = append(stack, t.nodes[current.children[i]])
		}
	}
	return out
}

// Isolated returns the nodes with neither parent nor tree label, in
// original encounter order.
func (t *Tree) Isolated() []*Node {
	return t.isolated
}
