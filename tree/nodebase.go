// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"log/slog"
	"strings"
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the tree system. You must use NodeBase as an embedded struct
// in all higher-level tree types.
//
// Nodes are initialized by [InitNode], which sets the [NodeBase.This] field
// so that methods defined on NodeBase can call methods defined on
// higher-level types. Adding a node with [NodeBase.AddChild] initializes
// it automatically.
type NodeBase struct {

	// Name is the name of this node, which is typically unique relative to other
	// children of the same parent. It is used for finding and deleting children.
	// If it is empty when the node is added to a parent, it defaults to the
	// lowercase name of the node type combined with the total number of
	// children that have ever been added to the parent.
	Name string

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types, which
	// is necessary for various parts of tree and widget functionality.
	This Node `json:"-" toml:"-" yaml:"-"`

	// Parent is the parent of this node, which is set automatically when this node is
	// added as a child of a parent. It does not own this node, and it is cleared
	// when this node is detached. You should not set it directly.
	Parent Node `json:"-" toml:"-" yaml:"-"`

	// Children is the ordered list of children of this node, which it owns.
	// Their order is the draw and layout order. All of them have this node
	// as their parent. You should typically use the NodeBase child methods
	// for modifying it, so that parents are updated properly.
	Children []Node `json:"-" toml:"-" yaml:"-"`

	// numLifetimeChildren is the number of children that have ever been added to this
	// node, which is used for automatic unique naming.
	numLifetimeChildren uint64

	// index is the last value of our index, which is used as a starting point for
	// finding us in our parent next time. It is not guaranteed to be accurate;
	// use the [NodeBase.IndexInParent] method.
	index int
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// Init is a placeholder implementation of
// [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// OnAdd is a placeholder implementation of
// [Node.OnAdd] that does nothing.
func (n *NodeBase) OnAdd() {}

// Parents:

// IndexInParent returns our index within our parent node. It checks
// the last known index first, so repeated calls are typically fast.
// Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	kids := n.Parent.AsTree().Children
	if n.index >= 0 && n.index < len(kids) && kids[n.index] == n.This {
		return n.index
	}
	idx := IndexOf(kids, n.This)
	n.index = idx
	return idx
}

// ParentLevel finds a given potential parent node recursively up the
// hierarchy, returning the level above the current node that the parent was
// found, and -1 if not found.
func (n *NodeBase) ParentLevel(parent Node) int {
	parLev := -1
	level := 0
	n.WalkUpParent(func(k Node) bool {
		if k == parent {
			parLev = level
			return Break
		}
		level++
		return Continue
	})
	return parLev
}

// ParentByName finds first parent recursively up hierarchy that matches
// the given name. It returns nil if not found.
func (n *NodeBase) ParentByName(name string) Node {
	if n.Parent == nil {
		return nil
	}
	if n.Parent.AsTree().Name == name {
		return n.Parent
	}
	return n.Parent.AsTree().ParentByName(name)
}

// MustParent returns the parent of this node, panicking if it
// has none. It is for code paths where a parent is required.
func (n *NodeBase) MustParent() Node {
	if n.Parent == nil {
		panic(fmt.Sprintf("tree.NodeBase.MustParent: node %q has no parent", n.Name))
	}
	return n.Parent
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name, and nil
// if no such element is found.
func (n *NodeBase) ChildByName(name string) Node {
	return n.Child(IndexByName(n.Children, name))
}

// Paths:

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName returns a name that replaces any \\ with /
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the path to this node from the tree root,
// using [Node.Name]s separated by / delimeters. Any
// existing / characters in names are escaped to \\
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + EscapePathName(n.Name)
	}
	return "/" + EscapePathName(n.Name)
}

// PathFrom returns the path to this node from the given parent node,
// excluding the name of the parent and the leading slash; for example,
// in the tree a/b/c/d/e, the result of d.PathFrom(b) would be c/d.
func (n *NodeBase) PathFrom(parent Node) string {
	if n.This == parent {
		return ""
	}
	parent = parent.AsTree().This
	if n.Parent == nil || n.Parent == parent {
		return EscapePathName(n.Name)
	}
	return n.Parent.AsTree().PathFrom(parent) + "/" + EscapePathName(n.Name)
}

// FindPath returns the node at the given path from this node, in the
// format produced by [NodeBase.PathFrom]. It returns nil if no node is
// found at the given path.
func (n *NodeBase) FindPath(path string) Node {
	cur := n.This
	for _, pe := range strings.Split(strings.TrimSpace(path), "/") {
		if len(pe) == 0 {
			continue
		}
		cur = cur.AsTree().ChildByName(UnescapePathName(pe))
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Adding Children:

// AddChild attaches the given node as the last child of this node.
// A node that already has a parent is first detached from it, so this
// also moves nodes between parents. It panics when the node is this
// node, when the two names are equal, or when the node is an ancestor
// of this node, leaving the tree unchanged.
func (n *NodeBase) AddChild(kid Node) {
	if n.This == nil {
		InitNode(n)
	}
	InitNode(kid)
	kb := kid.AsTree()
	if kid == n.This {
		panic(fmt.Sprintf("tree.NodeBase.AddChild: cannot add node %q to itself", n.Name))
	}
	if kb.Name != "" && kb.Name == n.Name {
		panic(fmt.Sprintf("tree.NodeBase.AddChild: child has the same name %q as its parent", n.Name))
	}
	if n.ParentLevel(kid) >= 0 {
		panic(fmt.Sprintf("tree.NodeBase.AddChild: node %q is an ancestor of %q", kb.Name, n.Name))
	}
	if kb.Name == "" {
		count := n.numLifetimeChildren
		kb.Name = autoName(kid, count)
		for kb.Name == n.Name {
			count++
			kb.Name = autoName(kid, count)
		}
	}
	if kb.Parent != nil {
		kb.Parent.AsTree().DeleteChild(kid)
	}
	n.Children = append(n.Children, kid)
	SetParent(kid, n.This)
}

// Deleting Children:

// DeleteChildAt detaches the child at the given index, moving the last
// child into its place. The detached child has its parent cleared and
// is returned. It returns false if there is no child at the given index.
func (n *NodeBase) DeleteChildAt(index int) (Node, bool) {
	child := n.Child(index)
	if child == nil {
		return nil, false
	}
	last := len(n.Children) - 1
	Swap(n.Children, index, last)
	n.Children[last] = nil
	n.Children = n.Children[:last]
	child.AsTree().Parent = nil
	return child, true
}

// DeleteChild detaches the given child node, returning false if
// it is not a child of this node. See [NodeBase.DeleteChildAt].
func (n *NodeBase) DeleteChild(child Node) (Node, bool) {
	if child == nil {
		return nil, false
	}
	return n.DeleteChildAt(IndexOf(n.Children, child))
}

// DeleteChildByName detaches the first child with the given name,
// returning false if there is none. See [NodeBase.DeleteChildAt].
func (n *NodeBase) DeleteChildByName(name string) (Node, bool) {
	return n.DeleteChildAt(IndexByName(n.Children, name))
}

// DeleteChildren detaches all of the children, clearing their parent.
func (n *NodeBase) DeleteChildren() {
	for _, kid := range n.Children {
		if kid != nil {
			kid.AsTree().Parent = nil
		}
	}
	clear(n.Children)
	n.Children = n.Children[:0]
}

// Delete detaches this node from its parent and then destroys it.
func (n *NodeBase) Delete() {
	if n.Parent != nil {
		n.Parent.AsTree().DeleteChild(n.This)
	}
	if n.This != nil {
		n.This.Destroy()
	}
}

// Destroy releases this node: its direct children are detached, with
// their parent cleared, but they are not themselves destroyed, and
// this node is detached from its parent.
func (n *NodeBase) Destroy() {
	if n.Parent != nil {
		n.Parent.AsTree().DeleteChild(n.This)
	}
	n.DeleteChildren()
	n.Children = nil
}

// Tree Walking:

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break] and keeps walking if
// it returns [Continue]. It returns whether walking was finished (false
// if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	if !fun(n.This) {
		return false
	}
	return n.WalkUpParent(fun)
}

// WalkUpParent calls the given function on all of the node's parents (but not
// the node itself). It stops walking if the function returns [Break] and keeps
// walking if it returns [Continue]. It returns whether walking was finished
// (false if it was aborted with [Break]).
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	cur := n.Parent
	for cur != nil {
		if !fun(cur) {
			return false
		}
		parent := cur.AsTree().Parent
		if parent == cur { // prevent loops
			slog.Error("tree.NodeBase.WalkUpParent: node is its own parent", "node", cur.AsTree().Name)
			return true
		}
		cur = parent
	}
	return true
}

// WalkDown calls the given function on the node and all of its children
// in a depth-first manner over all of the children. It stops walking the
// current branch of the tree if the function returns [Break] and keeps
// walking if it returns [Continue]. The function must not add or remove
// children of the nodes being walked.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !fun(n.This) {
		return
	}
	for _, kid := range n.Children {
		kid.AsTree().WalkDown(fun)
	}
}

// WalkDownPost iterates in a depth-first manner over the children, calling
// shouldContinue on each node to test if processing should proceed (if it returns
// [Break] then that branch of the tree is not further processed),
// and then calls the given function after all of a node's children
// have been iterated over. In effect, this means that the given function
// is called for deeper nodes first.
func (n *NodeBase) WalkDownPost(shouldContinue func(n Node) bool, fun func(n Node) bool) {
	if n.This == nil || !shouldContinue(n.This) {
		return
	}
	for _, kid := range n.Children {
		kid.AsTree().WalkDownPost(shouldContinue, fun)
	}
	fun(n.This)
}
