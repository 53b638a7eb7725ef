// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"reflect"
	"strconv"
	"strings"
)

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the node, setting [NodeBase.This] and calling
// [Node.Init] if that has not happened yet. It must be called on root
// nodes that are not created through a constructor; nodes that are
// added with [NodeBase.AddChild] are initialized automatically.
func InitNode(this Node) {
	n := this.AsTree()
	if n.This != this {
		n.This = this
		n.index = -1
		this.Init()
	}
}

// SetParent sets the parent of the given node to the given parent node.
// It does not add the node to the parent's list of children; see
// [NodeBase.AddChild] for a version that does.
func SetParent(child Node, parent Node) {
	n := child.AsTree()
	n.Parent = parent
	if parent != nil {
		parent.AsTree().numLifetimeChildren++
	}
	n.This.OnAdd()
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent.
// The old and new parents can be in different trees (or not).
func MoveToParent(child Node, parent Node) {
	parent.AsTree().AddChild(child)
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	return n.AsTree().Parent == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	root := n
	n.AsTree().WalkUpParent(func(k Node) bool {
		root = k
		return Continue
	})
	return root
}

// autoName returns a default name for the given unnamed node, based on
// its type name and the number of children its new parent has had.
func autoName(n Node, count uint64) string {
	typ := reflect.TypeOf(n)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return strings.ToLower(typ.Name()) + "-" + strconv.FormatUint(count, 10)
}

// New returns a new initialized node of type T. If a parent is given,
// the node is added to it as its last child, with the automatic name
// described in [NodeBase.Name].
func New[T any, PT interface {
	*T
	Node
}](parent ...Node) PT {
	n := PT(new(T))
	InitNode(n)
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AsTree().AddChild(n)
	}
	return n
}
