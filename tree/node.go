// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the ownership tree that widgets live in,
// centered on the core [Node] interface and its [NodeBase]
// implementation.
//
// A node exclusively owns its ordered children, and holds a
// non-owning reference to its parent that is only used for lookup.
// Attaching a node that already has a parent moves it, and cycles
// are rejected when they would be created.
package tree

// Node is an interface that all tree nodes satisfy. The core functionality
// of a tree node is defined on [NodeBase], and all higher-level tree types
// must embed it. This interface only contains the tree functionality that
// higher-level tree types may need to override. You can call [Node.AsTree]
// to get the [NodeBase] of a Node and access the core tree functionality.
type Node interface {

	// AsTree returns the [NodeBase] of this Node. Most core
	// tree functionality is implemented on [NodeBase].
	AsTree() *NodeBase

	// Init is called when the node is first initialized, before
	// it is added to a parent. It is called only once in the
	// lifetime of the node, and does nothing by default.
	Init()

	// OnAdd is called when the node is added to a parent,
	// including when it is moved to a new parent.
	// It does nothing by default.
	OnAdd()

	// Destroy releases the node. By default, [NodeBase.Destroy]
	// detaches the direct children of the node, clearing their
	// parent, without destroying them. Node types that implement
	// this should call [NodeBase.Destroy] at the end.
	Destroy()
}
