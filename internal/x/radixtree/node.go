// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package radixtree

// nodeID addresses a node in the arena of a Tree. Parent links are kept as ids
// so that the tree never holds pointer cycles.
type nodeID int32

const (
	noNode nodeID = -1
	rootID nodeID = 0
)

type node[V any] struct {
	seg    segment
	parent nodeID

	// literal children only, keyed by the segment text
	children map[string]nodeID

	placeholderChild nodeID
	wildcardChild    nodeID

	value    V
	hasValue bool
}

func newNode[V any](seg segment, parent nodeID) node[V] {
	return node[V]{
		seg:              seg,
		parent:           parent,
		placeholderChild: noNode,
		wildcardChild:    noNode,
	}
}

func (n *node[V]) isLeaf() bool {
	return len(n.children) == 0 && n.placeholderChild == noNode && n.wildcardChild == noNode
}

func (n *node[V]) paramName() string {
	if p, ok := n.seg.(placeholder); ok {
		return p.name
	}

	return ""
}

func (n *node[V]) clear() {
	var zero V

	n.value = zero
	n.hasValue = false
}
