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

import (
	"maps"
	"slices"
	"strings"
)

type (
	// Entry is the result of a successful lookup. Parameters holds the values bound
	// to placeholder segments and is nil if none were bound.
	Entry[V any] struct {
		Value      V
		Parameters map[string]string
	}

	// Tree is a segment keyed routing index. Paths are split on '/' and every segment
	// is either a literal, a placeholder (":name") or a catch-all wildcard ("**").
	// Paths are expected to be normalized by the caller.
	//
	// A Tree performs no synchronization. Add and Delete must not run concurrently with
	// any other method, while Lookup and StartsWith can run concurrently with each other.
	Tree[V any] struct {
		nodes []node[V]
		free  []nodeID

		// fully literal paths mapped to their terminal nodes
		static map[string]nodeID

		size int
	}

	param struct {
		name  string
		value string
	}
)

func New[V any]() *Tree[V] {
	return &Tree[V]{
		nodes:  []node[V]{newNode[V](literal(""), noNode)},
		static: make(map[string]nodeID),
	}
}

// Add registers value under path. A value already registered under the same path is
// replaced, as is a placeholder child with a different name at the same depth.
func (t *Tree[V]) Add(path string, value V) {
	current := rootID
	static := true

	for seg := range strings.SplitSeq(path, "/") {
		var isLiteral bool

		current, isLiteral = t.childFor(current, seg)
		static = static && isLiteral
	}

	n := &t.nodes[current]
	if !n.hasValue {
		t.size++
	}

	n.value = value
	n.hasValue = true

	if static {
		t.static[path] = current
	}
}

// Lookup finds the value for the given concrete path. Literal segments take precedence
// over placeholders, placeholders over wildcards. The deepest wildcard passed on the way
// is used if nothing more specific matches, even if it holds no value itself. Parameters
// bound on the way are kept in that case.
func (t *Tree[V]) Lookup(path string) (*Entry[V], bool) {
	if id, ok := t.static[path]; ok {
		return &Entry[V]{Value: t.nodes[id].value}, true
	}

	var (
		params   []param
		fallback = noNode
	)

	current := rootID

	for seg := range strings.SplitSeq(path, "/") {
		n := &t.nodes[current]

		if n.wildcardChild != noNode {
			fallback = n.wildcardChild
		}

		if id, ok := n.children[seg]; ok {
			current = id

			continue
		}

		if n.placeholderChild == noNode {
			current = noNode

			break
		}

		current = n.placeholderChild
		params = append(params, param{name: t.nodes[current].paramName(), value: seg})
	}

	if current == noNode || !t.nodes[current].hasValue {
		if fallback == noNode || !t.nodes[fallback].hasValue {
			return nil, false
		}

		current = fallback
	}

	return &Entry[V]{Value: t.nodes[current].value, Parameters: toMap(params)}, true
}

// Delete removes the value registered under the given pattern path. Placeholder and
// wildcard segments are matched by their text, so "a/:id" must be used to delete the
// route registered as "a/:id". It returns false if there was nothing to delete.
func (t *Tree[V]) Delete(path string) bool {
	current := rootID

	for seg := range strings.SplitSeq(path, "/") {
		if current = t.resolve(current, seg); current == noNode {
			return false
		}
	}

	n := &t.nodes[current]
	if !n.hasValue {
		return false
	}

	n.clear()
	t.size--

	if id, ok := t.static[path]; ok && id == current {
		delete(t.static, path)
	}

	if current != rootID && n.isLeaf() {
		t.detach(current)
	}

	return true
}

// StartsWith returns all values registered under the literal prefix. Every registered
// node passed while walking the prefix is part of the result. Placeholder and wildcard
// segments of the prefix are matched by their text. The last segment of the
// prefix is matched against the beginning of the child keys and the selected subtrees
// are collected completely. The result is never nil.
func (t *Tree[V]) StartsWith(prefix string) []V {
	result := []V{}
	segments := strings.Split(prefix, "/")
	last := len(segments) - 1
	current := rootID

	for idx, seg := range segments {
		n := &t.nodes[current]

		if n.hasValue {
			result = append(result, n.value)
		}

		if idx == last {
			for _, id := range t.childrenWithPrefix(current, seg) {
				result = t.collect(id, result)
			}

			break
		}

		if current = t.resolve(current, seg); current == noNode {
			break
		}
	}

	return result
}

// Len returns the number of registered values.
func (t *Tree[V]) Len() int { return t.size }

// Clone creates a deep copy of the tree. Values are copied as is.
func (t *Tree[V]) Clone() *Tree[V] {
	out := &Tree[V]{
		nodes:  slices.Clone(t.nodes),
		free:   slices.Clone(t.free),
		static: maps.Clone(t.static),
		size:   t.size,
	}

	for idx := range out.nodes {
		if out.nodes[idx].children != nil {
			out.nodes[idx].children = maps.Clone(out.nodes[idx].children)
		}
	}

	return out
}

func (t *Tree[V]) childFor(parent nodeID, seg string) (nodeID, bool) {
	if id, ok := t.nodes[parent].children[seg]; ok {
		return id, true
	}

	switch kind := classify(seg).(type) {
	case placeholder:
		if id := t.nodes[parent].placeholderChild; id != noNode {
			if t.nodes[id].seg == kind {
				return id, false
			}

			t.release(id)
		}

		id := t.alloc(kind, parent)
		t.nodes[parent].placeholderChild = id

		return id, false
	case wildcard:
		if id := t.nodes[parent].wildcardChild; id != noNode {
			return id, false
		}

		id := t.alloc(kind, parent)
		t.nodes[parent].wildcardChild = id

		return id, false
	default:
		id := t.alloc(kind, parent)

		n := &t.nodes[parent]
		if n.children == nil {
			n.children = make(map[string]nodeID)
		}

		n.children[seg] = id

		return id, true
	}
}

func (t *Tree[V]) resolve(parent nodeID, seg string) nodeID {
	n := &t.nodes[parent]

	switch kind := classify(seg).(type) {
	case placeholder:
		if n.placeholderChild != noNode && t.nodes[n.placeholderChild].seg == kind {
			return n.placeholderChild
		}

		return noNode
	case wildcard:
		return n.wildcardChild
	default:
		if id, ok := n.children[seg]; ok {
			return id
		}

		return noNode
	}
}

// detach unlinks a childless node from its parent. Only the parent reference pointing
// to the node is reset.
func (t *Tree[V]) detach(id nodeID) {
	parent := &t.nodes[t.nodes[id].parent]

	switch {
	case parent.wildcardChild == id:
		parent.wildcardChild = noNode
	case parent.placeholderChild == id:
		parent.placeholderChild = noNode
	default:
		delete(parent.children, t.nodes[id].seg.text())
	}

	t.release(id)
}

func (t *Tree[V]) alloc(seg segment, parent nodeID) nodeID {
	if last := len(t.free) - 1; last >= 0 {
		id := t.free[last]
		t.free = t.free[:last]
		t.nodes[id] = newNode[V](seg, parent)

		return id
	}

	t.nodes = append(t.nodes, newNode[V](seg, parent))

	return nodeID(len(t.nodes) - 1)
}

// release returns the node and its whole subtree to the free list.
func (t *Tree[V]) release(id nodeID) {
	n := &t.nodes[id]

	for _, child := range n.children {
		t.release(child)
	}

	if n.placeholderChild != noNode {
		t.release(n.placeholderChild)
	}

	if n.wildcardChild != noNode {
		t.release(n.wildcardChild)
	}

	if n.hasValue {
		t.size--
	}

	t.nodes[id] = newNode[V](nil, noNode)
	t.free = append(t.free, id)
}

func (t *Tree[V]) childrenWithPrefix(parent nodeID, prefix string) []nodeID {
	n := &t.nodes[parent]

	var ids []nodeID

	for _, key := range slices.Sorted(maps.Keys(n.children)) {
		if strings.HasPrefix(key, prefix) {
			ids = append(ids, n.children[key])
		}
	}

	for _, id := range []nodeID{n.placeholderChild, n.wildcardChild} {
		if id != noNode && strings.HasPrefix(t.nodes[id].seg.text(), prefix) {
			ids = append(ids, id)
		}
	}

	return ids
}

func (t *Tree[V]) collect(id nodeID, result []V) []V {
	n := &t.nodes[id]

	if n.hasValue {
		result = append(result, n.value)
	}

	for _, key := range slices.Sorted(maps.Keys(n.children)) {
		result = t.collect(n.children[key], result)
	}

	if n.placeholderChild != noNode {
		result = t.collect(n.placeholderChild, result)
	}

	if n.wildcardChild != noNode {
		result = t.collect(n.wildcardChild, result)
	}

	return result
}

func toMap(params []param) map[string]string {
	if len(params) == 0 {
		return nil
	}

	out := make(map[string]string, len(params))
	for _, p := range params {
		out[p.name] = p.value
	}

	return out
}
