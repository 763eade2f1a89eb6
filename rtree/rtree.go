// Package rtree provides an in-memory R-tree over 2D points. It holds
// point and record ID pairs (the actual records aren't stored in the
// tree; the user is responsible for storing their own records). Its
// main consumer is the triangulation's nearest-vertex index.
package rtree

import "errors"

const (
	minChildren = 2
	maxChildren = 4
)

// Tree is an R-tree keyed by 2D points. The zero value is an empty
// tree.
type Tree struct {
	nodes []node
	root  int
}

// node is a node in the tree. Leaf nodes hold entries for terminal
// point records, intermediate nodes hold entries for more nodes.
type node struct {
	entries    [1 + maxChildren]entry
	numEntries int
	parent     int
	isLeaf     bool
}

// entry is an entry under a node. For leaf nodes, data is a record ID;
// for non-leaf nodes it is the index of the child node.
type entry struct {
	box  Box
	data int
}

func (t *Tree) hasRoot() bool {
	return t.root != -1 && (t.root != 0 || len(t.nodes) != 0)
}

func (t *Tree) appendRecord(nodeIdx int, box Box, recordID int) {
	n := &t.nodes[nodeIdx]
	n.entries[n.numEntries] = entry{box: box, data: recordID}
	n.numEntries++
}

func (t *Tree) appendChild(nodeIdx int, box Box, childIdx int) {
	n := &t.nodes[nodeIdx]
	n.entries[n.numEntries] = entry{box: box, data: childIdx}
	n.numEntries++
	t.nodes[childIdx].parent = nodeIdx
}

// nodeDepth calculates the number of layers of nodes in the subtree
// rooted at the node.
func (t *Tree) nodeDepth(nodeIdx int) int {
	d := 1
	for !t.nodes[nodeIdx].isLeaf {
		d++
		nodeIdx = t.nodes[nodeIdx].entries[0].data
	}
	return d
}

// Stop is a sentinel error that can be returned from a search callback
// to terminate the search early without reporting an error.
var Stop = errors.New("stop")

// RangeSearch looks for any points in the tree that lie inside the
// given bounding box. The callback is called with the record ID of each
// found point. Returning an error from the callback terminates the
// search early; the error is propagated unless it is Stop.
func (t *Tree) RangeSearch(box Box, callback func(recordID int) error) error {
	if !t.hasRoot() {
		return nil
	}
	var recurse func(*node) error
	recurse = func(n *node) error {
		for i := 0; i < n.numEntries; i++ {
			e := n.entries[i]
			if !overlap(e.box, box) {
				continue
			}
			if n.isLeaf {
				if err := callback(e.data); err == Stop {
					return Stop
				} else if err != nil {
					return err
				}
			} else {
				if err := recurse(&t.nodes[e.data]); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := recurse(&t.nodes[t.root]); err != nil && err != Stop {
		return err
	}
	return nil
}

// Extent gives the Box that most closely bounds the points held by the
// tree. The second return is false for an empty tree.
func (t *Tree) Extent() (Box, bool) {
	if !t.hasRoot() || t.nodes[t.root].numEntries == 0 {
		return Box{}, false
	}
	return calculateBound(&t.nodes[t.root]), true
}
