package rtree

import (
	"math"
	"math/bits"
)

// Insert adds a new point record to the tree.
func (t *Tree) Insert(x, y float64, recordID int) {
	if !t.hasRoot() {
		t.nodes = append(t.nodes, node{isLeaf: true, parent: -1})
		t.root = len(t.nodes) - 1
	}

	box := PointBox(x, y)
	level := t.nodeDepth(t.root) - 1
	leaf := t.chooseBestNode(box, level)

	t.appendRecord(leaf, box, recordID)
	t.adjustBoxesUpwards(leaf, box)

	if t.nodes[leaf].numEntries <= maxChildren {
		return
	}

	newNode := t.splitNode(leaf)
	root1, root2 := t.adjustTree(leaf, newNode)
	if root2 != -1 {
		t.joinRoots(root1, root2)
	}
}

// adjustBoxesUpwards expands the boxes from the given node all the way
// to the root by the given box.
func (t *Tree) adjustBoxesUpwards(nodeIdx int, box Box) {
	for nodeIdx != t.root {
		parent := t.nodes[nodeIdx].parent
		for i := 0; i < t.nodes[parent].numEntries; i++ {
			e := &t.nodes[parent].entries[i]
			if e.data == nodeIdx {
				e.box = combine(e.box, box)
			}
		}
		nodeIdx = parent
	}
}

func (t *Tree) joinRoots(r1, r2 int) {
	t.nodes = append(t.nodes, node{
		entries: [1 + maxChildren]entry{
			{box: calculateBound(&t.nodes[r1]), data: r1},
			{box: calculateBound(&t.nodes[r2]), data: r2},
		},
		numEntries: 2,
		parent:     -1,
		isLeaf:     false,
	})
	newRoot := len(t.nodes) - 1
	t.nodes[r1].parent = newRoot
	t.nodes[r2].parent = newRoot
	t.root = newRoot
}

// adjustTree propagates a node split towards the root, splitting
// parents as needed. It returns the final pair of roots (the second is
// -1 when the original root did not split).
func (t *Tree) adjustTree(leaf, newNode int) (int, int) {
	for {
		if leaf == t.root {
			return leaf, newNode
		}
		parent := t.nodes[leaf].parent
		for i := 0; i < t.nodes[parent].numEntries; i++ {
			if t.nodes[parent].entries[i].data == leaf {
				t.nodes[parent].entries[i].box = calculateBound(&t.nodes[leaf])
				break
			}
		}
		split := -1
		if newNode != -1 {
			t.appendChild(parent, calculateBound(&t.nodes[newNode]), newNode)
			if t.nodes[parent].numEntries > maxChildren {
				split = t.splitNode(parent)
			}
		}
		leaf, newNode = parent, split
	}
}

// splitNode splits the node with index n into two nodes, minimizing the
// summed area of the two covering boxes over all splits that respect
// the minimum node cardinality. The first node replaces n, the second
// node is newly created and its index is returned.
func (t *Tree) splitNode(n int) int {
	var (
		// All zeros would not be a valid split, so start at 1. The MSB
		// is kept 0 to skip the mirror image of each bit pattern.
		minSplit = uint64(1)
		maxSplit = uint64((1 << (t.nodes[n].numEntries - 1)) - 1)
	)
	bestArea := math.Inf(+1)
	var bestSplit uint64
	for split := minSplit; split <= maxSplit; split++ {
		if ones := bits.OnesCount64(split); ones < minChildren || (t.nodes[n].numEntries-ones) < minChildren {
			continue
		}
		var boxA, boxB Box
		var hasA, hasB bool
		for i := 0; i < t.nodes[n].numEntries; i++ {
			entryBox := t.nodes[n].entries[i].box
			if split&(1<<i) == 0 {
				if hasA {
					boxA = combine(boxA, entryBox)
				} else {
					boxA, hasA = entryBox, true
				}
			} else {
				if hasB {
					boxB = combine(boxB, entryBox)
				} else {
					boxB, hasB = entryBox, true
				}
			}
		}
		if combinedArea := area(boxA) + area(boxB); combinedArea < bestArea {
			bestArea = combinedArea
			bestSplit = split
		}
	}

	// The existing node keeps the 0 bits of the split, the new node
	// takes the 1 bits.
	t.nodes = append(t.nodes, node{isLeaf: t.nodes[n].isLeaf, parent: -1})
	newNode := len(t.nodes) - 1
	totalEntries := t.nodes[n].numEntries
	t.nodes[n].numEntries = 0
	for i := 0; i < totalEntries; i++ {
		e := t.nodes[n].entries[i]
		if bestSplit&(1<<i) == 0 {
			t.nodes[n].entries[t.nodes[n].numEntries] = e
			t.nodes[n].numEntries++
		} else {
			t.nodes[newNode].entries[t.nodes[newNode].numEntries] = e
			t.nodes[newNode].numEntries++
		}
	}
	for i := t.nodes[n].numEntries; i < len(t.nodes[n].entries); i++ {
		t.nodes[n].entries[i] = entry{}
	}
	if !t.nodes[n].isLeaf {
		for i := 0; i < t.nodes[newNode].numEntries; i++ {
			t.nodes[t.nodes[newNode].entries[i].data].parent = newNode
		}
	}
	return newNode
}

// chooseBestNode chooses the node in the tree under which to insert a
// new entry, by walking towards the child needing the least box
// enlargement. The level is the level of the tree on which the best
// node will be found (the root is at level 0).
func (t *Tree) chooseBestNode(box Box, level int) int {
	nodeIdx := t.root
	for {
		if level == 0 {
			return nodeIdx
		}
		n := &t.nodes[nodeIdx]
		bestDelta := enlargement(box, n.entries[0].box)
		bestEntry := 0
		for i := 1; i < n.numEntries; i++ {
			entryBox := n.entries[i].box
			delta := enlargement(box, entryBox)
			if delta < bestDelta {
				bestDelta = delta
				bestEntry = i
			} else if delta == bestDelta && area(entryBox) < area(n.entries[bestEntry].box) {
				// Tie break on area when the enlargements are equal.
				bestEntry = i
			}
		}
		nodeIdx = n.entries[bestEntry].data
		level--
	}
}
