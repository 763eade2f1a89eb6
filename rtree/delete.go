package rtree

// Delete removes the record with the given point and record ID from the
// tree. The returned bool indicates whether the record was found and
// removed.
func (t *Tree) Delete(x, y float64, recordID int) bool {
	if len(t.nodes) == 0 {
		return false
	}
	box := PointBox(x, y)

	// Find the leaf holding the record.
	foundNode := -1
	var foundEntryIdx int
	var recurse func(int)
	recurse = func(nodeIdx int) {
		n := &t.nodes[nodeIdx]
		for i := 0; i < n.numEntries; i++ {
			e := n.entries[i]
			if !overlap(e.box, box) {
				continue
			}
			if !n.isLeaf {
				recurse(e.data)
				if foundNode != -1 {
					break
				}
			} else if e.data == recordID {
				foundNode = nodeIdx
				foundEntryIdx = i
				break
			}
		}
	}
	recurse(t.root)
	if foundNode == -1 {
		return false
	}

	t.deleteEntry(foundNode, foundEntryIdx)
	t.condenseTree(foundNode)

	// Shorten the tree when the root has a single child left.
	if root := &t.nodes[t.root]; !root.isLeaf && root.numEntries == 1 {
		t.root = root.entries[0].data
		t.nodes[t.root].parent = -1
	}
	return true
}

func (t *Tree) deleteEntry(nodeIdx, entryIdx int) {
	n := &t.nodes[nodeIdx]
	n.entries[entryIdx] = n.entries[n.numEntries-1]
	n.numEntries--
	n.entries[n.numEntries] = entry{}
}

// condenseTree walks from a leaf to the root, eliminating under-full
// nodes (their entries are reinserted) and shrinking covering boxes.
func (t *Tree) condenseTree(leaf int) {
	var eliminated []int
	current := leaf

	for current != t.root {
		parent := t.nodes[current].parent
		entryIdx := -1
		for i := 0; i < t.nodes[parent].numEntries; i++ {
			if t.nodes[parent].entries[i].data == current {
				entryIdx = i
				break
			}
		}

		if t.nodes[current].numEntries < minChildren {
			eliminated = append(eliminated, current)
			t.deleteEntry(parent, entryIdx)
		} else {
			t.nodes[parent].entries[entryIdx].box = calculateBound(&t.nodes[current])
		}
		current = parent
	}

	for _, nodeIdx := range eliminated {
		n := &t.nodes[nodeIdx]
		if n.isLeaf {
			for i := 0; i < n.numEntries; i++ {
				e := n.entries[i]
				t.Insert(e.box.MinX, e.box.MinY, e.data)
			}
		} else {
			for i := 0; i < n.numEntries; i++ {
				t.reInsertNode(n.entries[i].data)
			}
		}
	}
}

// reInsertNode reinserts the subtree rooted at a node that was
// previously eliminated from the tree.
func (t *Tree) reInsertNode(nodeIdx int) {
	box := calculateBound(&t.nodes[nodeIdx])
	treeDepth := t.nodeDepth(t.root)
	nodeDepth := t.nodeDepth(nodeIdx)
	insNode := t.chooseBestNode(box, treeDepth-nodeDepth-1)

	t.appendChild(insNode, box, nodeIdx)
	t.adjustBoxesUpwards(insNode, box)

	if t.nodes[insNode].numEntries <= maxChildren {
		return
	}

	newNode := t.splitNode(insNode)
	root1, root2 := t.adjustTree(insNode, newNode)
	if root2 != -1 {
		t.joinRoots(root1, root2)
	}
}
