package rtree

import "container/heap"

// NearestSearch iterates over the point records in the tree in order of
// increasing Euclidean distance from the query point. The callback is
// called for every record iterated over; returning an error stops the
// iteration immediately. The error is propagated unless it is the
// special Stop sentinel.
func (t *Tree) NearestSearch(x, y float64, callback func(recordID int) error) error {
	if !t.hasRoot() {
		return nil
	}
	origin := PointBox(x, y)

	queue := entriesQueue{origin: origin}
	enqueueNode := func(n *node) {
		for i := 0; i < n.numEntries; i++ {
			heap.Push(&queue, entryWithChildMarker{&n.entries[i], !n.isLeaf})
		}
	}

	enqueueNode(&t.nodes[t.root])
	for len(queue.entries) > 0 {
		nearest := heap.Pop(&queue).(entryWithChildMarker)
		if nearest.hasChild {
			enqueueNode(&t.nodes[nearest.data])
			continue
		}
		if err := callback(nearest.data); err != nil {
			if err == Stop {
				return nil
			}
			return err
		}
	}
	return nil
}

// Nearest returns the record ID of the point closest to the query
// point. The second return is false for an empty tree.
func (t *Tree) Nearest(x, y float64) (int, bool) {
	recordID, found := 0, false
	t.NearestSearch(x, y, func(id int) error {
		recordID, found = id, true
		return Stop
	})
	return recordID, found
}

type entryWithChildMarker struct {
	*entry
	hasChild bool
}

type entriesQueue struct {
	entries []entryWithChildMarker
	origin  Box
}

func (q *entriesQueue) Len() int {
	return len(q.entries)
}

func (q *entriesQueue) Less(i, j int) bool {
	return squaredDistance(q.entries[i].box, q.origin) <
		squaredDistance(q.entries[j].box, q.origin)
}

func (q *entriesQueue) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
}

func (q *entriesQueue) Push(x any) {
	q.entries = append(q.entries, x.(entryWithChildMarker))
}

func (q *entriesQueue) Pop() any {
	e := q.entries[len(q.entries)-1]
	q.entries = q.entries[:len(q.entries)-1]
	return e
}
