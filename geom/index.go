package geom

import "github.com/dylanowen/delaunay/rtree"

// vertexIndex is the locate acceleration structure: a point R-tree
// mapping vertex positions to fixed vertex handles. It is purely a
// performance accelerator; the correctness of locate never depends on
// it.
type vertexIndex struct {
	tree rtree.Tree
}

func (ix *vertexIndex) insert(p XY, v FixedVertex) {
	ix.tree.Insert(p.X, p.Y, int(v))
}

func (ix *vertexIndex) remove(p XY, v FixedVertex) {
	ix.tree.Delete(p.X, p.Y, int(v))
}

// update remaps the entry at p from one vertex handle to another. Used
// when arena compaction moves a vertex into a freed slot.
func (ix *vertexIndex) update(p XY, oldHandle, newHandle FixedVertex) {
	if ix.tree.Delete(p.X, p.Y, int(oldHandle)) {
		ix.tree.Insert(p.X, p.Y, int(newHandle))
	}
}

// nearest returns the vertex closest to q under the Euclidean metric.
func (ix *vertexIndex) nearest(q XY) (FixedVertex, bool) {
	id, ok := ix.tree.Nearest(q.X, q.Y)
	if !ok {
		return noVertex, false
	}
	return FixedVertex(id), true
}
