// Package delaunay provides a dynamic 2D Delaunay triangulation: an
// in-memory planar subdivision that maintains the Delaunay property of
// a point set under incremental insertion and removal, with walking
// point location and a zero-copy view of the dual Voronoi diagram.
//
// The triangulation itself lives in the geom package; the rtree package
// provides the spatial index used to find a nearby vertex from which
// point-location walks start.
package delaunay
