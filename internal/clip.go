package internal

import (
	"go.uber.org/zap"
)

// Clipping cuts the part of a mesh inside a convex polygon out of it. Each
// polygon edge is a Split, with the side holding the nucleus as inside. The
// inside of one cut is the candidate for the next, and the outside of every
// cut after the first is stitched back into the mesh. After the last cut the
// candidate is the fragment, and the mesh holds everything else.
//
// Node maps are composed across cuts so that seam nodes are stitched to the
// mesh nodes they came from:
//
//	toMesh[k][i] = stitched[o], or toMesh[k-1][o] if o was not stitched
//
// for every (o, i) in the k-th split's NodeMap.
//
// A cut that fails recoverably (the nucleus lies on the polygon edge, the edge
// has zero length, or the edge runs parallel into a mesh edge) is skipped. The
// fragment is then larger than the polygon, but nothing is lost: the mesh and
// every fragment still partition the original area.

type ClipResult struct {
	Fragment    *Graph
	SkippedCuts int
}

type clipper struct {
	mesh    *Graph
	nucleus Point
	logger  *zap.Logger

	candidate *Graph
	toMesh    map[NodeID]NodeID
	skipped   int
}

// Clip removes the part of mesh inside polygon and returns it. The nucleus must
// be strictly inside the polygon, which must be convex.
func Clip(mesh *Graph, polygon Polygon, nucleus Point) (*ClipResult, error) {
	return clipWithLogger(mesh, polygon, nucleus, zap.NewNop())
}

func clipWithLogger(mesh *Graph, polygon Polygon, nucleus Point, logger *zap.Logger) (*ClipResult, error) {
	if len(polygon.Points) < 3 {
		return nil, degenerateGeometryErrorf("clip polygon has %d points", len(polygon.Points))
	}
	c := &clipper{mesh: mesh, nucleus: nucleus, logger: logger, candidate: mesh}

	n := len(polygon.Points)
	for i := range polygon.Points {
		if c.candidate.TriangleCount() == 0 && c.candidate != mesh {
			break
		}
		line := Line{A: polygon.Points[i], B: polygon.Points[CircularIndex(i+1, n)]}
		if err := c.cut(line); err != nil {
			return nil, err
		}
	}

	if c.candidate == mesh {
		// Every cut was skipped, so nothing is known to be inside.
		return &ClipResult{Fragment: NewGraph(), SkippedCuts: c.skipped}, nil
	}
	return &ClipResult{Fragment: c.candidate, SkippedCuts: c.skipped}, nil
}

func (c *clipper) cut(line Line) error {
	if line.Degenerate() {
		c.skip(line, degenerateGeometryErrorf("clip line %v-%v has zero length", line.A, line.B))
		return nil
	}
	sign := line.Side(c.nucleus)
	if sign == 0 {
		c.skip(line, degenerateGeometryErrorf("nucleus %v lies on clip line %v-%v", c.nucleus, line.A, line.B))
		return nil
	}

	split, err := Split(c.candidate, line, sign)
	if err != nil {
		if IsRecoverable(err) {
			c.skip(line, err)
			return nil
		}
		return err
	}

	if c.candidate == c.mesh {
		// The first outside is the mesh itself
		c.toMesh = make(map[NodeID]NodeID, len(split.NodeMap))
		for o, i := range split.NodeMap {
			c.toMesh[i] = o
		}
	} else {
		stitched := Stitch(c.mesh, split.Outside, c.toMesh)
		next := make(map[NodeID]NodeID, len(split.NodeMap))
		for o, i := range split.NodeMap {
			if m, ok := stitched[o]; ok {
				next[i] = m
			} else if m, ok := c.toMesh[o]; ok {
				next[i] = m
			}
		}
		c.toMesh = next
	}
	c.candidate = split.Inside
	return nil
}

func (c *clipper) skip(line Line, err error) {
	c.skipped++
	c.logger.Debug("skipping clip edge",
		zap.Stringer("from", line.A),
		zap.Stringer("to", line.B),
		zap.Error(err))
}
