package internal

import "fmt"

// An InsertionStepper performs one point insertion a phase at a time, so a
// caller can inspect (or draw) the triangulation between phases. It is an
// explicit state machine: every call to Advance executes exactly one phase
// and every phase commits its mutation before returning. Cancelling is just
// not calling Advance again; no cleanup is needed.
//
//	AwaitingStep            -> find guilty triangles, partition edges, validate
//	RemovingGuiltyTriangles -> create node, remove guilty triangles and inside edges
//	RetriangulatingHole     -> join every outside edge to the new node
//	Done
//
// The state names the phase the next Advance will perform.

type InsertionState int

const (
	AwaitingStep InsertionState = iota
	RemovingGuiltyTriangles
	RetriangulatingHole
	Done
)

func (s InsertionState) String() string {
	switch s {
	case AwaitingStep:
		return "AwaitingStep"
	case RemovingGuiltyTriangles:
		return "RemovingGuiltyTriangles"
	case RetriangulatingHole:
		return "RetriangulatingHole"
	case Done:
		return "Done"
	}
	return fmt.Sprintf("InsertionState(%d)", int(s))
}

type InsertionStepper struct {
	triangulator *Triangulator
	point        Point
	state        InsertionState
	err          error

	node         NodeID
	guilty       []TriangleID
	inside       []EdgeID
	outside      []outsideEdge
	newTriangles []TriangleID
}

// Step prepares the insertion of p without touching the triangulation.
func (t *Triangulator) Step(p Point) *InsertionStepper {
	return &InsertionStepper{triangulator: t, point: p, state: AwaitingStep}
}

func (s *InsertionStepper) State() InsertionState { return s.state }
func (s *InsertionStepper) Point() Point          { return s.point }
func (s *InsertionStepper) Err() error            { return s.err }

// Graph is the live triangulation, in whatever partial state the last phase
// left it.
func (s *InsertionStepper) Graph() *Graph { return s.triangulator.Graph }

// Node is the inserted node. It is only valid once the stepper has passed
// RemovingGuiltyTriangles without error.
func (s *InsertionStepper) Node() NodeID { return s.node }

func (s *InsertionStepper) Guilty() []TriangleID {
	return append([]TriangleID(nil), s.guilty...)
}

// Outside lists the edges bounding the hole.
func (s *InsertionStepper) Outside() []EdgeID {
	result := make([]EdgeID, len(s.outside))
	for i, o := range s.outside {
		result[i] = o.Edge
	}
	return result
}

// Inside lists the edges shared by two guilty triangles.
func (s *InsertionStepper) Inside() []EdgeID {
	return append([]EdgeID(nil), s.inside...)
}

// NewTriangles lists the triangles created while retriangulating the hole.
func (s *InsertionStepper) NewTriangles() []TriangleID {
	return append([]TriangleID(nil), s.newTriangles...)
}

// Advance performs one phase and returns the new state. An error ends the
// insertion; the triangulation is left as it was before the insertion
// started, since validation happens before the first mutation.
func (s *InsertionStepper) Advance() (InsertionState, error) {
	switch s.state {
	case AwaitingStep:
		s.classify()
	case RemovingGuiltyTriangles:
		s.removeGuilty()
	case RetriangulatingHole:
		s.retriangulate()
	case Done:
	}
	return s.state, s.err
}

func (s *InsertionStepper) classify() {
	t := s.triangulator
	s.guilty = t.guiltyTriangles(s.point)
	s.inside, s.outside = t.partitionEdges(s.guilty)
	if err := t.validateHole(s.point, s.guilty, s.outside); err != nil {
		s.fail(err)
		return
	}
	s.state = RemovingGuiltyTriangles
}

func (s *InsertionStepper) removeGuilty() {
	g := s.triangulator.Graph
	s.node = g.CreateNode(s.point)
	for _, id := range s.guilty {
		g.RemoveTriangle(id)
	}
	// The inside edges no longer have triangles, so destroying them only
	// unlinks them from their nodes
	for _, e := range s.inside {
		g.DestroyEdge(e)
	}
	s.state = RetriangulatingHole
}

func (s *InsertionStepper) retriangulate() {
	t := s.triangulator
	for _, o := range s.outside {
		id, err := t.Graph.CreateTriangle(o.Edge, s.node)
		if err != nil {
			// validateHole guarantees every outside edge forms a proper
			// triangle with the new node
			fatalf("retriangulating hole at %v: %v", s.point, err)
		}
		s.newTriangles = append(s.newTriangles, id)
	}
	t.nuclei = append(t.nuclei, s.node)
	s.state = Done
}

func (s *InsertionStepper) fail(err error) {
	s.err = err
	s.state = Done
}
