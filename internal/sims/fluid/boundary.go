package fluid

import (
	"fmt"

	"dyeflow/internal/core"
)

// Boundary selects how the border ring of a field is derived from the
// interior next to it.
type Boundary uint8

const (
	// BoundaryHorizontal negates the left/right edges and copies top/bottom.
	// It is used for the horizontal velocity so walls stop flow through them.
	BoundaryHorizontal Boundary = iota + 1
	// BoundaryVertical negates the top/bottom edges and copies left/right.
	// It is used for the vertical velocity.
	BoundaryVertical
	// BoundaryCopy copies every edge (zero gradient). It is used for dye,
	// pressure and divergence.
	BoundaryCopy
)

// String returns a short name for logs and reports.
func (b Boundary) String() string {
	switch b {
	case BoundaryHorizontal:
		return "horizontal"
	case BoundaryVertical:
		return "vertical"
	case BoundaryCopy:
		return "copy"
	default:
		return fmt.Sprintf("Boundary(%d)", uint8(b))
	}
}

// edgeSigns returns the factor applied to the inward neighbour on the
// left/right edges and on the top/bottom edges.
func (b Boundary) edgeSigns() (leftRight, topBottom float64) {
	switch b {
	case BoundaryHorizontal:
		return -1, 1
	case BoundaryVertical:
		return 1, -1
	case BoundaryCopy:
		return 1, 1
	}
	panic(fmt.Sprintf("fluid: unknown boundary %d", uint8(b)))
}

// enforceBoundary rewrites the border ring of f in place. Edges come first;
// each corner is then the average of its two orthogonal border neighbours.
func enforceBoundary(kind Boundary, f *core.Field) {
	lr, tb := kind.edgeSigns()
	n := f.N
	x := f.Values()
	last := n - 1
	for i := 1; i < last; i++ {
		x[i*n] = lr * x[i*n+1]
		x[i*n+last] = lr * x[i*n+last-1]

		x[i] = tb * x[n+i]
		x[last*n+i] = tb * x[(last-1)*n+i]
	}

	x[0] = (x[n] + x[1]) * 0.5
	x[last*n] = (x[(last-1)*n] + x[last*n+1]) * 0.5
	x[last] = (x[last-1] + x[n+last]) * 0.5
	x[last*n+last] = (x[(last-1)*n+last] + x[last*n+last-1]) * 0.5
}
