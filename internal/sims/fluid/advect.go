package fluid

import (
	"math"

	"dyeflow/internal/core"
)

// Advect moves f along the velocity field (u, v) with a semi-Lagrangian
// backward trace. Each interior cell samples the old field bilinearly at the
// point its content came from; the source point is clamped half a cell inside
// the border. Only f is read; the returned field is new.
func Advect(f *core.Field, kind Boundary, dt float64, u, v *core.Field) *core.Field {
	n := f.N
	scaled := dt * float64(n-2)
	lo := 0.5
	hi := float64(n-2) + 0.5

	src, uu, vv := f.Values(), u.Values(), v.Values()
	out := core.NewField(n)
	x := out.Values()
	for row := 1; row < n-1; row++ {
		for col := 1; col < n-1; col++ {
			i := col + row*n
			srcRow := clamp(float64(row)-scaled*vv[i], lo, hi)
			srcCol := clamp(float64(col)-scaled*uu[i], lo, hi)

			r0 := int(math.Floor(srcRow))
			c0 := int(math.Floor(srcCol))
			r1 := r0 + 1
			c1 := c0 + 1

			wr1 := srcRow - float64(r0)
			wr0 := 1 - wr1
			wc1 := srcCol - float64(c0)
			wc0 := 1 - wc1

			x[i] = wc0 * (wr0*src[c0+r0*n] + wr1*src[c0+r1*n])
			x[i] += wc1 * (wr0*src[c1+r0*n] + wr1*src[c1+r1*n])
		}
	}
	enforceBoundary(kind, out)
	return out
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
