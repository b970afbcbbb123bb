package fluid

import "dyeflow/internal/core"

// Diffuse returns a copy of f relaxed toward its diffused state by solving
// the implicit diffusion system with Gauss-Seidel sweeps. The solve starts
// from zero and the boundary is re-applied after every full sweep. f is left
// untouched.
func Diffuse(f *core.Field, kind Boundary, dt, rate float64, iterations int) *core.Field {
	n := f.N
	interior := float64(n - 2)
	alpha := rate * dt * interior * interior
	denom := 4*alpha + 1

	src := f.Values()
	out := core.NewField(n)
	x := out.Values()
	for k := 0; k < iterations; k++ {
		for row := 1; row < n-1; row++ {
			for col := 1; col < n-1; col++ {
				i := col + row*n
				x[i] = (src[i] + alpha*(x[i-n]+x[i+n]+x[i-1]+x[i+1])) / denom
			}
		}
		enforceBoundary(kind, out)
	}
	return out
}
