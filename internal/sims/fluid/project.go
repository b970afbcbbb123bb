package fluid

import "dyeflow/internal/core"

// Project removes the divergent part of the velocity field (u, v) in place.
//
// The pressure Poisson equation is solved on the collocated grid with
// Gauss-Seidel sweeps, copying the border after each sweep, and the final
// pressure gradient is subtracted from every interior cell. The result is
// only approximately divergence free; the residual shrinks with iterations.
func Project(u, v *core.Field, dt, density float64, iterations int) {
	n := u.N
	h := 1.0 / float64(n)

	div := core.NewField(n)
	pressure := core.NewField(n)
	uu, vv := u.Values(), v.Values()
	d, p := div.Values(), pressure.Values()

	scale := -0.5 * h * density / dt
	for row := 1; row < n-1; row++ {
		for col := 1; col < n-1; col++ {
			i := col + row*n
			d[i] = scale * ((uu[i+1] - uu[i-1]) + (vv[i+n] - vv[i-n]))
		}
	}
	enforceBoundary(BoundaryCopy, div)
	enforceBoundary(BoundaryCopy, pressure)

	for k := 0; k < iterations; k++ {
		for row := 1; row < n-1; row++ {
			for col := 1; col < n-1; col++ {
				i := col + row*n
				p[i] = (d[i] + p[i+n] + p[i-n] + p[i+1] + p[i-1]) / 4
			}
		}
		enforceBoundary(BoundaryCopy, pressure)
	}

	grad := (dt / density) * (0.5 / h)
	for row := 1; row < n-1; row++ {
		for col := 1; col < n-1; col++ {
			i := col + row*n
			uu[i] -= grad * (p[i+1] - p[i-1])
			vv[i] -= grad * (p[i+n] - p[i-n])
		}
	}
	enforceBoundary(BoundaryHorizontal, u)
	enforceBoundary(BoundaryVertical, v)
}

// Divergence returns the central-difference divergence of (u, v) at every
// interior cell, using the same cell spacing h = 1/N as Project. Border
// cells are left at zero.
func Divergence(u, v *core.Field) *core.Field {
	n := u.N
	out := core.NewField(n)
	uu, vv, d := u.Values(), v.Values(), out.Values()
	inv := 0.5 * float64(n)
	for row := 1; row < n-1; row++ {
		for col := 1; col < n-1; col++ {
			i := col + row*n
			d[i] = inv * ((uu[i+1] - uu[i-1]) + (vv[i+n] - vv[i-n]))
		}
	}
	return out
}
