package app

// Drag turns a stream of pressed-pointer cell positions into stir impulses.
// The first sample of a drag carries no velocity; later samples carry the
// cell delta since the previous accepted sample.
type Drag struct {
	limit   int
	active  bool
	prevRow int
	prevCol int
}

// Stroke is one stir impulse at a cell.
type Stroke struct {
	Row, Col int
	DU, DV   float64
}

// NewDrag returns a tracker accepting cells in [0, limit] on both axes.
func NewDrag(limit int) *Drag { return &Drag{limit: limit} }

// Move records a pointer sample while the button is held. Samples outside the
// accepted range are dropped without moving the anchor.
func (d *Drag) Move(row, col int) (Stroke, bool) {
	if row < 0 || col < 0 || row > d.limit || col > d.limit {
		return Stroke{}, false
	}
	if !d.active {
		d.active = true
		d.prevRow, d.prevCol = row, col
	}
	s := Stroke{Row: row, Col: col, DU: float64(col - d.prevCol), DV: float64(row - d.prevRow)}
	d.prevRow, d.prevCol = row, col
	return s, true
}

// Release ends the current drag.
func (d *Drag) Release() { d.active = false }

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool { return d.active }
