package render

import (
	"image"
	"image/color"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Frame paints cells (w×h, row-major) into a new RGBA image, each cell
// becoming a scale×scale block.
func Frame(cells []uint8, w, h, scale int, palette []color.RGBA) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	if len(cells) != w*h {
		return img
	}
	row := make([]byte, 4*w)
	for y := 0; y < h; y++ {
		fillPaletteRGBA(row, cells[y*w:(y+1)*w], palette)
		for sy := 0; sy < scale; sy++ {
			off := img.PixOffset(0, y*scale+sy)
			dst := img.Pix[off : off+4*w*scale]
			for x := 0; x < w; x++ {
				px := row[x*4 : x*4+4]
				for sx := 0; sx < scale; sx++ {
					copy(dst[(x*scale+sx)*4:], px)
				}
			}
		}
	}
	return img
}
