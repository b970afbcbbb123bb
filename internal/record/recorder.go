// Package record captures rendered frames into an MJPEG AVI file.
package record

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"dyeflow/internal/render"
)

// Recorder encodes cell frames as JPEG and appends them to an AVI stream.
type Recorder struct {
	w, h    int
	scale   int
	palette []color.RGBA
	opts    jpeg.Options

	writer mjpeg.AviWriter
	buf    bytes.Buffer
	frames int
}

// New opens path for a grid of w×h cells drawn at scale pixels per cell.
func New(path string, w, h, scale, fps int, palette []color.RGBA) (*Recorder, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New("record: empty frame")
	}
	if scale <= 0 {
		scale = 1
	}
	if fps <= 0 {
		fps = 30
	}
	writer, err := mjpeg.New(path, int32(w*scale), int32(h*scale), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("record: open %s: %w", path, err)
	}
	return &Recorder{
		w: w, h: h, scale: scale,
		palette: palette,
		opts:    jpeg.Options{Quality: 90},
		writer:  writer,
	}, nil
}

// AddFrame renders cells through the palette and appends the frame.
func (r *Recorder) AddFrame(cells []uint8) error {
	if len(cells) != r.w*r.h {
		return fmt.Errorf("record: got %d cells, want %d", len(cells), r.w*r.h)
	}
	img := render.Frame(cells, r.w, r.h, r.scale, r.palette)
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &r.opts); err != nil {
		return fmt.Errorf("record: encode frame %d: %w", r.frames, err)
	}
	if err := r.writer.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("record: add frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames reports how many frames were written.
func (r *Recorder) Frames() int { return r.frames }

// Close finalises the AVI index and closes the file.
func (r *Recorder) Close() error {
	return r.writer.Close()
}
