package atlas

import "image"

// packer is a shelf-based rectangle allocator over a growable canvas.
// Placed rectangles stay valid across growth because the canvas only ever
// extends right and down.
type packer struct {
	w, h    int
	shelfY  int
	shelfH  int
	cursorX int
}

func newPacker(w, h int) *packer {
	return &packer{w: w, h: h}
}

// alloc places a w x h rectangle, opening a new shelf when the current one
// is full. It reports failure when the canvas is exhausted; the caller
// grows and retries.
func (p *packer) alloc(w, h int) (image.Rectangle, bool) {
	if w <= p.w-p.cursorX && h <= p.h-p.shelfY {
		r := image.Rect(p.cursorX, p.shelfY, p.cursorX+w, p.shelfY+h)
		p.cursorX += w
		if h > p.shelfH {
			p.shelfH = h
		}
		return r, true
	}

	// Open a shelf below the current one.
	if w <= p.w && h <= p.h-(p.shelfY+p.shelfH) {
		p.shelfY += p.shelfH
		p.cursorX = w
		p.shelfH = h
		return image.Rect(0, p.shelfY, w, p.shelfY+h), true
	}

	return image.Rectangle{}, false
}

// grow doubles the canvas in both dimensions.
func (p *packer) grow() {
	p.w *= 2
	p.h *= 2
}

func (p *packer) size() (int, int) {
	return p.w, p.h
}
