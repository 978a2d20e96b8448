//go:build ebiten

package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"golife/internal/life"
)

// painter converts grid state into an RGBA pixel buffer and blits it scaled
// onto the screen.
type painter struct {
	img  *ebiten.Image
	buf  []byte
	w, h int
}

func newPainter(w, h int) *painter {
	return &painter{
		img: ebiten.NewImage(w, h),
		buf: make([]byte, w*h*4),
		w:   w,
		h:   h,
	}
}

// Blit draws one pixel per cell, then scales the result onto screen.
func (p *painter) Blit(screen *ebiten.Image, grid *life.Grid, on, off color.Color, scale int) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()

	i := 0
	for row := 0; row < p.h; row++ {
		for col := 0; col < p.w; col++ {
			base := i * 4
			if grid.Cell(life.Position{Row: row, Col: col}).IsAlive() {
				p.buf[base+0] = uint8(rOn >> 8)
				p.buf[base+1] = uint8(gOn >> 8)
				p.buf[base+2] = uint8(bOn >> 8)
				p.buf[base+3] = uint8(aOn >> 8)
			} else {
				p.buf[base+0] = uint8(rOff >> 8)
				p.buf[base+1] = uint8(gOff >> 8)
				p.buf[base+2] = uint8(bOff >> 8)
				p.buf[base+3] = uint8(aOff >> 8)
			}
			i++
		}
	}

	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
