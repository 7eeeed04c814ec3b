package render

import "image/color"

// fillBinaryRGBA converts cell data into RGBA pixels in buf, one pixel per cell.
func fillBinaryRGBA(buf []byte, cells []bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a point in screen space to grid coordinates for a grid drawn
// at the origin with square cells of cellSize pixels.
func CellAt(px, py, cellSize int) (int, int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	x, y := px/cellSize, py/cellSize
	if px < 0 {
		x = (px - cellSize + 1) / cellSize
	}
	if py < 0 {
		y = (py - cellSize + 1) / cellSize
	}
	return x, y
}
