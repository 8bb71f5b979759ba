package render

import "image/color"

// Palette holds the two colors a binary grid is painted with.
type Palette struct {
	Live       color.Color
	Background color.Color
}

// DefaultPalette paints live cells bright green over a dark green field.
func DefaultPalette() Palette {
	return Palette{
		Live:       color.RGBA{R: 0, G: 230, B: 0, A: 255},
		Background: color.RGBA{R: 26, G: 128, B: 26, A: 255},
	}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
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
