package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

var Palette = struct {
	Background RGB
	Pause      RGB
}{
	Background: RGB{R: 0, G: 0, B: 0},
	Pause:      RGB{R: 200, G: 200, B: 200},
}
