package physics

// Color is a diagnostic RGB tint. Physics never reads it.
type Color struct {
	R, G, B uint8
}

var (
	Red  = Color{R: 255}
	Pink = Color{R: 255, G: 125, B: 125}
)

// Packed returns the color as 0x00RRGGBB.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
