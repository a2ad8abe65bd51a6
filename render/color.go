package render

import (
	"fmt"
	"image/color"
	"strings"
)

var namedColors = map[string]color.RGBA{
	"black":  {0x00, 0x00, 0x00, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xff, 0x00, 0x00, 0xff},
	"green":  {0x00, 0x80, 0x00, 0xff},
	"blue":   {0x00, 0x00, 0xff, 0xff},
	"orange": {0xff, 0xa5, 0x00, 0xff},
	"yellow": {0xff, 0xff, 0x00, 0xff},
	"brown":  {0xa5, 0x2a, 0x2a, 0xff},
	"purple": {0x80, 0x00, 0x80, 0xff},
	"gray":   {0x80, 0x80, 0x80, 0xff},
}

// ParseColor accepts the palette names above and "#rrggbb".
func ParseColor(name string) (color.RGBA, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	var c color.RGBA
	if _, err := fmt.Sscanf(name, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil || len(name) != 7 {
		return color.RGBA{}, fmt.Errorf("unknown color %q", name)
	}
	c.A = 0xff
	return c, nil
}
