package section

import (
	"image/color"

	"github.com/boombuler/barcode/code128"
)

// maxModuleWidth keeps short codes from stretching across the header
const maxModuleWidth = 1.2

// drawBarcode draws content as a Code 128 symbol in the box at x, y.
// Content the symbology cannot encode is skipped; it reports whether bars were drawn.
func drawBarcode(p *pen, content string, x, y, w, h float64) bool {
	if content == "" {
		return false
	}
	bc, err := code128.Encode(content)
	if err != nil {
		return false
	}
	b := bc.Bounds()
	modules := b.Dx()
	if modules == 0 {
		return false
	}
	module := min(w/float64(modules), maxModuleWidth)

	start := -1
	for i := 0; i <= modules; i++ {
		dark := i < modules && isDark(bc.At(b.Min.X+i, b.Min.Y))
		switch {
		case dark && start < 0:
			start = i
		case !dark && start >= 0:
			p.rect(x+float64(start)*module, y, float64(i-start)*module, h)
			start = -1
		}
	}
	return p.err == nil
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r+g+b < 3*0x8000
}
