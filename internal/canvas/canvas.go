// Package canvas defines the drawing surface the report layout engine targets.
//
// Coordinates are expressed in points with the origin at the top-left corner
// of the page; Y grows downward.
package canvas

// FontStyle selects a face within the report font family
type FontStyle int

const (
	// Regular is the upright, normal weight face
	Regular FontStyle = iota
	// Bold is the heavy weight face
	Bold
	// Italic is the slanted face
	Italic
)

// String returns the fpdf style code for the face
func (s FontStyle) String() string {
	switch s {
	case Bold:
		return "B"
	case Italic:
		return "I"
	default:
		return ""
	}
}

// Font is a face and a size in points
type Font struct {
	Style FontStyle
	Size  float64
}

// RegularFont returns the regular face at the given size
func RegularFont(size float64) Font { return Font{Style: Regular, Size: size} }

// BoldFont returns the bold face at the given size
func BoldFont(size float64) Font { return Font{Style: Bold, Size: size} }

// Geometry describes the fixed page surface
type Geometry struct {
	Width  float64
	Height float64
	Margin float64
}

// ContentWidth returns the drawable width between the side margins
func (g Geometry) ContentWidth() float64 {
	return g.Width - 2*g.Margin
}

// ContentTop returns the first usable Y offset of a page
func (g Geometry) ContentTop() float64 {
	return g.Margin
}

// ContentHeight returns the drawable height between the top and bottom margins
func (g Geometry) ContentHeight() float64 {
	return g.Height - 2*g.Margin
}

// Canvas is the primitive drawing collaborator.
//
// Every drawing call reports the underlying writer state; once an error is
// returned the canvas is unusable and the build must be abandoned.
type Canvas interface {
	Geometry() Geometry
	NewPage() error
	DrawLine(x1, y1, x2, y2 float64) error
	DrawDottedLine(x1, y1, x2, y2 float64) error
	// DrawText draws a left-anchored run whose baseline sits at y
	DrawText(x, y float64, font Font, s string) error
	FillRect(x, y, w, h float64) error
	PageCount() int
	// Finish serializes the document; the canvas cannot be drawn on afterwards
	Finish() ([]byte, error)
}
