package pagination

import (
	"fmt"

	"github.com/gompdf/pdfreport/internal/canvas"
)

// Cursor tracks the vertical drawing position across the pages of one document.
// It is owned by a single report build and is not safe for concurrent use.
type Cursor struct {
	canvas    canvas.Canvas
	geometry  canvas.Geometry
	y         float64
	top       float64
	minBottom float64
	page      int
	consumed  float64

	// Debug enables verbose logging to stdout
	Debug bool
}

// NewCursor allocates the first page on c and positions the cursor at its content top.
// minBottom is the distance from the page bottom below which nothing is drawn.
func NewCursor(c canvas.Canvas, minBottom float64) (*Cursor, error) {
	g := c.Geometry()
	if minBottom < 0 || g.ContentTop()+minBottom >= g.Height {
		return nil, fmt.Errorf("%w: bottom margin %.2f leaves no room on a %.2f page", ErrInvalidPageSize, minBottom, g.Height)
	}
	if err := c.NewPage(); err != nil {
		return nil, fmt.Errorf("failed to start first page: %w", err)
	}
	return &Cursor{
		canvas:    c,
		geometry:  g,
		y:         g.ContentTop(),
		top:       g.ContentTop(),
		minBottom: minBottom,
		page:      1,
	}, nil
}

// Canvas returns the canvas the cursor draws on
func (c *Cursor) Canvas() canvas.Canvas { return c.canvas }

// Geometry returns the page geometry
func (c *Cursor) Geometry() canvas.Geometry { return c.geometry }

// Y returns the current vertical offset
func (c *Cursor) Y() float64 { return c.y }

// Page returns the 1-based number of the current page
func (c *Cursor) Page() int { return c.page }

// Top returns the content top line of every page
func (c *Cursor) Top() float64 { return c.top }

// AtTop reports whether nothing has been drawn on the current page yet
func (c *Cursor) AtTop() bool { return c.y == c.top }

// Bottom returns the lowest Y offset content may reach
func (c *Cursor) Bottom() float64 { return c.geometry.Height - c.minBottom }

// Remaining returns the usable height left above the minimum bottom margin
func (c *Cursor) Remaining() float64 {
	return c.Bottom() - c.y
}

// NeedsNewPage reports whether a block of the given height does not fit
func (c *Cursor) NeedsNewPage(height float64) bool {
	return c.Remaining() < height
}

// Advance moves the cursor down by height
func (c *Cursor) Advance(height float64) {
	c.y += height
	c.consumed += height
}

// Consumed returns the total of all heights passed to Advance
func (c *Cursor) Consumed() float64 { return c.consumed }

// BreakPage starts a new page and moves the cursor to its content top.
// It returns the number of the new page.
func (c *Cursor) BreakPage() (int, error) {
	if err := c.canvas.NewPage(); err != nil {
		return c.page, fmt.Errorf("failed to start page %d: %w", c.page+1, err)
	}
	c.page++
	c.y = c.top
	if c.Debug {
		fmt.Printf("Page break: now on page %d\n", c.page)
	}
	return c.page, nil
}
