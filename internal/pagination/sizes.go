package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gompdf/pdfreport/internal/canvas"
)

// ErrInvalidPageSize is returned for page names or dimensions the engine cannot lay out on
var ErrInvalidPageSize = errors.New("invalid page size")

// PageSize represents standard page sizes
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in points (1/72 inch)
var (
	PageSizeA4     = PageSize{Width: 595.28, Height: 841.89, Name: "A4"}
	PageSizeLetter = PageSize{Width: 612.00, Height: 792.00, Name: "Letter"}
	PageSizeLegal  = PageSize{Width: 612.00, Height: 1008.00, Name: "Legal"}
	PageSizeA3     = PageSize{Width: 841.89, Height: 1190.55, Name: "A3"}
	PageSizeA5     = PageSize{Width: 419.53, Height: 595.28, Name: "A5"}
)

var pageSizes = []PageSize{PageSizeA4, PageSizeA5, PageSizeA3, PageSizeLetter, PageSizeLegal}

// LookupPageSize finds a standard page size by name, case-insensitively
func LookupPageSize(name string) (PageSize, error) {
	if name == "" {
		return PageSizeA4, nil
	}
	for _, ps := range pageSizes {
		if strings.EqualFold(ps.Name, name) {
			return ps, nil
		}
	}
	return PageSize{}, fmt.Errorf("%w: %q", ErrInvalidPageSize, name)
}

// Geometry validates the size against the margin and returns the page geometry
func (p PageSize) Geometry(margin float64) (canvas.Geometry, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return canvas.Geometry{}, fmt.Errorf("%w: %.2fx%.2f", ErrInvalidPageSize, p.Width, p.Height)
	}
	if margin < 0 || 2*margin >= p.Width || 2*margin >= p.Height {
		return canvas.Geometry{}, fmt.Errorf("%w: margin %.2f does not fit %s", ErrInvalidPageSize, margin, p.Name)
	}
	return canvas.Geometry{Width: p.Width, Height: p.Height, Margin: margin}, nil
}
