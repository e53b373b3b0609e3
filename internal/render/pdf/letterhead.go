package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/gompdf/pdfreport/internal/canvas"
	"github.com/gompdf/pdfreport/internal/res"
)

// svgScale is the rasterization density of SVG letterheads, in pixels per point
const svgScale = 2

// letterhead is a page background: either an imported PDF page template or
// a registered image
type letterhead struct {
	importer *gofpdi.Importer
	template int
	image    string
}

func (l *letterhead) stamp(f *fpdf.Fpdf, g canvas.Geometry) {
	if l.image != "" {
		f.ImageOptions(l.image, 0, 0, g.Width, g.Height, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		return
	}
	l.importer.UseImportedTemplate(f, l.template, 0, 0, g.Width, g.Height)
}

func (r *Renderer) loadLetterhead(d *Document, path string) (*letterhead, error) {
	src, err := r.loader.Load(path)
	if err != nil {
		if errors.Is(err, res.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrLetterheadNotFound, path)
		}
		return nil, fmt.Errorf("failed to read letterhead: %w", err)
	}

	if src.Type == res.ResourceTypeDocument {
		imp, tpl, err := importTemplate(d.pdf, src)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLetterheadNotFound, path, err)
		}
		if r.Debug {
			fmt.Printf("Letterhead %s imported as template %d\n", src.Path, tpl)
		}
		return &letterhead{importer: imp, template: tpl}, nil
	}

	if src.Type != res.ResourceTypeImage {
		return nil, fmt.Errorf("%w: %s is neither a PDF nor an image", ErrLetterheadNotFound, path)
	}
	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		img, err = rasterizeSVG(src.Data, d.geometry)
	} else {
		img, _, err = image.Decode(src.GetReader())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLetterheadNotFound, path, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLetterheadNotFound, path, err)
	}
	name := "letterhead-" + d.buildID
	d.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, &buf)
	if err := d.pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLetterheadNotFound, path, err)
	}
	if r.Debug {
		fmt.Printf("Letterhead %s registered as image %dx%d\n", src.Path, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return &letterhead{image: name}, nil
}

// importTemplate imports page 1 of a PDF resource. The gofpdi parser panics
// on malformed input, so the panic is turned into an error.
func importTemplate(f *fpdf.Fpdf, src *res.Resource) (imp *gofpdi.Importer, tpl int, err error) {
	defer func() {
		if r := recover(); r != nil {
			imp, tpl, err = nil, 0, fmt.Errorf("%v", r)
		}
	}()
	imp = gofpdi.NewImporter()
	rs := io.ReadSeeker(src.GetReader())
	tpl = imp.ImportPageFromStream(f, &rs, 1, "/MediaBox")
	if err := f.Error(); err != nil {
		return nil, 0, err
	}
	return imp, tpl, nil
}

// rasterizeSVG renders an SVG document onto an image covering the page
func rasterizeSVG(data []byte, g canvas.Geometry) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	w, h := int(g.Width*svgScale), int(g.Height*svgScale)
	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}
