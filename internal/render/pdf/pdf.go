// Package pdf implements the drawing canvas on top of fpdf.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/gompdf/pdfreport/internal/canvas"
	"github.com/gompdf/pdfreport/internal/res"
	"github.com/gompdf/pdfreport/internal/text"
)

var (
	// ErrFontNotFound is returned when a configured font directory lacks a required face
	ErrFontNotFound = errors.New("font not found")
	// ErrLetterheadNotFound is returned when the letterhead file is missing or
	// cannot be decoded as a PDF, raster image or SVG
	ErrLetterheadNotFound = errors.New("letterhead not found")
	// ErrFinished is returned by drawing calls made after Finish
	ErrFinished = errors.New("document already finished")
)

// dotted line dash and gap length
const dash = 3.0

// Renderer holds the settings shared by every document it creates
type Renderer struct {
	// FontDirs are searched for the report TrueType faces. When empty the
	// built-in Helvetica is used and text is transliterated to fit it.
	FontDirs []string
	// Debug enables verbose logging to stdout
	Debug bool

	loader *res.Loader
}

// RenderOptions contains the document metadata and page decoration
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
	// Letterhead is a PDF, SVG or raster image stamped on every page
	Letterhead string
}

// NewRenderer creates a new PDF renderer
func NewRenderer(loader *res.Loader) *Renderer {
	if loader == nil {
		loader = res.NewLoader("")
	}
	return &Renderer{
		FontDirs: []string{},
		loader:   loader,
	}
}

// AddFontDirectory adds a directory to search for fonts
func (r *Renderer) AddFontDirectory(dir string) {
	r.FontDirs = append(r.FontDirs, dir)
}

// Document is one PDF under construction. It implements canvas.Canvas.
type Document struct {
	pdf      *fpdf.Fpdf
	geometry canvas.Geometry
	family   string
	italic   bool
	encode   func(string) string
	head     *letterhead
	buildID  string
	pages    int
	finished bool
	debug    bool
}

// NewDocument prepares an empty document with the given page geometry.
// Fonts and the letterhead are resolved here, so configuration errors
// surface before any page exists.
func (r *Renderer) NewDocument(g canvas.Geometry, opts RenderOptions) (*Document, error) {
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("invalid page geometry %.2f x %.2f", g.Width, g.Height)
	}
	f := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.Width, Ht: g.Height},
	})
	f.SetMargins(g.Margin, g.Margin, g.Margin)
	f.SetAutoPageBreak(false, 0)

	d := &Document{
		pdf:      f,
		geometry: g,
		buildID:  uuid.NewString(),
		debug:    r.Debug,
	}
	if err := r.registerFonts(d); err != nil {
		return nil, err
	}
	if opts.Letterhead != "" {
		head, err := r.loadLetterhead(d, opts.Letterhead)
		if err != nil {
			return nil, err
		}
		d.head = head
	}

	keywords := strings.TrimSpace(opts.Keywords + " build:" + d.buildID)
	f.SetTitle(opts.Title, true)
	f.SetAuthor(opts.Author, true)
	f.SetSubject(opts.Subject, true)
	f.SetKeywords(keywords, true)
	f.SetCreator(opts.Creator, true)
	f.SetProducer(opts.Producer, true)

	if err := f.Error(); err != nil {
		return nil, err
	}
	if d.debug {
		fmt.Printf("Document %s: %.2f x %.2f pt, font %s\n", d.buildID, g.Width, g.Height, d.family)
	}
	return d, nil
}

// BuildID returns the unique identifier written to the document keywords
func (d *Document) BuildID() string { return d.buildID }

func (d *Document) check() error {
	if d.finished {
		return ErrFinished
	}
	return d.pdf.Error()
}

func (d *Document) Geometry() canvas.Geometry { return d.geometry }

func (d *Document) NewPage() error {
	if err := d.check(); err != nil {
		return err
	}
	d.pdf.AddPage()
	d.pages++
	if d.head != nil {
		d.head.stamp(d.pdf, d.geometry)
	}
	return d.pdf.Error()
}

func (d *Document) DrawLine(x1, y1, x2, y2 float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.pdf.Line(x1, y1, x2, y2)
	return d.pdf.Error()
}

func (d *Document) DrawDottedLine(x1, y1, x2, y2 float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.pdf.SetDashPattern([]float64{dash, dash}, 0)
	d.pdf.Line(x1, y1, x2, y2)
	d.pdf.SetDashPattern([]float64{}, 0)
	return d.pdf.Error()
}

func (d *Document) DrawText(x, y float64, font canvas.Font, s string) error {
	if err := d.check(); err != nil {
		return err
	}
	style := font.Style
	if style == canvas.Italic && !d.italic {
		style = canvas.Regular
	}
	d.pdf.SetFont(d.family, style.String(), font.Size)
	d.pdf.Text(x, y, d.encode(s))
	return d.pdf.Error()
}

func (d *Document) FillRect(x, y, w, h float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.pdf.Rect(x, y, w, h, "F")
	return d.pdf.Error()
}

func (d *Document) PageCount() int { return d.pages }

// Finish serializes the document
func (d *Document) Finish() ([]byte, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	d.finished = true
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize PDF: %w", err)
	}
	if d.debug {
		fmt.Printf("Document %s: %d pages, %d bytes\n", d.buildID, d.pages, buf.Len())
	}
	return buf.Bytes(), nil
}

// coreEncoder maps text onto the cp1252 core fonts: characters outside the
// code page are transliterated first
func coreEncoder(f *fpdf.Fpdf) func(string) string {
	translate := f.UnicodeTranslatorFromDescriptor("")
	fallback := text.NewFallback()
	return func(s string) string {
		return translate(fallback.Apply(s))
	}
}
