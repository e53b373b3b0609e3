package pdf

import (
	"errors"
	"fmt"

	"github.com/gompdf/pdfreport/internal/res"
)

const (
	coreFamily = "Helvetica"
	ttfFamily  = "LiberationSans"
)

// faces lists the font files looked up in the font directories, by fpdf style
var faces = []struct {
	style    string
	file     string
	required bool
}{
	{"", "LiberationSans-Regular.ttf", true},
	{"B", "LiberationSans-Bold.ttf", true},
	{"I", "LiberationSans-Italic.ttf", false},
}

// registerFonts registers fonts with the PDF document
func (r *Renderer) registerFonts(d *Document) error {
	if len(r.FontDirs) == 0 {
		d.family = coreFamily
		d.italic = true
		d.encode = coreEncoder(d.pdf)
		return nil
	}

	loader := res.NewLoader("")
	for _, dir := range r.FontDirs {
		loader.AddSearchPath(dir)
	}
	for _, face := range faces {
		font, err := loader.LoadFont(face.file)
		if err != nil {
			if !face.required && errors.Is(err, res.ErrNotFound) {
				continue
			}
			return fmt.Errorf("%w: %s in %v: %v", ErrFontNotFound, face.file, r.FontDirs, err)
		}
		d.pdf.AddUTF8FontFromBytes(ttfFamily, face.style, font.Data)
		if face.style == "I" {
			d.italic = true
		}
		if r.Debug {
			fmt.Printf("Font %s loaded from %s\n", face.file, font.Path)
		}
	}
	d.family = ttfFamily
	d.encode = func(s string) string { return s }
	return d.pdf.Error()
}
