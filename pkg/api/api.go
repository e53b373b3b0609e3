package api

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gompdf/pdfreport/internal/dataset"
	"github.com/gompdf/pdfreport/internal/layout"
	"github.com/gompdf/pdfreport/internal/pagination"
	"github.com/gompdf/pdfreport/internal/render/pdf"
	"github.com/gompdf/pdfreport/internal/report"
	"github.com/gompdf/pdfreport/internal/res"
	"github.com/gompdf/pdfreport/internal/text"
)

// Sentinel errors returned by report builds
var (
	ErrInvalidPageSize    = pagination.ErrInvalidPageSize
	ErrFontNotFound       = pdf.ErrFontNotFound
	ErrLetterheadNotFound = pdf.ErrLetterheadNotFound
	ErrUnknownReportType  = report.ErrUnknownReportType
	// ErrNoOutput is returned when no output destination is given
	ErrNoOutput = errors.New("no output destination")
)

// Input records
type (
	Dataset     = dataset.Dataset
	Book        = dataset.Book
	User        = dataset.User
	Loan        = dataset.Loan
	Receipt     = dataset.Receipt
	ReceiptItem = dataset.ReceiptItem
	BuildError  = report.BuildError
	ReportType  = report.Type
)

// Report types
const (
	ReportInventory  = report.TypeInventory
	ReportBorrowed   = report.TypeBorrowed
	ReportFiltered   = report.TypeFiltered
	ReportPopularity = report.TypePopularity
	ReportOverdue    = report.TypeOverdue
	ReportReceipt    = report.TypeReceipt
)

// ParseReportType resolves a report type name
func ParseReportType(name string) (ReportType, error) {
	return report.ParseType(name)
}

// LoadDataset reads a YAML input file
func LoadDataset(path string) (*Dataset, error) {
	return dataset.Load(path)
}

// Filter narrows the records a report covers. Each report type reads the
// fields that apply to it; empty fields match everything.
type Filter struct {
	Genre     string
	Status    string
	Publisher string
	From      time.Time
	To        time.Time
}

// Request describes one report to build
type Request struct {
	Type   ReportType
	Data   *Dataset
	Filter Filter
}

// Generator is the main API for building report documents
type Generator struct {
	options Options
	loader  *res.Loader
}

// New creates a new report generator with default options
func New() *Generator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new report generator with the specified options
func NewWithOptions(options Options) *Generator {
	loader := res.NewLoader("")
	for _, path := range options.ResourcePaths {
		loader.AddSearchPath(path)
	}
	return &Generator{
		options: options,
		loader:  loader,
	}
}

// Options returns the generator configuration
func (g *Generator) Options() Options {
	return g.options
}

// Render builds the report and writes the document to output. Nothing is
// written when the build fails.
func (g *Generator) Render(req Request, output io.Writer) error {
	if output == nil {
		return ErrNoOutput
	}
	data, err := g.RenderBytes(req)
	if err != nil {
		return err
	}
	if _, err := output.Write(data); err != nil {
		return fmt.Errorf("failed to write PDF to output: %w", err)
	}
	return nil
}

// RenderToFile builds the report and writes it to outputPath, creating the
// parent directory when needed. No file is created when the build fails.
func (g *Generator) RenderToFile(req Request, outputPath string) error {
	if outputPath == "" {
		return ErrNoOutput
	}
	data, err := g.RenderBytes(req)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	if g.options.Debug {
		fmt.Printf("Wrote %d bytes to %s\n", len(data), outputPath)
	}
	return nil
}

// RenderBytes builds the report and returns the document bytes
func (g *Generator) RenderBytes(req Request) ([]byte, error) {
	o := g.options
	size, err := pagination.LookupPageSize(o.PageSize)
	if err != nil {
		return nil, err
	}
	geometry, err := size.Geometry(o.Margin)
	if err != nil {
		return nil, err
	}

	rep, err := g.prepare(req, report.Page{Size: size, Margin: o.Margin})
	if err != nil {
		return nil, err
	}
	if o.Debug {
		fmt.Printf("Building %s report %s on %s\n", rep.Type, rep.Header.Number, size.Name)
	}

	renderer := pdf.NewRenderer(g.loader)
	renderer.Debug = o.Debug
	for _, dir := range o.FontDirectories {
		renderer.AddFontDirectory(dir)
	}
	doc, err := renderer.NewDocument(geometry, pdf.RenderOptions{
		Title:      coalesce(o.Title, rep.Title),
		Author:     coalesce(o.Author, report.DefaultAuthor),
		Subject:    coalesce(o.Subject, rep.Subject),
		Keywords:   o.Keywords,
		Creator:    "pdfreport",
		Producer:   "pdfreport (fpdf)",
		Letterhead: o.Letterhead,
	})
	if err != nil {
		return nil, err
	}

	metrics := o.Metrics
	if metrics == (Metrics{}) {
		metrics = layout.DefaultMetrics()
	}
	assembler := &report.Assembler{
		Metrics: metrics,
		Locale:  text.NewLocale(o.Locale),
		Debug:   o.Debug,
	}
	return assembler.Build(doc, rep)
}

// prepare turns the request into a laid-out report model
func (g *Generator) prepare(req Request, page report.Page) (*report.Report, error) {
	o := g.options
	clock := o.Clock
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	ctx := report.Context{
		Institution: o.Institution,
		Title:       o.Title,
		Number:      o.ReportNumber,
		Date:        now,
		GeneratedBy: o.GeneratedBy,
		Barcode:     o.Barcode,
		Rand:        o.Rand,
	}
	data := req.Data
	if data == nil {
		data = &Dataset{}
	}
	f := req.Filter
	period := dataset.Period{From: f.From, To: f.To}

	switch req.Type {
	case report.TypeInventory:
		return report.Inventory(ctx, page, data.Books), nil
	case report.TypeBorrowed:
		return report.Borrowed(ctx, page, data.Books), nil
	case report.TypeFiltered:
		return report.Filtered(ctx, page, data.Books, dataset.BookFilter{Genre: f.Genre, Status: f.Status, Publisher: f.Publisher}), nil
	case report.TypePopularity:
		return report.Popularity(ctx, page, data.Books, data.Loans, period), nil
	case report.TypeOverdue:
		return report.Overdue(ctx, page, data, dataset.OverdueFilter{Genre: f.Genre, Publisher: f.Publisher, Period: period}, now), nil
	case report.TypeReceipt:
		var rc dataset.Receipt
		if data.Receipt != nil {
			rc = *data.Receipt
		}
		return report.Receipt(ctx, page, rc, text.NewLocale(o.Locale)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, req.Type)
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// WithOptions returns a new generator with the specified options
func (g *Generator) WithOptions(options Options) *Generator {
	return NewWithOptions(options)
}

// WithOption returns a new generator with the specified option set
func (g *Generator) WithOption(option Option) *Generator {
	newOptions := g.options
	newOptions.ResourcePaths = slices.Clone(newOptions.ResourcePaths)
	newOptions.FontDirectories = slices.Clone(newOptions.FontDirectories)
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// AddResourcePath adds a path to search for resources
func (g *Generator) AddResourcePath(path string) *Generator {
	return g.WithOption(WithResourcePath(path))
}

// AddFontDirectory adds a directory to search for fonts
func (g *Generator) AddFontDirectory(dir string) *Generator {
	return g.WithOption(WithFontDirectory(dir))
}

// SetPageSize sets the page size
func (g *Generator) SetPageSize(name string) *Generator {
	return g.WithOption(WithPageSize(name))
}

// SetDebug sets the debug mode
func (g *Generator) SetDebug(debug bool) *Generator {
	return g.WithOption(WithDebug(debug))
}
