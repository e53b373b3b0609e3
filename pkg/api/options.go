package api

import (
	"math/rand/v2"
	"time"

	"github.com/gompdf/pdfreport/internal/config"
	"github.com/gompdf/pdfreport/internal/layout"
	"github.com/gompdf/pdfreport/internal/report"
)

// Institution identifies the issuer printed in library report headers
type Institution = report.Institution

// Metrics holds the fixed layout constants, in points
type Metrics = layout.Metrics

// Options represents configuration options for the report generator
type Options struct {
	// Page size name: A4, A5, A3, Letter or Legal
	PageSize string
	// Page margin on every side, in points
	Margin float64

	// Rendering options
	Debug   bool
	Metrics Metrics
	// Locale formats decimal numbers
	Locale string

	// Resource paths
	ResourcePaths   []string
	FontDirectories []string
	// Letterhead is a PDF or image stamped on every page
	Letterhead string

	// Report content defaults
	Institution  Institution
	GeneratedBy  string
	Barcode      bool
	ReportNumber string

	// Document metadata; empty title and subject are derived from the report
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Clock supplies the report date and the reference time of overdue checks
	Clock func() time.Time
	// Rand draws generated report numbers
	Rand *rand.Rand
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		// A4 with a 30 point margin
		PageSize: PageSizeA4,
		Margin:   30,

		Debug:   false,
		Metrics: layout.DefaultMetrics(),
		Locale:  "pl",

		ResourcePaths:   []string{},
		FontDirectories: []string{},

		Institution: report.DefaultInstitution(),
		GeneratedBy: "Administrator",

		Author: report.DefaultAuthor,

		Clock: time.Now,
	}
}

// OptionsFromConfig converts a loaded configuration file into options
func OptionsFromConfig(cfg config.Config) Options {
	o := DefaultOptions()
	o.PageSize = cfg.Page.Size
	o.Margin = cfg.Page.Margin
	o.Institution = cfg.Institution
	o.FontDirectories = append(o.FontDirectories, cfg.Fonts.Directories...)
	o.Letterhead = cfg.Letterhead
	o.Barcode = cfg.Barcode
	if cfg.GeneratedBy != "" {
		o.GeneratedBy = cfg.GeneratedBy
	}
	if cfg.Locale != "" {
		o.Locale = cfg.Locale
	}
	o.Metrics = cfg.Metrics.Apply(o.Metrics)
	return o
}

// LoadOptions reads a YAML configuration file into options
func LoadOptions(path string) (Options, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return Options{}, err
	}
	return OptionsFromConfig(cfg), nil
}

// WithPageSize sets the page size by name
func WithPageSize(name string) Option {
	return func(o *Options) {
		o.PageSize = name
	}
}

// WithMargin sets the page margin
func WithMargin(margin float64) Option {
	return func(o *Options) {
		o.Margin = margin
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithMetrics replaces the layout constants
func WithMetrics(m Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithLocale sets the number formatting locale
func WithLocale(tag string) Option {
	return func(o *Options) {
		o.Locale = tag
	}
}

// WithResourcePath adds a path to search for resources
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithFontDirectory adds a directory to search for fonts
func WithFontDirectory(dir string) Option {
	return func(o *Options) {
		o.FontDirectories = append(o.FontDirectories, dir)
	}
}

// WithLetterhead sets the page background document
func WithLetterhead(path string) Option {
	return func(o *Options) {
		o.Letterhead = path
	}
}

// WithInstitution sets the issuer of library reports
func WithInstitution(in Institution) Option {
	return func(o *Options) {
		o.Institution = in
	}
}

// WithGeneratedBy sets the person named in the header and signature
func WithGeneratedBy(name string) Option {
	return func(o *Options) {
		o.GeneratedBy = name
	}
}

// WithBarcode toggles the report number barcode in the header
func WithBarcode(enabled bool) Option {
	return func(o *Options) {
		o.Barcode = enabled
	}
}

// WithReportNumber fixes the report number instead of generating one
func WithReportNumber(number string) Option {
	return func(o *Options) {
		o.ReportNumber = number
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// WithClock sets the time source
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

// WithRand sets the random source of generated report numbers
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// Standard page size names
const (
	PageSizeA3     = "A3"
	PageSizeA4     = "A4"
	PageSizeA5     = "A5"
	PageSizeLetter = "Letter"
	PageSizeLegal  = "Legal"
)

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetter)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegal)
}
