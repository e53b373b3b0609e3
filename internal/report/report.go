// Package report assembles complete documents: it turns business records into
// content models and drives the section renderers over one cursor.
package report

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/gompdf/pdfreport/internal/dataset"
	"github.com/gompdf/pdfreport/internal/layout"
)

// ErrUnknownReportType is returned for report type names that are not supported
var ErrUnknownReportType = errors.New("unknown report type")

// Type names a report family
type Type string

const (
	TypeInventory  Type = "inventory"
	TypeBorrowed   Type = "borrowed"
	TypeFiltered   Type = "filtered"
	TypePopularity Type = "popularity"
	TypeOverdue    Type = "overdue"
	TypeReceipt    Type = "receipt"
)

// Types lists every supported report type
var Types = []Type{TypeInventory, TypeBorrowed, TypeFiltered, TypePopularity, TypeOverdue, TypeReceipt}

// ParseType resolves a report type name, ignoring case
func ParseType(name string) (Type, error) {
	for _, t := range Types {
		if strings.EqualFold(name, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReportType, name)
}

// Institution identifies the issuer printed in the header of library reports
type Institution struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Address     string `yaml:"address"`
	City        string `yaml:"city"`
	TaxID       string `yaml:"tax_id"`
}

// DefaultInstitution returns the issuer used when none is configured
func DefaultInstitution() Institution {
	return Institution{
		Name:        "Biblioteka Miejska",
		Description: "System Zarządzania Księgozbiorem",
		Address:     "ul. Akademicka 16",
		City:        "44-100 Gliwice",
	}
}

// DefaultAuthor is the document author written to the metadata
const DefaultAuthor = "System zarządzania biblioteką"

// Context is the per-build metadata shared by every section of a report
type Context struct {
	Institution Institution
	// Title overrides the default title of the report type
	Title string
	// Number overrides the generated report number
	Number      string
	Date        time.Time
	GeneratedBy string
	Barcode     bool
	// Rand draws the sequence part of generated report numbers
	Rand *rand.Rand
}

func (c Context) number(prefix string) string {
	if c.Number != "" {
		return c.Number
	}
	return dataset.ReportNumber(prefix, c.Date, c.Rand)
}

func (c Context) title(def string) string {
	if c.Title != "" {
		return c.Title
	}
	return def
}

func (c Context) date() string {
	return c.Date.Format(dataset.DateLayout)
}

// Report is a fully prepared document: every section content model plus the
// page constraints it is laid out under
type Report struct {
	Type    Type
	Title   string
	Subject string

	Header    layout.Header
	Table     layout.Table
	Summaries []layout.Summary
	Signature layout.Signature

	// HeaderGap is the space between the header and the table; zero uses
	// the metrics default
	HeaderGap float64
	// MinBottom is the bottom margin of every page; zero uses the metrics default
	MinBottom float64
}

// BuildError reports the section and page a build failed on
type BuildError struct {
	Section string
	Page    int
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("report build failed in %s on page %d: %v", e.Section, e.Page, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
