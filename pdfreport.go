// Package pdfreport builds paginated business reports as PDF documents.
package pdfreport

import (
	"github.com/gompdf/pdfreport/pkg/api"
)

type Generator = api.Generator
type Options = api.Options
type Option = api.Option
type Request = api.Request
type Filter = api.Filter
type ReportType = api.ReportType
type Dataset = api.Dataset
type Book = api.Book
type User = api.User
type Loan = api.Loan
type Receipt = api.Receipt
type ReceiptItem = api.ReceiptItem
type Institution = api.Institution
type Metrics = api.Metrics
type BuildError = api.BuildError

func New() *Generator                           { return api.New() }
func NewWithOptions(options Options) *Generator { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	LoadOptions        = api.LoadOptions
	LoadDataset        = api.LoadDataset
	ParseReportType    = api.ParseReportType
	WithPageSize       = api.WithPageSize
	WithMargin         = api.WithMargin
	WithDebug          = api.WithDebug
	WithMetrics        = api.WithMetrics
	WithLocale         = api.WithLocale
	WithResourcePath   = api.WithResourcePath
	WithFontDirectory  = api.WithFontDirectory
	WithLetterhead     = api.WithLetterhead
	WithInstitution    = api.WithInstitution
	WithGeneratedBy    = api.WithGeneratedBy
	WithBarcode        = api.WithBarcode
	WithReportNumber   = api.WithReportNumber
	WithTitle          = api.WithTitle
	WithAuthor         = api.WithAuthor
	WithSubject        = api.WithSubject
	WithKeywords       = api.WithKeywords
	WithClock          = api.WithClock
	WithRand           = api.WithRand
	WithPageSizeA4     = api.WithPageSizeA4
	WithPageSizeLetter = api.WithPageSizeLetter
	WithPageSizeLegal  = api.WithPageSizeLegal
)

var (
	ErrInvalidPageSize    = api.ErrInvalidPageSize
	ErrFontNotFound       = api.ErrFontNotFound
	ErrLetterheadNotFound = api.ErrLetterheadNotFound
	ErrUnknownReportType  = api.ErrUnknownReportType
	ErrNoOutput           = api.ErrNoOutput
)

const (
	ReportInventory  = api.ReportInventory
	ReportBorrowed   = api.ReportBorrowed
	ReportFiltered   = api.ReportFiltered
	ReportPopularity = api.ReportPopularity
	ReportOverdue    = api.ReportOverdue
	ReportReceipt    = api.ReportReceipt

	PageSizeA3     = api.PageSizeA3
	PageSizeA4     = api.PageSizeA4
	PageSizeA5     = api.PageSizeA5
	PageSizeLetter = api.PageSizeLetter
	PageSizeLegal  = api.PageSizeLegal
)
