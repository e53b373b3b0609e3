// Package config loads the YAML file that carries the institution defaults
// and page setup of report builds.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gompdf/pdfreport/internal/layout"
	"github.com/gompdf/pdfreport/internal/pagination"
	"github.com/gompdf/pdfreport/internal/report"
)

// Config is the content of a configuration file
type Config struct {
	Institution report.Institution `yaml:"institution"`
	Page        Page               `yaml:"page"`
	Fonts       Fonts              `yaml:"fonts"`
	Letterhead  string             `yaml:"letterhead"`
	Barcode     bool               `yaml:"barcode"`
	GeneratedBy string             `yaml:"generated_by"`
	Locale      string             `yaml:"locale"`
	Metrics     Metrics            `yaml:"metrics"`
}

// Page selects the paper and its margin
type Page struct {
	Size   string  `yaml:"size"`
	Margin float64 `yaml:"margin"`
}

// Fonts lists the directories holding the report TrueType faces
type Fonts struct {
	Directories []string `yaml:"directories"`
}

// Metrics overrides individual layout constants. Zero keeps the default.
type Metrics struct {
	RowHeight        float64 `yaml:"row_height"`
	HeaderRowHeight  float64 `yaml:"header_row_height"`
	SectionSpacing   float64 `yaml:"section_spacing"`
	SignatureReserve float64 `yaml:"signature_reserve"`
	MinBottomMargin  float64 `yaml:"min_bottom_margin"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Institution: report.DefaultInstitution(),
		Page:        Page{Size: pagination.PageSizeA4.Name, Margin: 30},
		GeneratedBy: "Administrator",
		Locale:      "pl",
	}
}

// Load reads a configuration file. Keys it omits keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a configuration document over the defaults and validates it
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the page setup
func (c Config) Validate() error {
	size, err := pagination.LookupPageSize(c.Page.Size)
	if err != nil {
		return err
	}
	if _, err := size.Geometry(c.Page.Margin); err != nil {
		return err
	}
	return nil
}

// PageSize resolves the configured paper
func (c Config) PageSize() (pagination.PageSize, error) {
	return pagination.LookupPageSize(c.Page.Size)
}

// Apply returns m with every non-zero override set
func (o Metrics) Apply(m layout.Metrics) layout.Metrics {
	if o.RowHeight > 0 {
		m.RowHeight = o.RowHeight
	}
	if o.HeaderRowHeight > 0 {
		m.HeaderRowHeight = o.HeaderRowHeight
	}
	if o.SectionSpacing > 0 {
		m.SectionSpacing = o.SectionSpacing
	}
	if o.SignatureReserve > 0 {
		m.SignatureReserve = o.SignatureReserve
	}
	if o.MinBottomMargin > 0 {
		m.MinBottomMargin = o.MinBottomMargin
	}
	return m
}
