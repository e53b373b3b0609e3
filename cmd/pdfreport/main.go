package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gompdf/pdfreport"
)

const dateLayout = "2006-01-02"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("pdfreport", flag.ContinueOnError)
	var (
		reportType  string
		inputFile   string
		configFile  string
		outputFile  string
		genre       string
		status      string
		publisher   string
		from        string
		to          string
		generatedBy string
		verbose     bool
	)

	fs.StringVar(&reportType, "type", "inventory", "Report type: "+typeNames())
	fs.StringVar(&inputFile, "input", "", "Input YAML data file path")
	fs.StringVar(&configFile, "config", "", "Configuration YAML file path")
	fs.StringVar(&outputFile, "output", "", "Output PDF file path (default <type>.pdf)")
	fs.StringVar(&genre, "genre", "", "Only books of this genre")
	fs.StringVar(&status, "status", "", "Only books with this status")
	fs.StringVar(&publisher, "publisher", "", "Only books from this publisher")
	fs.StringVar(&from, "from", "", "Period start, YYYY-MM-DD")
	fs.StringVar(&to, "to", "", "Period end, YYYY-MM-DD")
	fs.StringVar(&generatedBy, "generated-by", "", "Person named as the report author")
	fs.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	typ, err := pdfreport.ParseReportType(reportType)
	if err != nil {
		return err
	}
	if inputFile == "" && typ != pdfreport.ReportReceipt {
		fs.Usage()
		return fmt.Errorf("input file is required for %s reports", typ)
	}
	if outputFile == "" {
		outputFile = string(typ) + ".pdf"
	}

	filter := pdfreport.Filter{Genre: genre, Status: status, Publisher: publisher}
	if filter.From, err = parseDate("from", from); err != nil {
		return err
	}
	if filter.To, err = parseDate("to", to); err != nil {
		return err
	}

	opts := pdfreport.DefaultOptions()
	if configFile != "" {
		if opts, err = pdfreport.LoadOptions(configFile); err != nil {
			return err
		}
	}
	generator := pdfreport.NewWithOptions(opts)
	if generatedBy != "" {
		generator = generator.WithOption(pdfreport.WithGeneratedBy(generatedBy))
	}
	if verbose {
		generator = generator.SetDebug(true)
	}

	data := &pdfreport.Dataset{}
	if inputFile != "" {
		if data, err = pdfreport.LoadDataset(inputFile); err != nil {
			return err
		}
	}

	req := pdfreport.Request{Type: typ, Data: data, Filter: filter}
	if err := generator.RenderToFile(req, outputFile); err != nil {
		return fmt.Errorf("generating %s report: %w", typ, err)
	}

	if verbose {
		fmt.Printf("Successfully generated %s report to %s\n", typ, outputFile)
	}
	return nil
}

func parseDate(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid -%s date %q: %w", name, value, err)
	}
	return t, nil
}

func typeNames() string {
	names := []string{
		string(pdfreport.ReportInventory), string(pdfreport.ReportBorrowed), string(pdfreport.ReportFiltered),
		string(pdfreport.ReportPopularity), string(pdfreport.ReportOverdue), string(pdfreport.ReportReceipt),
	}
	return strings.Join(names, ", ")
}
