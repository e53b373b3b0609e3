// Package dataset holds the business records reports are built from and the
// pure filtering and aggregation functions that shape them into table rows
// and summary entries.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Unknown labels records whose grouping key is missing
const Unknown = "Nieznany"

// Book statuses used by the library system
const (
	StatusAvailable = "Dostępna"
	StatusBorrowed  = "Wypożyczona"
	StatusReserved  = "Zarezerwowana"
)

// Book is a catalogue entry
type Book struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	Authors   []string `yaml:"authors"`
	Publisher string   `yaml:"publisher"`
	Genre     string   `yaml:"genre"`
	Status    string   `yaml:"status"`
}

// AuthorList returns the authors joined for display
func (b Book) AuthorList() string {
	return strings.Join(b.Authors, ", ")
}

// User is a library reader
type User struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

// Loan records one book lent to one user
type Loan struct {
	ID          string     `yaml:"id"`
	BookID      string     `yaml:"book_id"`
	UserID      string     `yaml:"user_id"`
	LibrarianID string     `yaml:"librarian_id"`
	BorrowedAt  time.Time  `yaml:"borrowed_at"`
	DueDate     time.Time  `yaml:"due_date"`
	ReturnedAt  *time.Time `yaml:"returned_at"`
}

// Dataset is the input document of a report build
type Dataset struct {
	Books   []Book   `yaml:"books"`
	Users   []User   `yaml:"users"`
	Loans   []Loan   `yaml:"loans"`
	Receipt *Receipt `yaml:"receipt"`
}

// Load reads a YAML dataset file
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML dataset. Unknown keys are rejected so typos in
// input files surface instead of silently producing empty columns.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return &ds, nil
		}
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return &ds, nil
}

// BookIndex maps book IDs to books
func (d *Dataset) BookIndex() map[string]Book {
	idx := make(map[string]Book, len(d.Books))
	for _, b := range d.Books {
		idx[b.ID] = b
	}
	return idx
}

// UserIndex maps user IDs to users
func (d *Dataset) UserIndex() map[string]User {
	idx := make(map[string]User, len(d.Users))
	for _, u := range d.Users {
		idx[u.ID] = u
	}
	return idx
}
